package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/riordanpawley/marquee/internal/domain"
)

// ProjectFile is the per-project config file name
const ProjectFile = ".marquee.json"

// Config represents the full marquee configuration
type Config struct {
	UI      UIConfig     `json:"ui" toml:"ui"`
	Upload  UploadConfig `json:"upload" toml:"upload"`
	Notices NoticeConfig `json:"notices" toml:"notices"`
	Log     LogConfig    `json:"log" toml:"log"`
}

// UIConfig contains screen settings
type UIConfig struct {
	StartPath   string `json:"startPath" toml:"start_path"`
	SaveDelayMs int    `json:"saveDelayMs" toml:"save_delay_ms"`
}

// UploadConfig bounds which files the upload widget accepts.
// A negative MaxSizeBytes disables the size check; zero means the default.
type UploadConfig struct {
	Accept       []string `json:"accept" toml:"accept"`
	MaxSizeBytes int64    `json:"maxSizeBytes" toml:"max_size_bytes"`
	ScratchDir   string   `json:"scratchDir" toml:"scratch_dir"`
}

// NoticeConfig contains notice and toast lifetimes
type NoticeConfig struct {
	NoticeTTLMs int `json:"noticeTtlMs" toml:"notice_ttl_ms"`
	ToastTTLMs  int `json:"toastTtlMs" toml:"toast_ttl_ms"`
}

// LogConfig contains log file settings
type LogConfig struct {
	Level      string `json:"level" toml:"level"`
	File       string `json:"file" toml:"file"`
	MaxSizeMB  int    `json:"maxSizeMb" toml:"max_size_mb"`
	MaxBackups int    `json:"maxBackups" toml:"max_backups"`
	MaxAgeDays int    `json:"maxAgeDays" toml:"max_age_days"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	stateDir := defaultStateDir()

	return &Config{
		UI: UIConfig{
			StartPath:   "/",
			SaveDelayMs: 600,
		},
		Upload: UploadConfig{
			Accept:       []string{".pdf", "image/*"},
			MaxSizeBytes: 10 * 1024 * 1024,
			ScratchDir:   filepath.Join(stateDir, "clipboard"),
		},
		Notices: NoticeConfig{
			NoticeTTLMs: 2000,
			ToastTTLMs:  5000,
		},
		Log: LogConfig{
			Level:      "info",
			File:       filepath.Join(stateDir, "marquee.log"),
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "marquee")
	}
	return filepath.Join(home, ".local", "state", "marquee")
}

// DefaultUserConfigPath returns ~/.config/marquee/config.toml
func DefaultUserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "marquee", "config.toml")
}

// LoadConfig builds the effective config: defaults, then the user TOML file,
// then the project file in projectPath, then MARQUEE_* environment variables.
// Missing files are skipped; an empty userPath skips the user file.
func LoadConfig(userPath, projectPath string) (*Config, error) {
	cfg := DefaultConfig()

	if userPath != "" {
		if err := loadUserFile(cfg, userPath); err != nil {
			return nil, err
		}
	}

	if projectPath != "" {
		path := filepath.Join(projectPath, ProjectFile)
		if data, err := os.ReadFile(path); err == nil {
			project, err := ParseVersionedConfig(data)
			if err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", ProjectFile, err)
			}
			overlay(cfg, project)
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", ProjectFile, err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg = MergeWithDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load loads config from the default user path and the working directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return LoadConfig(DefaultUserConfigPath(), cwd)
}

func loadUserFile(cfg *Config, path string) error {
	data, err := os.ReadFile(expandPath(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	// Keys absent from the file keep their current values
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// overlay copies every field set in src onto dst
func overlay(dst, src *Config) {
	if src.UI.StartPath != "" {
		dst.UI.StartPath = src.UI.StartPath
	}
	if src.UI.SaveDelayMs != 0 {
		dst.UI.SaveDelayMs = src.UI.SaveDelayMs
	}
	if src.Upload.Accept != nil {
		dst.Upload.Accept = src.Upload.Accept
	}
	if src.Upload.MaxSizeBytes != 0 {
		dst.Upload.MaxSizeBytes = src.Upload.MaxSizeBytes
	}
	if src.Upload.ScratchDir != "" {
		dst.Upload.ScratchDir = src.Upload.ScratchDir
	}
	if src.Notices.NoticeTTLMs != 0 {
		dst.Notices.NoticeTTLMs = src.Notices.NoticeTTLMs
	}
	if src.Notices.ToastTTLMs != 0 {
		dst.Notices.ToastTTLMs = src.Notices.ToastTTLMs
	}
	if src.Log.Level != "" {
		dst.Log.Level = src.Log.Level
	}
	if src.Log.File != "" {
		dst.Log.File = src.Log.File
	}
	if src.Log.MaxSizeMB != 0 {
		dst.Log.MaxSizeMB = src.Log.MaxSizeMB
	}
	if src.Log.MaxBackups != 0 {
		dst.Log.MaxBackups = src.Log.MaxBackups
	}
	if src.Log.MaxAgeDays != 0 {
		dst.Log.MaxAgeDays = src.Log.MaxAgeDays
	}
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("MARQUEE_MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("MARQUEE_MAX_UPLOAD_BYTES: %w", err)
		}
		cfg.Upload.MaxSizeBytes = n
	}
	if v := os.Getenv("MARQUEE_ACCEPT"); v != "" {
		var accept []string
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				accept = append(accept, part)
			}
		}
		cfg.Upload.Accept = accept
	}
	if v := os.Getenv("MARQUEE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("MARQUEE_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("MARQUEE_NOTICE_TTL_MS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MARQUEE_NOTICE_TTL_MS: %w", err)
		}
		cfg.Notices.NoticeTTLMs = n
	}
	return nil
}

// SaveConfig writes cfg as versioned JSON
func SaveConfig(cfg *Config, path string) error {
	data, err := MarshalVersionedConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MarshalTOML renders cfg in the user file format
func MarshalTOML(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// MergeWithDefaults fills zero values in cfg with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.UI.StartPath == "" {
		cfg.UI.StartPath = defaults.UI.StartPath
	}
	if cfg.UI.SaveDelayMs == 0 {
		cfg.UI.SaveDelayMs = defaults.UI.SaveDelayMs
	}

	if cfg.Upload.Accept == nil {
		cfg.Upload.Accept = defaults.Upload.Accept
	}
	if cfg.Upload.MaxSizeBytes == 0 {
		cfg.Upload.MaxSizeBytes = defaults.Upload.MaxSizeBytes
	}
	if cfg.Upload.ScratchDir == "" {
		cfg.Upload.ScratchDir = defaults.Upload.ScratchDir
	}

	if cfg.Notices.NoticeTTLMs == 0 {
		cfg.Notices.NoticeTTLMs = defaults.Notices.NoticeTTLMs
	}
	if cfg.Notices.ToastTTLMs == 0 {
		cfg.Notices.ToastTTLMs = defaults.Notices.ToastTTLMs
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	if cfg.Log.File == "" {
		cfg.Log.File = defaults.Log.File
	}
	if cfg.Log.MaxSizeMB == 0 {
		cfg.Log.MaxSizeMB = defaults.Log.MaxSizeMB
	}
	if cfg.Log.MaxBackups == 0 {
		cfg.Log.MaxBackups = defaults.Log.MaxBackups
	}
	if cfg.Log.MaxAgeDays == 0 {
		cfg.Log.MaxAgeDays = defaults.Log.MaxAgeDays
	}

	return cfg
}

// Validate checks the config for invalid values
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.UI.StartPath, "/") {
		return fmt.Errorf("ui.start_path must start with /: %q", c.UI.StartPath)
	}
	if c.UI.SaveDelayMs < 0 {
		return fmt.Errorf("ui.save_delay_ms must not be negative")
	}
	for _, a := range c.Upload.Accept {
		if !strings.HasPrefix(a, ".") && !strings.Contains(a, "/") {
			return fmt.Errorf("upload.accept entry %q is neither an extension nor a MIME type", a)
		}
	}
	if c.Notices.NoticeTTLMs <= 0 {
		return fmt.Errorf("notices.notice_ttl_ms must be positive")
	}
	if c.Notices.ToastTTLMs <= 0 {
		return fmt.Errorf("notices.toast_ttl_ms must be positive")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error: %q", c.Log.Level)
	}
	return nil
}

// UploadConstraints returns the constraints for the upload widget
func (c *Config) UploadConstraints() domain.UploadConstraints {
	return domain.UploadConstraints{
		Accept:       c.Upload.Accept,
		MaxSizeBytes: c.Upload.MaxSizeBytes,
	}
}

// NoticeTTL returns how long inline notices stay visible
func (c *Config) NoticeTTL() time.Duration {
	return time.Duration(c.Notices.NoticeTTLMs) * time.Millisecond
}

// ToastTTL returns how long toasts stay visible
func (c *Config) ToastTTL() time.Duration {
	return time.Duration(c.Notices.ToastTTLMs) * time.Millisecond
}

// SaveDelay returns the simulated save duration
func (c *Config) SaveDelay() time.Duration {
	return time.Duration(c.UI.SaveDelayMs) * time.Millisecond
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
