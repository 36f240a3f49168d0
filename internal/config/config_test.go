package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "/", cfg.UI.StartPath)
	assert.Equal(t, 600, cfg.UI.SaveDelayMs)

	assert.Equal(t, []string{".pdf", "image/*"}, cfg.Upload.Accept)
	assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxSizeBytes)
	assert.NotEmpty(t, cfg.Upload.ScratchDir)

	assert.Equal(t, 2000, cfg.Notices.NoticeTTLMs)
	assert.Equal(t, 5000, cfg.Notices.ToastTTLMs)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "marquee.log", filepath.Base(cfg.Log.File))
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)

	require.NoError(t, cfg.Validate())
}

func TestLoadConfigNoFiles(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := LoadConfig(filepath.Join(tmpDir, "missing.toml"), tmpDir)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigUserTOML(t *testing.T) {
	tmpDir := t.TempDir()
	userPath := filepath.Join(tmpDir, "config.toml")

	content := `
[upload]
accept = [".png"]
max_size_bytes = 2048

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(userPath, []byte(content), 0644))

	cfg, err := LoadConfig(userPath, tmpDir)
	require.NoError(t, err)

	assert.Equal(t, []string{".png"}, cfg.Upload.Accept)
	assert.Equal(t, int64(2048), cfg.Upload.MaxSizeBytes)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Untouched keys keep their defaults
	assert.Equal(t, 2000, cfg.Notices.NoticeTTLMs)
	assert.Equal(t, "/", cfg.UI.StartPath)
}

func TestLoadConfigProjectJSON(t *testing.T) {
	tmpDir := t.TempDir()

	content := `{
  "version": 2,
  "ui": {"startPath": "/events"},
  "notices": {"toastTtlMs": 9000}
}`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ProjectFile), []byte(content), 0644))

	cfg, err := LoadConfig("", tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "/events", cfg.UI.StartPath)
	assert.Equal(t, 9000, cfg.Notices.ToastTTLMs)
	assert.Equal(t, 2000, cfg.Notices.NoticeTTLMs)
}

func TestLoadConfigPriority(t *testing.T) {
	tmpDir := t.TempDir()
	userPath := filepath.Join(tmpDir, "config.toml")

	require.NoError(t, os.WriteFile(userPath, []byte("[upload]\nmax_size_bytes = 100\n[log]\nlevel = \"warn\"\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ProjectFile),
		[]byte(`{"version": 2, "upload": {"maxSizeBytes": 200}}`), 0644))
	t.Setenv("MARQUEE_LOG_LEVEL", "ERROR")

	cfg, err := LoadConfig(userPath, tmpDir)
	require.NoError(t, err)

	assert.Equal(t, int64(200), cfg.Upload.MaxSizeBytes, "project file beats user file")
	assert.Equal(t, "error", cfg.Log.Level, "environment beats both")
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("MARQUEE_MAX_UPLOAD_BYTES", "-1")
	t.Setenv("MARQUEE_ACCEPT", " .pdf, application/zip ,")
	t.Setenv("MARQUEE_NOTICE_TTL_MS", "750")
	t.Setenv("MARQUEE_LOG_FILE", "/tmp/m.log")

	cfg, err := LoadConfig("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, int64(-1), cfg.Upload.MaxSizeBytes)
	assert.Equal(t, []string{".pdf", "application/zip"}, cfg.Upload.Accept)
	assert.Equal(t, 750*time.Millisecond, cfg.NoticeTTL())
	assert.Equal(t, "/tmp/m.log", cfg.Log.File)
}

func TestLoadConfigEnvInvalid(t *testing.T) {
	t.Setenv("MARQUEE_MAX_UPLOAD_BYTES", "lots")

	_, err := LoadConfig("", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MARQUEE_MAX_UPLOAD_BYTES")
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ProjectFile), []byte(`{"ui": `), 0644))

	_, err := LoadConfig("", tmpDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ProjectFile)
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	userPath := filepath.Join(tmpDir, "config.toml")
	require.NoError(t, os.WriteFile(userPath, []byte("[upload\n"), 0644))

	_, err := LoadConfig(userPath, tmpDir)
	require.Error(t, err)
}

func TestLoadConfigFailsValidation(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ProjectFile),
		[]byte(`{"version": 2, "log": {"level": "chatty"}}`), 0644))

	_, err := LoadConfig("", tmpDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"relative start path", func(c *Config) { c.UI.StartPath = "events" }, "start_path"},
		{"negative save delay", func(c *Config) { c.UI.SaveDelayMs = -5 }, "save_delay_ms"},
		{"bad accept entry", func(c *Config) { c.Upload.Accept = []string{"pdf"} }, "upload.accept"},
		{"empty accept allows all", func(c *Config) { c.Upload.Accept = []string{} }, ""},
		{"zero notice ttl", func(c *Config) { c.Notices.NoticeTTLMs = 0 }, "notice_ttl_ms"},
		{"negative toast ttl", func(c *Config) { c.Notices.ToastTTLMs = -1 }, "toast_ttl_ms"},
		{"unknown level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSaveConfig(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ProjectFile)

	cfg := DefaultConfig()
	cfg.UI.StartPath = "/uploads"
	cfg.Upload.Accept = []string{".txt"}

	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig("", tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "/uploads", loaded.UI.StartPath)
	assert.Equal(t, []string{".txt"}, loaded.Upload.Accept)
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{
		UI:  UIConfig{StartPath: "/vendors"},
		Log: LogConfig{Level: "warn"},
	}

	merged := MergeWithDefaults(cfg)
	defaults := DefaultConfig()

	assert.Equal(t, "/vendors", merged.UI.StartPath)
	assert.Equal(t, "warn", merged.Log.Level)
	assert.Equal(t, defaults.UI.SaveDelayMs, merged.UI.SaveDelayMs)
	assert.Equal(t, defaults.Upload, merged.Upload)
	assert.Equal(t, defaults.Notices, merged.Notices)
	assert.Equal(t, defaults.Log.File, merged.Log.File)
}

func TestMergeWithDefaultsKeepsUnlimitedSize(t *testing.T) {
	cfg := &Config{Upload: UploadConfig{MaxSizeBytes: -1, Accept: []string{}}}

	merged := MergeWithDefaults(cfg)
	assert.Equal(t, int64(-1), merged.Upload.MaxSizeBytes)
	assert.Empty(t, merged.Upload.Accept)
	assert.Equal(t, int64(-1), merged.UploadConstraints().MaxSizeBytes)
}

func TestMergeWithDefaultsEmptyConfig(t *testing.T) {
	assert.Equal(t, DefaultConfig(), MergeWithDefaults(&Config{}))
}

func TestMarshalTOML(t *testing.T) {
	cfg := DefaultConfig()
	data, err := MarshalTOML(cfg)
	require.NoError(t, err)

	assert.Contains(t, string(data), "max_size_bytes")
	assert.Contains(t, string(data), "[notices]")

	var back Config
	require.NoError(t, toml.Unmarshal(data, &back))
	assert.Equal(t, *cfg, back)
}

func TestDurations(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 2*time.Second, cfg.NoticeTTL())
	assert.Equal(t, 5*time.Second, cfg.ToastTTL())
	assert.Equal(t, 600*time.Millisecond, cfg.SaveDelay())

	c := cfg.UploadConstraints()
	assert.Equal(t, cfg.Upload.Accept, c.Accept)
	assert.Equal(t, cfg.Upload.MaxSizeBytes, c.MaxSizeBytes)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "x.toml"), expandPath("~/x.toml"))
	assert.Equal(t, "/etc/x.toml", expandPath("/etc/x.toml"))
}
