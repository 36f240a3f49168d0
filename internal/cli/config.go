package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/riordanpawley/marquee/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	var (
		initFile    bool
		initProject bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration marquee would run with, after the user file,
the project file and MARQUEE_* environment variables are applied.

With --init, write the defaults to the user config file if it does not
exist yet. With --init-project, write a .marquee.json holding the default
upload rules to the project directory.`,
		Example: `  marquee config
  marquee config --init
  marquee config --init-project --project ./venue-site
  MARQUEE_LOG_LEVEL=debug marquee config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if initFile {
				created, err := writeDefaultConfig(a.configPath)
				if err != nil {
					return err
				}
				if created {
					fmt.Fprintf(out, "Created %s\n\n", a.configPath)
				} else {
					fmt.Fprintf(out, "%s already exists\n\n", a.configPath)
				}
			}

			if initProject {
				dir, err := a.resolveProjectDir()
				if err != nil {
					return err
				}
				path, created, err := writeProjectConfig(dir)
				if err != nil {
					return err
				}
				if created {
					fmt.Fprintf(out, "Created %s\n\n", path)
				} else {
					fmt.Fprintf(out, "%s already exists\n\n", path)
				}
			}

			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			data, err := config.MarshalTOML(cfg)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "# user file: %s\n", a.configPath)
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, "Write the default config file if missing")
	cmd.Flags().BoolVar(&initProject, "init-project", false, "Write the project upload rules file if missing")

	return cmd
}

// writeDefaultConfig creates path with the default settings. Returns false
// when the file already exists.
func writeDefaultConfig(path string) (bool, error) {
	if path == "" {
		return false, errors.New("no user config path; pass --config")
	}
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	data, err := config.MarshalTOML(config.DefaultConfig())
	if err != nil {
		return false, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}
	return true, nil
}

// writeProjectConfig creates the project file in dir with the default upload
// rules only, so it never masks the user's other settings. Returns false
// when the file already exists.
func writeProjectConfig(dir string) (string, bool, error) {
	path := filepath.Join(dir, config.ProjectFile)
	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return path, false, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	defaults := config.DefaultConfig()
	project := &config.Config{
		Upload: config.UploadConfig{
			Accept:       defaults.Upload.Accept,
			MaxSizeBytes: defaults.Upload.MaxSizeBytes,
		},
	}
	if err := config.SaveConfig(project, path); err != nil {
		return path, false, err
	}
	return path, true, nil
}
