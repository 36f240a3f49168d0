// Package cli wires the marquee command line: the interactive client and
// the scriptable subcommands around it.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/riordanpawley/marquee/internal/app"
	"github.com/riordanpawley/marquee/internal/config"
	"github.com/riordanpawley/marquee/internal/domain"
	"github.com/riordanpawley/marquee/internal/logging"
	"github.com/riordanpawley/marquee/internal/services/attachment"
	"github.com/riordanpawley/marquee/internal/ui/boundary"
	"github.com/riordanpawley/marquee/internal/ui/styles"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	root *cobra.Command

	configPath    string // user TOML file
	projectDir    string // directory holding .marquee.json
	debug         bool
	events        []domain.Event
	vendors       []domain.Vendor
	runProgram    func(m tea.Model) error
	attachmentsFn func(cfg *config.Config, logger *slog.Logger) app.Attachments
}

// NewApp creates the root command and its subcommands.
func NewApp() *App {
	a := &App{
		events:     domain.SampleEvents(),
		vendors:    domain.SampleVendors(),
		runProgram: runProgram,
		attachmentsFn: func(cfg *config.Config, logger *slog.Logger) app.Attachments {
			return attachment.NewService(cfg.Upload.ScratchDir, logger)
		},
	}

	a.root = &cobra.Command{
		Use:   "marquee",
		Short: "A terminal client for the Marquee event marketplace",
		Long: `Marquee browses events and vendors, shortlists suppliers and
attaches contracts and photos from the terminal.

Run without a subcommand to start the interactive client.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runInteractive(cmd.ErrOrStderr())
		},
	}

	flags := a.root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", config.DefaultUserConfigPath(), "User config file (TOML)")
	flags.StringVar(&a.projectDir, "project", "", "Directory holding "+config.ProjectFile+" (defaults to the working directory)")
	flags.BoolVar(&a.debug, "debug", false, "Enable debug logging and the diagnostic fault key")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.eventsCmd())
	a.root.AddCommand(a.vendorsCmd())
	a.root.AddCommand(a.checkCmd())
	a.root.AddCommand(a.configCmd())

	return a
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// SetArgs overrides os.Args, for tests.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// SetOutput redirects stdout and stderr, for tests.
func (a *App) SetOutput(out, errOut io.Writer) {
	a.root.SetOut(out)
	a.root.SetErr(errOut)
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "marquee %s (commit: %s)\n", Version, Commit)
		},
	}
}

// resolveProjectDir returns --project or the working directory
func (a *App) resolveProjectDir() (string, error) {
	if a.projectDir != "" {
		return a.projectDir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return cwd, nil
}

// loadConfig reads the layered config for the selected project directory
func (a *App) loadConfig() (*config.Config, error) {
	dir, err := a.resolveProjectDir()
	if err != nil {
		return nil, err
	}
	return config.LoadConfig(a.configPath, dir)
}

// runInteractive starts the client behind a render boundary. Choosing
// reload from the fault screen re-reads the config and starts over.
func (a *App) runInteractive(errOut io.Writer) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	var reloadErr error
	for {
		reload, err := a.runOnce(cfg, reloadErr)
		if err != nil || !reload {
			return err
		}

		reloadErr = nil
		next, err := a.loadConfig()
		if err != nil {
			// A broken file keeps the previous settings
			reloadErr = err
			fmt.Fprintf(errOut, "config reload failed, keeping previous settings: %v\n", err)
			continue
		}
		cfg = next
	}
}

// runOnce bootstraps the logger, services and model from cfg and runs one
// program. Returns true when the user asked for a reload.
func (a *App) runOnce(cfg *config.Config, reloadErr error) (bool, error) {
	logger, closer, err := logging.New(cfg.Log, a.debug)
	if err != nil {
		return false, err
	}
	defer closer.Close()

	logger.Info("starting marquee", "version", Version, "debug", a.debug)
	if reloadErr != nil {
		logger.Error("reload config", "error", reloadErr)
	}

	attachments := a.attachmentsFn(cfg, logger)
	// Each mount starts from a fresh copy of the catalog
	mount := func() tea.Model {
		return app.New(app.Options{
			Config:      cfg,
			Logger:      logger,
			Attachments: attachments,
			Events:      slices.Clone(a.events),
			Vendors:     slices.Clone(a.vendors),
			Debug:       a.debug,
		})
	}
	b := boundary.New(mount, logger, styles.New())

	if err := a.runProgram(b); err != nil {
		return false, fmt.Errorf("running marquee: %w", err)
	}
	if !b.ReloadRequested() {
		return false, nil
	}
	logger.Info("reloading marquee")
	return true, nil
}

func runProgram(m tea.Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
