package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexanderramin/epeat/internal/assessment"
	"github.com/alexanderramin/epeat/internal/catalog"
	"github.com/alexanderramin/epeat/internal/config"
	"github.com/alexanderramin/epeat/internal/domain"
	"github.com/alexanderramin/epeat/internal/logging"
)

// interactiveAnnotation marks commands that take over the terminal.
const interactiveAnnotation = "epeat/interactive"

// App holds the reference data and collaborators used by CLI commands.
type App struct {
	Catalogs assessment.Catalogs
	Tracker  domain.Catalog

	// Logger is built from configuration on first use when nil.
	Logger *zap.Logger

	// IsInteractive reports whether stdout is a terminal.
	IsInteractive func() bool

	// RunProgram runs a bubbletea model to completion.
	RunProgram func(m tea.Model) error
}

// NewApp returns an App backed by the built-in catalogs.
func NewApp() *App {
	return &App{
		Catalogs: assessment.Catalogs{
			Documentation: catalog.Documentation(),
			SelfRating:    catalog.SelfRating(),
			Risks:         catalog.CriticalRisks(),
		},
		Tracker: catalog.Tracker(),
		IsInteractive: func() bool {
			fd := os.Stdout.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
		RunProgram: func(m tea.Model) error {
			_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) observer() assessment.EventObserver {
	return assessment.NewLogObserver(a.Logger)
}

// configure resolves configuration, builds the logger and swaps in any
// catalogs named by the configuration.
func (a *App) configure(cmd *cobra.Command, flags *config.Flags) error {
	cfg, err := flags.Resolve()
	if err != nil {
		return err
	}

	if a.Logger == nil {
		logger, err := logging.New(logging.Options{
			File:        cfg.Log.File,
			Level:       cfg.Log.Level,
			Interactive: cmd.Annotations[interactiveAnnotation] == "true",
		})
		if err != nil {
			return err
		}
		a.Logger = logger
	}

	return a.loadCatalogs(cfg.Catalog)
}

func (a *App) loadCatalogs(cfg config.CatalogConfig) error {
	load := func(path string, dst *domain.Catalog) error {
		if path == "" {
			return nil
		}
		c, err := catalog.LoadCatalog(path)
		if err != nil {
			a.logger().Error("catalog rejected", zap.String("path", path), zap.Error(err))
			return err
		}
		a.logger().Info("catalog loaded",
			zap.String("path", path),
			zap.String("name", c.Name),
			zap.Int("items", c.ItemCount()))
		*dst = c
		return nil
	}

	if err := load(cfg.Documentation, &a.Catalogs.Documentation); err != nil {
		return err
	}
	if err := load(cfg.SelfRating, &a.Catalogs.SelfRating); err != nil {
		return err
	}
	if err := load(cfg.Tracker, &a.Tracker); err != nil {
		return err
	}

	if cfg.Risks != "" {
		risks, err := catalog.LoadRisks(cfg.Risks)
		if err != nil {
			a.logger().Error("risk catalog rejected", zap.String("path", cfg.Risks), zap.Error(err))
			return err
		}
		a.logger().Info("risk catalog loaded", zap.String("path", cfg.Risks), zap.Int("risks", len(risks)))
		a.Catalogs.Risks = risks
	}
	return nil
}

// NewRootCmd creates the top-level "epeat" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "epeat",
		Short: "EPEAT certification readiness self-assessment",
		Long: "Assess readiness for EPEAT certification: score documentation and\n" +
			"implementation, get a GO / DEFER / NO-GO recommendation, and track\n" +
			"submission progress.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Annotations:   map[string]string{interactiveAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app, startHome)
		},
	}

	flags := config.RegisterFlags(root.PersistentFlags())
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := app.configure(cmd, flags); err != nil {
			return err
		}
		app.logger().Debug("command started", zap.String("command", cmd.CommandPath()), zap.Strings("args", args))
		return nil
	}
	root.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		_ = app.logger().Sync()
	}

	root.AddCommand(
		newTUICmd(app),
		newAssessCmd(app),
		newTrackCmd(app),
		newScoreCmd(app),
		newCatalogCmd(app),
		newGuideCmd(app),
	)

	return root
}
