package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var errNotInteractive = errors.New("the interactive UI needs a terminal; use 'epeat score' for scripted scoring")

// startView selects the first view of a TUI run.
type startView int

const (
	startHome startView = iota
	startAssessment
	startTracker
)

func interactiveCmd(use, short string, start startView, app *App) *cobra.Command {
	return &cobra.Command{
		Use:         use,
		Short:       short,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{interactiveAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app, start)
		},
	}
}

func newTUICmd(app *App) *cobra.Command {
	return interactiveCmd("tui", "Open the interactive UI", startHome, app)
}

func newAssessCmd(app *App) *cobra.Command {
	return interactiveCmd("assess", "Open the self-assessment tool", startAssessment, app)
}

func newTrackCmd(app *App) *cobra.Command {
	return interactiveCmd("track", "Open the assessment tracker", startTracker, app)
}

func runTUI(app *App, start startView) error {
	if !app.interactive() {
		return errNotInteractive
	}
	return app.RunProgram(newAppModel(app, start))
}
