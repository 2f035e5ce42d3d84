package cli

import "github.com/alexanderramin/epeat/internal/assessment"

// SharedState holds context shared across all views via pointer.
// Sessions live for the whole run, so leaving a flow and coming back
// keeps its answers.
type SharedState struct {
	App *App

	Session *assessment.Session
	Tracker *assessment.TrackerSession

	// Terminal dimensions
	Width  int
	Height int
}

func newSharedState(app *App) *SharedState {
	obs := app.observer()
	return &SharedState{
		App:     app,
		Session: assessment.NewSession(app.Catalogs, assessment.WithObserver(obs)),
		Tracker: assessment.NewTrackerSession(app.Tracker, assessment.WithObserver(obs)),
	}
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
