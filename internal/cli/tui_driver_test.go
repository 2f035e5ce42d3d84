package cli

import (
	"testing"

	"github.com/alexanderramin/epeat/internal/assessment"
	"github.com/alexanderramin/epeat/internal/teatest"
)

// TestDriver wraps teatest.Driver with inspection methods for appModel
// internals (view stack, shared sessions) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App starting at the
// home menu, sets the terminal size and drains Init().
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()
	return newTestDriverAt(t, app, startHome)
}

func newTestDriverAt(t *testing.T, app *App, start startView) *TestDriver {
	t.Helper()

	m := newAppModel(app, start)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── High-level helpers ───────────────────────────────────────────────────────

// OpenAssessment opens the self-assessment tool from the home menu.
func (d *TestDriver) OpenAssessment() {
	d.T.Helper()
	d.PressKey('a')
}

// OpenTracker opens the assessment tracker from the home menu.
func (d *TestDriver) OpenTracker() {
	d.T.Helper()
	d.PressKey('t')
}

// ── Inspection ───────────────────────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ActiveViewTitle returns the Title() of the top view on the stack.
func (d *TestDriver) ActiveViewTitle() string {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ""
	}
	return v.Title()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Assessment returns the current self-assessment state.
func (d *TestDriver) Assessment() assessment.State {
	return d.State().Session.State()
}

// Tracker returns the current tracker state.
func (d *TestDriver) Tracker() assessment.TrackerState {
	return d.State().Tracker.State()
}

// IsQuitting reports whether the app has signaled a quit, either through
// the model (q, ctrl+c, quitMsg) or a drained tea.QuitMsg.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// Flash returns the status bar message.
func (d *TestDriver) Flash() string {
	return d.appModel().flash
}

// LastOutput returns the text shown in the output pane.
func (d *TestDriver) LastOutput() string {
	return d.appModel().lastOutput
}
