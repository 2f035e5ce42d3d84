package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/epeat/internal/cli/formatter"
)

// menuAction represents a single option in the home menu.
type menuAction struct {
	label string
	desc  string
	key   string // single-key shortcut
	fn    func() tea.Cmd
}

// homeView is the entry menu leading to both flows.
type homeView struct {
	state   *SharedState
	cursor  int
	actions []menuAction
}

func newHomeView(state *SharedState) *homeView {
	v := &homeView{state: state}
	v.actions = []menuAction{
		{
			label: "Self-Assessment Tool", key: "a",
			desc: "Score documentation and implementation, get a GO / DEFER / NO-GO recommendation",
			fn:   func() tea.Cmd { return pushView(newAssessmentView(v.state)) },
		},
		{
			label: "Assessment Tracker", key: "t",
			desc: "Track required submission items and readiness",
			fn:   func() tea.Cmd { return pushView(newTrackerView(v.state)) },
		},
		{
			label: "Rating Guide", key: "g",
			desc: "How to rate implementation and document status",
			fn:   func() tea.Cmd { return showOutput(guideText()) },
		},
		{
			label: "Quit", key: "q",
			fn: func() tea.Cmd { return func() tea.Msg { return quitMsg{} } },
		},
	}
	return v
}

func (v *homeView) ID() ViewID    { return ViewHome }
func (v *homeView) Title() string { return "" }

func (v *homeView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "move")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	}
}

func (v *homeView) Init() tea.Cmd { return nil }

func (v *homeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch keyMsg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.actions)-1 {
			v.cursor++
		}
	case "enter":
		return v, v.actions[v.cursor].fn()
	default:
		for i, a := range v.actions {
			if keyMsg.String() == a.key {
				v.cursor = i
				return v, a.fn()
			}
		}
	}
	return v, nil
}

func (v *homeView) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + formatter.StyleHeader.Render("EPEAT CERTIFICATION READINESS") + "\n\n")

	for i, a := range v.actions {
		cursor := "  "
		style := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			style = formatter.StyleBold
		}
		fmt.Fprintf(&b, "%s%s  %s\n", cursor, style.Render(a.label), formatter.Dim("["+a.key+"]"))
		if a.desc != "" {
			b.WriteString("    " + formatter.Dim(a.desc) + "\n")
		}
	}

	res := v.state.Session.Result()
	progress := v.state.Tracker.Result()
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s   %s %s\n",
		formatter.Dim("Assessment:"), formatter.DecisionIndicator(res.Decision),
		formatter.Dim("Tracker:"), formatter.ReadinessIndicator(progress.Readiness))

	return b.String()
}
