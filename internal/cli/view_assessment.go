package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/epeat/internal/assessment"
	"github.com/alexanderramin/epeat/internal/cli/formatter"
	"github.com/alexanderramin/epeat/internal/domain"
)

type assessmentKeyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Up      key.Binding
	Down    key.Binding
	Choose  key.Binding
	Toggle  key.Binding
}

var assessmentKeys = assessmentKeyMap{
	NextTab: key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab", "next tab")),
	PrevTab: key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab", "prev tab")),
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
	Choose:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
	Toggle:  key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "toggle")),
}

// statusKeys maps the documentation shortcuts to statuses.
var statusKeys = map[string]domain.Status{
	"c": domain.StatusComplete,
	"p": domain.StatusPartial,
	"n": domain.StatusNotStarted,
	"x": domain.StatusNotApplicable,
}

// itemRow is one selectable checklist item.
type itemRow struct {
	section domain.Section
	item    domain.Item
	key     domain.ItemKey
}

func catalogRows(c domain.Catalog) []itemRow {
	rows := make([]itemRow, 0, c.ItemCount())
	for _, s := range c.Sections {
		for i, it := range s.Items {
			rows = append(rows, itemRow{section: s, item: it, key: c.KeyOf(s, i)})
		}
	}
	return rows
}

// assessmentView is the tabbed self-assessment tool. All answers live
// in the shared session; the view only tracks cursors.
type assessmentView struct {
	state   *SharedState
	cursors map[assessment.Tab]int
}

func newAssessmentView(state *SharedState) *assessmentView {
	return &assessmentView{state: state, cursors: make(map[assessment.Tab]int)}
}

func (v *assessmentView) ID() ViewID    { return ViewAssessment }
func (v *assessmentView) Title() string { return "Self-Assessment" }
func (v *assessmentView) Init() tea.Cmd { return nil }

func (v *assessmentView) ShortHelp() []key.Binding {
	hints := []key.Binding{assessmentKeys.NextTab}
	switch v.tab() {
	case assessment.TabDocumentation:
		hints = append(hints,
			key.NewBinding(key.WithKeys("c", "p", "n", "x"), key.WithHelp("c/p/n/x", "status")),
			assessmentKeys.Choose)
	case assessment.TabSelfRating:
		hints = append(hints,
			key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5"), key.WithHelp("0-5", "rate")),
			assessmentKeys.Choose)
	case assessment.TabRisks:
		hints = append(hints, assessmentKeys.Toggle)
	}
	return hints
}

func (v *assessmentView) tab() assessment.Tab {
	return v.state.Session.State().Tab
}

func (v *assessmentView) catalogs() assessment.Catalogs {
	return v.state.Session.Catalogs()
}

func (v *assessmentView) rowCount() int {
	switch v.tab() {
	case assessment.TabDocumentation:
		return v.catalogs().Documentation.ItemCount()
	case assessment.TabSelfRating:
		return v.catalogs().SelfRating.ItemCount()
	case assessment.TabRisks:
		return len(v.catalogs().Risks)
	}
	return 0
}

func (v *assessmentView) cursor() int {
	return min(v.cursors[v.tab()], max(v.rowCount()-1, 0))
}

func (v *assessmentView) move(delta int) {
	n := v.rowCount()
	if n == 0 {
		return
	}
	v.cursors[v.tab()] = min(max(v.cursor()+delta, 0), n-1)
}

func (v *assessmentView) dispatch(e assessment.Event) tea.Cmd {
	if err := v.state.Session.Dispatch(context.Background(), e); err != nil {
		return flash(formatter.StyleRed.Render(err.Error()))
	}
	return nil
}

func (v *assessmentView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch {
	case key.Matches(keyMsg, assessmentKeys.NextTab):
		return v, v.dispatch(assessment.SelectTab{Tab: v.tab().Next()})
	case key.Matches(keyMsg, assessmentKeys.PrevTab):
		return v, v.dispatch(assessment.SelectTab{Tab: v.tab().Prev()})
	case key.Matches(keyMsg, assessmentKeys.Up):
		v.move(-1)
		return v, nil
	case key.Matches(keyMsg, assessmentKeys.Down):
		v.move(1)
		return v, nil
	}

	switch v.tab() {
	case assessment.TabDocumentation:
		return v, v.updateDocumentation(keyMsg)
	case assessment.TabSelfRating:
		return v, v.updateSelfRating(keyMsg)
	case assessment.TabRisks:
		return v, v.updateRisks(keyMsg)
	}
	return v, v.selectTabByNumber(keyMsg)
}

// selectTabByNumber handles 1–4. The self-rating tab uses digits for
// ratings instead.
func (v *assessmentView) selectTabByNumber(msg tea.KeyMsg) tea.Cmd {
	s := msg.String()
	if len(s) != 1 || s[0] < '1' || s[0] > '4' {
		return nil
	}
	return v.dispatch(assessment.SelectTab{Tab: assessment.Tabs()[s[0]-'1']})
}

func (v *assessmentView) updateDocumentation(msg tea.KeyMsg) tea.Cmd {
	rows := catalogRows(v.catalogs().Documentation)
	if len(rows) == 0 {
		return v.selectTabByNumber(msg)
	}
	row := rows[v.cursor()]

	if st, ok := statusKeys[msg.String()]; ok {
		cmd := v.dispatch(assessment.SetDocumentStatus{Key: row.key, Status: st})
		v.move(1)
		return cmd
	}
	if key.Matches(msg, assessmentKeys.Choose) {
		current, _ := v.state.Session.State().Documents.Get(row.key)
		choice := &current
		form := wizardSelectStatus(row.item, domain.AllStatuses(), domain.Status.Label, choice)
		return pushView(newWizardView("Status", form, func() tea.Cmd {
			return v.dispatch(assessment.SetDocumentStatus{Key: row.key, Status: *choice})
		}))
	}
	return v.selectTabByNumber(msg)
}

func (v *assessmentView) updateSelfRating(msg tea.KeyMsg) tea.Cmd {
	rows := catalogRows(v.catalogs().SelfRating)
	if len(rows) == 0 {
		return nil
	}
	row := rows[v.cursor()]

	if r, err := domain.ParseRating(msg.String()); err == nil && len(msg.Runes) == 1 {
		cmd := v.dispatch(assessment.SetRating{Key: row.key, Rating: r})
		v.move(1)
		return cmd
	}
	if key.Matches(msg, assessmentKeys.Choose) {
		current, _ := v.state.Session.State().Ratings.Get(row.key)
		choice := &current
		form := wizardSelectRating(row.item, choice)
		return pushView(newWizardView("Rating", form, func() tea.Cmd {
			return v.dispatch(assessment.SetRating{Key: row.key, Rating: *choice})
		}))
	}
	return nil
}

func (v *assessmentView) updateRisks(msg tea.KeyMsg) tea.Cmd {
	risks := v.catalogs().Risks
	if len(risks) > 0 && key.Matches(msg, assessmentKeys.Toggle) {
		return v.dispatch(assessment.ToggleRisk{ID: risks[v.cursor()].ID})
	}
	return v.selectTabByNumber(msg)
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *assessmentView) View() string {
	var b strings.Builder
	b.WriteString(v.renderTabs())
	b.WriteString("\n\n")

	// Tab bar and footer take four lines.
	height := v.state.ContentHeight() - 4

	switch v.tab() {
	case assessment.TabDocumentation:
		lines, focus, footer := v.renderDocumentation()
		b.WriteString(strings.Join(windowLines(lines, focus, height), "\n"))
		b.WriteString("\n\n" + footer)
	case assessment.TabSelfRating:
		b.WriteString(ratingScale() + "\n\n")
		lines, focus, footer := v.renderSelfRating()
		b.WriteString(strings.Join(windowLines(lines, focus, height-2), "\n"))
		b.WriteString("\n\n" + footer)
	case assessment.TabRisks:
		b.WriteString(v.renderRisks())
	case assessment.TabResults:
		b.WriteString(formatter.FormatAssessment(v.state.Session.Result()))
	}
	b.WriteString("\n")
	return b.String()
}

func (v *assessmentView) renderTabs() string {
	active := v.tab()
	parts := make([]string, 0, len(assessment.Tabs()))
	for i, t := range assessment.Tabs() {
		label := fmt.Sprintf(" %d %s ", i+1, t.Title())
		if t == active {
			parts = append(parts, formatter.StyleHeader.Render("["+strings.TrimSpace(label)+"]"))
		} else {
			parts = append(parts, formatter.Dim(label))
		}
	}
	return "  " + strings.Join(parts, " ")
}

func (v *assessmentView) renderItems(rows []itemRow, badge func(itemRow) string) ([]string, int) {
	nameWidth := 0
	for _, r := range rows {
		nameWidth = max(nameWidth, lipgloss.Width(r.item.Name))
	}

	var lines []string
	focus := 0
	cursor := v.cursor()
	for i, r := range rows {
		if i == 0 || r.section.Key != rows[i-1].section.Key {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, "  "+formatter.Bold(r.section.Title))
		}
		marker, name := "    ", formatter.StyleFg.Render(r.item.Name)
		if i == cursor {
			marker = "  " + formatter.StyleGreen.Render("▸ ")
			name = formatter.StyleBold.Render(r.item.Name)
			focus = len(lines)
		}
		pad := strings.Repeat(" ", nameWidth-lipgloss.Width(r.item.Name))
		lines = append(lines, marker+name+pad+"  "+badge(r))
	}
	return lines, focus
}

func (v *assessmentView) renderDocumentation() ([]string, int, string) {
	st := v.state.Session.State()
	rows := catalogRows(v.catalogs().Documentation)
	lines, focus := v.renderItems(rows, func(r itemRow) string {
		s, _ := st.Documents.Get(r.key)
		return formatter.StatusPill(s)
	})

	footer := formatter.Dim(fmt.Sprintf("  %d of %d documents answered", st.Documents.Len(), len(rows)))
	if len(rows) > 0 {
		footer = "  " + formatter.Dim(rows[v.cursor()].item.Description) + "\n" + footer
	}
	return lines, focus, footer
}

func (v *assessmentView) renderSelfRating() ([]string, int, string) {
	st := v.state.Session.State()
	rows := catalogRows(v.catalogs().SelfRating)
	lines, focus := v.renderItems(rows, func(r itemRow) string {
		rating, ok := st.Ratings.Get(r.key)
		if !ok {
			return formatter.Dim("· Unrated")
		}
		return formatter.RatingBadge(rating)
	})

	footer := formatter.Dim(fmt.Sprintf("  %d of %d practice areas rated", st.Ratings.Len(), len(rows)))
	if len(rows) > 0 {
		it := rows[v.cursor()].item
		text := it.Description
		if it.Example != "" {
			text += ". Example: " + it.Example
		}
		footer = "  " + formatter.Dim(text) + "\n" + footer
	}
	return lines, focus, footer
}

func (v *assessmentView) renderRisks() string {
	st := v.state.Session.State()
	var b strings.Builder
	b.WriteString("  " + formatter.Bold("Select any critical risks that could affect certification") + "\n\n")
	cursor := v.cursor()
	for i, r := range v.catalogs().Risks {
		marker := "    "
		if i == cursor {
			marker = "  " + formatter.StyleGreen.Render("▸ ")
		}
		box := formatter.Dim("[ ]")
		label := formatter.StyleFg.Render(r.Label)
		if st.Risks.Has(r.ID) {
			box = formatter.StyleRed.Render("[x]")
			label = formatter.StyleRed.Render(r.Label)
		}
		b.WriteString(marker + box + " " + label + "\n")
	}
	fmt.Fprintf(&b, "\n  %s\n", formatter.Dim(fmt.Sprintf("%d critical risk(s) selected", st.Risks.Len())))
	return b.String()
}

// ratingScale summarizes the rating guide on one line.
func ratingScale() string {
	parts := make([]string, 0, len(domain.RatingLevels()))
	for _, l := range domain.RatingLevels() {
		parts = append(parts, fmt.Sprintf("%d %s", l.Rating, l.Title))
	}
	return "  " + formatter.Dim(strings.Join(parts, " · "))
}

// windowLines returns at most height lines of lines, scrolled so that
// focus stays visible.
func windowLines(lines []string, focus, height int) []string {
	if height < 1 || len(lines) <= height {
		return lines
	}
	start := max(0, focus-height/2)
	start = min(start, len(lines)-height)
	return lines[start : start+height]
}
