package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/epeat/internal/assessment"
	"github.com/alexanderramin/epeat/internal/cli/formatter"
	"github.com/alexanderramin/epeat/internal/domain"
)

var trackerChooseKey = key.NewBinding(key.WithKeys("enter", " ", "space"))

var trackerStatusKeys = map[string]domain.Status{
	"c": domain.StatusComplete,
	"p": domain.StatusPartial,
	"n": domain.StatusNotStarted,
}

// trackerRow is either a section header or, when item is set, an item
// inside the expanded section.
type trackerRow struct {
	section int
	item    int // -1 for the section header
}

func (r trackerRow) isSection() bool { return r.item < 0 }

// trackerView is the collapsible assessment tracker.
type trackerView struct {
	state  *SharedState
	cursor int
}

func newTrackerView(state *SharedState) *trackerView {
	return &trackerView{state: state}
}

func (v *trackerView) ID() ViewID    { return ViewTracker }
func (v *trackerView) Title() string { return "Tracker" }
func (v *trackerView) Init() tea.Cmd { return nil }

func (v *trackerView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "move")),
		key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "expand/choose")),
		key.NewBinding(key.WithKeys("c", "p", "n"), key.WithHelp("c/p/n", "status")),
	}
}

func (v *trackerView) catalog() domain.Catalog {
	return v.state.Tracker.Catalog()
}

// rows flattens the catalog into sections plus the items of the
// expanded section.
func (v *trackerView) rows() []trackerRow {
	expanded := v.state.Tracker.State().Expanded
	var rows []trackerRow
	for si, s := range v.catalog().Sections {
		rows = append(rows, trackerRow{section: si, item: -1})
		if s.Key != expanded {
			continue
		}
		for ii := range s.Items {
			rows = append(rows, trackerRow{section: si, item: ii})
		}
	}
	return rows
}

func (v *trackerView) dispatch(e assessment.TrackerEvent) tea.Cmd {
	if err := v.state.Tracker.Dispatch(context.Background(), e); err != nil {
		return flash(formatter.StyleRed.Render(err.Error()))
	}
	return nil
}

func (v *trackerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	rows := v.rows()
	if len(rows) == 0 {
		return v, nil
	}
	v.cursor = min(v.cursor, len(rows)-1)
	row := rows[v.cursor]
	section := v.catalog().Sections[row.section]

	switch keyMsg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
		return v, nil
	case "down", "j":
		if v.cursor < len(rows)-1 {
			v.cursor++
		}
		return v, nil
	}

	if row.isSection() {
		if key.Matches(keyMsg, trackerChooseKey) {
			cmd := v.dispatch(assessment.ToggleSection{Key: section.Key})
			v.cursor = v.sectionRow(row.section)
			return v, cmd
		}
		return v, nil
	}

	itemKey := v.catalog().KeyOf(section, row.item)
	if st, ok := trackerStatusKeys[keyMsg.String()]; ok {
		return v, v.dispatch(assessment.SetTrackerStatus{Key: itemKey, Status: st})
	}
	if key.Matches(keyMsg, trackerChooseKey) {
		current, _ := v.state.Tracker.State().Responses.Get(itemKey)
		choice := &current
		form := wizardSelectStatus(section.Items[row.item], domain.TrackerStatuses(), domain.Status.TrackerLabel, choice)
		return v, pushView(newWizardView("Status", form, func() tea.Cmd {
			return v.dispatch(assessment.SetTrackerStatus{Key: itemKey, Status: *choice})
		}))
	}
	return v, nil
}

// sectionRow returns the row index of section si after a toggle.
func (v *trackerView) sectionRow(si int) int {
	for i, r := range v.rows() {
		if r.section == si && r.isSection() {
			return i
		}
	}
	return 0
}

func (v *trackerView) View() string {
	res := v.state.Tracker.Result()
	st := v.state.Tracker.State()
	cat := v.catalog()
	rows := v.rows()
	cursor := min(v.cursor, max(len(rows)-1, 0))

	var b strings.Builder
	b.WriteString("\n")
	for _, line := range strings.Split(strings.TrimRight(formatter.FormatTrackerHeader(res), "\n"), "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n")

	lines := make([]string, 0, len(rows))
	var footer string
	for i, r := range rows {
		marker := "  "
		if i == cursor {
			marker = formatter.StyleGreen.Render("▸ ")
		}
		section := cat.Sections[r.section]

		if r.isSection() {
			arrow := "▸"
			if section.Key == st.Expanded {
				arrow = "▾"
			}
			title := formatter.StyleBold.Render(section.Title)
			count := ""
			if r.section < len(res.Sections) {
				count = " " + formatter.SectionCount(res.Sections[r.section])
			}
			lines = append(lines, "  "+marker+arrow+" "+title+count)
			if i == cursor && section.Description != "" {
				footer = section.Description
			}
			continue
		}

		it := section.Items[r.item]
		status, _ := st.Responses.Get(cat.KeyOf(section, r.item))
		name := formatter.StyleFg.Render(it.Name)
		if it.Required {
			name += " " + formatter.RequiredMarker()
		}
		lines = append(lines, "      "+marker+name+"  "+formatter.TrackerStatusPill(status))
		if i == cursor {
			footer = it.Description
		}
	}

	// Header and footer take seven lines.
	focus := 0
	for i := range rows {
		if i == cursor {
			focus = i
		}
	}
	b.WriteString(strings.Join(windowLines(lines, focus, v.state.ContentHeight()-7), "\n"))
	b.WriteString("\n")
	if footer != "" {
		b.WriteString("\n  " + formatter.Dim(footer) + "\n")
	}
	return b.String()
}
