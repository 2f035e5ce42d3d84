// Package assessment holds the explicit application state of both
// assessment flows and the pure reducers that advance it.
package assessment

import (
	"errors"
	"fmt"
	"slices"

	"github.com/alexanderramin/epeat/internal/domain"
)

var (
	ErrUnknownItem    = errors.New("unknown checklist item")
	ErrUnknownRisk    = errors.New("unknown risk")
	ErrUnknownSection = errors.New("unknown section")
	ErrUnknownTab     = errors.New("unknown tab")
	ErrInvalidValue   = errors.New("invalid value")
)

// Tab is one page of the self-assessment tool.
type Tab string

const (
	TabDocumentation Tab = "documentation"
	TabSelfRating    Tab = "selfRating"
	TabRisks         Tab = "risks"
	TabResults       Tab = "results"
)

// Tabs returns the tabs in display order.
func Tabs() []Tab {
	return []Tab{TabDocumentation, TabSelfRating, TabRisks, TabResults}
}

// Title returns the tab's display label.
func (t Tab) Title() string {
	switch t {
	case TabDocumentation:
		return "Documentation"
	case TabSelfRating:
		return "Self Rating"
	case TabRisks:
		return "Risks"
	case TabResults:
		return "Results"
	default:
		return string(t)
	}
}

func (t Tab) index() int {
	for i, tab := range Tabs() {
		if tab == t {
			return i
		}
	}
	return -1
}

// Valid reports whether t is a known tab.
func (t Tab) Valid() bool { return t.index() >= 0 }

// Next returns the following tab, wrapping around.
func (t Tab) Next() Tab {
	tabs := Tabs()
	return tabs[(t.index()+1+len(tabs))%len(tabs)]
}

// Prev returns the preceding tab, wrapping around.
func (t Tab) Prev() Tab {
	tabs := Tabs()
	i := t.index()
	if i < 0 {
		return tabs[0]
	}
	return tabs[(i-1+len(tabs))%len(tabs)]
}

// Catalogs is the static reference data one assessment runs against.
type Catalogs struct {
	Documentation domain.Catalog
	SelfRating    domain.Catalog
	Risks         []domain.Risk
}

func (c Catalogs) hasRisk(id string) bool {
	return slices.ContainsFunc(c.Risks, func(r domain.Risk) bool { return r.ID == id })
}

func (c Catalogs) riskLabel(id string) string {
	for _, r := range c.Risks {
		if r.ID == id {
			return r.Label
		}
	}
	return ""
}

// State is the complete state of a self-assessment session.
// Scores and decisions are derived from it, never stored in it.
type State struct {
	Documents domain.Responses[domain.Status]
	Ratings   domain.Responses[domain.Rating]
	Risks     domain.RiskSet
	Tab       Tab
}

// NewState returns the initial state: no answers, documentation tab.
func NewState() State {
	return State{Tab: TabDocumentation}
}

// TrackerState is the complete state of an assessment tracker session.
// At most one section is expanded at a time.
type TrackerState struct {
	Responses domain.Responses[domain.Status]
	Expanded  string
}

func unknownItem(key domain.ItemKey) error {
	return fmt.Errorf("%w: %q", ErrUnknownItem, key)
}
