package assessment

import (
	"fmt"

	"github.com/alexanderramin/epeat/internal/domain"
)

// Event is a single user action in the self-assessment tool.
type Event interface {
	Name() string
	apply(c Catalogs, s State) (State, error)
}

// SetDocumentStatus records the documentation status of an item.
type SetDocumentStatus struct {
	Key    domain.ItemKey
	Status domain.Status
}

// SetRating records the self-rating of a practice area.
type SetRating struct {
	Key    domain.ItemKey
	Rating domain.Rating
}

// ToggleRisk adds or removes a critical risk.
type ToggleRisk struct {
	ID string
}

// SelectTab switches the visible tab.
type SelectTab struct {
	Tab Tab
}

func (SetDocumentStatus) Name() string { return "set_document_status" }
func (SetRating) Name() string         { return "set_rating" }
func (ToggleRisk) Name() string        { return "toggle_risk" }
func (SelectTab) Name() string         { return "select_tab" }

func (e SetDocumentStatus) apply(c Catalogs, s State) (State, error) {
	if !c.Documentation.Contains(e.Key) {
		return s, unknownItem(e.Key)
	}
	if !e.Status.Valid() {
		return s, fmt.Errorf("%w: status %q", ErrInvalidValue, e.Status)
	}
	s.Documents = s.Documents.With(e.Key, e.Status)
	return s, nil
}

func (e SetRating) apply(c Catalogs, s State) (State, error) {
	if !c.SelfRating.Contains(e.Key) {
		return s, unknownItem(e.Key)
	}
	if !e.Rating.Valid() {
		return s, fmt.Errorf("%w: rating %d", ErrInvalidValue, e.Rating)
	}
	s.Ratings = s.Ratings.With(e.Key, e.Rating)
	return s, nil
}

func (e ToggleRisk) apply(c Catalogs, s State) (State, error) {
	if !c.hasRisk(e.ID) {
		return s, fmt.Errorf("%w: %q", ErrUnknownRisk, e.ID)
	}
	s.Risks = s.Risks.Toggle(e.ID)
	return s, nil
}

func (e SelectTab) apply(_ Catalogs, s State) (State, error) {
	if !e.Tab.Valid() {
		return s, fmt.Errorf("%w: %q", ErrUnknownTab, e.Tab)
	}
	s.Tab = e.Tab
	return s, nil
}

// Reduce applies e to s and returns the next state. A rejected event
// returns s unchanged along with the error.
func Reduce(c Catalogs, s State, e Event) (State, error) {
	next, err := e.apply(c, s)
	if err != nil {
		return s, err
	}
	return next, nil
}

// TrackerEvent is a single user action in the assessment tracker.
type TrackerEvent interface {
	Name() string
	applyTracker(c domain.Catalog, s TrackerState) (TrackerState, error)
}

// SetTrackerStatus records the status of a tracker item.
type SetTrackerStatus struct {
	Key    domain.ItemKey
	Status domain.Status
}

// ToggleSection expands a section, collapsing any other, or collapses
// it when it is already expanded.
type ToggleSection struct {
	Key string
}

func (SetTrackerStatus) Name() string { return "set_tracker_status" }
func (ToggleSection) Name() string    { return "toggle_section" }

func (e SetTrackerStatus) applyTracker(c domain.Catalog, s TrackerState) (TrackerState, error) {
	if !c.Contains(e.Key) {
		return s, unknownItem(e.Key)
	}
	if !e.Status.IsTracked() {
		return s, fmt.Errorf("%w: status %q", ErrInvalidValue, e.Status)
	}
	s.Responses = s.Responses.With(e.Key, e.Status)
	return s, nil
}

func (e ToggleSection) applyTracker(c domain.Catalog, s TrackerState) (TrackerState, error) {
	if _, ok := c.Section(e.Key); !ok {
		return s, fmt.Errorf("%w: %q", ErrUnknownSection, e.Key)
	}
	if s.Expanded == e.Key {
		s.Expanded = ""
	} else {
		s.Expanded = e.Key
	}
	return s, nil
}

// ReduceTracker applies e to s and returns the next tracker state.
func ReduceTracker(c domain.Catalog, s TrackerState, e TrackerEvent) (TrackerState, error) {
	next, err := e.applyTracker(c, s)
	if err != nil {
		return s, err
	}
	return next, nil
}
