package domain

import (
	"fmt"
	"strings"
)

// Status is the closed set of values a checklist item response can take.
type Status string

const (
	StatusComplete      Status = "complete"
	StatusPartial       Status = "partial"
	StatusNotStarted    Status = "notStarted"
	StatusNotApplicable Status = "notApplicable"
)

// AllStatuses returns every documentation status in display order.
func AllStatuses() []Status {
	return []Status{StatusComplete, StatusPartial, StatusNotStarted, StatusNotApplicable}
}

// TrackerStatuses returns the subset of statuses the tracker flow accepts.
func TrackerStatuses() []Status {
	return []Status{StatusComplete, StatusPartial, StatusNotStarted}
}

// ParseStatus parses a wire token into a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.TrimSpace(s))
	if !st.Valid() {
		return "", fmt.Errorf("invalid status %q", s)
	}
	return st, nil
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusComplete, StatusPartial, StatusNotStarted, StatusNotApplicable:
		return true
	}
	return false
}

// IsTracked reports whether s is accepted by the tracker flow.
func (s Status) IsTracked() bool {
	return s == StatusComplete || s == StatusPartial || s == StatusNotStarted
}

// Label returns the button label used in the self-assessment tool.
func (s Status) Label() string {
	switch s {
	case StatusComplete:
		return "Complete & Ready"
	case StatusPartial:
		return "Partial"
	case StatusNotStarted:
		return "Not Started"
	case StatusNotApplicable:
		return "Not Applicable"
	default:
		return string(s)
	}
}

// TrackerLabel returns the label used by the tracker flow.
func (s Status) TrackerLabel() string {
	switch s {
	case StatusComplete:
		return "Complete"
	case StatusPartial:
		return "In Progress"
	case StatusNotStarted:
		return "Not Started"
	default:
		return s.Label()
	}
}

// Description returns the hint text shown next to a status option.
func (s Status) Description() string {
	switch s {
	case StatusComplete:
		return "No extra work needed"
	case StatusPartial:
		return "Needs some additional gathering"
	case StatusNotStarted:
		return "Requires full preparation"
	case StatusNotApplicable:
		return "Not required"
	default:
		return ""
	}
}

func (s Status) String() string { return string(s) }

// Decision is the tri-state certification recommendation.
type Decision string

const (
	DecisionGo    Decision = "GO"
	DecisionDefer Decision = "DEFER"
	DecisionNoGo  Decision = "NO-GO"
)

// Readiness is the tracker's submission status.
type Readiness string

const (
	ReadinessReady      Readiness = "ready"
	ReadinessInProgress Readiness = "in_progress"
	ReadinessMoreWork   Readiness = "more_work"
)

// Text returns the human-readable readiness label.
func (r Readiness) Text() string {
	switch r {
	case ReadinessReady:
		return "Ready for Submission"
	case ReadinessInProgress:
		return "In Progress"
	case ReadinessMoreWork:
		return "More Work Needed"
	default:
		return string(r)
	}
}
