// Package contract defines the results handed from the assessment engines
// to the presentation layer.
package contract

import "github.com/alexanderramin/epeat/internal/domain"

// Scores are the component and overall readiness scores on a 0–100 scale.
type Scores struct {
	Documentation float64 `json:"documentation"`
	Rating        float64 `json:"rating"`
	Overall       float64 `json:"overall"`
}

// Gap names a GO condition the assessment does not meet.
type Gap struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RiskRef is a selected critical risk.
type RiskRef struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Answered counts how many items of each kind have a response.
type Answered struct {
	Documents      int `json:"documents"`
	DocumentsTotal int `json:"documents_total"`
	Ratings        int `json:"ratings"`
	RatingsTotal   int `json:"ratings_total"`
}

// AssessmentResult is the derived outcome of a self-assessment session.
type AssessmentResult struct {
	SessionID   string          `json:"session_id"`
	Scores      Scores          `json:"scores"`
	Decision    domain.Decision `json:"decision"`
	Explanation string          `json:"explanation"`
	Gaps        []Gap           `json:"gaps,omitempty"`
	Risks       []RiskRef       `json:"risks"`
	Answered    Answered        `json:"answered"`
}

// RiskCount returns the number of selected critical risks.
func (r AssessmentResult) RiskCount() int { return len(r.Risks) }

// SectionProgress is the completion count of one tracker section.
type SectionProgress struct {
	Key       string `json:"key"`
	Title     string `json:"title"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

// TrackerResult is the derived outcome of an assessment tracker session.
type TrackerResult struct {
	SessionID     string            `json:"session_id"`
	TotalRequired int               `json:"total_required"`
	Completed     int               `json:"completed"`
	Percent       int               `json:"percent"`
	Readiness     domain.Readiness  `json:"readiness"`
	ReadinessText string            `json:"readiness_text"`
	Sections      []SectionProgress `json:"sections"`
}

// Report bundles both flows for scripted scoring.
type Report struct {
	Assessment *AssessmentResult `json:"assessment,omitempty"`
	Tracker    *TrackerResult    `json:"tracker,omitempty"`
}
