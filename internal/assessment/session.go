package assessment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/epeat/internal/contract"
	"github.com/alexanderramin/epeat/internal/domain"
	"github.com/alexanderramin/epeat/internal/scoring"
)

// Flow names used in event records.
const (
	FlowAssessment = "assessment"
	FlowTracker    = "tracker"
)

type sessionOptions struct {
	observer EventObserver
	id       string
	now      func() time.Time
}

// SessionOption customizes a Session or TrackerSession.
type SessionOption func(*sessionOptions)

// WithObserver routes every dispatched event to obs.
func WithObserver(obs EventObserver) SessionOption {
	return func(o *sessionOptions) {
		if obs != nil {
			o.observer = obs
		}
	}
}

// WithID fixes the session id instead of generating one.
func WithID(id string) SessionOption {
	return func(o *sessionOptions) { o.id = id }
}

func buildOptions(opts []SessionOption) sessionOptions {
	o := sessionOptions{observer: NoopObserver{}, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}
	return o
}

// Session is a single-user, in-memory self-assessment. It is not safe
// for concurrent use.
type Session struct {
	opts     sessionOptions
	catalogs Catalogs
	state    State
}

// NewSession starts an empty self-assessment against catalogs.
func NewSession(catalogs Catalogs, opts ...SessionOption) *Session {
	return &Session{
		opts:     buildOptions(opts),
		catalogs: catalogs,
		state:    NewState(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.opts.id }

// Catalogs returns the reference data the session validates against.
func (s *Session) Catalogs() Catalogs { return s.catalogs }

// State returns the current state snapshot.
func (s *Session) State() State { return s.state }

// Dispatch applies e and reports it to the observer.
func (s *Session) Dispatch(ctx context.Context, e Event) error {
	start := s.opts.now()
	next, err := Reduce(s.catalogs, s.state, e)
	s.state = next
	s.opts.observer.ObserveEvent(ctx, newRecord(s.opts.id, FlowAssessment, e, start, s.opts.now(), err))
	return err
}

// Result derives scores and the recommendation from the current state.
func (s *Session) Result() contract.AssessmentResult {
	return BuildAssessmentResult(s.opts.id, s.catalogs, s.state)
}

// BuildAssessmentResult derives the assessment outcome of state.
func BuildAssessmentResult(id string, catalogs Catalogs, state State) contract.AssessmentResult {
	scores := scoring.ComputeScores(state.Documents, state.Ratings)
	decision := scoring.Decide(scores, state.Risks.Len())

	risks := make([]contract.RiskRef, 0, state.Risks.Len())
	for _, id := range state.Risks.IDs() {
		risks = append(risks, contract.RiskRef{ID: id, Label: catalogs.riskLabel(id)})
	}
	gaps := make([]contract.Gap, 0, len(decision.Gaps))
	for _, g := range decision.Gaps {
		gaps = append(gaps, contract.Gap{Code: string(g.Code), Message: g.Message})
	}

	return contract.AssessmentResult{
		SessionID: id,
		Scores: contract.Scores{
			Documentation: scores.Documentation,
			Rating:        scores.Rating,
			Overall:       scores.Overall,
		},
		Decision:    decision.Decision,
		Explanation: decision.Explanation,
		Gaps:        gaps,
		Risks:       risks,
		Answered: contract.Answered{
			Documents:      state.Documents.Len(),
			DocumentsTotal: catalogs.Documentation.ItemCount(),
			Ratings:        state.Ratings.Len(),
			RatingsTotal:   catalogs.SelfRating.ItemCount(),
		},
	}
}

// TrackerSession is a single-user, in-memory assessment tracker.
type TrackerSession struct {
	opts    sessionOptions
	catalog domain.Catalog
	state   TrackerState
}

// NewTrackerSession starts an empty tracker against catalog.
func NewTrackerSession(catalog domain.Catalog, opts ...SessionOption) *TrackerSession {
	return &TrackerSession{opts: buildOptions(opts), catalog: catalog}
}

func (s *TrackerSession) ID() string              { return s.opts.id }
func (s *TrackerSession) Catalog() domain.Catalog { return s.catalog }
func (s *TrackerSession) State() TrackerState     { return s.state }

// Dispatch applies e and reports it to the observer.
func (s *TrackerSession) Dispatch(ctx context.Context, e TrackerEvent) error {
	start := s.opts.now()
	next, err := ReduceTracker(s.catalog, s.state, e)
	s.state = next
	s.opts.observer.ObserveEvent(ctx, newRecord(s.opts.id, FlowTracker, e, start, s.opts.now(), err))
	return err
}

// Result derives progress and readiness from the current state.
func (s *TrackerSession) Result() contract.TrackerResult {
	return BuildTrackerResult(s.opts.id, s.catalog, s.state)
}

// BuildTrackerResult derives the tracker outcome of state.
func BuildTrackerResult(id string, catalog domain.Catalog, state TrackerState) contract.TrackerResult {
	p := scoring.ComputeProgress(catalog, state.Responses)
	sections := make([]contract.SectionProgress, 0, len(p.Sections))
	for _, sp := range p.Sections {
		sections = append(sections, contract.SectionProgress{
			Key:       sp.Key,
			Title:     sp.Title,
			Completed: sp.Completed,
			Total:     sp.Total,
		})
	}
	return contract.TrackerResult{
		SessionID:     id,
		TotalRequired: p.TotalRequired,
		Completed:     p.Completed,
		Percent:       p.Percent,
		Readiness:     p.Readiness,
		ReadinessText: p.Readiness.Text(),
		Sections:      sections,
	}
}
