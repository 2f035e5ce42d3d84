// Package answers loads answers files: pre-filled responses used to score
// an assessment without the interactive UI.
package answers

import (
	"context"
	"errors"
	"maps"
	"os"
	"slices"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/epeat/internal/assessment"
	"github.com/alexanderramin/epeat/internal/domain"
)

// File is the on-disk form of an answers file.
type File struct {
	Documentation map[string]string `yaml:"documentation,omitempty"`
	Ratings       map[string]int    `yaml:"ratings,omitempty"`
	Risks         []string          `yaml:"risks,omitempty"`
	Tracker       map[string]string `yaml:"tracker,omitempty"`
}

// HasAssessment reports whether f answers any self-assessment question.
func (f *File) HasAssessment() bool {
	return len(f.Documentation) > 0 || len(f.Ratings) > 0 || len(f.Risks) > 0
}

// HasTracker reports whether f carries tracker responses.
func (f *File) HasTracker() bool {
	return len(f.Tracker) > 0
}

// Load reads and parses an answers file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read answers file", goerr.V("path", path))
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, goerr.Wrap(err, "failed to parse answers file", goerr.V("path", path))
	}
	return &f, nil
}

// Apply replays every answer in f through the sessions' reducers, in
// sorted key order. Either session may be nil to skip that flow. All
// rejected answers are reported together; accepted ones stay applied.
func Apply(ctx context.Context, f *File, s *assessment.Session, t *assessment.TrackerSession) error {
	var errs []error

	if s != nil {
		for _, k := range slices.Sorted(maps.Keys(f.Documentation)) {
			ev := assessment.SetDocumentStatus{Key: domain.ItemKey(k), Status: domain.Status(f.Documentation[k])}
			if err := s.Dispatch(ctx, ev); err != nil {
				errs = append(errs, goerr.Wrap(err, "invalid documentation answer",
					goerr.V("key", k), goerr.V("status", f.Documentation[k])))
			}
		}
		for _, k := range slices.Sorted(maps.Keys(f.Ratings)) {
			ev := assessment.SetRating{Key: domain.ItemKey(k), Rating: domain.Rating(f.Ratings[k])}
			if err := s.Dispatch(ctx, ev); err != nil {
				errs = append(errs, goerr.Wrap(err, "invalid rating answer",
					goerr.V("key", k), goerr.V("rating", f.Ratings[k])))
			}
		}
		for _, id := range slices.Sorted(slices.Values(f.Risks)) {
			if s.State().Risks.Has(id) {
				continue
			}
			if err := s.Dispatch(ctx, assessment.ToggleRisk{ID: id}); err != nil {
				errs = append(errs, goerr.Wrap(err, "invalid risk answer", goerr.V("id", id)))
			}
		}
	}

	if t != nil {
		for _, k := range slices.Sorted(maps.Keys(f.Tracker)) {
			ev := assessment.SetTrackerStatus{Key: domain.ItemKey(k), Status: domain.Status(f.Tracker[k])}
			if err := t.Dispatch(ctx, ev); err != nil {
				errs = append(errs, goerr.Wrap(err, "invalid tracker answer",
					goerr.V("key", k), goerr.V("status", f.Tracker[k])))
			}
		}
	}

	return errors.Join(errs...)
}
