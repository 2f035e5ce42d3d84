package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/epeat/internal/domain"
	"github.com/alexanderramin/epeat/internal/testutil"
)

func TestReduce_SetDocumentStatusOverwrites(t *testing.T) {
	c := smallCatalogs()
	s := NewState()

	s, err := Reduce(c, s, SetDocumentStatus{Key: "docs-0", Status: domain.StatusPartial})
	require.NoError(t, err)
	s, err = Reduce(c, s, SetDocumentStatus{Key: "docs-0", Status: domain.StatusComplete})
	require.NoError(t, err)

	got, ok := s.Documents.Get("docs-0")
	require.True(t, ok)
	assert.Equal(t, domain.StatusComplete, got)
	assert.Equal(t, 1, s.Documents.Len())
}

func TestReduce_SetRating(t *testing.T) {
	c := smallCatalogs()
	s, err := Reduce(c, NewState(), SetRating{Key: "areas-1", Rating: 4})
	require.NoError(t, err)

	got, ok := s.Ratings.Get("areas-1")
	require.True(t, ok)
	assert.Equal(t, domain.Rating(4), got)
}

func TestReduce_ToggleRiskRoundTrip(t *testing.T) {
	c := smallCatalogs()
	s := NewState()

	s, err := Reduce(c, s, ToggleRisk{ID: "gaps"})
	require.NoError(t, err)
	assert.True(t, s.Risks.Has("gaps"))

	s, err = Reduce(c, s, ToggleRisk{ID: "gaps"})
	require.NoError(t, err)
	assert.False(t, s.Risks.Has("gaps"))
	assert.Zero(t, s.Risks.Len())
}

func TestReduce_SelectTab(t *testing.T) {
	s, err := Reduce(smallCatalogs(), NewState(), SelectTab{Tab: TabResults})
	require.NoError(t, err)
	assert.Equal(t, TabResults, s.Tab)
}

func TestReduce_RejectsInvalidEvents(t *testing.T) {
	c := smallCatalogs()
	base, err := Reduce(c, NewState(), SetDocumentStatus{Key: "docs-1", Status: domain.StatusPartial})
	require.NoError(t, err)

	tests := []struct {
		name    string
		event   Event
		wantErr error
	}{
		{"unknown document", SetDocumentStatus{Key: "docs-9", Status: domain.StatusComplete}, ErrUnknownItem},
		{"rating key on documents", SetDocumentStatus{Key: "areas-0", Status: domain.StatusComplete}, ErrUnknownItem},
		{"bad status", SetDocumentStatus{Key: "docs-0", Status: "done"}, ErrInvalidValue},
		{"unknown rating item", SetRating{Key: "docs-0", Rating: 3}, ErrUnknownItem},
		{"rating too high", SetRating{Key: "areas-0", Rating: 6}, ErrInvalidValue},
		{"rating negative", SetRating{Key: "areas-0", Rating: -1}, ErrInvalidValue},
		{"unknown risk", ToggleRisk{ID: "weather"}, ErrUnknownRisk},
		{"unknown tab", SelectTab{Tab: "summary"}, ErrUnknownTab},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := Reduce(c, base, tt.event)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, base.Tab, next.Tab)
			assert.Equal(t, base.Documents.Map(), next.Documents.Map())
			assert.Equal(t, base.Ratings.Map(), next.Ratings.Map())
			assert.True(t, base.Risks.Equal(next.Risks))
		})
	}
}

func TestReduce_DoesNotMutatePreviousState(t *testing.T) {
	c := smallCatalogs()
	before := NewState()
	after, err := Reduce(c, before, SetDocumentStatus{Key: "docs-0", Status: domain.StatusComplete})
	require.NoError(t, err)

	assert.Zero(t, before.Documents.Len())
	assert.Equal(t, 1, after.Documents.Len())
}

func TestReduceTracker_SetStatus(t *testing.T) {
	c := testutil.SmallTracker()
	s, err := ReduceTracker(c, TrackerState{}, SetTrackerStatus{Key: "register", Status: domain.StatusPartial})
	require.NoError(t, err)

	got, ok := s.Responses.Get("register")
	require.True(t, ok)
	assert.Equal(t, domain.StatusPartial, got)
}

func TestReduceTracker_RejectsNotApplicable(t *testing.T) {
	c := testutil.SmallTracker()
	s, err := ReduceTracker(c, TrackerState{}, SetTrackerStatus{Key: "register", Status: domain.StatusNotApplicable})
	require.ErrorIs(t, err, ErrInvalidValue)
	assert.Zero(t, s.Responses.Len())
}

func TestReduceTracker_RejectsUnknownKeys(t *testing.T) {
	c := testutil.SmallTracker()
	_, err := ReduceTracker(c, TrackerState{}, SetTrackerStatus{Key: "prep-0", Status: domain.StatusComplete})
	require.ErrorIs(t, err, ErrUnknownItem)

	_, err = ReduceTracker(c, TrackerState{}, ToggleSection{Key: "nope"})
	require.ErrorIs(t, err, ErrUnknownSection)
}

func TestReduceTracker_OneSectionExpanded(t *testing.T) {
	c := testutil.SmallTracker()
	s := TrackerState{}

	s, err := ReduceTracker(c, s, ToggleSection{Key: "prep"})
	require.NoError(t, err)
	assert.Equal(t, "prep", s.Expanded)

	s, err = ReduceTracker(c, s, ToggleSection{Key: "submit"})
	require.NoError(t, err)
	assert.Equal(t, "submit", s.Expanded)

	s, err = ReduceTracker(c, s, ToggleSection{Key: "submit"})
	require.NoError(t, err)
	assert.Empty(t, s.Expanded)
}
