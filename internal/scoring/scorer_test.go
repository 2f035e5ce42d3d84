package scoring

import (
	"testing"

	"github.com/alexanderramin/epeat/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func docs(m map[domain.ItemKey]domain.Status) domain.Responses[domain.Status] {
	return domain.NewResponses(m)
}

func ratings(vals ...domain.Rating) domain.Responses[domain.Rating] {
	m := make(map[domain.ItemKey]domain.Rating, len(vals))
	for i, v := range vals {
		m[domain.ComposeKey("r", i)] = v
	}
	return domain.NewResponses(m)
}

func TestComputeScores_Empty(t *testing.T) {
	got := ComputeScores(docs(nil), ratings())
	if diff := cmp.Diff(ScoreResult{}, got); diff != "" {
		t.Errorf("empty input scores mismatch (-want +got):\n%s", diff)
	}
}

func TestDocumentationScore_AllNotApplicableIsZero(t *testing.T) {
	d := docs(map[domain.ItemKey]domain.Status{
		"a-0": domain.StatusNotApplicable,
		"a-1": domain.StatusNotApplicable,
	})
	assert.Equal(t, 0.0, DocumentationScore(d))
}

func TestDocumentationScore_ExcludesNotApplicableFromDenominator(t *testing.T) {
	d := docs(map[domain.ItemKey]domain.Status{
		"a-0": domain.StatusComplete,
		"a-1": domain.StatusPartial,
		"a-2": domain.StatusNotStarted,
		"a-3": domain.StatusComplete,
		"a-4": domain.StatusNotApplicable,
	})
	assert.Equal(t, 50.0, DocumentationScore(d))
}

func TestRatingScore_ScalesAverage(t *testing.T) {
	assert.Equal(t, 0.0, RatingScore(ratings()))
	assert.Equal(t, 100.0, RatingScore(ratings(5, 5, 5)))
	assert.Equal(t, 50.0, RatingScore(ratings(2, 3)))
	assert.InDelta(t, 26.666, RatingScore(ratings(0, 1, 3)), 0.001)
}

func TestComputeScores_AllCompleteAllFive(t *testing.T) {
	d := docs(map[domain.ItemKey]domain.Status{
		"a-0": domain.StatusComplete,
		"a-1": domain.StatusComplete,
		"b-0": domain.StatusNotApplicable,
	})
	got := ComputeScores(d, ratings(5, 5, 5, 5))
	want := ScoreResult{Documentation: 100, Rating: 100, Overall: 100}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("scores mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeScores_OverallIsMean(t *testing.T) {
	d := docs(map[domain.ItemKey]domain.Status{
		"a-0": domain.StatusComplete,
		"a-1": domain.StatusComplete,
		"a-2": domain.StatusComplete,
		"a-3": domain.StatusPartial,
	})
	got := ComputeScores(d, ratings(1, 2))
	assert.Equal(t, 75.0, got.Documentation)
	assert.Equal(t, 30.0, got.Rating)
	assert.Equal(t, 52.5, got.Overall)
	assert.Equal(t, 30.0, got.Min())
}
