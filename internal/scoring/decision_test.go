package scoring

import (
	"testing"

	"github.com/alexanderramin/epeat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecide_AllCompleteNoRisks_Go(t *testing.T) {
	res := Decide(ScoreResult{Documentation: 100, Rating: 100, Overall: 100}, 0)
	assert.Equal(t, domain.DecisionGo, res.Decision)
	assert.Equal(t, "Ready for EPEAT certification submission", res.Explanation)
	assert.Empty(t, res.Gaps)
}

func TestDecide_HalfwayIsDefer(t *testing.T) {
	// Half of applicable documents complete, ratings averaging 2.5.
	d := docs(map[domain.ItemKey]domain.Status{
		"a-0": domain.StatusComplete,
		"a-1": domain.StatusNotStarted,
		"a-2": domain.StatusNotApplicable,
	})
	scores := ComputeScores(d, ratings(2, 3))
	require.Equal(t, 50.0, scores.Documentation)
	require.Equal(t, 50.0, scores.Rating)
	require.Equal(t, 50.0, scores.Overall)

	res := Decide(scores, 0)
	assert.Equal(t, domain.DecisionDefer, res.Decision)
	assert.Equal(t, "Additional preparation needed before submission", res.Explanation)
	require.Len(t, res.Gaps, 1)
	assert.Equal(t, GapOverallBelowGo, res.Gaps[0].Code)
}

func TestDecide_ZeroScoresTwoRisks_NoGo(t *testing.T) {
	res := Decide(ScoreResult{}, 2)
	assert.Equal(t, domain.DecisionNoGo, res.Decision)
	assert.Equal(t, "Significant improvements required before submission", res.Explanation)

	codes := make([]GapCode, 0, len(res.Gaps))
	for _, g := range res.Gaps {
		codes = append(codes, g.Code)
	}
	assert.Equal(t, []GapCode{GapOverallBelowGo, GapComponentBelowGo, GapRisksPresent}, codes)
	assert.Equal(t, "2 critical risks identified", res.Gaps[2].Message)
}

func TestDecide_BoundaryValues(t *testing.T) {
	cases := []struct {
		name   string
		scores ScoreResult
		risks  int
		want   domain.Decision
	}{
		{"go at exact thresholds", ScoreResult{Documentation: 70, Rating: 50, Overall: 60}, 0, domain.DecisionGo},
		{"one risk blocks go", ScoreResult{Documentation: 80, Rating: 80, Overall: 80}, 1, domain.DecisionDefer},
		{"two risks block defer", ScoreResult{Documentation: 80, Rating: 80, Overall: 80}, 2, domain.DecisionNoGo},
		{"component just below go", ScoreResult{Documentation: 100, Rating: 49.9, Overall: 74.95}, 0, domain.DecisionDefer},
		{"defer at exact thresholds", ScoreResult{Documentation: 40, Rating: 40, Overall: 40}, 1, domain.DecisionDefer},
		{"component below defer", ScoreResult{Documentation: 90, Rating: 39, Overall: 64.5}, 0, domain.DecisionNoGo},
		{"overall below defer", ScoreResult{Documentation: 39.9, Rating: 39.9, Overall: 39.9}, 0, domain.DecisionNoGo},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Decide(tc.scores, tc.risks).Decision)
		})
	}
}

func TestDecide_ComponentGapNamesWeakerScore(t *testing.T) {
	res := Decide(ScoreResult{Documentation: 90, Rating: 30, Overall: 60}, 0)
	require.Len(t, res.Gaps, 1)
	assert.Equal(t, GapComponentBelowGo, res.Gaps[0].Code)
	assert.Contains(t, res.Gaps[0].Message, "Implementation score 30%")
}

func TestExplanation_UnknownDecision(t *testing.T) {
	assert.Empty(t, Explanation(domain.Decision("MAYBE")))
}
