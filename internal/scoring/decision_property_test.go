package scoring

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/epeat/internal/domain"
	"github.com/stretchr/testify/assert"
)

func rank(d domain.Decision) int {
	switch d {
	case domain.DecisionGo:
		return 2
	case domain.DecisionDefer:
		return 1
	default:
		return 0
	}
}

func scoresOf(doc, rating float64) ScoreResult {
	return ScoreResult{Documentation: doc, Rating: rating, Overall: (doc + rating) / 2}
}

// TestDecide_GoIffAllGatesHold checks the GO condition against random inputs.
func TestDecide_GoIffAllGatesHold(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 2000; trial++ {
		s := scoresOf(rng.Float64()*100, rng.Float64()*100)
		risks := rng.Intn(4)

		want := s.Overall >= 60 && min(s.Documentation, s.Rating) >= 50 && risks == 0
		got := Decide(s, risks).Decision == domain.DecisionGo
		assert.Equal(t, want, got, "trial %d: scores=%+v risks=%d", trial, s, risks)
	}
}

// TestDecide_LoweringInputsNeverUpgrades checks monotonicity: lowering a
// score or adding a risk, all else fixed, never improves the decision.
func TestDecide_LoweringInputsNeverUpgrades(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 2000; trial++ {
		doc := rng.Float64() * 100
		rating := rng.Float64() * 100
		risks := rng.Intn(3)
		base := rank(Decide(scoresOf(doc, rating), risks).Decision)

		lowerDoc := doc * rng.Float64()
		assert.LessOrEqual(t, rank(Decide(scoresOf(lowerDoc, rating), risks).Decision), base,
			"trial %d: lowering documentation %.2f→%.2f upgraded decision", trial, doc, lowerDoc)

		lowerRating := rating * rng.Float64()
		assert.LessOrEqual(t, rank(Decide(scoresOf(doc, lowerRating), risks).Decision), base,
			"trial %d: lowering rating %.2f→%.2f upgraded decision", trial, rating, lowerRating)

		assert.LessOrEqual(t, rank(Decide(scoresOf(doc, rating), risks+1).Decision), base,
			"trial %d: adding a risk upgraded decision", trial)
	}
}

// TestComputeScores_OverallAlwaysMean checks the mean invariant over random responses.
func TestComputeScores_OverallAlwaysMean(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	statuses := domain.AllStatuses()

	for trial := 0; trial < 500; trial++ {
		d := map[domain.ItemKey]domain.Status{}
		for i := 0; i < rng.Intn(12); i++ {
			d[domain.ComposeKey("d", i)] = statuses[rng.Intn(len(statuses))]
		}
		var rs []domain.Rating
		for i := 0; i < rng.Intn(12); i++ {
			rs = append(rs, domain.Rating(rng.Intn(6)))
		}

		s := ComputeScores(docs(d), ratings(rs...))
		assert.Equal(t, (s.Documentation+s.Rating)/2, s.Overall, "trial %d", trial)
		assert.GreaterOrEqual(t, s.Documentation, 0.0)
		assert.LessOrEqual(t, s.Documentation, 100.0)
		assert.GreaterOrEqual(t, s.Rating, 0.0)
		assert.LessOrEqual(t, s.Rating, 100.0)
	}
}
