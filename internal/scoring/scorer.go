package scoring

import "github.com/alexanderramin/epeat/internal/domain"

// ratingScale converts a 0–5 average into a 0–100 score.
const ratingScale = 20.0

// ScoreResult holds the derived readiness scores, each on a 0–100 scale.
type ScoreResult struct {
	Documentation float64
	Rating        float64
	Overall       float64
}

// Min returns the lower of the two component scores.
func (s ScoreResult) Min() float64 {
	return min(s.Documentation, s.Rating)
}

// ComputeScores reduces documentation statuses and self-ratings to scores.
func ComputeScores(docs domain.Responses[domain.Status], ratings domain.Responses[domain.Rating]) ScoreResult {
	doc := DocumentationScore(docs)
	rating := RatingScore(ratings)
	return ScoreResult{
		Documentation: doc,
		Rating:        rating,
		Overall:       (doc + rating) / 2,
	}
}

// DocumentationScore is the share of applicable documents marked complete.
// With no applicable documents the score is 0.
func DocumentationScore(docs domain.Responses[domain.Status]) float64 {
	complete := docs.Count(func(s domain.Status) bool { return s == domain.StatusComplete })
	applicable := docs.Count(func(s domain.Status) bool { return s != domain.StatusNotApplicable })
	if applicable == 0 {
		return 0
	}
	return float64(complete) / float64(applicable) * 100
}

// RatingScore is the mean rating scaled to 0–100, or 0 with no ratings.
func RatingScore(ratings domain.Responses[domain.Rating]) float64 {
	if ratings.Len() == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings.Values() {
		sum += int(r)
	}
	return float64(sum) / float64(ratings.Len()) * ratingScale
}
