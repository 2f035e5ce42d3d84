package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/epeat/internal/contract"
	"github.com/alexanderramin/epeat/internal/scoring"
)

const scoreBarWidth = 20

// FormatScores renders the three readiness scores with bars.
func FormatScores(s contract.Scores) string {
	rows := [][]string{
		{"Documentation", scoreBar(s.Documentation), Percent(s.Documentation)},
		{"Implementation", scoreBar(s.Rating), Percent(s.Rating)},
		{Bold("Overall"), scoreBar(s.Overall), Bold(Percent(s.Overall))},
	}
	return RenderTable([]string{"SCORE", "", "VALUE"}, rows)
}

func scoreBar(v float64) string {
	return RenderCompactBar(int(scoring.Round(v)), scoreBarWidth, ScoreStyle(v))
}

// FormatDecision renders the recommendation, its explanation and the
// GO conditions still unmet.
func FormatDecision(res contract.AssessmentResult) string {
	var b strings.Builder
	b.WriteString(DecisionIndicator(res.Decision))
	b.WriteString("  ")
	b.WriteString(DecisionStyle(res.Decision).Render(res.Explanation))
	b.WriteString("\n")

	for _, g := range res.Gaps {
		fmt.Fprintf(&b, "  %s %s\n", StyleYellow.Render("•"), g.Message)
	}
	return b.String()
}

// FormatAssessment renders a self-assessment result as a boxed summary.
func FormatAssessment(res contract.AssessmentResult) string {
	var b strings.Builder

	b.WriteString(FormatScores(res.Scores))
	b.WriteString("\n")
	b.WriteString(FormatDecision(res))
	b.WriteString("\n")

	riskStyle := StyleGreen
	if res.RiskCount() > 0 {
		riskStyle = StyleRed
	}
	b.WriteString(riskStyle.Render(fmt.Sprintf("Critical risks: %d", res.RiskCount())))
	b.WriteString("\n")
	for _, r := range res.Risks {
		fmt.Fprintf(&b, "  %s %s\n", StyleRed.Render("!"), r.Label)
	}

	a := res.Answered
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Answered %d/%d documents, %d/%d practice areas",
		a.Documents, a.DocumentsTotal, a.Ratings, a.RatingsTotal)))
	b.WriteString("\n")

	return RenderBox("Assessment Results", b.String())
}
