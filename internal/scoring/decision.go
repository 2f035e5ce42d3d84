package scoring

import (
	"fmt"

	"github.com/alexanderramin/epeat/internal/domain"
)

// Decision thresholds. A GO needs every GO gate; DEFER is the fallback
// before NO-GO.
const (
	GoOverallMin      = 60.0
	GoComponentMin    = 50.0
	GoMaxRisks        = 0
	DeferOverallMin   = 40.0
	DeferComponentMin = 40.0
	DeferMaxRisks     = 1
)

// GapCode identifies a GO gate that was not met.
type GapCode string

const (
	GapOverallBelowGo   GapCode = "overall_below_go"
	GapComponentBelowGo GapCode = "component_below_go"
	GapRisksPresent     GapCode = "risks_present"
)

// Gap explains one unmet GO condition.
type Gap struct {
	Code    GapCode
	Message string
}

// DecisionResult is the recommendation derived from a ScoreResult.
type DecisionResult struct {
	Decision    domain.Decision
	Explanation string
	Gaps        []Gap
}

var explanations = map[domain.Decision]string{
	domain.DecisionGo:    "Ready for EPEAT certification submission",
	domain.DecisionDefer: "Additional preparation needed before submission",
	domain.DecisionNoGo:  "Significant improvements required before submission",
}

// Explanation returns the fixed explanation text for d.
func Explanation(d domain.Decision) string {
	return explanations[d]
}

// Decide maps scores and the number of selected risks to a recommendation.
func Decide(scores ScoreResult, riskCount int) DecisionResult {
	lowest := scores.Min()

	var d domain.Decision
	switch {
	case scores.Overall >= GoOverallMin && lowest >= GoComponentMin && riskCount <= GoMaxRisks:
		d = domain.DecisionGo
	case scores.Overall >= DeferOverallMin && lowest >= DeferComponentMin && riskCount <= DeferMaxRisks:
		d = domain.DecisionDefer
	default:
		d = domain.DecisionNoGo
	}

	return DecisionResult{
		Decision:    d,
		Explanation: Explanation(d),
		Gaps:        goGaps(scores, riskCount),
	}
}

func goGaps(scores ScoreResult, riskCount int) []Gap {
	var gaps []Gap
	if scores.Overall < GoOverallMin {
		gaps = append(gaps, Gap{
			Code:    GapOverallBelowGo,
			Message: fmt.Sprintf("Overall score %.0f%% is below %.0f%%", Round(scores.Overall), GoOverallMin),
		})
	}
	if lowest := scores.Min(); lowest < GoComponentMin {
		part := "Documentation"
		if scores.Rating < scores.Documentation {
			part = "Implementation"
		}
		gaps = append(gaps, Gap{
			Code:    GapComponentBelowGo,
			Message: fmt.Sprintf("%s score %.0f%% is below %.0f%%", part, Round(lowest), GoComponentMin),
		})
	}
	if riskCount > GoMaxRisks {
		noun := "risks"
		if riskCount == 1 {
			noun = "risk"
		}
		gaps = append(gaps, Gap{
			Code:    GapRisksPresent,
			Message: fmt.Sprintf("%d critical %s identified", riskCount, noun),
		})
	}
	return gaps
}
