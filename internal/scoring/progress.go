package scoring

import (
	"math"

	"github.com/alexanderramin/epeat/internal/domain"
)

// Readiness thresholds for the tracker flow.
const (
	ReadyPercent      = 100
	InProgressPercent = 60
)

// SectionProgress counts completed items within one catalog section.
type SectionProgress struct {
	Key       string
	Title     string
	Completed int
	Total     int
}

// ProgressResult is the tracker's derived completion state.
type ProgressResult struct {
	TotalRequired int
	// Completed counts every complete response, required or not, so
	// Percent can exceed 100 when optional items are completed.
	Completed int
	Percent   int
	Readiness domain.Readiness
	Sections  []SectionProgress
}

// ComputeProgress derives completion progress against the required items of catalog.
func ComputeProgress(catalog domain.Catalog, responses domain.Responses[domain.Status]) ProgressResult {
	total := catalog.RequiredCount()
	completed := responses.Count(func(s domain.Status) bool { return s == domain.StatusComplete })

	pct := 0
	if total > 0 {
		pct = int(math.Round(float64(completed) / float64(total) * 100))
	}

	sections := make([]SectionProgress, 0, len(catalog.Sections))
	for _, s := range catalog.Sections {
		sp := SectionProgress{Key: s.Key, Title: s.Title, Total: len(s.Items)}
		for i := range s.Items {
			if v, ok := responses.Get(catalog.KeyOf(s, i)); ok && v == domain.StatusComplete {
				sp.Completed++
			}
		}
		sections = append(sections, sp)
	}

	return ProgressResult{
		TotalRequired: total,
		Completed:     completed,
		Percent:       pct,
		Readiness:     ReadinessFor(pct),
		Sections:      sections,
	}
}

// ReadinessFor maps a progress percentage to a readiness status.
// Only exactly 100 is ready.
func ReadinessFor(pct int) domain.Readiness {
	switch {
	case pct == ReadyPercent:
		return domain.ReadinessReady
	case pct >= InProgressPercent:
		return domain.ReadinessInProgress
	default:
		return domain.ReadinessMoreWork
	}
}

// Round rounds a score half away from zero for display.
func Round(v float64) float64 {
	return math.Round(v)
}
