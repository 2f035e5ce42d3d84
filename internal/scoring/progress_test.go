package scoring

import (
	"testing"

	"github.com/alexanderramin/epeat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trackerCatalog() domain.Catalog {
	return domain.Catalog{
		Name: "tracker",
		Sections: []domain.Section{
			{Key: "env", Title: "Environmental Materials", Items: []domain.Item{
				{ID: "rohs", Name: "RoHS Compliance", Required: true},
				{ID: "lead", Name: "Lead Usage"},
			}},
			{Key: "mat", Title: "Materials Selection", Items: []domain.Item{
				{ID: "recycled", Name: "Recycled Content", Required: true},
				{ID: "weight", Name: "Product Weight", Required: true},
			}},
		},
	}
}

func TestComputeProgress_CountsOptionalCompletions(t *testing.T) {
	// Three required items; one required and one optional marked complete.
	r := domain.NewResponses(map[domain.ItemKey]domain.Status{
		"rohs":     domain.StatusComplete,
		"lead":     domain.StatusComplete,
		"recycled": domain.StatusPartial,
	})
	got := ComputeProgress(trackerCatalog(), r)

	assert.Equal(t, 3, got.TotalRequired)
	assert.Equal(t, 2, got.Completed)
	assert.Equal(t, 67, got.Percent)
	assert.Equal(t, domain.ReadinessInProgress, got.Readiness)
	assert.Equal(t, "In Progress", got.Readiness.Text())
}

func TestComputeProgress_SectionCounts(t *testing.T) {
	r := domain.NewResponses(map[domain.ItemKey]domain.Status{
		"rohs":   domain.StatusComplete,
		"weight": domain.StatusComplete,
		"lead":   domain.StatusNotStarted,
	})
	got := ComputeProgress(trackerCatalog(), r)

	require.Len(t, got.Sections, 2)
	assert.Equal(t, SectionProgress{Key: "env", Title: "Environmental Materials", Completed: 1, Total: 2}, got.Sections[0])
	assert.Equal(t, SectionProgress{Key: "mat", Title: "Materials Selection", Completed: 1, Total: 2}, got.Sections[1])
}

func TestComputeProgress_AllRequiredComplete_Ready(t *testing.T) {
	r := domain.NewResponses(map[domain.ItemKey]domain.Status{
		"rohs":     domain.StatusComplete,
		"recycled": domain.StatusComplete,
		"weight":   domain.StatusComplete,
	})
	got := ComputeProgress(trackerCatalog(), r)
	assert.Equal(t, 100, got.Percent)
	assert.Equal(t, domain.ReadinessReady, got.Readiness)
}

func TestComputeProgress_CanExceedHundred(t *testing.T) {
	r := domain.NewResponses(map[domain.ItemKey]domain.Status{
		"rohs":     domain.StatusComplete,
		"lead":     domain.StatusComplete,
		"recycled": domain.StatusComplete,
		"weight":   domain.StatusComplete,
	})
	got := ComputeProgress(trackerCatalog(), r)
	assert.Equal(t, 133, got.Percent)
	assert.Equal(t, domain.ReadinessInProgress, got.Readiness, "only exactly 100 is ready")
}

func TestComputeProgress_NoRequiredItems(t *testing.T) {
	c := domain.Catalog{Sections: []domain.Section{{Key: "s", Items: []domain.Item{{ID: "x"}}}}}
	r := domain.NewResponses(map[domain.ItemKey]domain.Status{"x": domain.StatusComplete})
	got := ComputeProgress(c, r)
	assert.Equal(t, 0, got.Percent)
	assert.Equal(t, domain.ReadinessMoreWork, got.Readiness)
}

func TestReadinessFor(t *testing.T) {
	assert.Equal(t, domain.ReadinessReady, ReadinessFor(100))
	assert.Equal(t, domain.ReadinessInProgress, ReadinessFor(99))
	assert.Equal(t, domain.ReadinessInProgress, ReadinessFor(60))
	assert.Equal(t, domain.ReadinessMoreWork, ReadinessFor(59))
	assert.Equal(t, domain.ReadinessMoreWork, ReadinessFor(0))
}

func TestRound_HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 63.0, Round(62.5))
	assert.Equal(t, 67.0, Round(66.666))
}
