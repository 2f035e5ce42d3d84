package catalog

import (
	"testing"

	"github.com/alexanderramin/epeat/internal/domain"
	"github.com/stretchr/testify/assert"
)

func assertUniqueKeys(t *testing.T, c domain.Catalog) {
	t.Helper()
	seen := map[domain.ItemKey]bool{}
	for _, k := range c.Keys() {
		assert.False(t, seen[k], "duplicate key %q in %s", k, c.Name)
		seen[k] = true
	}
}

func TestDocumentation_Shape(t *testing.T) {
	c := Documentation()
	assert.Len(t, c.Sections, 8)
	assert.Equal(t, 33, c.ItemCount())
	assert.Equal(t, 22, c.RequiredCount())
	assertUniqueKeys(t, c)

	it, sec, ok := c.Lookup("environmentalMaterials-0")
	assert.True(t, ok)
	assert.Equal(t, "RoHS Compliance (Required)", it.Name)
	assert.True(t, it.Required)
	assert.Equal(t, "Environmental Materials Documentation", sec.Title)

	it, _, ok = c.Lookup("packaging-3")
	assert.True(t, ok)
	assert.False(t, it.Required)
}

func TestSelfRating_Shape(t *testing.T) {
	c := SelfRating()
	assert.Len(t, c.Sections, 4)
	assert.Equal(t, 16, c.ItemCount())
	assertUniqueKeys(t, c)
	for _, s := range c.Sections {
		assert.NotEmpty(t, s.Description)
		for _, it := range s.Items {
			assert.NotEmpty(t, it.Example, "%s/%s", s.Key, it.Name)
		}
	}
}

func TestTracker_Shape(t *testing.T) {
	c := Tracker()
	assert.Len(t, c.Sections, 3)
	assert.Equal(t, 10, c.ItemCount())
	assert.Equal(t, 8, c.RequiredCount())
	assertUniqueKeys(t, c)
	assert.True(t, c.Contains("hazardous"))
}

func TestCriticalRisks(t *testing.T) {
	risks := CriticalRisks()
	ids := make([]string, 0, len(risks))
	for _, r := range risks {
		ids = append(ids, r.ID)
		assert.NotEmpty(t, r.Label)
	}
	assert.Equal(t, []string{"testingGaps", "staffShortages", "resourceLimits", "technicalIssues"}, ids)
}
