package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponses_WithOverwritesAndKeepsSnapshot(t *testing.T) {
	var r Responses[Status]
	r1 := r.With("a-0", StatusPartial)
	r2 := r1.With("a-0", StatusComplete)

	got, ok := r1.Get("a-0")
	assert.True(t, ok)
	assert.Equal(t, StatusPartial, got, "earlier snapshot must not change")

	got, _ = r2.Get("a-0")
	assert.Equal(t, StatusComplete, got)
	assert.Equal(t, 1, r2.Len(), "overwrite must not append")
	assert.Equal(t, 0, r.Len())
}

func TestResponses_SameValueIsIdempotent(t *testing.T) {
	r := NewResponses(map[ItemKey]Rating{"x-1": 3})
	again := r.With("x-1", 3)
	assert.Equal(t, r.Map(), again.Map())
	assert.Equal(t, 1, again.Len())
}

func TestResponses_CountAndOrder(t *testing.T) {
	r := NewResponses(map[ItemKey]Status{
		"b-0": StatusComplete,
		"a-1": StatusNotApplicable,
		"a-0": StatusComplete,
	})
	assert.Equal(t, []ItemKey{"a-0", "a-1", "b-0"}, r.Keys())
	assert.Equal(t, []Status{StatusComplete, StatusNotApplicable, StatusComplete}, r.Values())
	assert.Equal(t, 2, r.Count(func(s Status) bool { return s == StatusComplete }))
}

func TestRiskSet_ToggleRoundTrip(t *testing.T) {
	start := NewRiskSet("staffShortages")
	once := start.Toggle("testingGaps")
	twice := once.Toggle("testingGaps")

	assert.True(t, once.Has("testingGaps"))
	assert.Equal(t, 2, once.Len())
	assert.True(t, twice.Equal(start))
	assert.Equal(t, []string{"staffShortages"}, twice.IDs())
	assert.False(t, start.Has("testingGaps"), "toggle must not mutate the receiver")
}

func TestRiskSet_ZeroValue(t *testing.T) {
	var s RiskSet
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has("anything"))
	assert.Equal(t, 1, s.Toggle("x").Len())
}
