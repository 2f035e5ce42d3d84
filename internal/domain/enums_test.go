package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus_Valid(t *testing.T) {
	for _, s := range AllStatuses() {
		got, err := ParseStatus(" " + string(s) + " ")
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestParseStatus_RejectsUnknownAndCase(t *testing.T) {
	for _, in := range []string{"", "done", "Complete", "not_started"} {
		_, err := ParseStatus(in)
		assert.Error(t, err, "should reject %q", in)
	}
}

func TestTrackerStatuses_ExcludeNotApplicable(t *testing.T) {
	for _, s := range TrackerStatuses() {
		assert.True(t, s.IsTracked())
	}
	assert.False(t, StatusNotApplicable.IsTracked())
	assert.Len(t, TrackerStatuses(), 3)
}

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, "Complete & Ready", StatusComplete.Label())
	assert.Equal(t, "In Progress", StatusPartial.TrackerLabel())
	assert.Equal(t, "Not required", StatusNotApplicable.Description())
}

func TestParseRating(t *testing.T) {
	r, err := ParseRating("4")
	require.NoError(t, err)
	assert.Equal(t, Rating(4), r)

	_, err = ParseRating("6")
	assert.Error(t, err)
	_, err = ParseRating("-1")
	assert.Error(t, err)
	_, err = ParseRating("three")
	assert.Error(t, err)
}

func TestRatingLevels_CoverScale(t *testing.T) {
	levels := RatingLevels()
	require.Len(t, levels, len(AllRatings()))
	for i, l := range levels {
		assert.Equal(t, Rating(i), l.Rating)
		assert.Len(t, l.Points, 3)
	}
	assert.Equal(t, "Exceeds Requirements", MaxRating.Title())
	assert.Empty(t, Rating(9).Title())
}

func TestReadinessText(t *testing.T) {
	assert.Equal(t, "Ready for Submission", ReadinessReady.Text())
	assert.Equal(t, "In Progress", ReadinessInProgress.Text())
	assert.Equal(t, "More Work Needed", ReadinessMoreWork.Text())
}
