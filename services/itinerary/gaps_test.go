package itinerary

import (
	"testing"

	"gridtrip/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFreeIntervals_NoSessions(t *testing.T) {
	window := models.Interval{Start: 540, End: 1260}
	gaps := FreeIntervals(window, nil, zap.NewNop())
	require.Len(t, gaps, 1)
	assert.Equal(t, window, gaps[0])
}

func TestFreeIntervals_LeadingMiddleTrailing(t *testing.T) {
	window := models.Interval{Start: 540, End: 1260}
	sessions := []models.FixedSession{
		{ID: "a", Start: 600, End: 720},
		{ID: "b", Start: 900, End: 960},
	}

	gaps := FreeIntervals(window, sessions, zap.NewNop())
	require.Len(t, gaps, 3)
	assert.Equal(t, models.Interval{Start: 540, End: 600}, gaps[0])
	assert.Equal(t, models.Interval{Start: 720, End: 900}, gaps[1])
	assert.Equal(t, models.Interval{Start: 960, End: 1260}, gaps[2])
}

func TestFreeIntervals_BackToBackSessions(t *testing.T) {
	window := models.Interval{Start: 540, End: 720}
	sessions := []models.FixedSession{
		{ID: "a", Start: 540, End: 630},
		{ID: "b", Start: 630, End: 720},
	}
	gaps := FreeIntervals(window, sessions, zap.NewNop())
	assert.Empty(t, gaps)
}

func TestFreeIntervals_OverlappingSessionSkipped(t *testing.T) {
	window := models.Interval{Start: 540, End: 1260}
	sessions := []models.FixedSession{
		{ID: "a", Start: 600, End: 720},
		// Bad catalog data: starts inside the previous session.
		{ID: "b", Start: 700, End: 800},
	}

	gaps := FreeIntervals(window, sessions, zap.NewNop())
	require.Len(t, gaps, 2)
	assert.Equal(t, models.Interval{Start: 540, End: 600}, gaps[0])
	assert.Equal(t, models.Interval{Start: 720, End: 1260}, gaps[1])
}

func TestFreeIntervals_SessionOutsideWindowIgnored(t *testing.T) {
	// Arrival-day window; the morning practice happened before the traveller lands.
	window := models.Interval{Start: 900, End: 1260}
	sessions := []models.FixedSession{
		{ID: "fp1", Start: 600, End: 720},
		{ID: "fp2", Start: 960, End: 1020},
	}

	gaps := FreeIntervals(window, sessions, zap.NewNop())
	require.Len(t, gaps, 2)
	assert.Equal(t, models.Interval{Start: 900, End: 960}, gaps[0])
	assert.Equal(t, models.Interval{Start: 1020, End: 1260}, gaps[1])
}

func TestFreeIntervals_SessionClippedToWindow(t *testing.T) {
	window := models.Interval{Start: 540, End: 720}
	sessions := []models.FixedSession{
		{ID: "long", Start: 500, End: 800},
	}
	gaps := FreeIntervals(window, sessions, zap.NewNop())
	assert.Empty(t, gaps)
}

func TestFreeIntervals_ShortGapStillReported(t *testing.T) {
	// Sub-threshold gaps are kept; they surface as free slots downstream.
	window := models.Interval{Start: 540, End: 1260}
	sessions := []models.FixedSession{
		{ID: "a", Start: 550, End: 1260},
	}
	gaps := FreeIntervals(window, sessions, zap.NewNop())
	require.Len(t, gaps, 1)
	assert.Equal(t, 10, gaps[0].Duration())
}
