package itinerary

import (
	"testing"

	"gridtrip/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() *models.Event {
	return &models.Event{
		ID:       "gp-monza",
		Name:     "Italian Grand Prix",
		City:     "Monza",
		Timezone: "Europe/Rome",
		Dates: map[models.EventDay]string{
			models.DayWednesday: "2025-09-03",
			models.DayThursday:  "2025-09-04",
			models.DayFriday:    "2025-09-05",
			models.DaySaturday:  "2025-09-06",
			models.DaySunday:    "2025-09-07",
			models.DayMonday:    "2025-09-08",
		},
	}
}

func TestBuildTripGrid_InclusiveSpan(t *testing.T) {
	sessions := []models.FixedSession{
		{ID: "fp1", Day: models.DayFriday, Start: 810, End: 870, Label: "Practice 1", Type: models.SessionPractice},
		{ID: "quali", Day: models.DaySaturday, Start: 900, End: 960, Label: "Qualifying", Type: models.SessionQualifying},
		{ID: "race", Day: models.DaySunday, Start: 900, End: 1020, Label: "Grand Prix", Type: models.SessionRace},
	}

	grid, err := BuildTripGrid(testEvent(), sessions, models.DayThursday, models.DaySunday)
	require.NoError(t, err)
	require.Len(t, grid, 4)

	assert.Equal(t, models.DayThursday, grid[0].Day)
	assert.Equal(t, "2025-09-04", grid[0].Date)
	// A day with no fixed sessions still appears, with an empty session list.
	assert.Empty(t, grid[0].Sessions)

	assert.Equal(t, models.DaySunday, grid[3].Day)
	require.Len(t, grid[3].Sessions, 1)
	assert.Equal(t, "race", grid[3].Sessions[0].ID)
}

func TestBuildTripGrid_SingleDay(t *testing.T) {
	grid, err := BuildTripGrid(testEvent(), nil, models.DaySaturday, models.DaySaturday)
	require.NoError(t, err)
	require.Len(t, grid, 1)
	assert.Equal(t, models.DaySaturday, grid[0].Day)
}

func TestBuildTripGrid_ReversedRange(t *testing.T) {
	grid, err := BuildTripGrid(testEvent(), nil, models.DaySunday, models.DayThursday)
	assert.Nil(t, grid)

	var rangeErr *InvalidRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, "sunday", rangeErr.Arrival)
	assert.Equal(t, "thursday", rangeErr.Departure)
}

func TestBuildTripGrid_UnknownDay(t *testing.T) {
	_, err := BuildTripGrid(testEvent(), nil, models.EventDay("tuesday"), models.DaySunday)
	var rangeErr *InvalidRangeError
	require.ErrorAs(t, err, &rangeErr)
}
