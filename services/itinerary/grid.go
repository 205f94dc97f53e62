package itinerary

import (
	"gridtrip/models"
)

// TripDay is one calendar day of the trip grid: its date, its weekday and the
// fixed sessions scheduled on it (possibly none).
type TripDay struct {
	Date     string
	Day      models.EventDay
	Sessions []models.FixedSession
}

// BuildTripGrid expands an arrival/departure window into one TripDay per day,
// inclusive. Days without fixed sessions still appear with an empty session
// list; they become one large free interval downstream.
func BuildTripGrid(event *models.Event, sessions []models.FixedSession, arrival, departure models.EventDay) ([]TripDay, error) {
	ai := models.DayIndex(arrival)
	di := models.DayIndex(departure)
	if ai < 0 {
		return nil, newInvalidDayError(string(arrival))
	}
	if di < 0 {
		return nil, newInvalidDayError(string(departure))
	}
	if ai > di {
		return nil, &InvalidRangeError{Arrival: string(arrival), Departure: string(departure)}
	}

	byDay := make(map[models.EventDay][]models.FixedSession)
	for _, s := range sessions {
		byDay[s.Day] = append(byDay[s.Day], s)
	}

	days := models.EventDays()
	grid := make([]TripDay, 0, di-ai+1)
	for i := ai; i <= di; i++ {
		day := days[i]
		grid = append(grid, TripDay{
			Date:     event.Dates[day],
			Day:      day,
			Sessions: byDay[day],
		})
	}
	return grid, nil
}
