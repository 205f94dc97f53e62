package models

import "strings"

// EventDay is a weekday in the fixed ordering surrounding a race weekend.
type EventDay string

const (
	DayWednesday EventDay = "wednesday"
	DayThursday  EventDay = "thursday"
	DayFriday    EventDay = "friday"
	DaySaturday  EventDay = "saturday"
	DaySunday    EventDay = "sunday"
	DayMonday    EventDay = "monday"
)

// eventDayOrder fixes the ordering of days around the event. Travellers may
// arrive before the first session and leave after the last one.
var eventDayOrder = []EventDay{
	DayWednesday,
	DayThursday,
	DayFriday,
	DaySaturday,
	DaySunday,
	DayMonday,
}

// EventDays returns the ordered weekday enumeration.
func EventDays() []EventDay {
	out := make([]EventDay, len(eventDayOrder))
	copy(out, eventDayOrder)
	return out
}

// DayIndex returns the position of d in the event day ordering, or -1.
func DayIndex(d EventDay) int {
	for i, v := range eventDayOrder {
		if v == d {
			return i
		}
	}
	return -1
}

// ParseEventDay normalizes a weekday label supplied by a client.
func ParseEventDay(s string) (EventDay, bool) {
	d := EventDay(strings.ToLower(strings.TrimSpace(s)))
	if DayIndex(d) < 0 {
		return "", false
	}
	return d, true
}

// Display returns the capitalized weekday name, e.g. "Saturday".
func (d EventDay) Display() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// Event is a fixed multi-day occasion (a race weekend) with an immutable schedule.
type Event struct {
	ID       string              `bson:"id" json:"id"`
	Name     string              `bson:"name" json:"name"`
	City     string              `bson:"city" json:"city"`
	Country  string              `bson:"country" json:"country"`
	Timezone string              `bson:"timezone" json:"timezone"`
	Dates    map[EventDay]string `bson:"dates" json:"dates"` // weekday -> "2006-01-02"
}

// Session type tags supplied by the catalog.
const (
	SessionPractice   = "practice"
	SessionQualifying = "qualifying"
	SessionSprint     = "sprint"
	SessionRace       = "race"
	SessionSupport    = "support"
)

// FixedSession is an immovable scheduled block belonging to the event.
// Supplied by the catalog and never mutated by the planner.
type FixedSession struct {
	ID      string   `bson:"id" json:"id"`
	EventID string   `bson:"eventId" json:"eventId"`
	Day     EventDay `bson:"day" json:"day"`
	Start   int      `bson:"start" json:"start"` // minutes from midnight (e.g., 540 for 9:00 AM)
	End     int      `bson:"end" json:"end"`     // minutes from midnight (e.g., 660 for 11:00 AM)
	Label   string   `bson:"label" json:"label"`
	Type    string   `bson:"type" json:"type"`
}
