package models

// TripWindow is the traveller's input to itinerary creation: when they arrive,
// when they leave, and what they care about. Weekday labels are validated
// against the event day ordering by the planner.
type TripWindow struct {
	ArrivalDay   string   `json:"arrivalDay" binding:"required"`
	DepartureDay string   `json:"departureDay" binding:"required"`
	Interests    []string `json:"interests"`
	Note         string   `json:"note,omitempty"`
	GroupSize    int      `json:"groupSize,omitempty"`
}

// InterestSet returns the traveller's interests as a lookup set.
// An empty interest list means "match anything".
func (w TripWindow) InterestSet() map[string]bool {
	set := make(map[string]bool, len(w.Interests))
	for _, tag := range w.Interests {
		if tag != "" {
			set[tag] = true
		}
	}
	return set
}
