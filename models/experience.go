package models

import "math"

// Experience category tags. Traveller interests are drawn from the same set.
const (
	CategoryFood        = "food"
	CategoryNightlife   = "nightlife"
	CategoryCulture     = "culture"
	CategorySightseeing = "sightseeing"
	CategoryAdventure   = "adventure"
	CategoryMotorsport  = "motorsport"
)

// Experience is a bookable activity drawn from the catalog. Read-only to the
// planner; the planner only recommends placements, it never books.
type Experience struct {
	ID            string  `bson:"id" json:"id"`
	EventID       string  `bson:"eventId" json:"eventId"`
	Title         string  `bson:"title" json:"title"`
	Category      string  `bson:"category" json:"category"`
	DurationHours float64 `bson:"durationHours" json:"durationHours"`
	Rating        float64 `bson:"rating" json:"rating"`
	Featured      bool    `bson:"featured" json:"featured"`
	Price         float64 `bson:"price,omitempty" json:"price,omitempty"`
	Blurb         string  `bson:"blurb,omitempty" json:"blurb,omitempty"`
}

// DurationMinutes converts the catalog's fractional hours to whole minutes.
func (e Experience) DurationMinutes() int {
	return int(math.Round(e.DurationHours * 60))
}
