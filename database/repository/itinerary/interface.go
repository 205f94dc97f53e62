// File: database/repository/itinerary/interface.go
package itineraryRepo

import (
	"context"
	"errors"

	"gridtrip/models"
)

// ErrNotFound reports an unknown or expired itinerary identifier. It is a
// normal outcome on the read path, distinct from transport failures.
var ErrNotFound = errors.New("itinerary not found")

// ItineraryStore persists assembled itineraries under freshly generated
// identifiers. Identifiers are minted at Put time, never supplied by callers,
// and never reused.
type ItineraryStore interface {
	Put(ctx context.Context, itinerary *models.Itinerary) (string, error)
	Get(ctx context.Context, id string) (*models.Itinerary, error)
}
