package itinerary

import (
	"fmt"

	"gridtrip/models"
)

// InvalidRangeError reports a trip window whose arrival day falls after its
// departure day, or a weekday label outside the event's day ordering.
type InvalidRangeError struct {
	Arrival   string
	Departure string
	Message   string
}

func (e *InvalidRangeError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("invalid trip range: arrival %q is after departure %q", e.Arrival, e.Departure)
}

func newInvalidDayError(label string) error {
	return &InvalidRangeError{
		Message: fmt.Sprintf("unknown trip day %q; expected one of %v", label, models.EventDays()),
	}
}

// CatalogUnavailableError reports that event sessions or experiences could not
// be fetched. Retryable; the whole request fails rather than returning a
// misleading empty plan.
type CatalogUnavailableError struct {
	Err error
}

func (e *CatalogUnavailableError) Error() string {
	return fmt.Sprintf("catalog unavailable: %v", e.Err)
}

func (e *CatalogUnavailableError) Unwrap() error { return e.Err }

// StorageError reports that identifier generation or persistence failed.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("itinerary storage failed: %v", e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
