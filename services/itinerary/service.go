package itinerary

import (
	"context"
	"time"

	catalogRepo "gridtrip/database/repository/catalog"
	itineraryRepo "gridtrip/database/repository/itinerary"
	"gridtrip/models"
	"gridtrip/services/narrative"
	"gridtrip/utils"

	"go.uber.org/zap"
)

// ItineraryService creates and retrieves personalized race-weekend plans.
type ItineraryService interface {
	CreateItinerary(ctx context.Context, eventID string, window models.TripWindow) (*models.Itinerary, error)
	GetItinerary(ctx context.Context, id string) (*models.Itinerary, error)
}

// DefaultItineraryService is the production planner.
type DefaultItineraryService struct {
	Catalog  catalogRepo.CatalogRepository
	Store    itineraryRepo.ItineraryStore
	Composer narrative.Composer
	Config   PlannerConfig
}

// CreateItinerary validates the trip window, expands it into a day grid
// against the event's fixed schedule, fills each day's free intervals with
// matching experiences, composes a narrative title and summary, and persists
// the result under a fresh identifier.
//
// No-match conditions are not errors: gaps without a fitting experience
// become free slots, and an empty catalog yields a plan of sessions and free
// time. Only validation, catalog and storage failures propagate.
func (svc *DefaultItineraryService) CreateItinerary(ctx context.Context, eventID string, window models.TripWindow) (*models.Itinerary, error) {
	logger := utils.GetLogger()

	arrival, ok := models.ParseEventDay(window.ArrivalDay)
	if !ok {
		return nil, newInvalidDayError(window.ArrivalDay)
	}
	departure, ok := models.ParseEventDay(window.DepartureDay)
	if !ok {
		return nil, newInvalidDayError(window.DepartureDay)
	}
	if models.DayIndex(arrival) > models.DayIndex(departure) {
		return nil, &InvalidRangeError{Arrival: string(arrival), Departure: string(departure)}
	}

	event, err := svc.Catalog.GetEvent(ctx, eventID)
	if err != nil {
		return nil, &CatalogUnavailableError{Err: err}
	}
	sessions, err := svc.Catalog.GetSessionsForEvent(ctx, eventID)
	if err != nil {
		return nil, &CatalogUnavailableError{Err: err}
	}
	experiences, err := svc.Catalog.GetExperiencesForEvent(ctx, eventID)
	if err != nil {
		return nil, &CatalogUnavailableError{Err: err}
	}

	grid, err := BuildTripGrid(event, sessions, arrival, departure)
	if err != nil {
		return nil, err
	}

	// The matcher's consumed set is threaded through in day order, so day N's
	// placements shape day N+1's candidate pool.
	matcher := NewMatcher(experiences)
	interests := window.InterestSet()

	days := make([]models.ItineraryDay, 0, len(grid))
	var chosenTitles []string
	for i, tripDay := range grid {
		dayWindow := activeWindow(svc.Config, i == 0, i == len(grid)-1)
		slots := BuildDaySlots(svc.Config, dayWindow, tripDay.Sessions, matcher, interests, logger)
		for _, slot := range slots {
			if exp, ok := slot.(models.ExperienceSlot); ok {
				chosenTitles = append(chosenTitles, exp.Title)
			}
		}
		days = append(days, models.ItineraryDay{
			Date:  tripDay.Date,
			Day:   tripDay.Day,
			Label: dayLabel(tripDay.Day, tripDay.Sessions),
			Slots: slots,
		})
	}

	title, summary := svc.Composer.Compose(ctx, narrative.PlanContext{
		RaceName:         event.Name,
		City:             event.City,
		DayCount:         len(days),
		ExperienceTitles: chosenTitles,
		Interests:        window.Interests,
		TravellerNote:    window.Note,
		GroupSize:        window.GroupSize,
	})

	plan := &models.Itinerary{
		EventID:   eventID,
		Title:     title,
		Summary:   summary,
		Days:      days,
		CreatedAt: time.Now().UTC(),
	}

	id, err := svc.Store.Put(ctx, plan)
	if err != nil {
		return nil, &StorageError{Err: err}
	}
	plan.ID = id

	logger.Info("itinerary created",
		zap.String("itineraryId", id),
		zap.String("eventId", eventID),
		zap.Int("days", len(days)),
		zap.Int("experiencesPlaced", len(chosenTitles)))
	return plan, nil
}

// GetItinerary fetches a previously stored itinerary. An unknown or expired
// identifier surfaces as itineraryRepo.ErrNotFound, not as a failure.
func (svc *DefaultItineraryService) GetItinerary(ctx context.Context, id string) (*models.Itinerary, error) {
	return svc.Store.Get(ctx, id)
}
