// File: database/repository/catalog/catalog_mongo.go
package catalogRepo

import (
	"context"
	"fmt"
	"sort"

	"gridtrip/database"
	"gridtrip/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoCatalogRepo struct {
	events      *mongo.Collection
	sessions    *mongo.Collection
	experiences *mongo.Collection
}

// NewMongoCatalogRepo constructs a CatalogRepository backed by MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database("gridtrip")
	return &mongoCatalogRepo{
		events:      db.Collection("events"),
		sessions:    db.Collection("sessions"),
		experiences: db.Collection("experiences"),
	}
}

func (r *mongoCatalogRepo) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	var event models.Event
	err := r.events.FindOne(ctx, bson.M{"id": eventID}).Decode(&event)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("event %q not found", eventID)
		}
		return nil, fmt.Errorf("failed to fetch event %q: %w", eventID, err)
	}
	return &event, nil
}

func (r *mongoCatalogRepo) GetSessionsForEvent(ctx context.Context, eventID string) ([]models.FixedSession, error) {
	cursor, err := r.sessions.Find(ctx, bson.M{"eventId": eventID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions for event %q: %w", eventID, err)
	}
	defer cursor.Close(ctx)

	var sessions []models.FixedSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("failed to decode sessions for event %q: %w", eventID, err)
	}

	// The event day ordering is not a Mongo sort key, so order here.
	sort.SliceStable(sessions, func(i, j int) bool {
		di, dj := models.DayIndex(sessions[i].Day), models.DayIndex(sessions[j].Day)
		if di != dj {
			return di < dj
		}
		return sessions[i].Start < sessions[j].Start
	})
	return sessions, nil
}

func (r *mongoCatalogRepo) GetExperiencesForEvent(ctx context.Context, eventID string) ([]models.Experience, error) {
	cursor, err := r.experiences.Find(ctx, bson.M{"eventId": eventID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch experiences for event %q: %w", eventID, err)
	}
	defer cursor.Close(ctx)

	var experiences []models.Experience
	if err := cursor.All(ctx, &experiences); err != nil {
		return nil, fmt.Errorf("failed to decode experiences for event %q: %w", eventID, err)
	}

	// Stable catalog order; the matcher relies on it for deterministic tie-breaks.
	sort.SliceStable(experiences, func(i, j int) bool {
		return experiences[i].ID < experiences[j].ID
	})
	return experiences, nil
}
