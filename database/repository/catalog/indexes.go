// FILE: database/repository/catalog/indexes.go
package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the catalog collections.
func (r *mongoCatalogRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	eventIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
	}
	if _, err := r.events.Indexes().CreateMany(ctx, eventIndexes); err != nil {
		return fmt.Errorf("failed to create event indexes: %w", err)
	}

	sessionIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary query pattern: all sessions for one event.
		{
			Keys:    bson.D{{Key: "eventId", Value: 1}, {Key: "day", Value: 1}, {Key: "start", Value: 1}},
			Options: options.Index().SetName("event_day_start_idx"),
		},
	}
	if _, err := r.sessions.Indexes().CreateMany(ctx, sessionIndexes); err != nil {
		return fmt.Errorf("failed to create session indexes: %w", err)
	}

	experienceIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "eventId", Value: 1}, {Key: "category", Value: 1}},
			Options: options.Index().SetName("event_category_idx"),
		},
	}
	if _, err := r.experiences.Indexes().CreateMany(ctx, experienceIndexes); err != nil {
		return fmt.Errorf("failed to create experience indexes: %w", err)
	}

	return nil
}
