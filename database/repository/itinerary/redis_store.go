// File: database/repository/itinerary/redis_store.go
package itineraryRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gridtrip/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const storeKeyPrefix = "itinerary:"

type redisItineraryStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisItineraryStore constructs an ItineraryStore backed by Redis.
// Entries expire after ttl; an expired identifier reads as not-found.
func NewRedisItineraryStore(client *redis.Client, ttl time.Duration) ItineraryStore {
	return &redisItineraryStore{client: client, ttl: ttl}
}

func storeKey(id string) string {
	return fmt.Sprintf("%s%s", storeKeyPrefix, id)
}

func (s *redisItineraryStore) Put(ctx context.Context, itinerary *models.Itinerary) (string, error) {
	id := uuid.New().String()

	stored := *itinerary
	stored.ID = id
	data, err := json.Marshal(&stored)
	if err != nil {
		return "", fmt.Errorf("failed to marshal itinerary: %w", err)
	}

	// SetNX guards the (vanishingly unlikely) identifier collision so that a
	// stored itinerary is never overwritten.
	ok, err := s.client.SetNX(ctx, storeKey(id), data, s.ttl).Result()
	if err != nil {
		return "", fmt.Errorf("failed to persist itinerary: %w", err)
	}
	if !ok {
		return "", fmt.Errorf("identifier collision on %q", id)
	}
	return id, nil
}

func (s *redisItineraryStore) Get(ctx context.Context, id string) (*models.Itinerary, error) {
	val, err := s.client.Get(ctx, storeKey(id)).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read itinerary %q: %w", id, err)
	}

	var itinerary models.Itinerary
	if err := json.Unmarshal([]byte(val), &itinerary); err != nil {
		return nil, fmt.Errorf("failed to decode itinerary %q: %w", id, err)
	}
	return &itinerary, nil
}
