// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"gridtrip/config"

	"github.com/go-redis/redis/v8"
)

var (
	// ItineraryStoreClient is the Redis client backing the itinerary store.
	ItineraryStoreClient *redis.Client
	// CacheClient is the client for catalog read-through caching.
	CacheClient *redis.Client
)

// InitItineraryStore initializes the Redis client that holds persisted itineraries.
func InitItineraryStore() {
	ItineraryStoreClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisItineraryDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := ItineraryStoreClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Itinerary Store): %v", err)
	}
}

// GetItineraryStoreClient returns the itinerary store client.
func GetItineraryStoreClient() *redis.Client {
	if ItineraryStoreClient == nil {
		InitItineraryStore()
	}
	return ItineraryStoreClient
}

// InitCache initializes the generic Redis cache client (catalog reads).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}
