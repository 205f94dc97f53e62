// File: database/repository/catalog/cached.go
package catalogRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gridtrip/models"
	"gridtrip/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const cacheKeyPrefix = "catalog:"

// cachedCatalogRepo is a read-through Redis cache over another CatalogRepository.
// Cache failures are never fatal; reads fall through to the inner repo.
type cachedCatalogRepo struct {
	inner  CatalogRepository
	client *redis.Client
	ttl    time.Duration
}

// NewCachedCatalogRepo wraps repo with a Redis read-through cache.
func NewCachedCatalogRepo(repo CatalogRepository, client *redis.Client, ttl time.Duration) CatalogRepository {
	return &cachedCatalogRepo{inner: repo, client: client, ttl: ttl}
}

func (c *cachedCatalogRepo) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	key := fmt.Sprintf("%sevent:%s", cacheKeyPrefix, eventID)
	var event models.Event
	if c.readCache(ctx, key, &event) {
		return &event, nil
	}
	fresh, err := c.inner.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	c.writeCache(ctx, key, fresh)
	return fresh, nil
}

func (c *cachedCatalogRepo) GetSessionsForEvent(ctx context.Context, eventID string) ([]models.FixedSession, error) {
	key := fmt.Sprintf("%ssessions:%s", cacheKeyPrefix, eventID)
	var sessions []models.FixedSession
	if c.readCache(ctx, key, &sessions) {
		return sessions, nil
	}
	fresh, err := c.inner.GetSessionsForEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	c.writeCache(ctx, key, fresh)
	return fresh, nil
}

func (c *cachedCatalogRepo) GetExperiencesForEvent(ctx context.Context, eventID string) ([]models.Experience, error) {
	key := fmt.Sprintf("%sexperiences:%s", cacheKeyPrefix, eventID)
	var experiences []models.Experience
	if c.readCache(ctx, key, &experiences) {
		return experiences, nil
	}
	fresh, err := c.inner.GetExperiencesForEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	c.writeCache(ctx, key, fresh)
	return fresh, nil
}

func (c *cachedCatalogRepo) readCache(ctx context.Context, key string, dest interface{}) bool {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		utils.GetLogger().Debug("corrupt catalog cache entry, refetching", zap.String("key", key))
		return false
	}
	return true
}

func (c *cachedCatalogRepo) writeCache(ctx context.Context, key string, val interface{}) {
	data, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		utils.GetLogger().Debug("failed to write catalog cache entry", zap.String("key", key), zap.Error(err))
	}
}
