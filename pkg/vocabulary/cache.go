package vocabulary

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/thehyve/omop-etl-wrapper/pkg/common/logger"
	"github.com/thehyve/omop-etl-wrapper/pkg/common/models"
)

// notFoundMarker caches negative lookups so an unmapped concept does not hit
// the database on every stem record that carries it.
const notFoundMarker = "-"

// CachedResolver wraps a Resolver with a Redis lookup cache. Cache failures
// degrade to the inner resolver rather than failing the run.
type CachedResolver struct {
	inner  Resolver
	client *redis.Client
	ttl    time.Duration
}

func NewCachedResolver(inner Resolver, client *redis.Client, ttl time.Duration) *CachedResolver {
	return &CachedResolver{inner: inner, client: client, ttl: ttl}
}

func (c *CachedResolver) DomainOf(ctx context.Context, conceptID int64) (models.Domain, bool, error) {
	key := cacheKey(conceptID)

	cached, err := c.client.Get(ctx, key).Result()
	if err == nil {
		if cached == notFoundMarker {
			return "", false, nil
		}
		return models.Domain(cached), true, nil
	}
	if err != redis.Nil {
		logger.Log.WithError(err).Warn("Vocabulary cache read failed")
	}

	domain, ok, err := c.inner.DomainOf(ctx, conceptID)
	if err != nil {
		return "", false, err
	}

	value := notFoundMarker
	if ok {
		value = string(domain)
	}
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		logger.Log.WithError(err).Warn("Vocabulary cache write failed")
	}

	return domain, ok, nil
}

func cacheKey(conceptID int64) string {
	return fmt.Sprintf("vocab:domain:%d", conceptID)
}
