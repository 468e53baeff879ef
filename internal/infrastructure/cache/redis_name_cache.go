package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appfranchise "github.com/franchises/backend/internal/application/franchise"
)

const defaultNameKeyPrefix = "product:name:"

// RedisNameCache maps folded product names to product ids in Redis.
// It is a fast path in front of the store: lookups that miss, expire, or
// fail simply fall through, so cache errors are logged and swallowed.
type RedisNameCache struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
	logger    *zap.Logger
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisNameCache creates a Redis-backed product name cache
func NewRedisNameCache(cfg RedisConfig, ttl time.Duration, logger *zap.Logger) (*RedisNameCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisNameCacheWithClient(client, defaultNameKeyPrefix, ttl, logger), nil
}

// NewRedisNameCacheWithClient creates a cache with an existing Redis client.
// This is useful for testing or when sharing a client across components.
func NewRedisNameCacheWithClient(client *redis.Client, keyPrefix string, ttl time.Duration, logger *zap.Logger) *RedisNameCache {
	if keyPrefix == "" {
		keyPrefix = defaultNameKeyPrefix
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisNameCache{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
		logger:    logger,
	}
}

func (c *RedisNameCache) key(name string) string {
	return c.keyPrefix + strings.ToLower(name)
}

// Get returns the cached product id for a name, if present
func (c *RedisNameCache) Get(ctx context.Context, name string) (string, bool) {
	id, err := c.client.Get(ctx, c.key(name)).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("product name cache lookup failed", zap.Error(err))
		}
		return "", false
	}
	return id, true
}

// Set caches the product id under the folded name
func (c *RedisNameCache) Set(ctx context.Context, name, id string) {
	if err := c.client.Set(ctx, c.key(name), id, c.ttl).Err(); err != nil {
		c.logger.Warn("product name cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached entry for a name
func (c *RedisNameCache) Invalidate(ctx context.Context, name string) {
	if err := c.client.Del(ctx, c.key(name)).Err(); err != nil {
		c.logger.Warn("product name cache invalidation failed", zap.Error(err))
	}
}

// Close closes the Redis client
func (c *RedisNameCache) Close() error {
	return c.client.Close()
}

// Ensure RedisNameCache implements the resolver's cache port
var _ appfranchise.NameCache = (*RedisNameCache)(nil)
