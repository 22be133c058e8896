package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pagepilot/pagepilot/internal/domain/analytics"
)

// RedisStatsCache stores dashboard aggregates in Redis for a short TTL.
type RedisStatsCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewRedisStatsCache parses the Redis URL and builds the cache.
func NewRedisStatsCache(redisURL string, log zerolog.Logger) (*RedisStatsCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &RedisStatsCache{
		client: redis.NewClient(opts),
		log:    log.With().Str("component", "stats-cache").Logger(),
	}, nil
}

// Ping verifies the connection.
func (c *RedisStatsCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (c *RedisStatsCache) Close() error {
	return c.client.Close()
}

func statsKey(userID string) string {
	return "pagepilot:dashboard-stats:" + userID
}

func (c *RedisStatsCache) GetStats(ctx context.Context, userID string) (*analytics.DashboardStats, bool) {
	raw, err := c.client.Get(ctx, statsKey(userID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("stats cache read")
		}
		return nil, false
	}
	var stats analytics.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

func (c *RedisStatsCache) SetStats(ctx context.Context, userID string, stats *analytics.DashboardStats, ttl time.Duration) {
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, statsKey(userID), raw, ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("stats cache write")
	}
}
