package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/engagement"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/config"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// DashboardKey is the Redis key holding the cached engagement dashboard.
const DashboardKey = "eprofos:engagement:dashboard"

type redisDashboardCache struct {
	client *redis.Client
	logger logger.Logger
}

// NewRedisClient creates a client from settings and checks the server answers.
func NewRedisClient(ctx context.Context, settings config.RedisSettings) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     settings.Addr,
		Password: settings.Password,
		DB:       settings.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to reach redis at %s: %w", settings.Addr, err)
	}
	return client, nil
}

// NewRedisDashboardCache creates a DashboardCache storing JSON in Redis.
func NewRedisDashboardCache(client *redis.Client, logger logger.Logger) (engagement.DashboardCache, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	return &redisDashboardCache{
		client: client,
		logger: logger,
	}, nil
}

func (c *redisDashboardCache) Get(ctx context.Context) (*engagement.Dashboard, error) {
	raw, err := c.client.Get(ctx, DashboardKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, engagement.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached dashboard: %w", err)
	}

	var dashboard engagement.Dashboard
	if err := json.Unmarshal(raw, &dashboard); err != nil {
		return nil, fmt.Errorf("failed to decode cached dashboard: %w", err)
	}
	return &dashboard, nil
}

func (c *redisDashboardCache) Set(ctx context.Context, dashboard *engagement.Dashboard, ttl time.Duration) error {
	raw, err := json.Marshal(dashboard)
	if err != nil {
		return fmt.Errorf("failed to encode dashboard: %w", err)
	}
	if err := c.client.Set(ctx, DashboardKey, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache dashboard: %w", err)
	}
	c.logger.Debug("Cached engagement dashboard for ", ttl)
	return nil
}

func (c *redisDashboardCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, DashboardKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate dashboard cache: %w", err)
	}
	return nil
}
