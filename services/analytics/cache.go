package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"pillowstat/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ErrCacheMiss is returned by Get when no snapshot is stored under key.
var ErrCacheMiss = errors.New("analytics cache miss")

// Cache stores computed report snapshots.
type Cache interface {
	Get(ctx context.Context, key string) (*models.AnalyticsReport, error)
	Set(ctx context.Context, key string, report *models.AnalyticsReport) error
}

// RedisCache keeps snapshots as JSON under prefix+key with a fixed TTL.
type RedisCache struct {
	Client *redis.Client
	Prefix string
	TTL    time.Duration
	Logger *zap.Logger
}

func NewRedisCache(client *redis.Client, prefix string, ttl time.Duration, logger *zap.Logger) *RedisCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisCache{Client: client, Prefix: prefix, TTL: ttl, Logger: logger}
}

func (c *RedisCache) Get(ctx context.Context, key string) (*models.AnalyticsReport, error) {
	data, err := c.Client.Get(ctx, c.Prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	var report models.AnalyticsReport
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		c.Logger.Warn("Discarding unreadable analytics snapshot", zap.String("key", key), zap.Error(err))
		return nil, ErrCacheMiss
	}
	return &report, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, report *models.AnalyticsReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.Prefix+key, data, c.TTL).Err()
}

// NoopCache never stores anything.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string) (*models.AnalyticsReport, error) {
	return nil, ErrCacheMiss
}

func (NoopCache) Set(context.Context, string, *models.AnalyticsReport) error { return nil }
