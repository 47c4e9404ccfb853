package utils

import (
	"context"
	"time"

	"pillowstat/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CacheClient is the generic cache client. It stays nil when REDIS_ADDR is empty.
var CacheClient *redis.Client

// InitCache connects the generic Redis cache client. A failed ping is logged and
// leaves the client in place so the health monitor can report it.
func InitCache() *redis.Client {
	if config.AppConfig.RedisAddr == "" {
		return nil
	}
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := CacheClient.Ping(ctx).Err(); err != nil {
		GetLogger().Warn("Redis cache unreachable, analytics will compute uncached", zap.Error(err))
	}
	return CacheClient
}

// GetCacheClient returns the generic cache client, or nil when caching is disabled.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}
