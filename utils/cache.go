package utils

import (
	"context"
	"time"

	"callpilot/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// MatchCacheClient returns a Redis client for the match-result cache, or nil
// when no Redis address is configured or the server is unreachable. The cache
// is an optimization; the ranker computes without it.
func MatchCacheClient() *redis.Client {
	if config.AppConfig.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		GetLogger().Warn("Redis unreachable, match caching disabled", zap.Error(err))
		client.Close()
		return nil
	}
	return client
}
