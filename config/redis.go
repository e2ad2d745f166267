package config

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// ConnectRedis returns a Redis client, or nil when Redis is not configured or
// unreachable. Callers fall back to the in-process OTP store on nil.
func ConnectRedis(cfg RedisConfig, logger *logrus.Logger) *redis.Client {
	if cfg.Addr == "" {
		logger.Info("REDIS_ADDR not set, OTP codes are kept in memory")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
		MaxRetries:   3,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.WithError(err).Warn("Redis connection failed, OTP codes are kept in memory")
		client.Close()
		return nil
	}

	logger.WithField("addr", cfg.Addr).Info("Connected to Redis")
	return client
}

// CloseRedis closes the Redis connection if there is one
func CloseRedis(client *redis.Client) {
	if client != nil {
		client.Close()
	}
}
