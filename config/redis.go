package config

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client
var Ctx = context.Background()

// ConnectRedis sets up the role-lookup cache. Redis is optional: without
// REDIS_ADDR every role check goes straight to the database.
func ConnectRedis(addr string) {
	if addr == "" {
		slog.Warn("REDIS_ADDR not set, role caching disabled")
		return
	}

	RDB = redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if _, err := RDB.Ping(Ctx).Result(); err != nil {
		slog.Error("Failed to connect to Redis, role caching disabled", "error", err)
		RDB = nil
		return
	}

	slog.Info("Connected to Redis")
}
