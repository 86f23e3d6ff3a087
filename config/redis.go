package config

import (
	"os"

	"github.com/redis/go-redis/v9"
)

// Redis is the shared client for the OTP store. Nil when REDIS_ADDR is not
// set; callers fall back to the in-process store.
var Redis *redis.Client

// InitRedis initializes the Redis client if REDIS_ADDR is configured
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
}
