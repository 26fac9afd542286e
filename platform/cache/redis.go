package cache

import (
	"os"
	"time"

	"github.com/gomodule/redigo/redis"
	_ "github.com/joho/godotenv/autoload"
)

const defaultAddr = "localhost:6379"

func addr() string {
	if url := os.Getenv("REDIS_URL"); url != "" {
		return url
	}
	return defaultAddr
}

// CreateRedisPool returns a pool for the REDIS_URL address.
func CreateRedisPool() *redis.Pool {
	return &redis.Pool{
		MaxIdle:     10,
		IdleTimeout: 60 * time.Second,
		Dial:        func() (redis.Conn, error) { return redis.Dial("tcp", addr()) },
	}
}

// CreateRedisConnection dials a single connection outside the pool.
func CreateRedisConnection() (redis.Conn, error) {
	return redis.Dial("tcp", addr())
}
