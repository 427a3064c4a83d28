package history

import (
	"github.com/gofiber/storage/redis/v3"
)

// NewRedisKV connects a redis-backed snapshot store. The same storage can
// back the session middleware.
func NewRedisKV(url string) *redis.Storage {
	return redis.New(redis.Config{
		URL: url,
	})
}
