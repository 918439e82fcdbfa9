package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient подмножество команд go-redis, используемых хранилищем
type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}
