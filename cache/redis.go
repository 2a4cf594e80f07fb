package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var _ ICache = &RedisCache{}

// Cache backed by a redis server, keys are stored with a common prefix.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// Connects to the server given by options and checks it with a ping.
func NewRedisCache(ctx context.Context, options Options) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        options.Addr,
		Password:    options.Password,
		DB:          options.DB,
		DialTimeout: 2 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect redis %v: %w", options.Addr, err)
	}
	return NewRedisCacheFromClient(client, options.Prefix), nil
}

func NewRedisCacheFromClient(client *redis.Client, prefix string) *RedisCache {
	return &RedisCache{
		client: client,
		prefix: prefix,
	}
}

func (self *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := self.client.Get(ctx, self.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (self *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return self.client.Set(ctx, self.prefix+key, data, ttl).Err()
}

func (self *RedisCache) Delete(ctx context.Context, key string) error {
	return self.client.Del(ctx, self.prefix+key).Err()
}

func (self *RedisCache) Close() error {
	return self.client.Close()
}
