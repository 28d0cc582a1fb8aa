package kv

import (
	"context"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

// RedisStore persists values as plain redis strings.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) RedisStore {
	return RedisStore{client}
}

// DialRedis accepts either a redis:// URL or a bare host[:port].
func DialRedis(addr string) *redis.Client {
	opts, err := redis.ParseURL(addr)
	if err != nil {
		if !strings.Contains(addr, ":") {
			addr = addr + ":6379"
		}
		opts = &redis.Options{
			Addr:         addr,
			MinIdleConns: 1,
			DialTimeout:  10 * time.Second,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			PoolSize:     10,
		}
	}
	return redis.NewClient(opts)
}

func (s RedisStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", errors.Wrapf(err, "redis get %s", key)
	}
	return v, nil
}

func (s RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Wrapf(err, "redis set %s", key)
	}
	return nil
}

// Ping reports whether the server answers within five seconds.
func (s RedisStore) Ping(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.client.Ping(ctx).Err(); err != nil {
		log.Warningf("redis ping failed: %v", err)
		return false
	}
	return true
}
