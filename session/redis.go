package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists the credential in redis under a configurable key
// prefix. An optional TTL bounds how long a credential may linger if the
// host never logs out; zero means no redis-side expiry.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore wraps client with the given key prefix and per-key TTL.
func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = "fc"
	}
	return &RedisStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *RedisStore) key(key string) string {
	return s.prefix + ":" + key
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrKeyNotFound
		}
		return "", errors.Join(ErrRedisUnavailable, err)
	}
	return v, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, s.ttl).Err(); err != nil {
		return errors.Join(ErrRedisUnavailable, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return errors.Join(ErrRedisUnavailable, err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	keys := make([]string, 0, len(credentialKeys))
	for _, key := range credentialKeys {
		keys = append(keys, s.key(key))
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return errors.Join(ErrRedisUnavailable, err)
	}
	return nil
}
