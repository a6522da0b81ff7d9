package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSessionStore keeps each session as a redis hash so fields share one
// TTL and a multi-field write lands in a single command.
type RedisSessionStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewRedisSessionStore(client redis.UniversalClient, prefix string, ttl time.Duration) *RedisSessionStore {
	if prefix == "" {
		prefix = "session"
	}
	return &RedisSessionStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID, key string) (string, bool, error) {
	value, err := s.client.HGet(ctx, s.sessionKey(sessionID), key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, sessionID, key, value string) error {
	return s.SetFields(ctx, sessionID, map[string]string{key: value})
}

func (s *RedisSessionStore) SetFields(ctx context.Context, sessionID string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	flat := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		flat = append(flat, k, v)
	}
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, s.sessionKey(sessionID), flat...)
	pipe.Expire(ctx, s.sessionKey(sessionID), s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID, key string) error {
	return s.client.HDel(ctx, s.sessionKey(sessionID), key).Err()
}

func (s *RedisSessionStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.sessionKey(sessionID)).Err()
}

func (s *RedisSessionStore) sessionKey(sessionID string) string {
	return fmt.Sprintf("%s:%s", s.prefix, sessionID)
}
