package session

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisRegistry implements Registry on top of Redis. Keys carry no TTL, so
// sessions behave exactly like the in-memory backend: they exist until
// logged out.
type RedisRegistry struct {
	client *redis.Client
	log    *zap.Logger
}

// NewRedisRegistry creates a new Redis-backed session registry.
func NewRedisRegistry(client *redis.Client, log *zap.Logger) *RedisRegistry {
	return &RedisRegistry{
		client: client,
		log:    log,
	}
}

// sessionKey generates a Redis key for a session token.
func (r *RedisRegistry) sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

// Put records an active session. No expiration is set.
func (r *RedisRegistry) Put(ctx context.Context, token string, userID int64) error {
	if err := r.client.Set(ctx, r.sessionKey(token), userID, 0).Err(); err != nil {
		r.log.Error("failed to record session", zap.Int64("user_id", userID), zap.Error(err))
		return err
	}
	r.log.Debug("session recorded", zap.Int64("user_id", userID))
	return nil
}

// Remove deletes a session token.
func (r *RedisRegistry) Remove(ctx context.Context, token string) (bool, error) {
	removed, err := r.client.Del(ctx, r.sessionKey(token)).Result()
	if err != nil {
		r.log.Error("failed to remove session", zap.Error(err))
		return false, err
	}
	return removed > 0, nil
}

// Contains reports whether the token is active.
func (r *RedisRegistry) Contains(ctx context.Context, token string) (bool, error) {
	n, err := r.client.Exists(ctx, r.sessionKey(token)).Result()
	if err != nil {
		r.log.Error("failed to check session", zap.Error(err))
		return false, err
	}
	return n > 0, nil
}
