package tracking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/edusight/dropout-api/internal/dto"
	"github.com/redis/go-redis/v9"
)

// Store accumulates a user's session actions between requests so callers
// can stream events in and ask for a prediction later. Only raw actions
// are kept; prediction results are never stored.
type Store interface {
	Append(ctx context.Context, userID string, actions []dto.ActionPayload) (int64, error)
	Actions(ctx context.Context, userID string) ([]dto.ActionPayload, error)
	Clear(ctx context.Context, userID string) error
}

// RedisStore keeps each session as a sorted set keyed by user and scored
// by action timestamp, expiring after the configured TTL of inactivity.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(userID string) string {
	return "session:" + userID
}

func (s *RedisStore) Append(ctx context.Context, userID string, actions []dto.ActionPayload) (int64, error) {
	key := sessionKey(userID)

	members := make([]redis.Z, 0, len(actions))
	for _, a := range actions {
		raw, err := json.Marshal(a)
		if err != nil {
			return 0, fmt.Errorf("serialize action: %w", err)
		}
		members = append(members, redis.Z{
			Score:  float64(a.Timestamp),
			Member: raw,
		})
	}

	pipe := s.client.TxPipeline()
	pipe.ZAdd(ctx, key, members...)
	pipe.Expire(ctx, key, s.ttl)
	count := pipe.ZCard(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("store actions: %w", err)
	}

	return count.Val(), nil
}

func (s *RedisStore) Actions(ctx context.Context, userID string) ([]dto.ActionPayload, error) {
	raw, err := s.client.ZRangeByScore(ctx, sessionKey(userID), &redis.ZRangeBy{
		Min: "-inf",
		Max: "+inf",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("fetch session: %w", err)
	}

	actions := make([]dto.ActionPayload, 0, len(raw))
	for _, r := range raw {
		var a dto.ActionPayload
		if err := json.Unmarshal([]byte(r), &a); err != nil {
			return nil, fmt.Errorf("deserialize action: %w", err)
		}
		actions = append(actions, a)
	}

	return actions, nil
}

func (s *RedisStore) Clear(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
