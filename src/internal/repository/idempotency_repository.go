package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type StoredResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// IdempotencyRepository remembers payment responses by Idempotency-Key.
type IdempotencyRepository struct {
	Redis redis.UniversalClient
	TTL   time.Duration
}

func NewIdempotencyRepository(client redis.UniversalClient, ttl time.Duration) *IdempotencyRepository {
	return &IdempotencyRepository{Redis: client, TTL: ttl}
}

func responseKey(key string) string { return fmt.Sprintf("IDEMPOTENCY:RESPONSE:%s", key) }
func lockKey(key string) string     { return fmt.Sprintf("IDEMPOTENCY:LOCK:%s", key) }

// Find returns nil when nothing is stored under key.
func (r *IdempotencyRepository) Find(ctx context.Context, key string) (*StoredResponse, error) {
	raw, err := r.Redis.Get(ctx, responseKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var stored StoredResponse
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// Reserve takes the in-flight lock for key; false means another request holds it.
func (r *IdempotencyRepository) Reserve(ctx context.Context, key string) (bool, error) {
	return r.Redis.SetNX(ctx, lockKey(key), "1", r.TTL).Result()
}

func (r *IdempotencyRepository) Save(ctx context.Context, key string, response StoredResponse) error {
	raw, err := json.Marshal(response)
	if err != nil {
		return err
	}
	return r.Redis.Set(ctx, responseKey(key), raw, r.TTL).Err()
}

func (r *IdempotencyRepository) Release(ctx context.Context, key string) error {
	return r.Redis.Del(ctx, lockKey(key)).Err()
}
