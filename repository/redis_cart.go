package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/pkg/cart"
)

// cartKeyPrefix, Redis'teki sepet key'lerinin ön eki.
const cartKeyPrefix = "milan:cart:"

// redisCartStore, CartStore'un Redis implementasyonu. TTL'i Redis yönetir.
type redisCartStore struct {
	client redis.Cmdable
}

// NewRedisCartStore, constructor — interface döner.
func NewRedisCartStore(client redis.Cmdable) CartStore {
	return &redisCartStore{client: client}
}

func (s *redisCartStore) Load(ctx context.Context, id string) (*cart.Cart, error) {
	data, err := s.client.Get(ctx, cartKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var c cart.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return &c, nil
}

func (s *redisCartStore) Save(ctx context.Context, id string, c *cart.Cart, ttl time.Duration) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKeyPrefix+id, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (s *redisCartStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, cartKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}

func (s *redisCartStore) PurgeExpired(context.Context) (int64, error) {
	return 0, nil
}
