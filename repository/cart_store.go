package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/GermanChai/germanchai/entity"

	"github.com/redis/go-redis/v9"
)

// RedisCartStore keeps each user's working cart as a JSON document under
// cart:<userID>. It is the durable pre-checkout store: the cart survives
// reconnects but is deleted on every sign-in/sign-out so nothing leaks
// across accounts.
type RedisCartStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{Client: client, TTL: ttl}
}

func cartKey(userID uint) string {
	return "cart:" + strconv.FormatUint(uint64(userID), 10)
}

// Load returns an empty cart (not an error) when none is stored.
func (s *RedisCartStore) Load(ctx context.Context, userID uint) (*entity.Cart, error) {
	raw, err := s.Client.Get(ctx, cartKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.NewCart(userID), nil
	}
	if err != nil {
		return nil, err
	}
	var c entity.Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		// a corrupt document is treated as no cart
		return entity.NewCart(userID), nil
	}
	c.UserID = userID
	return &c, nil
}

func (s *RedisCartStore) Save(ctx context.Context, c *entity.Cart) error {
	if c.Empty() {
		return s.Delete(ctx, c.UserID)
	}
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, cartKey(c.UserID), raw, s.TTL).Err()
}

func (s *RedisCartStore) Delete(ctx context.Context, userID uint) error {
	return s.Client.Del(ctx, cartKey(userID)).Err()
}
