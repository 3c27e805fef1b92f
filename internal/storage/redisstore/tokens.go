package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/salomebobokhidze/HotelManagement/internal/domain"
)

const refreshTokenKey = "refresh_token:%s"

// New returns a Redis client for the given address.
func New(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

// TokenStore keeps issued refresh tokens in Redis so they survive restarts
// and can be revoked across instances.
type TokenStore struct {
	rdb *redis.Client
}

func NewTokenStore(rdb *redis.Client) *TokenStore {
	return &TokenStore{rdb: rdb}
}

func (s *TokenStore) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, key(token), userID, ttl).Err(); err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

// Consume atomically fetches and deletes the token, so a stolen or
// replayed refresh token only ever works once.
func (s *TokenStore) Consume(ctx context.Context, token string) (string, error) {
	userID, err := s.rdb.GetDel(ctx, key(token)).Result()
	if err == redis.Nil {
		return "", domain.ErrInvalidRefreshToken
	}
	if err != nil {
		return "", fmt.Errorf("consume refresh token: %w", err)
	}
	return userID, nil
}

func (s *TokenStore) Revoke(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, key(token)).Err(); err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	return nil
}

func key(token string) string {
	return fmt.Sprintf(refreshTokenKey, token)
}
