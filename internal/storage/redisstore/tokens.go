// internal/storage/redisstore/tokens.go
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"jobtrack/internal/storage"

	"github.com/redis/go-redis/v9"
)

const tokenKeyPrefix = "refresh_token:"

// TokenRepo implements the storage.TokenRepository interface on Redis.
// Refresh tokens are stored as token-id -> user-id entries that expire with
// the token itself, so revocation is a single DEL and rotation is
// save-new-then-delete-old.
type TokenRepo struct {
	client *redis.Client
}

// NewTokenRepo creates a new TokenRepo.
func NewTokenRepo(client *redis.Client) *TokenRepo {
	return &TokenRepo{client: client}
}

// Compile-time check to ensure TokenRepo implements TokenRepository
var _ storage.TokenRepository = (*TokenRepo)(nil)

// Save stores a refresh token id for the user with the given TTL.
func (r *TokenRepo) Save(ctx context.Context, tokenID string, userID int64, ttl time.Duration) error {
	key := tokenKeyPrefix + tokenID
	if err := r.client.Set(ctx, key, userID, ttl).Err(); err != nil {
		log.Printf("Error saving refresh token for user %d: %v\n", userID, err)
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

// UserID resolves a refresh token id to its user, or ErrNotFound if the
// token is unknown, expired or revoked.
func (r *TokenRepo) UserID(ctx context.Context, tokenID string) (int64, error) {
	val, err := r.client.Get(ctx, tokenKeyPrefix+tokenID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, storage.ErrNotFound
		}
		log.Printf("Error looking up refresh token: %v\n", err)
		return 0, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt refresh token entry: %w", err)
	}
	return userID, nil
}

// Delete revokes a refresh token. Deleting an unknown token is not an error.
func (r *TokenRepo) Delete(ctx context.Context, tokenID string) error {
	if err := r.client.Del(ctx, tokenKeyPrefix+tokenID).Err(); err != nil {
		log.Printf("Error deleting refresh token: %v\n", err)
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}
