package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// Store хранилище сессий в Redis: session:<token> -> user id
type Store struct {
	client RedisClient
	ttl    time.Duration
}

// NewStore создает хранилище сессий
func NewStore(client RedisClient, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// TTL время жизни сессии
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Create создает сессию пользователя и возвращает её токен
func (s *Store) Create(ctx context.Context, userID int64) (string, error) {
	token := uuid.NewString()

	if err := s.client.Set(ctx, key(token), userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("%w: Create - set: %v", ErrStore, err)
	}

	return token, nil
}

// Get возвращает ID пользователя по токену
func (s *Store) Get(ctx context.Context, token string) (int64, error) {
	if _, err := uuid.Parse(token); err != nil {
		return 0, ErrSessionNotFound
	}

	value, err := s.client.Get(ctx, key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrSessionNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: Get - get: %v", ErrStore, err)
	}

	userID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: Get - corrupted session value %q", ErrStore, value)
	}

	return userID, nil
}

// Delete удаляет сессию; отсутствие сессии не считается ошибкой
func (s *Store) Delete(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.client.Del(ctx, key(token)).Err(); err != nil {
		return fmt.Errorf("%w: Delete - del: %v", ErrStore, err)
	}
	return nil
}

func key(token string) string {
	return keyPrefix + token
}
