package otp

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
)

// Purpose назначение кода; разные назначения не пересекаются
type Purpose string

const (
	PurposeRegister Purpose = "register" // subject = email
	PurposeReset    Purpose = "reset"    // subject = user id
	PurposeProfile  Purpose = "profile"  // subject = user id
)

// Store хранилище одноразовых кодов: otp:<purpose>:<subject> -> code
type Store struct {
	client RedisClient
	ttl    time.Duration
	length int
}

// NewStore создает хранилище кодов длины length с временем жизни ttl
func NewStore(client RedisClient, ttl time.Duration, length int) *Store {
	return &Store{client: client, ttl: ttl, length: length}
}

// Issue генерирует новый код и сохраняет его; предыдущий код того же назначения перезаписывается
func (s *Store) Issue(ctx context.Context, purpose Purpose, subject string) (string, error) {
	code, err := generateCode(s.length)
	if err != nil {
		return "", fmt.Errorf("%w: Issue - generate: %v", ErrStore, err)
	}

	if err := s.client.Set(ctx, Key(purpose, subject), code, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("%w: Issue - set: %v", ErrStore, err)
	}

	return code, nil
}

// Verify сверяет код и при совпадении удаляет его
// Неверный код не сбрасывает сохранённый
func (s *Store) Verify(ctx context.Context, purpose Purpose, subject, code string) error {
	k := Key(purpose, subject)

	stored, err := s.client.Get(ctx, k).Result()
	if errors.Is(err, redis.Nil) {
		return ErrCodeNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: Verify - get: %v", ErrStore, err)
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return ErrCodeMismatch
	}

	if err := s.client.Del(ctx, k).Err(); err != nil {
		return fmt.Errorf("%w: Verify - del: %v", ErrStore, err)
	}

	return nil
}

// Discard удаляет код (например, если письмо не удалось отправить)
func (s *Store) Discard(ctx context.Context, purpose Purpose, subject string) error {
	if err := s.client.Del(ctx, Key(purpose, subject)).Err(); err != nil {
		return fmt.Errorf("%w: Discard - del: %v", ErrStore, err)
	}
	return nil
}

// Key ключ Redis для кода
func Key(purpose Purpose, subject string) string {
	return "otp:" + string(purpose) + ":" + subject
}

func generateCode(length int) (string, error) {
	buf := make([]byte, length)
	ten := big.NewInt(10)
	for i := range buf {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", err
		}
		buf[i] = byte('0' + n.Int64())
	}
	return string(buf), nil
}
