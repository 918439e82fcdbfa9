package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch возвращается, если пароль не совпадает с хешем
var ErrMismatch = errors.New("password: mismatch")

// Hasher хеширует пароли через bcrypt
type Hasher struct {
	cost int
}

// NewHasher создает bcrypt-хешер. cost вне допустимого диапазона заменяется на bcrypt.DefaultCost
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash возвращает bcrypt-хеш пароля
func (h *Hasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare сверяет пароль с хешем
func (h *Hasher) Compare(hash, plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
