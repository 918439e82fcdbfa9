package domain

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	// ErrPasswordTooShort возвращается для пароля не длиннее 8 символов
	ErrPasswordTooShort = errors.New("password must be longer than 8 characters")

	// ErrPasswordNoSpecial возвращается для пароля без специального символа
	ErrPasswordNoSpecial = errors.New("password must contain a special character")
)

// ValidatePassword проверяет политику паролей
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if !strings.ContainsAny(password, PasswordSpecials) {
		return ErrPasswordNoSpecial
	}
	return nil
}
