package otp

import "errors"

var (
	// ErrCodeNotFound возвращается, если код не выдавался или истёк
	ErrCodeNotFound = errors.New("otp.store: code not found or expired")

	// ErrCodeMismatch возвращается при неверном коде
	ErrCodeMismatch = errors.New("otp.store: code mismatch")

	// ErrStore возвращается при ошибке Redis или генерации кода
	ErrStore = errors.New("otp.store: internal error")
)
