package session

import "errors"

var (
	// ErrSessionNotFound возвращается, если сессия не существует или истекла
	ErrSessionNotFound = errors.New("session.store: session not found")

	// ErrStore возвращается при ошибке Redis
	ErrStore = errors.New("session.store: redis error")
)
