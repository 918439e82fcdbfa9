package seed_defaults

import "errors"

var (
	// ErrSeedAdmin возвращается, если не удалось создать администратора
	ErrSeedAdmin = errors.New("seed_defaults: failed to seed admin")

	// ErrSeedRooms возвращается, если не удалось создать комнаты
	ErrSeedRooms = errors.New("seed_defaults: failed to seed rooms")
)
