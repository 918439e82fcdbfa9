package users

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("users: user not found")

	// ErrInvalidRole возвращается для неизвестной роли
	ErrInvalidRole = errors.New("users: invalid role")

	// ErrEmailTaken возвращается, если email принадлежит другому пользователю
	ErrEmailTaken = errors.New("users: email already taken")

	// ErrSelfDelete возвращается при попытке удалить собственную учётную запись
	ErrSelfDelete = errors.New("users: cannot delete yourself")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("users: internal error")
)
