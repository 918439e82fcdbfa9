package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("rooms: room not found")

	// ErrNameTaken возвращается, когда название комнаты уже занято
	ErrNameTaken = errors.New("rooms: room name already exists")

	// ErrInvalidStatus возвращается для статуса вне {Available, Maintenance}
	ErrInvalidStatus = errors.New("rooms: invalid room status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("rooms: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("rooms: internal error")
)
