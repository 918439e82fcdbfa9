package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrRoomMaintenance возвращается, когда комната на обслуживании
	ErrRoomMaintenance = errors.New("create_booking: room is under maintenance")

	// ErrInvalidStartTime возвращается, если время начала не является моментом ISO-8601
	ErrInvalidStartTime = errors.New("create_booking: invalid start time")

	// ErrInvalidDuration возвращается, если метку длительности нельзя разобрать
	ErrInvalidDuration = errors.New("create_booking: invalid duration label")

	// ErrConflict возвращается, когда интервал пересекается с существующим бронированием
	ErrConflict = errors.New("create_booking: booking conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ConflictError описывает первое найденное пересечение
type ConflictError struct {
	BookingID  int64
	BookerName string
	Window     string // "HH:MM - HH:MM" в часовом поясе отображения
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: booking id=%d by %q (%s)", ErrConflict, e.BookingID, e.BookerName, e.Window)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// Message сообщение для пользователя
func (e *ConflictError) Message() string {
	return fmt.Sprintf("Bị trùng! Đã có lịch của %s (%s)", e.BookerName, e.Window)
}
