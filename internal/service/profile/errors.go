package profile

import "errors"

var (
	// ErrOTPRequired возвращается, если изменение email или телефона пришло без кода
	ErrOTPRequired = errors.New("profile: otp required")

	// ErrInvalidOTP возвращается при неверном или истёкшем коде
	ErrInvalidOTP = errors.New("profile: invalid otp")

	// ErrEmailTaken возвращается, если email принадлежит другому пользователю
	ErrEmailTaken = errors.New("profile: email already taken")

	// ErrMailDelivery возвращается, если письмо не удалось отправить
	ErrMailDelivery = errors.New("profile: mail delivery failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("profile: internal error")
)
