package auth

import "errors"

var (
	// ErrUsernameTaken возвращается, если логин уже занят
	ErrUsernameTaken = errors.New("auth: username already taken")

	// ErrEmailTaken возвращается, если email уже используется
	ErrEmailTaken = errors.New("auth: email already taken")

	// ErrFullNameTaken возвращается, если ФИО уже используется
	ErrFullNameTaken = errors.New("auth: full name already taken")

	// ErrInvalidRole возвращается для роли, недоступной при регистрации
	ErrInvalidRole = errors.New("auth: invalid role")

	// ErrInvalidOTP возвращается при неверном или истёкшем коде
	ErrInvalidOTP = errors.New("auth: invalid otp")

	// ErrMailDelivery возвращается, если письмо не удалось отправить
	ErrMailDelivery = errors.New("auth: mail delivery failed")

	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrUserNotFound возвращается, если пользователь не найден
	ErrUserNotFound = errors.New("auth: user not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
