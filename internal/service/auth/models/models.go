package models

// SendRegistrationOTPRequest первый шаг регистрации
type SendRegistrationOTPRequest struct {
	Username string
	Email    string
}

// ConfirmRegistrationRequest второй шаг регистрации
type ConfirmRegistrationRequest struct {
	Username string
	Password string
	Email    string
	Phone    string
	Role     string
	FullName string
	OTP      string
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Username string
	Password string
}

// LoginResult результат входа
type LoginResult struct {
	Token  string
	UserID int64
	Role   string
}

// ResetPasswordRequest сброс пароля по коду
type ResetPasswordRequest struct {
	Username    string
	OTP         string
	NewPassword string
}
