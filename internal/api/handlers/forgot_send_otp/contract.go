package forgot_send_otp

import "context"

type AuthService interface {
	SendResetOTP(ctx context.Context, username string) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
