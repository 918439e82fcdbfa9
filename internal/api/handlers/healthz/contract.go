package healthz

import "context"

// Check проверка зависимости; nil означает, что зависимость доступна
type Check func(ctx context.Context) error

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
