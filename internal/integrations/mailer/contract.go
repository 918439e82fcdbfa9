package mailer

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics счётчик отправленных писем
type Metrics interface {
	IncMail(result string)
}
