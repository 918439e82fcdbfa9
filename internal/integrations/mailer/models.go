package mailer

// Message письмо
type Message struct {
	From     string
	To       string
	Subject  string
	HTMLBody string
}

// Config параметры SMTP сервера
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string // если пусто, используется Username
}
