package mailer

import "errors"

var (
	// ErrInvalidRecipient возвращается для пустого или некорректного адреса
	ErrInvalidRecipient = errors.New("mailer: invalid recipient")

	// ErrDelivery возвращается, если письмо не удалось отправить
	ErrDelivery = errors.New("mailer: delivery failed")
)
