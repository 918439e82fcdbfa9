package auth

import "strings"

// MaskEmail скрывает середину адреса: первые три символа, "****" и домен
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return "****"
	}
	local, domainPart := email[:at], email[at:]
	runes := []rune(local)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return string(runes) + "****" + domainPart
}
