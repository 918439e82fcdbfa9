package types

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidInstant возвращается, если строку времени нельзя разобрать как ISO-8601
var ErrInvalidInstant = errors.New("invalid ISO-8601 instant")

// Форматы без смещения трактуются как UTC
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
}

// ParseInstant разбирает момент времени ISO-8601 ("2024-01-01T02:00:00Z", "...+07:00",
// "2024-01-01T02:00:00.000Z") и возвращает его в UTC
func ParseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidInstant
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrInvalidInstant
}
