package types

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	hourWord   = "Giờ"
	minuteWord = "Phút"

	// DefaultHours длительность для нераспознанной метки
	DefaultHours = 1.0
	// MinutePartHours фиксированная добавка за любую минутную часть метки
	MinutePartHours = 0.5
)

// ErrInvalidDurationLabel возвращается, если метку длительности нельзя разобрать
var ErrInvalidDurationLabel = errors.New("invalid duration label")

// DurationLabel отображаемая строка длительности в унаследованном формате клиента:
// "<N> Giờ", "<N> Giờ <M> Phút", "<M> Phút".
//
// Отображение в часы сохраняется как есть: минутная часть всегда даёт ровно +0.5 часа,
// независимо от числа минут ("2 Giờ 45 Phút" == "2 Giờ 5 Phút" == 2.5).
type DurationLabel string

// Hours переводит метку запроса в часы
func (l DurationLabel) Hours() (float64, error) {
	s := string(l)

	switch {
	case strings.Contains(s, hourWord):
		return parseHourLabel(s)
	case strings.Contains(s, minuteWord):
		return MinutePartHours, nil
	default:
		return DefaultHours, nil
	}
}

// StoredHours переводит метку из сохранённой записи в часы
// Дополнительно к Hours принимает голое десятичное число часов ("1.5") из старых записей
func (l DurationLabel) StoredHours() (float64, error) {
	s := strings.TrimSpace(string(l))
	if s == "" || strings.Contains(s, hourWord) || strings.Contains(s, minuteWord) {
		return l.Hours()
	}

	hours, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return DefaultHours, nil
	}
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours <= 0 {
		return 0, ErrInvalidDurationLabel
	}
	return hours, nil
}

// Duration переводит метку запроса в time.Duration
func (l DurationLabel) Duration() (time.Duration, error) {
	hours, err := l.Hours()
	if err != nil {
		return 0, err
	}
	return HoursToDuration(hours), nil
}

// StoredDuration переводит метку сохранённой записи в time.Duration
func (l DurationLabel) StoredDuration() (time.Duration, error) {
	hours, err := l.StoredHours()
	if err != nil {
		return 0, err
	}
	return HoursToDuration(hours), nil
}

func (l DurationLabel) String() string {
	return string(l)
}

// HoursToDuration переводит дробные часы в time.Duration
func HoursToDuration(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}

func parseHourLabel(s string) (float64, error) {
	head, tail, found := strings.Cut(s, " "+hourWord)
	if !found {
		return 0, ErrInvalidDurationLabel
	}

	n, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0, ErrInvalidDurationLabel
	}

	hours := float64(n)

	// Смотрим только на часть между первым и следующим " Giờ"
	rest, _, _ := strings.Cut(tail, " "+hourWord)
	if strings.Contains(rest, minuteWord) {
		hours += MinutePartHours
	}

	if hours <= 0 {
		return 0, ErrInvalidDurationLabel
	}
	return hours, nil
}
