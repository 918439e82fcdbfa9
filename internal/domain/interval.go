package domain

import "time"

// LocalDisplayOffset смещение часового пояса для сообщений пользователю (UTC+7)
// Все хранимые и сравниваемые моменты остаются в UTC
const LocalDisplayOffset = 7 * time.Hour

// TimeInterval полуоткрытый интервал [Start, End)
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

// NewTimeInterval создает интервал длительностью d от start
func NewTimeInterval(start time.Time, d time.Duration) TimeInterval {
	return TimeInterval{Start: start, End: start.Add(d)}
}

// IsValid returns true if End is after Start
func (i TimeInterval) IsValid() bool {
	return i.End.After(i.Start)
}

// Overlaps returns true if the intervals intersect; touching endpoints do not overlap
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// LocalWindow форматирует интервал как "HH:MM - HH:MM" в часовом поясе отображения
func (i TimeInterval) LocalWindow() string {
	start := i.Start.UTC().Add(LocalDisplayOffset)
	end := i.End.UTC().Add(LocalDisplayOffset)
	return start.Format(TimeFormat) + " - " + end.Format(TimeFormat)
}
