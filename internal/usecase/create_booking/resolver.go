package create_booking

import (
	"fmt"

	"github.com/m04kA/EduManager-BookingService/internal/domain"
	"github.com/m04kA/EduManager-BookingService/pkg/types"
)

// Outcome итог проверки бронирования
type Outcome string

const (
	OutcomeAccepted Outcome = "accepted"
	OutcomeRejected Outcome = "rejected"
	OutcomeInvalid  Outcome = "invalid"
)

// SkippedBooking сохранённое бронирование, которое не удалось разобрать
type SkippedBooking struct {
	BookingID int64
	Err       error
}

// Decision решение по запросу на бронирование
type Decision struct {
	Outcome  Outcome
	Reason   error               // nil для Accepted
	Interval domain.TimeInterval // запрошенный интервал (для Accepted и Rejected)
	Skipped  []SkippedBooking    // нераспознанные записи, не участвовавшие в проверке
}

// Resolve проверяет, можно ли занять комнату на интервал [start, start+duration).
// existing - бронирования этой комнаты в порядке хранения; возвращается первое пересечение.
// Запись с нераспознанным началом или длительностью пропускается и не блокирует бронирование.
func Resolve(room *domain.Room, startTime string, label types.DurationLabel, existing []*domain.Booking) Decision {
	if room == nil {
		return invalid(ErrRoomNotFound)
	}
	if room.IsUnderMaintenance() {
		return invalid(ErrRoomMaintenance)
	}

	start, err := types.ParseInstant(startTime)
	if err != nil {
		return invalid(ErrInvalidStartTime)
	}

	duration, err := label.Duration()
	if err != nil {
		return invalid(ErrInvalidDuration)
	}

	requested := domain.NewTimeInterval(start, duration)
	if !requested.IsValid() {
		return invalid(ErrInvalidDuration)
	}
	decision := Decision{Outcome: OutcomeAccepted, Interval: requested}

	for _, b := range existing {
		occupied, err := storedInterval(b)
		if err != nil {
			decision.Skipped = append(decision.Skipped, SkippedBooking{BookingID: b.ID, Err: err})
			continue
		}

		if requested.Overlaps(occupied) {
			decision.Outcome = OutcomeRejected
			decision.Reason = &ConflictError{
				BookingID:  b.ID,
				BookerName: b.BookerName,
				Window:     occupied.LocalWindow(),
			}
			return decision
		}
	}

	return decision
}

func storedInterval(b *domain.Booking) (domain.TimeInterval, error) {
	start, err := types.ParseInstant(b.StartTime)
	if err != nil {
		return domain.TimeInterval{}, err
	}

	duration, err := types.DurationLabel(b.DurationLabel).StoredDuration()
	if err != nil {
		return domain.TimeInterval{}, err
	}

	interval := domain.NewTimeInterval(start, duration)
	if !interval.IsValid() {
		return domain.TimeInterval{}, fmt.Errorf("%w: non-positive duration %q", ErrInvalidDuration, b.DurationLabel)
	}

	return interval, nil
}

func invalid(reason error) Decision {
	return Decision{Outcome: OutcomeInvalid, Reason: reason}
}
