package create_booking

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EduManager-BookingService/internal/domain"
	"github.com/m04kA/EduManager-BookingService/pkg/types"
)

func availableRoom() *domain.Room {
	return &domain.Room{ID: 1, Name: "Phòng A101", Capacity: 40, Status: domain.RoomAvailable}
}

func aliceBooking() *domain.Booking {
	return &domain.Booking{
		ID:            10,
		RoomID:        1,
		BookerName:    "Alice",
		StartTime:     "2024-01-01T02:00:00Z",
		DurationLabel: "1 Giờ",
		Status:        domain.StatusConfirmed,
	}
}

func TestResolve_AliceScenario(t *testing.T) {
	existing := []*domain.Booking{aliceBooking()}

	t.Run("overlap is rejected with local window", func(t *testing.T) {
		d := Resolve(availableRoom(), "2024-01-01T02:30:00Z", "1 Giờ", existing)

		require.Equal(t, OutcomeRejected, d.Outcome)
		assert.ErrorIs(t, d.Reason, ErrConflict)

		var conflict *ConflictError
		require.True(t, errors.As(d.Reason, &conflict))
		assert.Equal(t, "Alice", conflict.BookerName)
		assert.Equal(t, "09:00 - 10:00", conflict.Window)
		assert.Equal(t, "Bị trùng! Đã có lịch của Alice (09:00 - 10:00)", conflict.Message())
	})

	t.Run("touching endpoint is accepted", func(t *testing.T) {
		d := Resolve(availableRoom(), "2024-01-01T03:00:00Z", "1 Giờ", existing)
		assert.Equal(t, OutcomeAccepted, d.Outcome)
		assert.NoError(t, d.Reason)
	})

	t.Run("request ending at existing start is accepted", func(t *testing.T) {
		d := Resolve(availableRoom(), "2024-01-01T01:00:00Z", "1 Giờ", existing)
		assert.Equal(t, OutcomeAccepted, d.Outcome)
	})

	t.Run("request containing existing is rejected", func(t *testing.T) {
		d := Resolve(availableRoom(), "2024-01-01T01:00:00Z", "3 Giờ", existing)
		assert.Equal(t, OutcomeRejected, d.Outcome)
	})

	t.Run("offset notation is compared in UTC", func(t *testing.T) {
		d := Resolve(availableRoom(), "2024-01-01T09:30:00+07:00", "30 Phút", existing)
		assert.Equal(t, OutcomeRejected, d.Outcome)
	})
}

func TestResolve_Interval(t *testing.T) {
	d := Resolve(availableRoom(), "2024-01-01T02:00:00Z", "2 Giờ 30 Phút", nil)

	require.Equal(t, OutcomeAccepted, d.Outcome)
	assert.Equal(t, time.Date(2024, 1, 1, 2, 0, 0, 0, time.UTC), d.Interval.Start)
	assert.Equal(t, time.Date(2024, 1, 1, 4, 30, 0, 0, time.UTC), d.Interval.End)
}

func TestResolve_FlatHalfHourForMinutes(t *testing.T) {
	// "1 Giờ 5 Phút" занимает 1.5 часа: 02:00-03:30
	existing := []*domain.Booking{{
		ID: 1, BookerName: "Bob", StartTime: "2024-01-01T02:00:00Z", DurationLabel: "1 Giờ 5 Phút",
	}}

	d := Resolve(availableRoom(), "2024-01-01T03:15:00Z", "1 Giờ", existing)
	require.Equal(t, OutcomeRejected, d.Outcome)

	var conflict *ConflictError
	require.True(t, errors.As(d.Reason, &conflict))
	assert.Equal(t, "09:00 - 10:30", conflict.Window)

	d = Resolve(availableRoom(), "2024-01-01T03:30:00Z", "1 Giờ", existing)
	assert.Equal(t, OutcomeAccepted, d.Outcome)
}

func TestResolve_Invalid(t *testing.T) {
	maintenance := availableRoom()
	maintenance.Status = domain.RoomMaintenance

	tests := []struct {
		name  string
		room  *domain.Room
		start string
		label types.DurationLabel
		want  error
	}{
		{"room not found", nil, "2024-01-01T02:00:00Z", "1 Giờ", ErrRoomNotFound},
		{"maintenance", maintenance, "2024-01-01T02:00:00Z", "1 Giờ", ErrRoomMaintenance},
		{"bad start", availableRoom(), "tomorrow morning", "1 Giờ", ErrInvalidStartTime},
		{"empty start", availableRoom(), "", "1 Giờ", ErrInvalidStartTime},
		{"non-integer hours", availableRoom(), "2024-01-01T02:00:00Z", "abc Giờ", ErrInvalidDuration},
		{"zero hours", availableRoom(), "2024-01-01T02:00:00Z", "0 Giờ", ErrInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Resolve(tt.room, tt.start, tt.label, []*domain.Booking{aliceBooking()})
			assert.Equal(t, OutcomeInvalid, d.Outcome)
			assert.ErrorIs(t, d.Reason, tt.want)
		})
	}
}

func TestResolve_MaintenanceRejectsEveryRequest(t *testing.T) {
	room := availableRoom()
	room.Status = domain.RoomMaintenance

	for _, start := range []string{"2024-01-01T00:00:00Z", "2030-06-01T12:00:00Z", "garbage"} {
		d := Resolve(room, start, "1 Giờ", nil)
		assert.ErrorIs(t, d.Reason, ErrRoomMaintenance, start)
	}
}

func TestResolve_MalformedHistoryNeverBlocks(t *testing.T) {
	existing := []*domain.Booking{
		{ID: 1, BookerName: "Broken start", StartTime: "not a date", DurationLabel: "1 Giờ"},
		{ID: 2, BookerName: "Broken label", StartTime: "2024-01-01T02:00:00Z", DurationLabel: "x Giờ"},
	}

	d := Resolve(availableRoom(), "2024-01-01T02:00:00Z", "1 Giờ", existing)

	assert.Equal(t, OutcomeAccepted, d.Outcome)
	require.Len(t, d.Skipped, 2)
	assert.Equal(t, int64(1), d.Skipped[0].BookingID)
	assert.Equal(t, int64(2), d.Skipped[1].BookingID)
}

func TestResolve_StoredDecimalHours(t *testing.T) {
	existing := []*domain.Booking{{
		ID: 1, BookerName: "Legacy", StartTime: "2024-01-01T02:00:00Z", DurationLabel: "1.5",
	}}

	d := Resolve(availableRoom(), "2024-01-01T03:15:00Z", "1 Giờ", existing)
	assert.Equal(t, OutcomeRejected, d.Outcome)
}

func TestResolve_StoredDurationRoundsToZeroIsSkipped(t *testing.T) {
	// Положительное число часов, но меньше наносекунды: пустой интервал
	existing := []*domain.Booking{{
		ID: 4, BookerName: "Legacy", StartTime: "2024-01-01T02:00:00Z", DurationLabel: "0.0000000000001",
	}}

	d := Resolve(availableRoom(), "2024-01-01T01:30:00Z", "1 Giờ", existing)

	assert.Equal(t, OutcomeAccepted, d.Outcome)
	require.Len(t, d.Skipped, 1)
	assert.Equal(t, int64(4), d.Skipped[0].BookingID)
	assert.ErrorIs(t, d.Skipped[0].Err, ErrInvalidDuration)
}

func TestResolve_FirstConflictInStorageOrder(t *testing.T) {
	existing := []*domain.Booking{
		{ID: 5, BookerName: "First", StartTime: "2024-01-01T02:00:00Z", DurationLabel: "2 Giờ"},
		{ID: 3, BookerName: "Second", StartTime: "2024-01-01T03:00:00Z", DurationLabel: "1 Giờ"},
	}

	d := Resolve(availableRoom(), "2024-01-01T03:00:00Z", "30 Phút", existing)

	var conflict *ConflictError
	require.True(t, errors.As(d.Reason, &conflict))
	assert.Equal(t, "First", conflict.BookerName)
	assert.Equal(t, int64(5), conflict.BookingID)
}

func TestResolve_DefaultOneHourLabel(t *testing.T) {
	existing := []*domain.Booking{aliceBooking()}

	d := Resolve(availableRoom(), "2024-01-01T01:30:00Z", "", existing)
	assert.Equal(t, OutcomeRejected, d.Outcome, "empty label means one hour: 01:30-02:30")
}
