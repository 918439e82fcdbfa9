package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EduManager-BookingService/internal/domain"
	roomRepo "github.com/m04kA/EduManager-BookingService/internal/infra/storage/room"
	"github.com/m04kA/EduManager-BookingService/pkg/txmanager"
)

type mockRoomRepo struct {
	mock.Mock
}

func (m *mockRoomRepo) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	room, _ := args.Get(0).(*domain.Room)
	return room, args.Error(1)
}

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	created, _ := args.Get(0).(*domain.Booking)
	return created, args.Error(1)
}

func (m *mockBookingRepo) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	bookings, _ := args.Get(0).([]*domain.Booking)
	return bookings, args.Error(1)
}

// fakeTxManager выполняет fn без БД; повторяет при ошибках сериализации как настоящий менеджер
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt <= txmanager.DefaultSerializableRetries; attempt++ {
		f.calls++
		err = fn(ctx)
		if err == nil || !txmanager.IsRetryable(err) {
			return err
		}
	}
	return err
}

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) IncBookingDecision(outcome string) {
	m.Called(outcome)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	rooms    *mockRoomRepo
	bookings *mockBookingRepo
	tx       *fakeTxManager
	metrics  *mockMetrics
	uc       *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		rooms:    new(mockRoomRepo),
		bookings: new(mockBookingRepo),
		tx:       &fakeTxManager{},
		metrics:  new(mockMetrics),
	}
	f.uc = NewUseCase(f.rooms, f.bookings, f.tx, f.metrics, nopLogger{})
	return f
}

func validRequest(start string) *Request {
	return &Request{
		RoomID:        1,
		UserID:        7,
		BookerName:    "Nguyễn Văn B",
		StartTime:     start,
		DurationLabel: "1 Giờ",
	}
}

var roomFilter = domain.BookingsFilter{RoomID: func() *int64 { id := int64(1); return &id }()}

func TestUseCase_Execute_Accepted(t *testing.T) {
	f := newFixture()
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	f.rooms.On("GetByID", mock.Anything, int64(1)).Return(availableRoom(), nil)
	f.bookings.On("List", mock.Anything, roomFilter).Return([]*domain.Booking{aliceBooking()}, nil)
	f.bookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.RoomID == 1 && b.UserID == 7 &&
			b.BookerName == "Nguyễn Văn B" &&
			b.StartTime == "2024-01-01T03:00:00Z" &&
			b.DurationLabel == "1 Giờ" &&
			b.Status == domain.StatusConfirmed
	})).Return(&domain.Booking{
		ID: 11, RoomID: 1, UserID: 7, BookerName: "Nguyễn Văn B",
		StartTime: "2024-01-01T03:00:00Z", DurationLabel: "1 Giờ",
		Status: domain.StatusConfirmed, CreatedAt: createdAt,
	}, nil)
	f.metrics.On("IncBookingDecision", "accepted").Once()

	resp, err := f.uc.Execute(context.Background(), validRequest("2024-01-01T03:00:00Z"))

	require.NoError(t, err)
	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, "Confirmed", resp.Status)
	assert.Equal(t, time.Date(2024, 1, 1, 4, 0, 0, 0, time.UTC), resp.End)
	f.bookings.AssertExpectations(t)
	f.metrics.AssertExpectations(t)
}

func TestUseCase_Execute_Conflict(t *testing.T) {
	f := newFixture()

	f.rooms.On("GetByID", mock.Anything, int64(1)).Return(availableRoom(), nil)
	f.bookings.On("List", mock.Anything, roomFilter).Return([]*domain.Booking{aliceBooking()}, nil)
	f.metrics.On("IncBookingDecision", "rejected").Once()

	resp, err := f.uc.Execute(context.Background(), validRequest("2024-01-01T02:30:00Z"))

	assert.Nil(t, resp)
	require.ErrorIs(t, err, ErrConflict)

	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Contains(t, conflict.Message(), "Alice")
	assert.Contains(t, conflict.Message(), "09:00 - 10:00")
	f.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.metrics.AssertExpectations(t)
}

func TestUseCase_Execute_RoomNotFound(t *testing.T) {
	f := newFixture()

	f.rooms.On("GetByID", mock.Anything, int64(1)).Return(nil, roomRepo.ErrRoomNotFound)
	f.metrics.On("IncBookingDecision", "invalid").Once()

	_, err := f.uc.Execute(context.Background(), validRequest("2024-01-01T02:00:00Z"))

	assert.ErrorIs(t, err, ErrRoomNotFound)
	f.bookings.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_Maintenance(t *testing.T) {
	f := newFixture()
	room := availableRoom()
	room.Status = domain.RoomMaintenance

	f.rooms.On("GetByID", mock.Anything, int64(1)).Return(room, nil)
	f.bookings.On("List", mock.Anything, roomFilter).Return([]*domain.Booking{}, nil)
	f.metrics.On("IncBookingDecision", "invalid").Once()

	_, err := f.uc.Execute(context.Background(), validRequest("2024-01-01T02:00:00Z"))

	assert.ErrorIs(t, err, ErrRoomMaintenance)
	f.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(req *Request)
		wantErr error
	}{
		{"zero room id", func(req *Request) { req.RoomID = 0 }, ErrRoomNotFound},
		{"negative room id", func(req *Request) { req.RoomID = -3 }, ErrRoomNotFound},
		{"zero user id", func(req *Request) { req.UserID = 0 }, ErrInvalidInput},
		{"blank booker name", func(req *Request) { req.BookerName = "  " }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			req := validRequest("2024-01-01T02:00:00Z")
			tt.modify(req)

			_, err := f.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, f.tx.calls)
			f.metrics.AssertNotCalled(t, "IncBookingDecision", mock.Anything)
		})
	}
}

func TestUseCase_Execute_RepositoryError(t *testing.T) {
	f := newFixture()

	f.rooms.On("GetByID", mock.Anything, int64(1)).Return(nil, errors.New("connection reset"))

	_, err := f.uc.Execute(context.Background(), validRequest("2024-01-01T02:00:00Z"))

	assert.ErrorIs(t, err, ErrInternal)
	f.metrics.AssertNotCalled(t, "IncBookingDecision", mock.Anything)
}

func TestUseCase_Execute_RetriesSerializationFailure(t *testing.T) {
	f := newFixture()
	serialization := &pq.Error{Code: "40001", Message: "could not serialize access"}

	f.rooms.On("GetByID", mock.Anything, int64(1)).Return(availableRoom(), nil)
	f.bookings.On("List", mock.Anything, roomFilter).Return([]*domain.Booking{}, nil)
	f.bookings.On("Create", mock.Anything, mock.Anything).Return(nil, serialization).Once()
	f.bookings.On("Create", mock.Anything, mock.Anything).Return(&domain.Booking{ID: 12, Status: domain.StatusConfirmed}, nil).Once()
	f.metrics.On("IncBookingDecision", "accepted").Once()

	resp, err := f.uc.Execute(context.Background(), validRequest("2024-01-01T02:00:00Z"))

	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.ID)
	assert.Equal(t, 2, f.tx.calls)
	f.metrics.AssertExpectations(t)
}
