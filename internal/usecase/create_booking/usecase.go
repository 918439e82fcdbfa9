package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/EduManager-BookingService/internal/domain"
	roomRepo "github.com/m04kA/EduManager-BookingService/internal/infra/storage/room"
	"github.com/m04kA/EduManager-BookingService/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil
func NewUseCase(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка пересечений и вставка выполняются в одной сериализуемой транзакции
// под блокировкой строки комнаты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, room=%d, start=%q, duration=%q",
		req.UserID, req.RoomID, req.StartTime, req.DurationLabel)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var (
		result   *domain.Booking
		decision Decision
	)

	// 2. Проверка и сохранение в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// При повторе транзакции решение принимается заново
		decision = Decision{}

		// 2.1. Получаем комнату с блокировкой (FOR UPDATE)
		room, err := uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil && !errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %w", ErrInternal, err)
		}

		// 2.2. Получаем бронирования комнаты в порядке хранения
		var existing []*domain.Booking
		if room != nil {
			existing, err = uc.bookingRepo.List(txCtx, domain.BookingsFilter{RoomID: &req.RoomID})
			if err != nil {
				uc.logger.Error("CreateBooking: failed to get bookings for room id=%d: %v", req.RoomID, err)
				return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
			}
		}

		// 2.3. Проверяем пересечения
		decision = Resolve(room, req.StartTime, types.DurationLabel(req.DurationLabel), existing)
		for _, skipped := range decision.Skipped {
			uc.logger.Warn("CreateBooking: skipped unparsable booking id=%d in room id=%d: %v",
				skipped.BookingID, req.RoomID, skipped.Err)
		}

		if decision.Outcome != OutcomeAccepted {
			return decision.Reason
		}

		// 2.4. Сохраняем бронирование в исходном формате клиента
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			RoomID:        req.RoomID,
			UserID:        req.UserID,
			BookerName:    req.BookerName,
			StartTime:     req.StartTime,
			DurationLabel: req.DurationLabel,
			Status:        domain.StatusConfirmed,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if decision.Outcome != "" && (err == nil || decision.Outcome != OutcomeAccepted) {
		uc.recordDecision(decision.Outcome)
	}

	if err != nil {
		switch decision.Outcome {
		case OutcomeRejected:
			uc.logger.Warn("CreateBooking: rejected for room id=%d: %v", req.RoomID, err)
		case OutcomeInvalid:
			uc.logger.Warn("CreateBooking: invalid request for room id=%d: %v", req.RoomID, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:            result.ID,
		RoomID:        result.RoomID,
		UserID:        result.UserID,
		BookerName:    result.BookerName,
		StartTime:     result.StartTime,
		DurationLabel: result.DurationLabel,
		Start:         decision.Interval.Start,
		End:           decision.Interval.End,
		Status:        string(result.Status),
		CreatedAt:     result.CreatedAt,
	}, nil
}

func (uc *UseCase) recordDecision(outcome Outcome) {
	if uc.metrics != nil {
		uc.metrics.IncBookingDecision(string(outcome))
	}
}
