package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/EduManager-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/EduManager-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/EduManager-BookingService/internal/service/bookings/models"
	roomModels "github.com/m04kA/EduManager-BookingService/internal/service/rooms/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Delete удаляет бронирование
// Администратор может удалить любое бронирование, преподаватель только своё
func (s *Service) Delete(ctx context.Context, actor *domain.User, bookingID int64) error {
	s.logger.Info("Delete: deleting booking id=%d by user=%d", bookingID, actor.ID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if !actor.IsAdmin() && !booking.IsOwnedBy(actor.ID) {
		s.logger.Warn("Delete: access denied for user=%d to booking id=%d", actor.ID, bookingID)
		return ErrAccessDenied
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: failed to delete booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking id=%d deleted", bookingID)
	return nil
}

// Scheduler возвращает все комнаты и все бронирования
func (s *Service) Scheduler(ctx context.Context) (*models.SchedulerView, error) {
	view := &models.SchedulerView{}

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		rooms, err := s.roomRepo.List(txCtx)
		if err != nil {
			return fmt.Errorf("%w: Scheduler - list rooms: %v", ErrInternal, err)
		}

		bookings, err := s.bookingRepo.List(txCtx, domain.BookingsFilter{})
		if err != nil {
			return fmt.Errorf("%w: Scheduler - list bookings: %v", ErrInternal, err)
		}

		view.Rooms = roomModels.FromDomainRoomList(rooms)
		view.Bookings = models.FromDomainBookingList(bookings)
		return nil
	})

	if err != nil {
		s.logger.Error("Scheduler: %v", err)
		return nil, err
	}

	return view, nil
}

// Dashboard возвращает сводку для главной страницы
func (s *Service) Dashboard(ctx context.Context, actor *domain.User) (*models.DashboardView, error) {
	view := &models.DashboardView{}

	// Администратор видит общее количество бронирований, остальные свои
	var countFilter *int64
	if !actor.IsAdmin() {
		countFilter = &actor.ID
	}

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		rooms, err := s.roomRepo.List(txCtx)
		if err != nil {
			return fmt.Errorf("%w: Dashboard - list rooms: %v", ErrInternal, err)
		}

		count, err := s.bookingRepo.Count(txCtx, countFilter)
		if err != nil {
			return fmt.Errorf("%w: Dashboard - count bookings: %v", ErrInternal, err)
		}

		history, err := s.bookingRepo.ListHistory(txCtx, domain.BookingsFilter{
			Latest: true,
			Limit:  domain.DashboardHistoryLen,
		})
		if err != nil {
			return fmt.Errorf("%w: Dashboard - list history: %v", ErrInternal, err)
		}

		view.Rooms = roomModels.FromDomainRoomList(rooms)
		view.TotalRooms = len(rooms)
		for _, r := range rooms {
			if r.IsAvailable() {
				view.AvailableRooms++
			}
		}
		view.BookingCount = count
		view.History = models.FromDomainHistory(history)
		return nil
	})

	if err != nil {
		s.logger.Error("Dashboard: user=%d: %v", actor.ID, err)
		return nil, err
	}

	return view, nil
}
