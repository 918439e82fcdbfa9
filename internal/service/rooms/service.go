package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/EduManager-BookingService/internal/domain"
	roomRepo "github.com/m04kA/EduManager-BookingService/internal/infra/storage/room"
	"github.com/m04kA/EduManager-BookingService/internal/service/rooms/models"
)

// Service сервис управления комнатами
type Service struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса комнат
func NewService(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// List возвращает все комнаты
func (s *Service) List(ctx context.Context) ([]*models.RoomResponse, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainRoomList(rooms), nil
}

// Create создает комнату; статус по умолчанию Available
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Create: creating room name=%q, capacity=%d", req.Name, req.Capacity)

	status := domain.RoomAvailable
	if req.Status != nil {
		status = domain.RoomStatus(*req.Status)
	}

	room := &domain.Room{
		Name:      strings.TrimSpace(req.Name),
		Capacity:  req.Capacity,
		Equipment: req.Equipment,
		Status:    status,
	}

	if err := validateRoom(room); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNameTaken) {
			s.logger.Warn("Create: room name %q already exists", room.Name)
			return nil, ErrNameTaken
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: room id=%d created", created.ID)
	return models.FromDomainRoom(created), nil
}

// Update частично обновляет комнату
// Перевод в Maintenance удаляет все бронирования комнаты в той же транзакции
func (s *Service) Update(ctx context.Context, req *models.UpdateRoomRequest) (*models.UpdateRoomResult, error) {
	s.logger.Info("Update: updating room id=%d", req.RoomID)

	update := domain.RoomUpdate{
		Name:      req.Name,
		Capacity:  req.Capacity,
		Equipment: req.Equipment,
	}
	if req.Status != nil {
		status := domain.RoomStatus(*req.Status)
		if !status.IsValid() {
			s.logger.Warn("Update: invalid status %q for room id=%d", *req.Status, req.RoomID)
			return nil, ErrInvalidStatus
		}
		update.Status = &status
	}

	result := &models.UpdateRoomResult{}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Строка комнаты блокируется до конца транзакции
		room, err := s.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("%w: Update - get room: %w", ErrInternal, err)
		}

		update.Apply(room)
		room.Name = strings.TrimSpace(room.Name)
		if err := validateRoom(room); err != nil {
			return err
		}

		// Комната на обслуживании не может иметь бронирований
		if room.IsUnderMaintenance() {
			cancelled, err := s.bookingRepo.DeleteByRoom(txCtx, room.ID)
			if err != nil {
				return fmt.Errorf("%w: Update - delete bookings: %w", ErrInternal, err)
			}
			result.MaintenanceApplied = update.Status != nil
			result.CancelledBookings = cancelled
		}

		if err := s.roomRepo.Update(txCtx, room); err != nil {
			if errors.Is(err, roomRepo.ErrRoomNameTaken) {
				return ErrNameTaken
			}
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("%w: Update - update room: %w", ErrInternal, err)
		}

		result.Room = models.FromDomainRoom(room)
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrInternal) {
			s.logger.Error("Update: failed to update room id=%d: %v", req.RoomID, err)
		} else {
			s.logger.Warn("Update: room id=%d not updated: %v", req.RoomID, err)
		}
		return nil, err
	}

	if result.MaintenanceApplied {
		s.logger.Info("Update: room id=%d moved to maintenance, %d bookings cancelled",
			req.RoomID, result.CancelledBookings)
	} else {
		s.logger.Info("Update: room id=%d updated", req.RoomID)
	}

	return result, nil
}

// Delete удаляет комнату вместе с её бронированиями
func (s *Service) Delete(ctx context.Context, roomID int64) error {
	s.logger.Info("Delete: deleting room id=%d", roomID)

	if err := s.roomRepo.Delete(ctx, roomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Delete: room id=%d not found", roomID)
			return ErrRoomNotFound
		}
		s.logger.Error("Delete: repository error for room id=%d: %v", roomID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: room id=%d deleted", roomID)
	return nil
}

func validateRoom(room *domain.Room) error {
	if room.Name == "" {
		return fmt.Errorf("%w: room name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(room.Name) > domain.MaxRoomNameLength {
		return fmt.Errorf("%w: room name is too long", ErrInvalidInput)
	}
	if utf8.RuneCountInString(room.Equipment) > domain.MaxEquipmentLength {
		return fmt.Errorf("%w: equipment is too long", ErrInvalidInput)
	}
	if room.Capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative", ErrInvalidInput)
	}
	if !room.Status.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}
