package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/EduManager-BookingService/internal/domain"
	userRepo "github.com/m04kA/EduManager-BookingService/internal/infra/storage/user"
	"github.com/m04kA/EduManager-BookingService/internal/service/users/models"
)

// Service сервис управления пользователями для администратора
type Service struct {
	userRepo UserRepository
	hasher   PasswordHasher
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, hasher PasswordHasher, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// List возвращает всех пользователей
func (s *Service) List(ctx context.Context) ([]*models.UserResponse, error) {
	list, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: failed to list users: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUserList(list), nil
}

// Update меняет контакты, роль и при необходимости пароль пользователя
func (s *Service) Update(ctx context.Context, req models.UpdateUserRequest) error {
	var update domain.UserUpdate
	update.Email = req.Email
	update.Phone = req.Phone

	if req.Role != nil {
		role := domain.Role(*req.Role)
		if !role.IsValid() {
			return ErrInvalidRole
		}
		update.Role = &role
	}

	if req.NewPassword != "" {
		if err := domain.ValidatePassword(req.NewPassword); err != nil {
			return err
		}
		hash, err := s.hasher.Hash(req.NewPassword)
		if err != nil {
			return fmt.Errorf("%w: Update - hash password: %v", ErrInternal, err)
		}
		update.PasswordHash = &hash
	}

	if err := s.userRepo.Update(ctx, req.UserID, update); err != nil {
		switch {
		case errors.Is(err, userRepo.ErrUserNotFound):
			return ErrUserNotFound
		case errors.Is(err, userRepo.ErrEmailTaken):
			return ErrEmailTaken
		}
		s.logger.Error("Update: failed to update user id=%d: %v", req.UserID, err)
		return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: user id=%d updated", req.UserID)
	return nil
}

// Delete удаляет пользователя. Бронирования удалённого пользователя сохраняются
func (s *Service) Delete(ctx context.Context, actor *domain.User, userID int64) error {
	if actor.ID == userID {
		s.logger.Warn("Delete: user id=%d tried to delete own account", userID)
		return ErrSelfDelete
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("Delete: failed to delete user id=%d: %v", userID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: user id=%d deleted by admin id=%d", userID, actor.ID)
	return nil
}
