package seed_defaults

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/EduManager-BookingService/internal/domain"
	userRepo "github.com/m04kA/EduManager-BookingService/internal/infra/storage/user"
)

// UseCase создаёт администратора и комнаты при первом запуске
type UseCase struct {
	userRepo  UserRepository
	roomRepo  RoomRepository
	hasher    PasswordHasher
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case начального заполнения
func NewUseCase(
	userRepo UserRepository,
	roomRepo RoomRepository,
	hasher PasswordHasher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		userRepo:  userRepo,
		roomRepo:  roomRepo,
		hasher:    hasher,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute идемпотентен: существующий администратор и непустой список комнат не трогаются
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	resp := &Response{}

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		resp.AdminCreated, resp.RoomsCreated = false, 0

		created, err := uc.seedAdmin(txCtx, req.Admin)
		if err != nil {
			return err
		}
		resp.AdminCreated = created

		n, err := uc.seedRooms(txCtx, req.Rooms)
		if err != nil {
			return err
		}
		resp.RoomsCreated = n
		return nil
	})

	if err != nil {
		uc.logger.Error("Execute: seeding failed: %v", err)
		return nil, err
	}

	uc.logger.Info("Execute: admin created=%t, rooms created=%d", resp.AdminCreated, resp.RoomsCreated)
	return resp, nil
}

func (uc *UseCase) seedAdmin(ctx context.Context, admin Admin) (bool, error) {
	_, err := uc.userRepo.GetByUsername(ctx, admin.Username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		return false, fmt.Errorf("%w: lookup admin: %w", ErrSeedAdmin, err)
	}

	hash, err := uc.hasher.Hash(admin.Password)
	if err != nil {
		return false, fmt.Errorf("%w: hash password: %v", ErrSeedAdmin, err)
	}

	if _, err := uc.userRepo.Create(ctx, &domain.User{
		Username:     admin.Username,
		PasswordHash: hash,
		Email:        admin.Email,
		Phone:        admin.Phone,
		Role:         domain.RoleAdmin,
		FullName:     admin.FullName,
	}); err != nil {
		return false, fmt.Errorf("%w: create admin: %w", ErrSeedAdmin, err)
	}

	return true, nil
}

func (uc *UseCase) seedRooms(ctx context.Context, rooms []Room) (int, error) {
	count, err := uc.roomRepo.Count(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: count rooms: %w", ErrSeedRooms, err)
	}
	if count > 0 {
		return 0, nil
	}

	for _, r := range rooms {
		if _, err := uc.roomRepo.Create(ctx, &domain.Room{
			Name:      r.Name,
			Capacity:  r.Capacity,
			Equipment: r.Equipment,
			Status:    domain.RoomAvailable,
		}); err != nil {
			return 0, fmt.Errorf("%w: create room %q: %w", ErrSeedRooms, r.Name, err)
		}
	}

	return len(rooms), nil
}
