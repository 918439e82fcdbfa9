package profile

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/EduManager-BookingService/internal/domain"
	"github.com/m04kA/EduManager-BookingService/internal/infra/cache/otp"
	userRepo "github.com/m04kA/EduManager-BookingService/internal/infra/storage/user"
	"github.com/m04kA/EduManager-BookingService/internal/service/profile/models"
)

// Service сервис профиля текущего пользователя
type Service struct {
	userRepo    UserRepository
	bookingRepo BookingRepository
	otpStore    OTPStore
	mailer      Mailer
	hasher      PasswordHasher
	logger      Logger
}

// NewService создает новый экземпляр сервиса профиля
func NewService(
	userRepo UserRepository,
	bookingRepo BookingRepository,
	otpStore OTPStore,
	mailer Mailer,
	hasher PasswordHasher,
	logger Logger,
) *Service {
	return &Service{
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		otpStore:    otpStore,
		mailer:      mailer,
		hasher:      hasher,
		logger:      logger,
	}
}

// Get возвращает профиль и историю бронирований пользователя
func (s *Service) Get(ctx context.Context, user *domain.User) (*models.ProfileView, error) {
	history, err := s.bookingRepo.ListHistory(ctx, domain.BookingsFilter{UserID: &user.ID})
	if err != nil {
		s.logger.Error("Get: failed to load history for user=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Get - list history: %v", ErrInternal, err)
	}
	return models.NewProfileView(user, history), nil
}

// SendOTP отправляет код подтверждения на текущий email пользователя
func (s *Service) SendOTP(ctx context.Context, user *domain.User) error {
	if user.Email == "" {
		s.logger.Warn("SendOTP: user=%d has no email", user.ID)
		return ErrMailDelivery
	}

	subject := userSubject(user.ID)
	code, err := s.otpStore.Issue(ctx, otp.PurposeProfile, subject)
	if err != nil {
		return fmt.Errorf("%w: SendOTP - issue otp: %v", ErrInternal, err)
	}

	if err := s.mailer.SendOTP(ctx, user.Email, code); err != nil {
		s.logger.Error("SendOTP: delivery failed for user=%d: %v", user.ID, err)
		if derr := s.otpStore.Discard(ctx, otp.PurposeProfile, subject); derr != nil {
			s.logger.Warn("SendOTP: failed to discard otp for user=%d: %v", user.ID, derr)
		}
		return ErrMailDelivery
	}

	s.logger.Info("SendOTP: code sent for user=%d", user.ID)
	return nil
}

// Update меняет email и телефон. Любое фактическое изменение требует кода
func (s *Service) Update(ctx context.Context, user *domain.User, req models.UpdateProfileRequest) error {
	emailChanged := req.Email != "" && req.Email != user.Email
	phoneChanged := req.Phone != "" && req.Phone != user.Phone

	if !emailChanged && !phoneChanged {
		return nil
	}

	if req.OTP == "" {
		return ErrOTPRequired
	}

	if emailChanged {
		other, err := s.userRepo.GetByEmail(ctx, req.Email)
		switch {
		case err == nil && other.ID != user.ID:
			return ErrEmailTaken
		case err != nil && !errors.Is(err, userRepo.ErrUserNotFound):
			return fmt.Errorf("%w: Update - lookup email: %v", ErrInternal, err)
		}
	}

	if err := s.verifyCode(ctx, user.ID, req.OTP); err != nil {
		return err
	}

	var update domain.UserUpdate
	if emailChanged {
		update.Email = &req.Email
	}
	if phoneChanged {
		update.Phone = &req.Phone
	}

	if err := s.userRepo.Update(ctx, user.ID, update); err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			return ErrEmailTaken
		}
		s.logger.Error("Update: failed to update user=%d: %v", user.ID, err)
		return fmt.Errorf("%w: Update - update user: %v", ErrInternal, err)
	}

	s.logger.Info("Update: profile updated for user=%d", user.ID)
	return nil
}

// ChangePassword меняет пароль после проверки политики и кода
func (s *Service) ChangePassword(ctx context.Context, user *domain.User, req models.ChangePasswordRequest) error {
	if err := domain.ValidatePassword(req.NewPassword); err != nil {
		return err
	}

	if err := s.verifyCode(ctx, user.ID, req.OTP); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("%w: ChangePassword - hash password: %v", ErrInternal, err)
	}

	if err := s.userRepo.Update(ctx, user.ID, domain.UserUpdate{PasswordHash: &hash}); err != nil {
		s.logger.Error("ChangePassword: failed to update user=%d: %v", user.ID, err)
		return fmt.Errorf("%w: ChangePassword - update user: %v", ErrInternal, err)
	}

	s.logger.Info("ChangePassword: password changed for user=%d", user.ID)
	return nil
}

func (s *Service) verifyCode(ctx context.Context, userID int64, code string) error {
	err := s.otpStore.Verify(ctx, otp.PurposeProfile, userSubject(userID), code)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, otp.ErrCodeNotFound), errors.Is(err, otp.ErrCodeMismatch):
		return ErrInvalidOTP
	default:
		return fmt.Errorf("%w: verify otp: %v", ErrInternal, err)
	}
}

func userSubject(id int64) string {
	return strconv.FormatInt(id, 10)
}
