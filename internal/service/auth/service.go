package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/EduManager-BookingService/internal/domain"
	"github.com/m04kA/EduManager-BookingService/internal/infra/cache/otp"
	userRepo "github.com/m04kA/EduManager-BookingService/internal/infra/storage/user"
	"github.com/m04kA/EduManager-BookingService/internal/service/auth/models"
	"github.com/m04kA/EduManager-BookingService/pkg/password"
)

// Service сервис регистрации, входа и восстановления пароля
type Service struct {
	userRepo UserRepository
	otpStore OTPStore
	sessions SessionStore
	mailer   Mailer
	hasher   PasswordHasher
	logger   Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	userRepo UserRepository,
	otpStore OTPStore,
	sessions SessionStore,
	mailer Mailer,
	hasher PasswordHasher,
	logger Logger,
) *Service {
	return &Service{
		userRepo: userRepo,
		otpStore: otpStore,
		sessions: sessions,
		mailer:   mailer,
		hasher:   hasher,
		logger:   logger,
	}
}

// SendRegistrationOTP проверяет уникальность логина и email и отправляет код на почту
// Код клиенту не возвращается
func (s *Service) SendRegistrationOTP(ctx context.Context, req models.SendRegistrationOTPRequest) error {
	if err := s.ensureFree(ctx, req.Username, s.userRepo.GetByUsername, ErrUsernameTaken); err != nil {
		return err
	}
	if err := s.ensureFree(ctx, req.Email, s.userRepo.GetByEmail, ErrEmailTaken); err != nil {
		return err
	}

	if err := s.sendCode(ctx, otp.PurposeRegister, req.Email, req.Email); err != nil {
		return err
	}

	s.logger.Info("SendRegistrationOTP: code sent for username=%s", req.Username)
	return nil
}

// ConfirmRegistration создает учётную запись после проверки кода
func (s *Service) ConfirmRegistration(ctx context.Context, req models.ConfirmRegistrationRequest) (*domain.User, error) {
	if err := s.ensureFree(ctx, req.Username, s.userRepo.GetByUsername, ErrUsernameTaken); err != nil {
		return nil, err
	}
	if req.FullName != "" {
		if err := s.ensureFree(ctx, req.FullName, s.userRepo.GetByFullName, ErrFullNameTaken); err != nil {
			return nil, err
		}
	}

	if err := domain.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	role := domain.Role(req.Role)
	if role != domain.RoleTeacher && role != domain.RoleStudent {
		return nil, ErrInvalidRole
	}

	if err := s.verifyCode(ctx, otp.PurposeRegister, req.Email, req.OTP); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: ConfirmRegistration - hash password: %v", ErrInternal, err)
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Username:     req.Username,
		PasswordHash: hash,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         role,
		FullName:     req.FullName,
	})
	if err != nil {
		switch {
		case errors.Is(err, userRepo.ErrUsernameTaken):
			return nil, ErrUsernameTaken
		case errors.Is(err, userRepo.ErrEmailTaken):
			return nil, ErrEmailTaken
		case errors.Is(err, userRepo.ErrFullNameTaken):
			return nil, ErrFullNameTaken
		}
		s.logger.Error("ConfirmRegistration: failed to create user=%s: %v", req.Username, err)
		return nil, fmt.Errorf("%w: ConfirmRegistration - create user: %v", ErrInternal, err)
	}

	s.logger.Info("ConfirmRegistration: user id=%d username=%s role=%s created", user.ID, user.Username, user.Role)
	return user, nil
}

// Login проверяет пароль и открывает сессию
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: Login - get user: %v", ErrInternal, err)
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			s.logger.Warn("Login: wrong password for username=%s", req.Username)
			return nil, ErrInvalidCredentials
		}
		// Повреждённый хеш не должен раскрываться клиенту
		s.logger.Error("Login: compare password for username=%s: %v", req.Username, err)
		return nil, ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: Login - create session: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user id=%d logged in", user.ID)
	return &models.LoginResult{Token: token, UserID: user.ID, Role: string(user.Role)}, nil
}

// Logout удаляет сессию; пустой токен не является ошибкой
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("%w: Logout - delete session: %v", ErrInternal, err)
	}
	return nil
}

// SendResetOTP отправляет код сброса пароля и возвращает замаскированный email
func (s *Service) SendResetOTP(ctx context.Context, username string) (string, error) {
	user, err := s.getUser(ctx, username)
	if err != nil {
		return "", err
	}

	if user.Email == "" {
		s.logger.Warn("SendResetOTP: user id=%d has no email", user.ID)
		return "", ErrMailDelivery
	}

	if err := s.sendCode(ctx, otp.PurposeReset, userSubject(user.ID), user.Email); err != nil {
		return "", err
	}

	return MaskEmail(user.Email), nil
}

// ResetPassword устанавливает новый пароль по коду из письма
func (s *Service) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	user, err := s.getUser(ctx, req.Username)
	if err != nil {
		return err
	}

	if err := domain.ValidatePassword(req.NewPassword); err != nil {
		return err
	}

	if err := s.verifyCode(ctx, otp.PurposeReset, userSubject(user.ID), req.OTP); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("%w: ResetPassword - hash password: %v", ErrInternal, err)
	}

	if err := s.userRepo.Update(ctx, user.ID, domain.UserUpdate{PasswordHash: &hash}); err != nil {
		return fmt.Errorf("%w: ResetPassword - update user: %v", ErrInternal, err)
	}

	s.logger.Info("ResetPassword: password reset for user id=%d", user.ID)
	return nil
}

func (s *Service) getUser(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: get user: %v", ErrInternal, err)
	}
	return user, nil
}

// ensureFree возвращает taken, если lookup нашёл пользователя
func (s *Service) ensureFree(
	ctx context.Context,
	value string,
	lookup func(ctx context.Context, value string) (*domain.User, error),
	taken error,
) error {
	_, err := lookup(ctx, value)
	switch {
	case err == nil:
		return taken
	case errors.Is(err, userRepo.ErrUserNotFound):
		return nil
	default:
		return fmt.Errorf("%w: lookup user: %v", ErrInternal, err)
	}
}

// sendCode выдаёт код и отправляет его; при ошибке отправки код удаляется
func (s *Service) sendCode(ctx context.Context, purpose otp.Purpose, subject, email string) error {
	code, err := s.otpStore.Issue(ctx, purpose, subject)
	if err != nil {
		return fmt.Errorf("%w: issue otp: %v", ErrInternal, err)
	}

	if err := s.mailer.SendOTP(ctx, email, code); err != nil {
		s.logger.Error("sendCode: purpose=%s delivery failed: %v", purpose, err)
		if derr := s.otpStore.Discard(ctx, purpose, subject); derr != nil {
			s.logger.Warn("sendCode: failed to discard otp purpose=%s: %v", purpose, derr)
		}
		return ErrMailDelivery
	}

	return nil
}

func (s *Service) verifyCode(ctx context.Context, purpose otp.Purpose, subject, code string) error {
	err := s.otpStore.Verify(ctx, purpose, subject, code)
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
