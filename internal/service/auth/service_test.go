package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EduManager-BookingService/internal/domain"
	"github.com/m04kA/EduManager-BookingService/internal/infra/cache/otp"
	userRepo "github.com/m04kA/EduManager-BookingService/internal/infra/storage/user"
	"github.com/m04kA/EduManager-BookingService/internal/service/auth/models"
	"github.com/m04kA/EduManager-BookingService/pkg/password"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(user)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(username)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(email)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) GetByFullName(ctx context.Context, fullName string) (*domain.User, error) {
	args := m.Called(fullName)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, id int64, update domain.UserUpdate) error {
	return m.Called(id, update).Error(0)
}

type mockOTPStore struct {
	mock.Mock
}

func (m *mockOTPStore) Issue(ctx context.Context, purpose otp.Purpose, subject string) (string, error) {
	args := m.Called(purpose, subject)
	return args.String(0), args.Error(1)
}

func (m *mockOTPStore) Verify(ctx context.Context, purpose otp.Purpose, subject, code string) error {
	return m.Called(purpose, subject, code).Error(0)
}

func (m *mockOTPStore) Discard(ctx context.Context, purpose otp.Purpose, subject string) error {
	return m.Called(purpose, subject).Error(0)
}

type mockSessions struct {
	mock.Mock
}

func (m *mockSessions) Create(ctx context.Context, userID int64) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *mockSessions) Delete(ctx context.Context, token string) error {
	return m.Called(token).Error(0)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendOTP(ctx context.Context, to, code string) error {
	return m.Called(to, code).Error(0)
}

// plainHasher хранит пароль с префиксом, чтобы не тратить время на bcrypt
type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "hash:" + plain, nil }

func (plainHasher) Compare(hash, plain string) error {
	if hash != "hash:"+plain {
		return password.ErrMismatch
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type deps struct {
	users    *mockUserRepo
	otp      *mockOTPStore
	sessions *mockSessions
	mailer   *mockMailer
}

func newTestService() (*Service, deps) {
	d := deps{
		users:    new(mockUserRepo),
		otp:      new(mockOTPStore),
		sessions: new(mockSessions),
		mailer:   new(mockMailer),
	}
	return NewService(d.users, d.otp, d.sessions, d.mailer, plainHasher{}, nopLogger{}), d
}

func TestService_SendRegistrationOTP(t *testing.T) {
	req := models.SendRegistrationOTPRequest{Username: "gv01", Email: "gv01@edu.vn"}

	t.Run("success", func(t *testing.T) {
		svc, d := newTestService()
		d.users.On("GetByUsername", "gv01").Return(nil, userRepo.ErrUserNotFound)
		d.users.On("GetByEmail", "gv01@edu.vn").Return(nil, userRepo.ErrUserNotFound)
		d.otp.On("Issue", otp.PurposeRegister, "gv01@edu.vn").Return("123456", nil)
		d.mailer.On("SendOTP", "gv01@edu.vn", "123456").Return(nil)

		require.NoError(t, svc.SendRegistrationOTP(context.Background(), req))
		d.mailer.AssertExpectations(t)
	})

	t.Run("username taken", func(t *testing.T) {
		svc, d := newTestService()
		d.users.On("GetByUsername", "gv01").Return(&domain.User{ID: 1}, nil)

		assert.ErrorIs(t, svc.SendRegistrationOTP(context.Background(), req), ErrUsernameTaken)
		d.otp.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
	})

	t.Run("email taken", func(t *testing.T) {
		svc, d := newTestService()
		d.users.On("GetByUsername", "gv01").Return(nil, userRepo.ErrUserNotFound)
		d.users.On("GetByEmail", "gv01@edu.vn").Return(&domain.User{ID: 1}, nil)

		assert.ErrorIs(t, svc.SendRegistrationOTP(context.Background(), req), ErrEmailTaken)
	})

	t.Run("delivery failure discards code", func(t *testing.T) {
		svc, d := newTestService()
		d.users.On("GetByUsername", "gv01").Return(nil, userRepo.ErrUserNotFound)
		d.users.On("GetByEmail", "gv01@edu.vn").Return(nil, userRepo.ErrUserNotFound)
		d.otp.On("Issue", otp.PurposeRegister, "gv01@edu.vn").Return("123456", nil)
		d.otp.On("Discard", otp.PurposeRegister, "gv01@edu.vn").Return(nil)
		d.mailer.On("SendOTP", "gv01@edu.vn", "123456").Return(errors.New("smtp: 535"))

		assert.ErrorIs(t, svc.SendRegistrationOTP(context.Background(), req), ErrMailDelivery)
		d.otp.AssertCalled(t, "Discard", otp.PurposeRegister, "gv01@edu.vn")
	})
}

func TestService_ConfirmRegistration(t *testing.T) {
	valid := models.ConfirmRegistrationRequest{
		Username: "gv01",
		Password: "matkhau!123",
		Email:    "gv01@edu.vn",
		Phone:    "0912345678",
		Role:     "teacher",
		FullName: "Nguyễn Văn A",
		OTP:      "123456",
	}

	tests := []struct {
		name    string
		modify  func(r *models.ConfirmRegistrationRequest)
		setup   func(d deps)
		wantErr error
	}{
		{
			name:   "success",
			modify: func(r *models.ConfirmRegistrationRequest) {},
			setup: func(d deps) {
				d.otp.On("Verify", otp.PurposeRegister, "gv01@edu.vn", "123456").Return(nil)
				d.users.On("Create", mock.MatchedBy(func(u *domain.User) bool {
					return u.PasswordHash == "hash:matkhau!123" && u.Role == domain.RoleTeacher
				})).Return(&domain.User{ID: 5, Username: "gv01", Role: domain.RoleTeacher}, nil)
			},
		},
		{
			name:   "full name taken",
			modify: func(r *models.ConfirmRegistrationRequest) {},
			setup: func(d deps) {
				d.users.ExpectedCalls = nil
				d.users.On("GetByUsername", "gv01").Return(nil, userRepo.ErrUserNotFound)
				d.users.On("GetByFullName", "Nguyễn Văn A").Return(&domain.User{ID: 2}, nil)
			},
			wantErr: ErrFullNameTaken,
		},
		{
			name:    "short password",
			modify:  func(r *models.ConfirmRegistrationRequest) { r.Password = "abc!1234" },
			setup:   func(d deps) {},
			wantErr: domain.ErrPasswordTooShort,
		},
		{
			name:    "password without special",
			modify:  func(r *models.ConfirmRegistrationRequest) { r.Password = "matkhau1234" },
			setup:   func(d deps) {},
			wantErr: domain.ErrPasswordNoSpecial,
		},
		{
			name:    "admin role rejected",
			modify:  func(r *models.ConfirmRegistrationRequest) { r.Role = "admin" },
			setup:   func(d deps) {},
			wantErr: ErrInvalidRole,
		},
		{
			name:   "wrong otp",
			modify: func(r *models.ConfirmRegistrationRequest) {},
			setup: func(d deps) {
				d.otp.On("Verify", otp.PurposeRegister, "gv01@edu.vn", "123456").Return(otp.ErrCodeMismatch)
			},
			wantErr: ErrInvalidOTP,
		},
		{
			name:   "email taken at insert",
			modify: func(r *models.ConfirmRegistrationRequest) {},
			setup: func(d deps) {
				d.otp.On("Verify", otp.PurposeRegister, "gv01@edu.vn", "123456").Return(nil)
				d.users.On("Create", mock.Anything).Return(nil, userRepo.ErrEmailTaken)
			},
			wantErr: ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newTestService()
			d.users.On("GetByUsername", "gv01").Return(nil, userRepo.ErrUserNotFound)
			d.users.On("GetByFullName", "Nguyễn Văn A").Return(nil, userRepo.ErrUserNotFound)
			tt.setup(d)

			req := valid
			tt.modify(&req)

			user, err := svc.ConfirmRegistration(context.Background(), req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(5), user.ID)
		})
	}
}

func TestService_Login(t *testing.T) {
	stored := &domain.User{ID: 3, Username: "gv01", PasswordHash: "hash:matkhau!123", Role: domain.RoleTeacher}

	t.Run("success", func(t *testing.T) {
		svc, d := newTestService()
		d.users.On("GetByUsername", "gv01").Return(stored, nil)
		d.sessions.On("Create", int64(3)).Return("d3b07384-d113-4ec6-a0d4-8f2c1b8a9e10", nil)

		res, err := svc.Login(context.Background(), models.LoginRequest{Username: "gv01", Password: "matkhau!123"})

		require.NoError(t, err)
		assert.Equal(t, "d3b07384-d113-4ec6-a0d4-8f2c1b8a9e10", res.Token)
		assert.Equal(t, "teacher", res.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, d := newTestService()
		d.users.On("GetByUsername", "gv01").Return(stored, nil)

		_, err := svc.Login(context.Background(), models.LoginRequest{Username: "gv01", Password: "sai"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		d.sessions.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, d := newTestService()
		d.users.On("GetByUsername", "ghost").Return(nil, userRepo.ErrUserNotFound)

		_, err := svc.Login(context.Background(), models.LoginRequest{Username: "ghost", Password: "x"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_Logout(t *testing.T) {
	svc, d := newTestService()
	d.sessions.On("Delete", "token").Return(nil)

	require.NoError(t, svc.Logout(context.Background(), "token"))
	require.NoError(t, svc.Logout(context.Background(), ""))
	d.sessions.AssertNumberOfCalls(t, "Delete", 1)
}

func TestService_ForgotPassword(t *testing.T) {
	stored := &domain.User{ID: 9, Username: "gv01", Email: "nguyenvana@edu.vn"}

	t.Run("send masks email", func(t *testing.T) {
		svc, d := newTestService()
		d.users.On("GetByUsername", "gv01").Return(stored, nil)
		d.otp.On("Issue", otp.PurposeReset, "9").Return("654321", nil)
		d.mailer.On("SendOTP", "nguyenvana@edu.vn", "654321").Return(nil)

		masked, err := svc.SendResetOTP(context.Background(), "gv01")

		require.NoError(t, err)
		assert.Equal(t, "ngu****@edu.vn", masked)
	})

	t.Run("send to unknown user", func(t *testing.T) {
		svc, d := newTestService()
		d.users.On("GetByUsername", "ghost").Return(nil, userRepo.ErrUserNotFound)

		_, err := svc.SendResetOTP(context.Background(), "ghost")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("reset success", func(t *testing.T) {
		svc, d := newTestService()
		d.users.On("GetByUsername", "gv01").Return(stored, nil)
		d.otp.On("Verify", otp.PurposeReset, "9", "654321").Return(nil)
		d.users.On("Update", int64(9), mock.MatchedBy(func(u domain.UserUpdate) bool {
			return u.PasswordHash != nil && *u.PasswordHash == "hash:moi!matkhau"
		})).Return(nil)

		err := svc.ResetPassword(context.Background(), models.ResetPasswordRequest{
			Username: "gv01", OTP: "654321", NewPassword: "moi!matkhau",
		})
		require.NoError(t, err)
	})

	t.Run("reset checks policy before otp", func(t *testing.T) {
		svc, d := newTestService()
		d.users.On("GetByUsername", "gv01").Return(stored, nil)

		err := svc.ResetPassword(context.Background(), models.ResetPasswordRequest{
			Username: "gv01", OTP: "654321", NewPassword: "short",
		})
		assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
		d.otp.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("reset wrong otp", func(t *testing.T) {
		svc, d := newTestService()
		d.users.On("GetByUsername", "gv01").Return(stored, nil)
		d.otp.On("Verify", otp.PurposeReset, "9", "000000").Return(otp.ErrCodeNotFound)

		err := svc.ResetPassword(context.Background(), models.ResetPasswordRequest{
			Username: "gv01", OTP: "000000", NewPassword: "moi!matkhau",
		})
		assert.ErrorIs(t, err, ErrInvalidOTP)
	})
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "adm****@edu.vn", MaskEmail("admin@edu.vn"))
	assert.Equal(t, "ab****@edu.vn", MaskEmail("ab@edu.vn"))
	assert.Equal(t, "****", MaskEmail("invalid"))
}
