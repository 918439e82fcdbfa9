package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EduManager-BookingService/internal/domain"
	userRepo "github.com/m04kA/EduManager-BookingService/internal/infra/storage/user"
	"github.com/m04kA/EduManager-BookingService/internal/service/users/models"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	args := m.Called()
	u, _ := args.Get(0).([]*domain.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, id int64, update domain.UserUpdate) error {
	return m.Called(id, update).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(id).Error(0)
}

type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "hash:" + plain, nil }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func ptr[T any](v T) *T { return &v }

func TestService_List(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("List").Return([]*domain.User{
		{ID: 1, Username: "admin", PasswordHash: "secret", Role: domain.RoleAdmin},
	}, nil)

	list, err := NewService(repo, plainHasher{}, nopLogger{}).List(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "admin", list[0].Role)
}

func TestService_Update(t *testing.T) {
	tests := []struct {
		name    string
		req     models.UpdateUserRequest
		match   func(u domain.UserUpdate) bool
		repoErr error
		wantErr error
	}{
		{
			name: "role and contacts",
			req:  models.UpdateUserRequest{UserID: 3, Email: ptr("gv@edu.vn"), Role: ptr("teacher")},
			match: func(u domain.UserUpdate) bool {
				return *u.Email == "gv@edu.vn" && *u.Role == domain.RoleTeacher && u.Phone == nil && u.PasswordHash == nil
			},
		},
		{
			name: "password is hashed",
			req:  models.UpdateUserRequest{UserID: 3, NewPassword: "moi!matkhau"},
			match: func(u domain.UserUpdate) bool {
				return u.PasswordHash != nil && *u.PasswordHash == "hash:moi!matkhau"
			},
		},
		{
			name:    "unknown role",
			req:     models.UpdateUserRequest{UserID: 3, Role: ptr("superuser")},
			wantErr: ErrInvalidRole,
		},
		{
			name:    "weak password",
			req:     models.UpdateUserRequest{UserID: 3, NewPassword: "123"},
			wantErr: domain.ErrPasswordTooShort,
		},
		{
			name:    "user not found",
			req:     models.UpdateUserRequest{UserID: 99, Role: ptr("student")},
			match:   func(domain.UserUpdate) bool { return true },
			repoErr: userRepo.ErrUserNotFound,
			wantErr: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockUserRepo)
			if tt.match != nil {
				repo.On("Update", tt.req.UserID, mock.MatchedBy(tt.match)).Return(tt.repoErr)
			}

			err := NewService(repo, plainHasher{}, nopLogger{}).Update(context.Background(), tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestService_Delete(t *testing.T) {
	admin := &domain.User{ID: 1, Role: domain.RoleAdmin}

	t.Run("cannot delete self", func(t *testing.T) {
		repo := new(mockUserRepo)
		err := NewService(repo, plainHasher{}, nopLogger{}).Delete(context.Background(), admin, 1)
		assert.ErrorIs(t, err, ErrSelfDelete)
		repo.AssertNotCalled(t, "Delete", mock.Anything)
	})

	t.Run("deletes other user", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("Delete", int64(5)).Return(nil)
		require.NoError(t, NewService(repo, plainHasher{}, nopLogger{}).Delete(context.Background(), admin, 5))
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("Delete", int64(6)).Return(userRepo.ErrUserNotFound)
		err := NewService(repo, plainHasher{}, nopLogger{}).Delete(context.Background(), admin, 6)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
