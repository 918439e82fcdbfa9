package register_confirm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EduManager-BookingService/internal/api/handlers"
	"github.com/m04kA/EduManager-BookingService/internal/domain"
	"github.com/m04kA/EduManager-BookingService/internal/service/auth"
	"github.com/m04kA/EduManager-BookingService/internal/service/auth/models"
)

type stubService struct {
	err error
}

func (s *stubService) ConfirmRegistration(ctx context.Context, req models.ConfirmRegistrationRequest) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.User{ID: 10, Username: req.Username}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const body = `{"username":"gv01","password":"matkhau!123","email":"gv01@edu.vn","phone":"0912345678",` +
	`"role":"teacher","full_name":"Nguyễn Văn A","otp":"123456"}`

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus string
		wantMsg    string
	}{
		{"registered", nil, handlers.StatusSuccess, "Đăng ký thành công!"},
		{"username taken", auth.ErrUsernameTaken, handlers.StatusError, "Tên đăng nhập này đã có người sử dụng!"},
		{"full name taken", auth.ErrFullNameTaken, handlers.StatusError, "Họ và tên này đã tồn tại! Vui lòng thêm ký tự để phân biệt."},
		{"short password", domain.ErrPasswordTooShort, handlers.StatusError, "Mật khẩu phải dài hơn 8 ký tự!"},
		{"no special", domain.ErrPasswordNoSpecial, handlers.StatusError, "Mật khẩu phải có ít nhất 1 ký tự đặc biệt!"},
		{"wrong otp", auth.ErrInvalidOTP, handlers.StatusError, "Mã OTP không đúng!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/register/confirm", strings.NewReader(body))
			rec := httptest.NewRecorder()

			NewHandler(&stubService{err: tt.err}, nopLogger{}).Handle(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			var resp handlers.StatusResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}

func TestHandler_MissingOTP(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/register/confirm",
		strings.NewReader(`{"username":"gv01","password":"matkhau!123","email":"gv01@edu.vn","role":"teacher"}`))
	rec := httptest.NewRecorder()

	NewHandler(&stubService{}, nopLogger{}).Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp handlers.StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, handlers.StatusError, resp.Status)
	assert.Equal(t, handlers.MsgInvalidRequest, resp.Message)
}
