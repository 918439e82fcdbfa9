package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/EduManager-BookingService/internal/domain"
)

// Статусы в теле бизнес-ответа
const (
	StatusSuccess    = "success"
	StatusError      = "error"
	StatusRequireOTP = "require_otp"
)

// MsgInvalidRequest тело запроса не разобрано или не прошло валидацию
// Отдаётся бизнес-ошибкой с кодом 200
const MsgInvalidRequest = "Dữ liệu không hợp lệ!"

const (
	msgInternalError   = "Lỗi hệ thống, vui lòng thử lại sau!"
	msgTooManyRequests = "Quá nhiều yêu cầu, vui lòng thử lại sau!"
	maxBodyBytes       = 1 << 20
)

// ErrEmptyBody возвращается для запроса без тела
var ErrEmptyBody = errors.New("request body is empty")

var validate = validator.New(validator.WithRequiredStructEnabled())

// StatusResponse общий формат бизнес-ответа
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse ответ для ошибок авторизации и инфраструктуры
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// DecodeJSON декодирует тело запроса в v
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}
	return nil
}

// DecodeAndValidate декодирует тело и проверяет теги validate
func DecodeAndValidate(r *http.Request, v interface{}) error {
	if err := DecodeJSON(r, v); err != nil {
		return err
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondSuccess 200 {"status":"success","message":...}
func RespondSuccess(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusOK, StatusResponse{Status: StatusSuccess, Message: message})
}

// RespondBusinessError 200 {"status":"error","message":...}
// Бизнес-ошибки клиент получает с кодом 200
func RespondBusinessError(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusOK, StatusResponse{Status: StatusError, Message: message})
}

// RespondRequireOTP 200 {"status":"require_otp","message":...}
func RespondRequireOTP(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusOK, StatusResponse{Status: StatusRequireOTP, Message: message})
}

// RespondError пишет ошибку с произвольным HTTP статусом
func RespondError(w http.ResponseWriter, status int, detail string) {
	RespondJSON(w, status, ErrorResponse{Detail: detail})
}

func RespondUnauthorized(w http.ResponseWriter, detail string) {
	RespondError(w, http.StatusUnauthorized, detail)
}

func RespondForbidden(w http.ResponseWriter, detail string) {
	RespondError(w, http.StatusForbidden, detail)
}

func RespondTooManyRequests(w http.ResponseWriter) {
	RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// PasswordPolicyMessage сообщение для нарушения политики паролей
func PasswordPolicyMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, domain.ErrPasswordTooShort):
		return "Mật khẩu phải dài hơn 8 ký tự!", true
	case errors.Is(err, domain.ErrPasswordNoSpecial):
		return "Mật khẩu phải có ít nhất 1 ký tự đặc biệt!", true
	}
	return "", false
}
