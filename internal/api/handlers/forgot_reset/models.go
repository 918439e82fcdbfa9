package forgot_reset

import "github.com/m04kA/EduManager-BookingService/internal/service/auth/models"

// ResetRequest HTTP request model
type ResetRequest struct {
	Username    string `json:"username" validate:"required"`
	OTP         string `json:"otp" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *ResetRequest) ToServiceRequest() models.ResetPasswordRequest {
	return models.ResetPasswordRequest{
		Username:    r.Username,
		OTP:         r.OTP,
		NewPassword: r.NewPassword,
	}
}
