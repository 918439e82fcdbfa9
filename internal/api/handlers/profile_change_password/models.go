package profile_change_password

import "github.com/m04kA/EduManager-BookingService/internal/service/profile/models"

// ChangePasswordRequest HTTP request model
type ChangePasswordRequest struct {
	OTP         string `json:"otp" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *ChangePasswordRequest) ToServiceRequest() models.ChangePasswordRequest {
	return models.ChangePasswordRequest{
		OTP:         r.OTP,
		NewPassword: r.NewPassword,
	}
}
