package profile_update

import "github.com/m04kA/EduManager-BookingService/internal/service/profile/models"

// UpdateProfileRequest HTTP request model
type UpdateProfileRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,max=20"`
	OTP   string `json:"otp"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateProfileRequest) ToServiceRequest() models.UpdateProfileRequest {
	return models.UpdateProfileRequest{
		Email: r.Email,
		Phone: r.Phone,
		OTP:   r.OTP,
	}
}
