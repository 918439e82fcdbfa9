package register_confirm

import "github.com/m04kA/EduManager-BookingService/internal/service/auth/models"

// ConfirmRequest HTTP request model
type ConfirmRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	Role     string `json:"role" validate:"required"`
	FullName string `json:"full_name" validate:"max=100"`
	OTP      string `json:"otp" validate:"required"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *ConfirmRequest) ToServiceRequest() models.ConfirmRegistrationRequest {
	return models.ConfirmRegistrationRequest{
		Username: r.Username,
		Password: r.Password,
		Email:    r.Email,
		Phone:    r.Phone,
		Role:     r.Role,
		FullName: r.FullName,
		OTP:      r.OTP,
	}
}
