package update_user

import "github.com/m04kA/EduManager-BookingService/internal/service/users/models"

// UpdateUserRequest HTTP request model
type UpdateUserRequest struct {
	UserID      int64   `json:"user_id" validate:"required,gt=0"`
	Email       *string `json:"email,omitempty" validate:"omitempty,max=255"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Role        *string `json:"role,omitempty"`
	NewPassword string  `json:"new_password,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateUserRequest) ToServiceRequest() models.UpdateUserRequest {
	return models.UpdateUserRequest{
		UserID:      r.UserID,
		Email:       r.Email,
		Phone:       r.Phone,
		Role:        r.Role,
		NewPassword: r.NewPassword,
	}
}
