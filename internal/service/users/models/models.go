package models

import "github.com/m04kA/EduManager-BookingService/internal/domain"

// UpdateUserRequest изменение пользователя администратором (nil = не менять)
type UpdateUserRequest struct {
	UserID      int64
	Email       *string
	Phone       *string
	Role        *string
	NewPassword string // пустой пароль не меняется
}

// UserResponse пользователь без хеша пароля
type UserResponse struct {
	ID       int64
	Username string
	FullName string
	Email    string
	Phone    string
	Role     string
}

// FromDomainUserList конвертирует список пользователей
func FromDomainUserList(users []*domain.User) []*UserResponse {
	result := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, &UserResponse{
			ID:       u.ID,
			Username: u.Username,
			FullName: u.FullName,
			Email:    u.Email,
			Phone:    u.Phone,
			Role:     string(u.Role),
		})
	}
	return result
}
