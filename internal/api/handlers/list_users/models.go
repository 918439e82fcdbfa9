package list_users

import (
	"github.com/m04kA/EduManager-BookingService/internal/api/handlers"
	"github.com/m04kA/EduManager-BookingService/internal/service/users/models"
)

// UserResponse пользователь без пароля
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// ListUsersResponse HTTP response model
type ListUsersResponse struct {
	Status string         `json:"status"`
	Users  []UserResponse `json:"users"`
}

// FromServiceUsers конвертирует пользователей в HTTP response
func FromServiceUsers(list []*models.UserResponse) *ListUsersResponse {
	users := make([]UserResponse, 0, len(list))
	for _, u := range list {
		users = append(users, UserResponse{
			ID:       u.ID,
			Username: u.Username,
			FullName: u.FullName,
			Email:    u.Email,
			Phone:    u.Phone,
			Role:     u.Role,
		})
	}
	return &ListUsersResponse{Status: handlers.StatusSuccess, Users: users}
}
