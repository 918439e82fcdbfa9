package get_profile

import (
	"github.com/m04kA/EduManager-BookingService/internal/api/handlers"
	"github.com/m04kA/EduManager-BookingService/internal/service/profile/models"
)

// ProfileResponse HTTP response model
type ProfileResponse struct {
	Status   string                         `json:"status"`
	ID       int64                          `json:"id"`
	Username string                         `json:"username"`
	FullName string                         `json:"full_name"`
	Email    string                         `json:"email"`
	Phone    string                         `json:"phone"`
	Role     string                         `json:"role"`
	History  []handlers.HistoryItemResponse `json:"history"`
}

// FromServiceView конвертирует профиль в HTTP response
func FromServiceView(view *models.ProfileView) *ProfileResponse {
	return &ProfileResponse{
		Status:   handlers.StatusSuccess,
		ID:       view.ID,
		Username: view.Username,
		FullName: view.FullName,
		Email:    view.Email,
		Phone:    view.Phone,
		Role:     view.Role,
		History:  handlers.FromServiceHistory(view.History),
	}
}
