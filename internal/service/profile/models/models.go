package models

import (
	"github.com/m04kA/EduManager-BookingService/internal/domain"
	bookingModels "github.com/m04kA/EduManager-BookingService/internal/service/bookings/models"
)

// UpdateProfileRequest изменение контактов; пустое поле не меняется
type UpdateProfileRequest struct {
	Email string
	Phone string
	OTP   string
}

// ChangePasswordRequest смена пароля по коду
type ChangePasswordRequest struct {
	OTP         string
	NewPassword string
}

// ProfileView профиль пользователя с историей бронирований
type ProfileView struct {
	ID       int64
	Username string
	FullName string
	Email    string
	Phone    string
	Role     string
	History  []*bookingModels.HistoryItemResponse
}

// NewProfileView собирает профиль из пользователя и его истории
func NewProfileView(u *domain.User, history []*domain.BookingHistoryItem) *ProfileView {
	return &ProfileView{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Email:    u.Email,
		Phone:    u.Phone,
		Role:     string(u.Role),
		History:  bookingModels.FromDomainHistory(history),
	}
}
