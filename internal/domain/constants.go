package domain

// Business validation constants
const (
	MinPasswordLength   = 9 // пароль должен быть длиннее 8 символов
	PasswordSpecials    = `!@#$%^&*(),.?":{}|<>`
	OTPLength           = 6
	DashboardHistoryLen = 10
	MaxRoomNameLength   = 100
	MaxEquipmentLength  = 255
)

// Time format constants
const (
	TimeFormat = "15:04" // HH:MM
)

// UnknownRoomName название комнаты в истории, если комната удалена
const UnknownRoomName = "Unknown"
