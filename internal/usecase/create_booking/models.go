package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	RoomID        int64  // ID комнаты
	UserID        int64  // ID пользователя, создающего бронирование
	BookerName    string // Имя для отображения в расписании
	StartTime     string // ISO-8601, сохраняется как прислал клиент
	DurationLabel string // "1 Giờ", "1 Giờ 30 Phút", "30 Phút"
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	RoomID        int64
	UserID        int64
	BookerName    string
	StartTime     string
	DurationLabel string
	Start         time.Time // Нормализованное начало (UTC)
	End           time.Time // Нормализованный конец (UTC)
	Status        string
	CreatedAt     time.Time
}
