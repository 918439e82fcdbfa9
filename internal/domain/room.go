package domain

// RoomStatus represents the status of a classroom
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "Available"
	RoomMaintenance RoomStatus = "Maintenance"
)

// IsValid returns true for known room statuses
func (s RoomStatus) IsValid() bool {
	return s == RoomAvailable || s == RoomMaintenance
}

// Room represents a classroom
type Room struct {
	ID        int64
	Name      string
	Capacity  int
	Equipment string
	Status    RoomStatus
}

// IsUnderMaintenance returns true if the room does not accept bookings
func (r *Room) IsUnderMaintenance() bool {
	return r.Status == RoomMaintenance
}

// IsAvailable returns true if the room accepts bookings
func (r *Room) IsAvailable() bool {
	return r.Status == RoomAvailable
}

// RoomUpdate частичное обновление комнаты (nil = не менять)
type RoomUpdate struct {
	Name      *string
	Capacity  *int
	Equipment *string
	Status    *RoomStatus
}

// Apply применяет изменения к комнате
func (u RoomUpdate) Apply(r *Room) {
	if u.Name != nil {
		r.Name = *u.Name
	}
	if u.Capacity != nil {
		r.Capacity = *u.Capacity
	}
	if u.Equipment != nil {
		r.Equipment = *u.Equipment
	}
	if u.Status != nil {
		r.Status = *u.Status
	}
}
