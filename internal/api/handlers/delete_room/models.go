package delete_room

// DeleteRoomRequest HTTP request model
type DeleteRoomRequest struct {
	RoomID int64 `json:"room_id" validate:"required,gt=0"`
}
