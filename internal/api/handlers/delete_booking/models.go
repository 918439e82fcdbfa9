package delete_booking

// DeleteBookingRequest HTTP request model
type DeleteBookingRequest struct {
	BookingID int64 `json:"booking_id" validate:"required,gt=0"`
}
