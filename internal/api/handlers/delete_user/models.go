package delete_user

// DeleteUserRequest HTTP request model
type DeleteUserRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}
