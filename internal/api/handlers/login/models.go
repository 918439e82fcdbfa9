package login

// LoginRequest HTTP request model
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Status string `json:"status"`
	Role   string `json:"role"`
}
