package register_send_otp

// SendOTPRequest HTTP request model
type SendOTPRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email"`
}
