package forgot_send_otp

// SendOTPRequest HTTP request model
type SendOTPRequest struct {
	Username string `json:"username" validate:"required"`
}
