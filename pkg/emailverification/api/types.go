package api

// ResendVerificationRequest represents the request to resend the verification email
type ResendVerificationRequest struct {
	Email string `json:"email"`
}

// VerifyEmailResponse represents the response after email verification
type VerifyEmailResponse struct {
	Message string `json:"message"`
}

// ResendVerificationResponse represents the response after resending verification
type ResendVerificationResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}
