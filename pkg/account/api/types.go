package api

// SignupRequest represents the request to register a new account
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the request to authenticate an account
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the embedded account representation in responses
type UserResponse struct {
	Email        string `json:"email"`
	Subscription string `json:"subscription"`
	AvatarURL    string `json:"avatarURL,omitempty"`
}

// SignupResponse represents the response after registration
type SignupResponse struct {
	User UserResponse `json:"user"`
}

// LoginResponse represents the response after login
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// SubscriptionUpdateRequest represents the request to change the subscription tier
type SubscriptionUpdateRequest struct {
	Subscription string `json:"subscription"`
}

// AvatarResponse represents the response after an avatar upload
type AvatarResponse struct {
	AvatarURL string `json:"avatarURL"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}
