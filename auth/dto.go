// Package auth request and response payloads.
package auth

// RegisterRequest is the registration request body.
type RegisterRequest struct {
	Username string `json:"username" example:"newuser"`
	Password string `json:"password" example:"Str0ng!pass"`
}

// LoginRequest is the login request body.
type LoginRequest struct {
	Username string `json:"username" example:"newuser"`
	Password string `json:"password" example:"Str0ng!pass"`
}

// TokenResponse carries the bearer token returned on successful login.
type TokenResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// MessageResponse is a plain confirmation payload.
type MessageResponse struct {
	Message string `json:"message" example:"user registered successfully"`
}
