// Package users request and response payloads.
package users

// UserResponse is the public view of a user record.
type UserResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// UpdateUserRequest carries an edit to a user's username.
type UpdateUserRequest struct {
	Username string `json:"username" example:"newname"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status    string `json:"status" example:"OK"`
	Message   string `json:"message" example:"User service is running"`
	Timestamp string `json:"timestamp" example:"2026-01-02T15:04:05Z"`
}
