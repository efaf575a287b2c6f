// ABOUTME: Auth request/response models and server-side session structure
// ABOUTME: Defines registration, login, and session API contracts

package models

import "time"

// RegisterRequest represents a new account registration
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest represents credentials for authentication
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents the result of a login attempt
type LoginResponse struct {
	Success  bool   `json:"success"`
	Username string `json:"username,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Session stores server-side authentication state.
// The signed token never leaves the server; clients hold only the opaque ID.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Token     string    `json:"-"` // Never expose to client
	CSRFToken string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
