// ABOUTME: Data models for books, reviews, and API responses
// ABOUTME: JSON-serializable structures shared by the store and handlers

package models

// Book represents a catalog entry keyed by its numeric ISBN surrogate.
// Reviews map a username to that user's review text, one review per user.
type Book struct {
	ISBN    int               `json:"isbn"`
	Author  string            `json:"author"`
	Title   string            `json:"title"`
	Reviews map[string]string `json:"reviews"`
}

// User represents a registered account. Passwords are stored in cleartext;
// hashing is an explicit non-goal of this service.
type User struct {
	Username string
	Password string
}

// MessageResponse is a generic success response with a human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports service liveness and store sizes.
type HealthResponse struct {
	Status string `json:"status"`
	Books  int    `json:"books"`
	Users  int    `json:"users"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}
