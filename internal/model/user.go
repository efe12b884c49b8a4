// Package model holds the domain types and the request/response schemas
// exchanged over HTTP.
package model

// User is a stored user record.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserInput is a validated create/update payload with trimmed fields.
type UserInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,basic_email"`
}

// DeleteUserResponse is returned by a successful delete.
type DeleteUserResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}
