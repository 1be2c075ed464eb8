// Package auth, as part of the authentication module.
// This file, `dto.go`, defines the request and response payloads for the
// register, login, and logout endpoints. The `validate` tags are the
// declarative schema checked by the validate package before any handler
// logic runs; Normalize implements the trim rules of the same schema.
package auth

import (
	"strings"
	"time"
)

// RegisterRequest represents the registration request payload.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email" example:"user@example.com"`
	Password string `json:"password" validate:"required" example:"strongpassword123"`
}

// Normalize trims surrounding whitespace from both fields before validation.
func (r *RegisterRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
	r.Password = strings.TrimSpace(r.Password)
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"user@example.com"`
	Password string `json:"password" validate:"required" example:"strongpassword123"`
}

// Normalize trims surrounding whitespace from both fields before validation.
func (r *LoginRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
	r.Password = strings.TrimSpace(r.Password)
}

// TokenPayload describes an issued bearer token. Tokens carry a fixed
// 24-hour expiry (configurable) and no refresh mechanism: when a token
// expires the client logs in again.
type TokenPayload struct {
	Type      string    `json:"type" example:"bearer"`
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt time.Time `json:"expires_at" example:"2023-01-16T10:30:00Z"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Message string       `json:"message" example:"Logged in successfully"`
	Token   TokenPayload `json:"token"`
}

// MessageResponse is a plain acknowledgment body, used by logout and by the
// informational (non-error) outcomes of the profile endpoints.
type MessageResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}
