// Package auth, as part of the authentication module.
// This file, `models.go`, defines the User entity as stored in the database
// and as used by the business logic.
package auth

import "time"

// User represents a registered account.
// The `json:"-"` tag on HashedPassword keeps the stored credential out of
// every API response: the password exists only as a bcrypt hash and is never
// serialized.
type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}
