// Package users, as part of the user profile management module.
// This file, `dto.go`, defines the request and response payloads for the
// profile endpoints. The response envelopes reproduce the canonical contract
// of the service this one replaces, including the quirky "token" key on the
// profile-get response.
package users

import "strings"

// ProfileRequest carries the profile fields for both create and update.
// Partial updates are not supported: all four fields are required every time.
type ProfileRequest struct {
	// Name allows letters and spaces only.
	Name string `json:"name" validate:"required,alphaspace" example:"John Doe"`
	// Mobile is exactly 10 digits.
	Mobile string `json:"mobile" validate:"required,mobile" example:"9876543210"`
	// Gender is MALE or FEMALE.
	Gender string `json:"gender" validate:"required,oneof=MALE FEMALE" example:"MALE"`
	// DOB is a yyyy-MM-dd date strictly before today.
	DOB string `json:"dob" validate:"required,dateonly,ltdatetoday" example:"1990-04-23"`
}

// Normalize trims surrounding whitespace from every field before validation.
func (r *ProfileRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Mobile = strings.TrimSpace(r.Mobile)
	r.Gender = strings.TrimSpace(r.Gender)
	r.DOB = strings.TrimSpace(r.DOB)
}

// DeleteUserRequest identifies the account to delete by email.
type DeleteUserRequest struct {
	Email string `json:"email" validate:"required,email" example:"user@example.com"`
}

// Normalize trims surrounding whitespace from the email before validation.
func (r *DeleteUserRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}

// ProfileSummary is the profile projection returned by profile-get:
// only the four client-supplied fields.
type ProfileSummary struct {
	Name   string   `json:"name" example:"John Doe"`
	Mobile string   `json:"mobile" example:"9876543210"`
	Gender Gender   `json:"gender" example:"MALE"`
	DOB    DateOnly `json:"dob"`
}

// UserWithProfile is the joined projection returned by profile-get: the
// owning user's id and email plus the profile summary. Profile is null when
// no profile row exists yet, which is not an error.
type UserWithProfile struct {
	ID      int64           `json:"id" example:"1"`
	Email   string          `json:"email" example:"user@example.com"`
	Profile *ProfileSummary `json:"profile"`
}

// GetProfileResponse is the profile-get envelope. The joined projection is
// returned under the key "token", kept verbatim from the original contract.
type GetProfileResponse struct {
	Message string           `json:"message" example:"User Profile"`
	Token   *UserWithProfile `json:"token"`
}

// ProfileDataResponse is the envelope for successful create and update.
type ProfileDataResponse struct {
	Message string   `json:"message" example:"Profile created successfully"`
	Data    *Profile `json:"data"`
}
