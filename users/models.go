// Package users, as part of the user profile management module.
// This file, `models.go`, defines the Profile entity and its value types.
package users

import (
	"fmt"
	"time"

	"github.com/user/profileapi-go/validate"
)

// Gender enumerates the accepted profile gender values.
type Gender string

const (
	// GenderMale is the MALE enum value.
	GenderMale Gender = "MALE"
	// GenderFemale is the FEMALE enum value.
	GenderFemale Gender = "FEMALE"
)

// DateOnly is a calendar date serialized as yyyy-MM-dd, with no time or zone
// component. Birthdates are dates, not instants.
type DateOnly struct {
	time.Time
}

// NewDateOnly builds a DateOnly from a parsed time, dropping any sub-day
// component.
func NewDateOnly(t time.Time) DateOnly {
	return DateOnly{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON renders the date as "yyyy-MM-dd".
func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.Format(validate.DateLayout))), nil
}

// UnmarshalJSON parses a "yyyy-MM-dd" string.
func (d *DateOnly) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date value: %s", s)
	}
	t, err := time.Parse(validate.DateLayout, s[1:len(s)-1])
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Profile is the one-to-one record attached to a user. At most one profile
// exists per user id, enforced by the unique constraint on profiles.user_id.
type Profile struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Mobile    string    `json:"mobile"`
	Gender    Gender    `json:"gender"`
	DOB       DateOnly  `json:"dob"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
