package validate

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/profileapi-go/apperror"
)

// credentials mirrors the register/login schema.
type credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c *credentials) Normalize() {
	c.Email = strings.TrimSpace(c.Email)
	c.Password = strings.TrimSpace(c.Password)
}

// profileFields mirrors the profile create/update schema.
type profileFields struct {
	Name   string `json:"name" validate:"required,alphaspace"`
	Mobile string `json:"mobile" validate:"required,mobile"`
	Gender string `json:"gender" validate:"required,oneof=MALE FEMALE"`
	DOB    string `json:"dob" validate:"required,dateonly,ltdatetoday"`
}

func fieldNames(appErr *apperror.AppError) []string {
	names := make([]string, 0, len(appErr.Fields))
	for _, f := range appErr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestStructValidCredentials(t *testing.T) {
	c := credentials{Email: "user@example.com", Password: "secret"}
	assert.Nil(t, Struct(&c))
}

func TestStructNormalizesBeforeValidation(t *testing.T) {
	c := credentials{Email: "  user@example.com  ", Password: "  secret  "}
	require.Nil(t, Struct(&c))
	assert.Equal(t, "user@example.com", c.Email)
	assert.Equal(t, "secret", c.Password)
}

func TestStructMissingFields(t *testing.T) {
	c := credentials{}
	appErr := Struct(&c)
	require.NotNil(t, appErr)
	assert.Equal(t, apperror.ValidationError, appErr.Type)
	assert.ElementsMatch(t, []string{"email", "password"}, fieldNames(appErr))
}

func TestStructWhitespaceOnlyPasswordIsRejected(t *testing.T) {
	// Trimming happens first, so a blank password fails the required rule.
	c := credentials{Email: "user@example.com", Password: "   "}
	appErr := Struct(&c)
	require.NotNil(t, appErr)
	assert.Equal(t, []string{"password"}, fieldNames(appErr))
}

func TestStructInvalidEmail(t *testing.T) {
	for _, email := range []string{"not-an-email", "user@", "@example.com", "user example.com"} {
		c := credentials{Email: email, Password: "secret"}
		appErr := Struct(&c)
		require.NotNil(t, appErr, "email %q should be rejected", email)
		assert.Equal(t, []string{"email"}, fieldNames(appErr))
	}
}

func validProfile() profileFields {
	return profileFields{
		Name:   "John Doe",
		Mobile: "9876543210",
		Gender: "MALE",
		DOB:    "1990-04-23",
	}
}

func TestStructValidProfile(t *testing.T) {
	p := validProfile()
	assert.Nil(t, Struct(&p))
}

func TestStructNameRules(t *testing.T) {
	cases := map[string]bool{
		"John Doe":   true,
		"Mary Jane ": true, // trailing space survives (no Normalize on this struct)
		"John3":      false,
		"John-Doe":   false,
		"J@ne":       false,
	}
	for name, ok := range cases {
		p := validProfile()
		p.Name = name
		appErr := Struct(&p)
		if ok {
			assert.Nil(t, appErr, "name %q should pass", name)
		} else {
			require.NotNil(t, appErr, "name %q should fail", name)
			assert.Equal(t, []string{"name"}, fieldNames(appErr))
		}
	}
}

func TestStructMobileRules(t *testing.T) {
	for _, mobile := range []string{"123456789", "12345678901", "98765432a0", "98765 4321", ""} {
		p := validProfile()
		p.Mobile = mobile
		appErr := Struct(&p)
		require.NotNil(t, appErr, "mobile %q should fail", mobile)
		assert.Contains(t, fieldNames(appErr), "mobile")
	}
}

func TestStructGenderEnum(t *testing.T) {
	for _, gender := range []string{"OTHER", "male", "Female", ""} {
		p := validProfile()
		p.Gender = gender
		appErr := Struct(&p)
		require.NotNil(t, appErr, "gender %q should fail", gender)
		assert.Contains(t, fieldNames(appErr), "gender")
	}
}

func TestStructDOBFormat(t *testing.T) {
	for _, dob := range []string{"23-04-1990", "1990/04/23", "1990-13-01", "yesterday"} {
		p := validProfile()
		p.DOB = dob
		appErr := Struct(&p)
		require.NotNil(t, appErr, "dob %q should fail", dob)
		assert.Contains(t, fieldNames(appErr), "dob")
	}
}

func TestStructDOBMustBeBeforeToday(t *testing.T) {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	cases := []struct {
		dob string
		ok  bool
	}{
		{today.AddDate(0, 0, -1).Format(DateLayout), true},
		{today.Format(DateLayout), false},
		{today.AddDate(0, 0, 1).Format(DateLayout), false},
		{today.AddDate(1, 0, 0).Format(DateLayout), false},
	}
	for _, tc := range cases {
		p := validProfile()
		p.DOB = tc.dob
		appErr := Struct(&p)
		if tc.ok {
			assert.Nil(t, appErr, "dob %q should pass", tc.dob)
		} else {
			require.NotNil(t, appErr, "dob %q should fail", tc.dob)
			assert.Contains(t, fieldNames(appErr), "dob")
		}
	}
}

func TestStructCollectsAllFieldErrors(t *testing.T) {
	p := profileFields{Name: "123", Mobile: "12", Gender: "X", DOB: "3000-01-01"}
	appErr := Struct(&p)
	require.NotNil(t, appErr)
	assert.ElementsMatch(t, []string{"name", "mobile", "gender", "dob"}, fieldNames(appErr))
}
