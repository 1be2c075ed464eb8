// Package validate implements the declarative request-validation layer.
// Request DTOs declare their constraints as struct tags; handlers call
// Struct before any domain logic runs, and a failure produces a
// ValidationError carrying a per-field message list, so invalid input never
// reaches a service or the database.
//
// Analogy to AdonisJS: this is the request.validate({ schema }) step, with
// the schema expressed as go-playground/validator tags instead of a builder.
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/user/profileapi-go/apperror"
)

// DateLayout is the calendar format accepted for date fields (yyyy-MM-dd).
const DateLayout = "2006-01-02"

var (
	alphaSpaceRegex = regexp.MustCompile(`^[A-Za-z ]+$`)
	mobileRegex     = regexp.MustCompile(`^[0-9]{10}$`)
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their JSON names so error lists match the wire
	// payload rather than Go struct fields.
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Custom rules used by the auth and profile schemas. Registration only
	// fails for a nil func or empty tag, neither of which can happen here.
	_ = val.RegisterValidation("alphaspace", isAlphaSpace)
	_ = val.RegisterValidation("mobile", isMobile)
	_ = val.RegisterValidation("dateonly", isDateOnly)
	_ = val.RegisterValidation("ltdatetoday", isBeforeToday)

	return val
}

// isAlphaSpace allows letters and spaces only (names such as "Mary Jane").
func isAlphaSpace(fl validator.FieldLevel) bool {
	return alphaSpaceRegex.MatchString(fl.Field().String())
}

// isMobile requires exactly 10 digits.
func isMobile(fl validator.FieldLevel) bool {
	return mobileRegex.MatchString(fl.Field().String())
}

// isDateOnly requires the value to parse under DateLayout.
func isDateOnly(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}

// isBeforeToday requires the value to be a calendar date strictly earlier
// than the current date. A value that does not parse is rejected here too,
// though the dateonly rule will already have flagged it.
func isBeforeToday(fl validator.FieldLevel) bool {
	d, err := time.Parse(DateLayout, fl.Field().String())
	if err != nil {
		return false
	}
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return d.Before(today)
}

// Normalizable lets a DTO normalize itself (typically trimming whitespace)
// before its constraints are checked. Struct invokes it when implemented.
type Normalizable interface {
	Normalize()
}

// Struct normalizes and validates a request DTO. It returns nil when the
// value passes, or a *apperror.AppError of type ValidationError listing each
// offending field. Pass a pointer so normalization mutates the caller's copy.
func Struct(s interface{}) *apperror.AppError {
	if n, ok := s.(Normalizable); ok {
		n.Normalize()
	}

	err := v.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError: the caller handed us something that is not
		// a struct. That is a programming error, not client input.
		return apperror.NewBadRequestError("invalid request payload", nil)
	}

	fields := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperror.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return apperror.NewValidationError("request validation failed", fields)
}

// messageFor renders a client-facing message for a single rule failure.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "alphaspace":
		return fmt.Sprintf("%s may only contain letters and spaces", fe.Field())
	case "mobile":
		return fmt.Sprintf("%s must be exactly 10 digits", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	case "dateonly":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", fe.Field())
	case "ltdatetoday":
		return fmt.Sprintf("%s must be a date before today", fe.Field())
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag())
	}
}
