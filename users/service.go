// Package users, as part of the user profile management module.
// This file, `service.go`, contains the business logic for profile reads and
// mutations and for user deletion. Expected non-success outcomes — a profile
// that already exists on create, a missing profile on update, a missing user
// on delete — are modeled as result values rather than errors, because they
// are ordinary conditions the API reports informationally.
package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/user/profileapi-go/apperror"
	"github.com/user/profileapi-go/auth"
	"github.com/user/profileapi-go/validate"
)

// CreateResult reports the outcome of CreateProfile.
type CreateResult struct {
	// AlreadyExists is true when the user already had a profile; Profile is
	// nil in that case and nothing was written.
	AlreadyExists bool
	Profile       *Profile
}

// UpdateResult reports the outcome of UpdateProfile.
type UpdateResult struct {
	// Missing is true when the user had no profile to update; Profile is nil
	// in that case and nothing was written.
	Missing bool
	Profile *Profile
}

// DeleteResult reports the outcome of DeleteUser.
type DeleteResult struct {
	// Missing is true when no user with the given email existed.
	Missing bool
}

// ProfileService provides profile CRUD and user deletion.
type ProfileService struct {
	profiles ProfileRepository
	users    auth.UserRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profiles ProfileRepository, users auth.UserRepository) *ProfileService {
	return &ProfileService{profiles: profiles, users: users}
}

// GetUserProfile returns the caller's user record joined with their profile,
// projected to {id, email} and {name, mobile, gender, dob}. An absent
// profile yields a null projection, not an error.
func (s *ProfileService) GetUserProfile(ctx context.Context, userID int64) (*UserWithProfile, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			// The token authenticated but the account is gone (deleted after
			// issuance). Treat as an auth failure rather than a 404.
			return nil, apperror.NewAuthError("account no longer exists", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}

	result := &UserWithProfile{ID: user.ID, Email: user.Email}

	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return result, nil
		}
		return nil, apperror.NewDatabaseError("failed to get profile", err)
	}

	result.Profile = &ProfileSummary{
		Name:   profile.Name,
		Mobile: profile.Mobile,
		Gender: profile.Gender,
		DOB:    profile.DOB,
	}
	return result, nil
}

// ProfileExists reports whether the user already has a profile.
func (s *ProfileService) ProfileExists(ctx context.Context, userID int64) (bool, error) {
	_, err := s.profiles.FindByUserID(ctx, userID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrProfileNotFound) {
		return false, nil
	}
	return false, apperror.NewDatabaseError("failed to check for existing profile", err)
}

// CreateProfile creates the caller's profile from an already-validated
// request. When a profile already exists the call is a no-op reported via
// AlreadyExists. After inserting, the profile is re-read from storage so the
// returned payload reflects every persisted field, including server-assigned
// defaults and timestamps.
func (s *ProfileService) CreateProfile(ctx context.Context, userID int64, req ProfileRequest) (*CreateResult, error) {
	_, err := s.profiles.FindByUserID(ctx, userID)
	if err == nil {
		return &CreateResult{AlreadyExists: true}, nil
	}
	if !errors.Is(err, ErrProfileNotFound) {
		return nil, apperror.NewDatabaseError("failed to check for existing profile", err)
	}

	profile, err := profileFromRequest(userID, req)
	if err != nil {
		return nil, err
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, apperror.NewDatabaseError("failed to create profile", err)
	}

	persisted, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to re-read created profile", err)
	}
	return &CreateResult{Profile: persisted}, nil
}

// UpdateProfile merges the validated fields into the caller's existing
// profile. When no profile exists the call is a no-op reported via Missing.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID int64, req ProfileRequest) (*UpdateResult, error) {
	profile, err := profileFromRequest(userID, req)
	if err != nil {
		return nil, err
	}

	updated, err := s.profiles.Update(ctx, profile)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return &UpdateResult{Missing: true}, nil
		}
		return nil, apperror.NewDatabaseError("failed to update profile", err)
	}
	return &UpdateResult{Profile: updated}, nil
}

// DeleteUser removes the user with the given (validated) email. The email is
// lowercased first, matching how registration stores it. The profile row is
// removed by the schema's ON DELETE CASCADE. A missing user is an
// informational outcome, not an error.
func (s *ProfileService) DeleteUser(ctx context.Context, email string) (*DeleteResult, error) {
	deleted, err := s.users.DeleteByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to delete user", err)
	}
	return &DeleteResult{Missing: !deleted}, nil
}

// profileFromRequest converts a validated ProfileRequest into the entity.
// The dob string has already passed the dateonly rule, so a parse failure
// here means the request skipped validation.
func profileFromRequest(userID int64, req ProfileRequest) (*Profile, error) {
	dob, err := time.Parse(validate.DateLayout, req.DOB)
	if err != nil {
		return nil, apperror.NewBadRequestError("invalid dob value", err)
	}
	return &Profile{
		UserID: userID,
		Name:   req.Name,
		Mobile: req.Mobile,
		Gender: Gender(req.Gender),
		DOB:    NewDateOnly(dob),
	}, nil
}
