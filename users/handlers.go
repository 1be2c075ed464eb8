// Package users encapsulates all functionality related to user profile
// management: the one-to-one profile record (get/create/update) and user
// deletion. This file, `handlers.go`, is the HTTP boundary: decode, run the
// declarative validation schema, delegate to ProfileService, map the result
// to the canonical envelope.
package users

import (
	"encoding/json"
	"net/http"

	"github.com/user/profileapi-go/apperror"
	"github.com/user/profileapi-go/auth"
	"github.com/user/profileapi-go/validate"
)

// ProfileHandlers provides HTTP handlers for profile management.
type ProfileHandlers struct {
	service *ProfileService
}

// NewProfileHandlers creates new ProfileHandlers.
func NewProfileHandlers(service *ProfileService) *ProfileHandlers {
	return &ProfileHandlers{service: service}
}

// HandleGetProfile godoc
// @Summary Get current user's profile
// @Description Returns the caller's user record joined with their profile. The profile is null when none exists yet.
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} users.GetProfileResponse "Joined user and profile projection"
// @Failure 401 {object} apperror.ErrorResponse "Missing, invalid, or revoked token"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/user/profile [get]
func (h *ProfileHandlers) HandleGetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("no authentication context found", nil))
			return
		}

		userProfile, err := h.service.GetUserProfile(r.Context(), userID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, GetProfileResponse{
			Message: "User Profile",
			Token:   userProfile,
		})
	}
}

// HandleCreateProfile godoc
// @Summary Create current user's profile
// @Description Creates the caller's profile. When one already exists the call is informational and nothing is written.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profileBody body users.ProfileRequest true "Profile fields"
// @Success 200 {object} users.ProfileDataResponse "Profile created (or informational already-exists message)"
// @Failure 400 {object} apperror.ErrorResponse "Validation failure"
// @Failure 401 {object} apperror.ErrorResponse "Missing, invalid, or revoked token"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/user/profile [post]
func (h *ProfileHandlers) HandleCreateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("no authentication context found", nil))
			return
		}

		var req ProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		// The existence short-circuit runs before validation: an
		// already-provisioned caller gets the informational message even
		// when the body would not validate.
		exists, err := h.service.ProfileExists(r.Context(), userID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		if exists {
			auth.WriteJSON(w, http.StatusOK, auth.MessageResponse{
				Message: "Profile already exists, please try updating it",
			})
			return
		}

		if appErr := validate.Struct(&req); appErr != nil {
			auth.WriteError(w, r, appErr)
			return
		}

		result, err := h.service.CreateProfile(r.Context(), userID, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		if result.AlreadyExists {
			auth.WriteJSON(w, http.StatusOK, auth.MessageResponse{
				Message: "Profile already exists, please try updating it",
			})
			return
		}

		auth.WriteJSON(w, http.StatusOK, ProfileDataResponse{
			Message: "Profile created successfully",
			Data:    result.Profile,
		})
	}
}

// HandleUpdateProfile godoc
// @Summary Update current user's profile
// @Description Replaces all four profile fields. When no profile exists the call is informational and nothing is written.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profileBody body users.ProfileRequest true "Profile fields"
// @Success 200 {object} users.ProfileDataResponse "Profile updated (or informational missing-profile message)"
// @Failure 400 {object} apperror.ErrorResponse "Validation failure"
// @Failure 401 {object} apperror.ErrorResponse "Missing, invalid, or revoked token"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/user/profile [put]
func (h *ProfileHandlers) HandleUpdateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("no authentication context found", nil))
			return
		}

		var req ProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if appErr := validate.Struct(&req); appErr != nil {
			auth.WriteError(w, r, appErr)
			return
		}

		result, err := h.service.UpdateProfile(r.Context(), userID, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		if result.Missing {
			auth.WriteJSON(w, http.StatusOK, auth.MessageResponse{
				Message: "Profile does not exist, please create your profile before updating it",
			})
			return
		}

		auth.WriteJSON(w, http.StatusOK, ProfileDataResponse{
			Message: "Profile updated successfully",
			Data:    result.Profile,
		})
	}
}

// HandleDeleteUser godoc
// @Summary Delete a user by email
// @Description Deletes the user with the given email; the associated profile is removed by cascade. A missing user is informational.
// @Tags Profile
// @Accept json
// @Produce json
// @Param deleteBody body users.DeleteUserRequest true "Email of the account to delete"
// @Success 200 {object} auth.MessageResponse "Deleted (or informational does-not-exist message)"
// @Failure 400 {object} apperror.ErrorResponse "Validation failure"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/user/profile [delete]
func (h *ProfileHandlers) HandleDeleteUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DeleteUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if appErr := validate.Struct(&req); appErr != nil {
			auth.WriteError(w, r, appErr)
			return
		}

		result, err := h.service.DeleteUser(r.Context(), req.Email)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		if result.Missing {
			auth.WriteJSON(w, http.StatusOK, auth.MessageResponse{Message: "User does not exist"})
			return
		}

		auth.WriteJSON(w, http.StatusOK, auth.MessageResponse{Message: "User deleted successfully"})
	}
}
