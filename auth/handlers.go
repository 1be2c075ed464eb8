// Package auth, as part of the authentication module.
// This file, `handlers.go`, is the HTTP boundary for register, login, and
// logout. Handlers decode the body, run the declarative validation schema,
// delegate to AuthService, and write the canonical response envelope.
package auth

import (
	"encoding/json"
	"net/http"

	"github.com/user/profileapi-go/apperror"
	"github.com/user/profileapi-go/validate"
)

// Handlers wraps the AuthService to provide HTTP handlers.
type Handlers struct {
	service *AuthService
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *AuthService) *Handlers {
	return &Handlers{service: service}
}

// HandleRegister godoc
// @Summary User Registration
// @Description Registers a new user with a unique email address.
// @Tags Auth
// @Accept json
// @Produce json
// @Param registerBody body auth.RegisterRequest true "User registration details"
// @Success 201 {object} auth.User "User created successfully"
// @Failure 400 {object} apperror.ErrorResponse "Validation failure, including an already-taken email"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/register [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if appErr := validate.Struct(&req); appErr != nil {
			WriteError(w, r, appErr)
			return
		}

		user, err := h.service.Register(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		// 201 with the created user; HashedPassword is excluded by its json tag.
		writeJSON(w, http.StatusCreated, user)
	}
}

// HandleLogin godoc
// @Summary User Login
// @Description Verifies credentials and issues a bearer token valid for 24 hours.
// @Tags Auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "User login credentials"
// @Success 200 {object} auth.LoginResponse "Login successful, token provided"
// @Failure 400 {object} apperror.ErrorResponse "Validation failure"
// @Failure 401 {object} apperror.ErrorResponse "Generic credential error, identical for unknown email and wrong password"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if appErr := validate.Struct(&req); appErr != nil {
			WriteError(w, r, appErr)
			return
		}

		token, err := h.service.Login(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			Message: "Logged in successfully",
			Token:   *token,
		})
	}
}

// HandleLogout godoc
// @Summary User Logout
// @Description Invalidates the presented bearer token so it can no longer authenticate requests.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} auth.MessageResponse "Logged out"
// @Failure 401 {object} apperror.ErrorResponse "Missing, invalid, or already revoked token"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/logout [post]
func (h *Handlers) HandleLogout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			WriteError(w, r, apperror.NewAuthError("no authentication context found", nil))
			return
		}

		if err := h.service.Logout(r.Context(), claims); err != nil {
			WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Logged out successfully"})
	}
}

// writeJSON serializes data to JSON with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"error":{"message":"failed to encode response"}}`, http.StatusInternalServerError)
		}
	}
}

// WriteJSON is the exported response helper shared with the users package.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, data)
}

// WriteError converts any error into the standardized error envelope.
// Non-AppError values are wrapped as internal errors so that no raw error
// text other than the message leaks to clients unvetted.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("an unexpected error occurred: "+err.Error(), err)
	}
	writeJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
