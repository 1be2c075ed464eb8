// Package auth, as part of the authentication module.
// This file, `middleware.go`, defines the bearer-token gate applied to the
// protected route groups. It validates the Authorization header, rejects
// expired or revoked tokens, and stores the claims in the request context
// for downstream handlers.
package auth

import (
	"net/http"
	"strings"

	"github.com/user/profileapi-go/apperror"
)

// JWTMiddleware returns middleware that authenticates requests with the
// AuthService. It conforms to the standard func(http.Handler) http.Handler
// shape so it can be applied per route group.
func JWTMiddleware(service *AuthService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, appErr := bearerToken(r)
			if appErr != nil {
				WriteError(w, r, appErr)
				return
			}

			claims, err := service.Authenticate(r.Context(), tokenString)
			if err != nil {
				WriteError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(NewContextWithClaims(r.Context(), claims)))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer {token}"
// header.
func bearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", apperror.NewAuthError("Authorization header is missing", nil)
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", apperror.NewAuthError("Authorization header format must be Bearer {token}", nil)
	}
	return parts[1], nil
}
