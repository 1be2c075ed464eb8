package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/profileapi-go/apperror"
)

// protectedProbe records whether the gate let the request through and what
// claims it attached.
func protectedProbe(t *testing.T) (http.Handler, *CustomClaims, *bool) {
	t.Helper()
	var seen CustomClaims
	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok, "claims must be in the request context past the gate")
		seen = *claims
		w.WriteHeader(http.StatusOK)
	})
	return handler, &seen, &called
}

func loginToken(t *testing.T, service *AuthService) string {
	t.Helper()
	ctx := context.Background()
	_, err := service.Register(ctx, RegisterRequest{Email: "user@example.com", Password: "secret123"})
	require.NoError(t, err)
	payload, err := service.Login(ctx, LoginRequest{Email: "user@example.com", Password: "secret123"})
	require.NoError(t, err)
	return payload.Token
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) apperror.ErrorResponse {
	t.Helper()
	var body apperror.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestJWTMiddlewareMissingHeader(t *testing.T) {
	service, _, _ := newTestService()
	handler, _, called := protectedProbe(t)
	gate := JWTMiddleware(service)(handler)

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.False(t, *called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Authorization header is missing", decodeErrorBody(t, rec).Error.Message)
}

func TestJWTMiddlewareMalformedHeader(t *testing.T) {
	service, _, _ := newTestService()
	token := loginToken(t, service)

	for _, header := range []string{"Basic " + token, token, "Bearer"} {
		handler, _, called := protectedProbe(t)
		gate := JWTMiddleware(service)(handler)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		gate.ServeHTTP(rec, req)

		assert.False(t, *called, "header %q should not pass the gate", header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Authorization header format must be Bearer {token}", decodeErrorBody(t, rec).Error.Message)
	}
}

func TestJWTMiddlewareValidToken(t *testing.T) {
	service, _, _ := newTestService()
	token := loginToken(t, service)
	handler, seen, called := protectedProbe(t)
	gate := JWTMiddleware(service)(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)

	assert.True(t, *called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), seen.UserID)
}

// The scheme comparison is case-insensitive, matching common client behavior.
func TestJWTMiddlewareLowercaseScheme(t *testing.T) {
	service, _, _ := newTestService()
	token := loginToken(t, service)
	handler, _, called := protectedProbe(t)
	gate := JWTMiddleware(service)(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer "+token)
	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)

	assert.True(t, *called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTMiddlewareRevokedToken(t *testing.T) {
	service, _, _ := newTestService()
	token := loginToken(t, service)
	ctx := context.Background()

	claims, err := service.Authenticate(ctx, token)
	require.NoError(t, err)
	require.NoError(t, service.Logout(ctx, claims))

	handler, _, called := protectedProbe(t)
	gate := JWTMiddleware(service)(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)

	assert.False(t, *called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "token has been revoked", decodeErrorBody(t, rec).Error.Message)
}

func TestJWTMiddlewareTamperedToken(t *testing.T) {
	service, _, _ := newTestService()
	token := loginToken(t, service)
	handler, _, called := protectedProbe(t)
	gate := JWTMiddleware(service)(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token+"x")
	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)

	assert.False(t, *called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
