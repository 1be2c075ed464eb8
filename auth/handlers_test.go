package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAuthRouter wires the three auth endpoints the way main.go does.
func newAuthRouter(service *AuthService) *chi.Mux {
	h := NewHandlers(service)
	r := chi.NewRouter()
	r.Post("/api/register", h.HandleRegister())
	r.Post("/api/login", h.HandleLogin())
	r.Group(func(r chi.Router) {
		r.Use(JWTMiddleware(service))
		r.Post("/api/logout", h.HandleLogout())
	})
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleRegisterCreated(t *testing.T) {
	service, _, _ := newTestService()
	router := newAuthRouter(service)

	rec := doJSON(t, router, http.MethodPost, "/api/register",
		`{"email":"  User@Example.com  ","password":"secret123"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "user@example.com", body["email"])
	assert.EqualValues(t, 1, body["id"])

	// The hash must never appear on the wire, under any key.
	assert.NotContains(t, body, "password")
}

func TestHandleRegisterInvalidBody(t *testing.T) {
	service, _, _ := newTestService()
	router := newAuthRouter(service)

	rec := doJSON(t, router, http.MethodPost, "/api/register", `{"email":`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRegisterValidationFailure(t *testing.T) {
	service, _, _ := newTestService()
	router := newAuthRouter(service)

	rec := doJSON(t, router, http.MethodPost, "/api/register",
		`{"email":"not-an-email","password":""}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error struct {
			Message string `json:"message"`
			Fields  []struct {
				Field string `json:"field"`
			} `json:"fields"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	fields := make([]string, 0, len(body.Error.Fields))
	for _, f := range body.Error.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"email", "password"}, fields)
}

func TestHandleRegisterDuplicateEmail(t *testing.T) {
	service, _, _ := newTestService()
	router := newAuthRouter(service)

	rec := doJSON(t, router, http.MethodPost, "/api/register",
		`{"email":"user@example.com","password":"secret123"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/register",
		`{"email":"user@example.com","password":"other456"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "email has already been taken")
}

func TestHandleLoginSuccess(t *testing.T) {
	service, _, _ := newTestService()
	router := newAuthRouter(service)

	rec := doJSON(t, router, http.MethodPost, "/api/register",
		`{"email":"user@example.com","password":"secret123"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/login",
		`{"email":"user@example.com","password":"secret123"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Logged in successfully", body.Message)
	assert.Equal(t, "bearer", body.Token.Type)
	assert.NotEmpty(t, body.Token.Token)
	assert.False(t, body.Token.ExpiresAt.IsZero())
}

func TestHandleLoginBadCredentials(t *testing.T) {
	service, _, _ := newTestService()
	router := newAuthRouter(service)

	rec := doJSON(t, router, http.MethodPost, "/api/register",
		`{"email":"user@example.com","password":"secret123"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	wrongPassword := doJSON(t, router, http.MethodPost, "/api/login",
		`{"email":"user@example.com","password":"wrong"}`, "")
	unknownEmail := doJSON(t, router, http.MethodPost, "/api/login",
		`{"email":"nobody@example.com","password":"secret123"}`, "")

	// Both failures are byte-identical on the wire.
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	assert.Contains(t, wrongPassword.Body.String(), CredentialErrorMessage)
}

func TestHandleLogoutInvalidatesToken(t *testing.T) {
	service, _, _ := newTestService()
	router := newAuthRouter(service)

	rec := doJSON(t, router, http.MethodPost, "/api/register",
		`{"email":"user@example.com","password":"secret123"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/login",
		`{"email":"user@example.com","password":"secret123"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var login LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&login))
	token := login.Token.Token

	rec = doJSON(t, router, http.MethodPost, "/api/logout", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Logged out successfully")

	// The same token no longer authenticates.
	rec = doJSON(t, router, http.MethodPost, "/api/logout", "", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "token has been revoked")
}

func TestHandleLogoutWithoutToken(t *testing.T) {
	service, _, _ := newTestService()
	router := newAuthRouter(service)

	rec := doJSON(t, router, http.MethodPost, "/api/logout", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
