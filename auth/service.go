// Package auth is responsible for handling authentication logic: user
// registration, login, bearer-token issuance and validation, and logout.
//
// Analogy to AdonisJS: this module covers what AuthController plus the `api`
// token guard did in the original service, with the guard's session state
// kept as a revocation list in the database.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/profileapi-go/apperror"
	"github.com/user/profileapi-go/config"
)

// CredentialErrorMessage is the single message returned for any login
// failure. Unknown email and wrong password are deliberately
// indistinguishable so the endpoint cannot be used to enumerate accounts.
const CredentialErrorMessage = "User with provided credentials could not be found"

// AuthService provides registration, login, logout, and token validation.
// Its dependencies are the persistence interfaces, injected explicitly.
type AuthService struct {
	users      UserRepository
	revoked    TokenRevocations
	authConfig config.AuthConfig
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserRepository, revoked TokenRevocations, authConfig config.AuthConfig) *AuthService {
	return &AuthService{
		users:      users,
		revoked:    revoked,
		authConfig: authConfig,
	}
}

// CustomClaims is the JWT payload. RegisteredClaims contributes the standard
// exp/iat/nbf fields plus the jti (ID) used by the revocation list.
type CustomClaims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// emailTakenError is the validation failure reported when the requested
// email already belongs to a user, whether caught by the pre-check or by the
// unique constraint during a racing insert.
func emailTakenError() *apperror.AppError {
	return apperror.NewValidationError("request validation failed", []apperror.FieldError{
		{Field: "email", Message: "email has already been taken"},
	})
}

// Register creates a new user from an already-validated request.
// The email is normalized to lower case before the uniqueness pre-check and
// the insert; the unique index on users.email remains the authority when two
// registrations race.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	email := strings.ToLower(req.Email)

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to check email uniqueness", err)
	}
	if exists {
		return nil, emailTakenError()
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.NewInternalError("failed to hash password", err)
	}

	user, err := s.users.Create(ctx, email, string(hashedPassword))
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			// Lost the race between the pre-check and the insert.
			return nil, emailTakenError()
		}
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}
	return user, nil
}

// Login verifies the credentials and issues a bearer token. Any mismatch —
// unknown email or wrong password — yields the same generic auth error.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*TokenPayload, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperror.NewAuthError(CredentialErrorMessage, nil)
		}
		log.Printf("database error looking up user during login: %v", err)
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, apperror.NewAuthError(CredentialErrorMessage, nil)
	}

	return s.issueToken(user.ID)
}

// Logout terminates the session behind the presented token by revoking its
// jti until the token's natural expiry.
func (s *AuthService) Logout(ctx context.Context, claims *CustomClaims) error {
	if claims == nil || claims.ID == "" {
		return apperror.NewAuthError("no active session", nil)
	}
	expiresAt := time.Now().Add(s.authConfig.TokenDuration)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if err := s.revoked.Revoke(ctx, claims.ID, expiresAt); err != nil {
		return apperror.NewDatabaseError("failed to revoke token", err)
	}
	return nil
}

// Authenticate parses and validates a bearer token string and checks it
// against the revocation list. It is the middleware's entry point.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*CustomClaims, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, apperror.NewAuthError(fmt.Sprintf("invalid token: %v", err), err)
	}

	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to check token revocation", err)
	}
	if revoked {
		return nil, apperror.NewAuthError("token has been revoked", nil)
	}
	return claims, nil
}

// issueToken signs a new HS256 JWT for the user with the configured lifetime
// (24 hours by default) and a fresh jti.
func (s *AuthService) issueToken(userID int64) (*TokenPayload, error) {
	now := time.Now()
	expiresAt := now.Add(s.authConfig.TokenDuration)
	claims := &CustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "profileapi",
			Subject:   fmt.Sprintf("%d", userID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.authConfig.JWTSecret))
	if err != nil {
		return nil, apperror.NewInternalError("failed to sign token", err)
	}

	return &TokenPayload{
		Type:      "bearer",
		Token:     tokenString,
		ExpiresAt: expiresAt,
	}, nil
}

// parseToken verifies the signature and registered claims of a token string.
func (s *AuthService) parseToken(tokenString string) (*CustomClaims, error) {
	claims := &CustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.authConfig.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}
	if claims.UserID == 0 {
		return nil, errors.New("user_id claim is missing or invalid")
	}
	if claims.ID == "" {
		return nil, errors.New("jti claim is missing")
	}
	return claims, nil
}
