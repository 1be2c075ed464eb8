// Package auth, as part of the authentication module.
// This file, `repository.go`, defines the persistence interfaces the auth
// and users services depend on, together with their pgx implementations.
// Keeping the interfaces explicit decouples handler and service logic from
// the storage technology and lets tests substitute in-memory fakes.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Sentinel errors returned by repositories. Services translate these into
// apperror values; they never reach the HTTP boundary directly.
var (
	// ErrUserNotFound indicates no user row matched the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken indicates the unique constraint on users.email fired.
	ErrEmailTaken = errors.New("email already exists")
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// UserRepository abstracts persistence for User entities.
type UserRepository interface {
	// Create inserts a new user and returns it with its generated fields.
	// Returns ErrEmailTaken when the email uniqueness constraint is violated.
	Create(ctx context.Context, email, hashedPassword string) (*User, error)
	// FindByEmail returns the user with the given (already normalized) email,
	// or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*User, error)
	// FindByID returns the user with the given id, or ErrUserNotFound.
	FindByID(ctx context.Context, id int64) (*User, error)
	// ExistsByEmail reports whether a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// DeleteByEmail removes the user with the given email and reports whether
	// a row was deleted. The associated profile is removed by the schema's
	// ON DELETE CASCADE.
	DeleteByEmail(ctx context.Context, email string) (bool, error)
}

// TokenRevocations abstracts the logout denylist. A bearer token is
// identified by its jti claim; once revoked it can no longer authenticate.
type TokenRevocations interface {
	// Revoke records a token id until its natural expiry.
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	// IsRevoked reports whether a token id has been revoked.
	IsRevoked(ctx context.Context, jti string) (bool, error)
	// DeleteExpired removes denylist entries whose tokens have expired anyway,
	// returning the number of rows deleted.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// PgxUserRepository is the PostgreSQL implementation of UserRepository.
type PgxUserRepository struct {
	pool *pgxpool.Pool
}

// NewPgxUserRepository creates a PgxUserRepository on the shared pool.
func NewPgxUserRepository(pool *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{pool: pool}
}

func (r *PgxUserRepository) Create(ctx context.Context, email, hashedPassword string) (*User, error) {
	user := &User{Email: email, HashedPassword: hashedPassword}
	query := `INSERT INTO users (email, password)
              VALUES ($1, $2)
              RETURNING id, created_at`
	err := r.pool.QueryRow(ctx, query, email, hashedPassword).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && strings.Contains(pgErr.ConstraintName, "email") {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (r *PgxUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	query := `SELECT id, email, password, created_at FROM users WHERE email = $1`
	err := r.pool.QueryRow(ctx, query, email).Scan(&user.ID, &user.Email, &user.HashedPassword, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *PgxUserRepository) FindByID(ctx context.Context, id int64) (*User, error) {
	var user User
	query := `SELECT id, email, password, created_at FROM users WHERE id = $1`
	err := r.pool.QueryRow(ctx, query, id).Scan(&user.ID, &user.Email, &user.HashedPassword, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *PgxUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`
	if err := r.pool.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PgxUserRepository) DeleteByEmail(ctx context.Context, email string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE email = $1`, email)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// PgxTokenRevocations is the PostgreSQL implementation of TokenRevocations.
// Entries outlive nothing: the background sweeper prunes rows once the
// corresponding tokens have expired on their own.
type PgxTokenRevocations struct {
	pool *pgxpool.Pool
}

// NewPgxTokenRevocations creates a PgxTokenRevocations on the shared pool.
func NewPgxTokenRevocations(pool *pgxpool.Pool) *PgxTokenRevocations {
	return &PgxTokenRevocations{pool: pool}
}

func (r *PgxTokenRevocations) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	// Revoking an already-revoked token is a no-op, not an error.
	query := `INSERT INTO revoked_tokens (jti, expires_at) VALUES ($1, $2)
              ON CONFLICT (jti) DO NOTHING`
	_, err := r.pool.Exec(ctx, query, jti, expiresAt)
	return err
}

func (r *PgxTokenRevocations) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var revoked bool
	query := `SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE jti = $1)`
	if err := r.pool.QueryRow(ctx, query, jti).Scan(&revoked); err != nil {
		return false, err
	}
	return revoked, nil
}

func (r *PgxTokenRevocations) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM revoked_tokens WHERE expires_at < $1`, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
