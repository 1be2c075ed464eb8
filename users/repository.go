// Package users, as part of the user profile management module.
// This file, `repository.go`, defines the ProfileRepository persistence
// interface and its pgx implementation.
package users

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrProfileNotFound indicates no profile row exists for the user.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository abstracts persistence for Profile entities.
type ProfileRepository interface {
	// FindByUserID returns the profile owned by userID, or ErrProfileNotFound.
	FindByUserID(ctx context.Context, userID int64) (*Profile, error)
	// Create inserts a new profile row and fills in the generated fields.
	Create(ctx context.Context, profile *Profile) error
	// Update overwrites the four client-supplied fields of the profile owned
	// by profile.UserID and returns the persisted row, or ErrProfileNotFound.
	Update(ctx context.Context, profile *Profile) (*Profile, error)
}

// PgxProfileRepository is the PostgreSQL implementation of ProfileRepository.
type PgxProfileRepository struct {
	pool *pgxpool.Pool
}

// NewPgxProfileRepository creates a PgxProfileRepository on the shared pool.
func NewPgxProfileRepository(pool *pgxpool.Pool) *PgxProfileRepository {
	return &PgxProfileRepository{pool: pool}
}

func (r *PgxProfileRepository) FindByUserID(ctx context.Context, userID int64) (*Profile, error) {
	var p Profile
	query := `SELECT id, user_id, name, mobile, gender, dob, created_at, updated_at
              FROM profiles WHERE user_id = $1`
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Mobile, &p.Gender, &p.DOB.Time, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PgxProfileRepository) Create(ctx context.Context, profile *Profile) error {
	query := `INSERT INTO profiles (user_id, name, mobile, gender, dob)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		profile.UserID, profile.Name, profile.Mobile, profile.Gender, profile.DOB.Time,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *PgxProfileRepository) Update(ctx context.Context, profile *Profile) (*Profile, error) {
	var p Profile
	query := `UPDATE profiles
              SET name = $2, mobile = $3, gender = $4, dob = $5, updated_at = now()
              WHERE user_id = $1
              RETURNING id, user_id, name, mobile, gender, dob, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		profile.UserID, profile.Name, profile.Mobile, profile.Gender, profile.DOB.Time,
	).Scan(&p.ID, &p.UserID, &p.Name, &p.Mobile, &p.Gender, &p.DOB.Time, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}
