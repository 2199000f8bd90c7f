package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"serverless_blog/internal/models"

	"github.com/google/uuid"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of UserRepo interface at compile time.
var _ UserRepo = (*UserRepository)(nil)

const (
	insertUserSQL = `INSERT INTO users (id, email, first_name, last_name, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	selectUserByEmailSQL = `SELECT id, email, first_name, last_name, password_hash, created_at FROM users WHERE email = $1`
	selectUserByIDSQL    = `SELECT id, email, first_name, last_name, password_hash, created_at FROM users WHERE id = $1`
)

// Create inserts a new user, assigning its ID and CreatedAt.
// A taken email yields ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	id := uuid.NewString()
	createdAt := time.Now().UTC()

	var lastName sql.NullString
	if u.LastName != "" {
		lastName = sql.NullString{String: u.LastName, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, insertUserSQL, id, u.Email, u.FirstName, lastName, u.PasswordHash, createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert user %q: %w", u.Email, ErrDuplicate)
		}
		return fmt.Errorf("insert user %q: %w", u.Email, err)
	}

	u.ID = id
	u.CreatedAt = createdAt
	return nil
}

// GetByEmail fetches a user by email. Returns (nil, nil) if not found.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUserByEmailSQL, email))
	if err != nil {
		return nil, fmt.Errorf("select user %q: %w", email, err)
	}
	return u, nil
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUserByIDSQL, id))
	if err != nil {
		return nil, fmt.Errorf("select user by id %q: %w", id, err)
	}
	return u, nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	var (
		u        models.User
		lastName sql.NullString
	)
	err := row.Scan(&u.ID, &u.Email, &u.FirstName, &lastName, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	u.LastName = lastName.String
	return &u, nil
}
