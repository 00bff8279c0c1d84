// Package repository provides persistence implementations for the
// authentication and expense services using a SQLite database.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/avagyan/expense-tracker/internal/models"
)

// ErrDuplicateUser is returned when a username is already taken.
var ErrDuplicateUser = errors.New("user already exists")

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// SQLiteUserRepository implements user persistence against a SQLite database.
type SQLiteUserRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewSQLiteUserRepository creates a new SQLiteUserRepository with the given
// database connection.
func NewSQLiteUserRepository(db *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{DB: db}
}

// CreateUser inserts a new user row with the given username and password hash.
// Returns ErrDuplicateUser if the username is already registered.
func (r *SQLiteUserRepository) CreateUser(ctx context.Context, username string, passwordHash []byte) error {
	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO user (username, password) VALUES (?, ?)`,
		username, passwordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateUser
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// GetUserByUsername fetches a user by username.
// Returns ErrUserNotFound if no such user exists.
func (r *SQLiteUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT id, username, password FROM user WHERE username = ?`,
		username,
	).Scan(&user.ID, &user.Username, &user.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &user, nil
}

// isUniqueViolation reports whether err is a SQLite unique-constraint
// violation. The driver exposes no typed error for it, so the constraint
// message is matched.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
