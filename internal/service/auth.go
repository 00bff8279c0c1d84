// Package service provides business-logic services for authentication and
// expense management, delegating persistence to repository interfaces.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avagyan/expense-tracker/internal/apperrors"
	"github.com/avagyan/expense-tracker/internal/models"
	"github.com/avagyan/expense-tracker/internal/repository"
)

// UserRepository defines the persistence operations
// required by the authentication service.
type UserRepository interface {
	// CreateUser creates a new user record with the given username and
	// password hash. Returns repository.ErrDuplicateUser if taken.
	CreateUser(ctx context.Context, username string, passwordHash []byte) error
	// GetUserByUsername fetches a user by username.
	// Returns repository.ErrUserNotFound if no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// PasswordHasher abstracts one-way password hashing and verification.
type PasswordHasher interface {
	Hash(password string) ([]byte, error)
	Check(password string, hash []byte) bool
}

// TokenIssuer abstracts stateless access-token issuance.
type TokenIssuer interface {
	Issue(userID int64) (string, error)
}

// AuthService implements registration and login on top of a user
// repository, a password hasher and a token issuer.
type AuthService struct {
	repo   UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

// NewAuthService constructs a new AuthService using the provided
// repository, hasher and token issuer.
func NewAuthService(repo UserRepository, hasher PasswordHasher, tokens TokenIssuer) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens}
}

// Register creates a new user with a hashed password.
// Empty username or password fails validation before any hashing happens.
// A taken username yields a conflict error.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	if username == "" {
		return apperrors.Validation("Username is required.")
	}
	if password == "" {
		return apperrors.Validation("Password is required.")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.CreateUser(ctx, username, hash); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return apperrors.Conflict(fmt.Sprintf("User %s is already registered.", username))
		}
		return err
	}
	return nil
}

// Login verifies the credentials and returns a signed access token bound to
// the user's id. An unknown username and a wrong password are
// indistinguishable: both produce the same authentication error.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", apperrors.Unauthorized("Invalid username or password")
		}
		return "", err
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		return "", apperrors.Unauthorized("Invalid username or password")
	}

	accessToken, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return accessToken, nil
}
