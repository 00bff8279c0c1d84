package service

import (
	"context"
	"errors"
	"time"

	"github.com/avagyan/expense-tracker/internal/apperrors"
	"github.com/avagyan/expense-tracker/internal/models"
	"github.com/avagyan/expense-tracker/internal/repository"
)

// dateLayout is the server-side timestamp format stamped on new expenses.
const dateLayout = "2006-01-02 15:04:05"

// ExpenseRepository defines the persistence operations needed by the
// ExpenseService. All lookups and mutations are scoped by the owning user.
type ExpenseRepository interface {
	// CreateExpense inserts a new expense row and returns its generated id.
	CreateExpense(ctx context.Context, expense *models.Expense) (int64, error)
	// GetExpensesByUser retrieves all expenses owned by userID in insertion order.
	GetExpensesByUser(ctx context.Context, userID int64) ([]models.Expense, error)
	// GetExpenseByID fetches a single expense by id for the given owner.
	// Returns repository.ErrExpenseNotFound on a missing row or ownership mismatch.
	GetExpenseByID(ctx context.Context, userID, id int64) (*models.Expense, error)
	// UpdateExpense applies a partial update to the given owner's expense.
	UpdateExpense(ctx context.Context, userID, id int64, description *string, amount *float64) error
	// DeleteExpense removes the given owner's expense.
	DeleteExpense(ctx context.Context, userID, id int64) error
}

// ExpenseService implements expense CRUD business logic for an
// authenticated user.
type ExpenseService struct {
	repo ExpenseRepository
}

// NewExpenseService constructs an ExpenseService with the provided repository.
func NewExpenseService(repo ExpenseRepository) *ExpenseService {
	return &ExpenseService{repo: repo}
}

// List returns every expense owned by userID, in insertion order.
func (s *ExpenseService) List(ctx context.Context, userID int64) ([]models.Expense, error) {
	return s.repo.GetExpensesByUser(ctx, userID)
}

// Get returns a single expense owned by userID. A missing row and a row
// owned by another user both yield the same not-found error.
func (s *ExpenseService) Get(ctx context.Context, userID, id int64) (*models.Expense, error) {
	expense, err := s.repo.GetExpenseByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return nil, apperrors.NotFound("Expense not found or not authorized.")
		}
		return nil, err
	}
	return expense, nil
}

// Create validates and inserts a new expense owned by userID, stamping the
// creation date server-side. A client-supplied date is never consulted.
// Zero or negative amounts are accepted.
func (s *ExpenseService) Create(ctx context.Context, userID int64, description *string, amount *float64) (*models.Expense, error) {
	if description == nil || *description == "" || amount == nil {
		return nil, apperrors.Validation("Description and amount are required.")
	}

	expense := &models.Expense{
		Description: *description,
		Amount:      *amount,
		Date:        time.Now().Format(dateLayout),
		UserID:      userID,
	}

	id, err := s.repo.CreateExpense(ctx, expense)
	if err != nil {
		return nil, err
	}
	expense.ID = id
	return expense, nil
}

// Update applies a partial update to an expense owned by userID: only the
// supplied fields change, date is never touched. The ownership check runs
// first; its not-found outcome is identical for missing rows and rows owned
// by someone else.
func (s *ExpenseService) Update(ctx context.Context, userID, id int64, description *string, amount *float64) error {
	if description == nil && amount == nil {
		return apperrors.Validation("Description or amount must be provided.")
	}

	if _, err := s.repo.GetExpenseByID(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return apperrors.NotFound("Expense not found or not authorized.")
		}
		return err
	}

	if err := s.repo.UpdateExpense(ctx, userID, id, description, amount); err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return apperrors.NotFound("Expense not found or not authorized.")
		}
		return err
	}
	return nil
}

// Delete removes an expense owned by userID after the ownership check.
func (s *ExpenseService) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.repo.GetExpenseByID(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return apperrors.NotFound("Expense not found or not authorized.")
		}
		return err
	}

	if err := s.repo.DeleteExpense(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return apperrors.NotFound("Expense not found or not authorized.")
		}
		return err
	}
	return nil
}
