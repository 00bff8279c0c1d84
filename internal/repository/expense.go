package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avagyan/expense-tracker/internal/models"
)

// ErrExpenseNotFound is returned when no expense matches the given id for
// the given owner. A missing row and an ownership mismatch are
// indistinguishable here.
var ErrExpenseNotFound = errors.New("expense not found")

// SQLiteExpenseRepository implements expense persistence against a SQLite
// database. Every query is scoped by the owning user id.
type SQLiteExpenseRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewSQLiteExpenseRepository creates a new SQLiteExpenseRepository with the
// given database connection.
func NewSQLiteExpenseRepository(db *sql.DB) *SQLiteExpenseRepository {
	return &SQLiteExpenseRepository{DB: db}
}

// CreateExpense inserts a new expense row and returns its generated id.
func (r *SQLiteExpenseRepository) CreateExpense(ctx context.Context, expense *models.Expense) (int64, error) {
	res, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO expense (description, amount, date, user_id) VALUES (?, ?, ?, ?)`,
		expense.Description, expense.Amount, expense.Date, expense.UserID,
	)
	if err != nil {
		return 0, fmt.Errorf("create expense: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create expense id: %w", err)
	}
	return id, nil
}

// GetExpensesByUser fetches all expenses owned by userID in insertion order.
func (r *SQLiteExpenseRepository) GetExpensesByUser(ctx context.Context, userID int64) ([]models.Expense, error) {
	rows, err := r.DB.QueryContext(
		ctx,
		`SELECT id, description, amount, date, user_id FROM expense WHERE user_id = ? ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("get expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.Description, &e.Amount, &e.Date, &e.UserID); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}
	return expenses, nil
}

// GetExpenseByID fetches a single expense by id, scoped to its owner.
// Returns ErrExpenseNotFound when the row is absent or owned by another user.
func (r *SQLiteExpenseRepository) GetExpenseByID(ctx context.Context, userID, id int64) (*models.Expense, error) {
	var e models.Expense
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT id, description, amount, date, user_id FROM expense WHERE id = ? AND user_id = ?`,
		id, userID,
	).Scan(&e.ID, &e.Description, &e.Amount, &e.Date, &e.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrExpenseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return &e, nil
}

// UpdateExpense applies a partial update to an expense owned by userID.
// Only non-nil fields are written; date is never touched. The statement is
// scoped by id AND user_id, so a row that changed owners or disappeared
// since the ownership check cannot be modified. Returns ErrExpenseNotFound
// when no row was updated.
func (r *SQLiteExpenseRepository) UpdateExpense(ctx context.Context, userID, id int64, description *string, amount *float64) error {
	var (
		res sql.Result
		err error
	)

	// Fixed branches per supplied field combination. Column names never
	// come from the client.
	switch {
	case description != nil && amount != nil:
		res, err = r.DB.ExecContext(
			ctx,
			`UPDATE expense SET description = ?, amount = ? WHERE id = ? AND user_id = ?`,
			*description, *amount, id, userID,
		)
	case description != nil:
		res, err = r.DB.ExecContext(
			ctx,
			`UPDATE expense SET description = ? WHERE id = ? AND user_id = ?`,
			*description, id, userID,
		)
	case amount != nil:
		res, err = r.DB.ExecContext(
			ctx,
			`UPDATE expense SET amount = ? WHERE id = ? AND user_id = ?`,
			*amount, id, userID,
		)
	default:
		return errors.New("no fields to update")
	}
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update expense affected: %w", err)
	}
	if affected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

// DeleteExpense removes an expense owned by userID.
// Returns ErrExpenseNotFound when no row was deleted.
func (r *SQLiteExpenseRepository) DeleteExpense(ctx context.Context, userID, id int64) error {
	res, err := r.DB.ExecContext(
		ctx,
		`DELETE FROM expense WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete expense affected: %w", err)
	}
	if affected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}
