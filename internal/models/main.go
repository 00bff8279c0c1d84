// Package models defines the core data structures for users and expenses.
package models

// User represents an application user with credentials.
type User struct {
	// ID is the unique identifier for the user, assigned by storage on insert.
	ID int64 `json:"id"`
	// Username is the login name chosen by the user.
	Username string `json:"username"`
	// PasswordHash is the bcrypt hash of the user's password. Never serialized.
	PasswordHash []byte `json:"-"`
}

// Expense represents a single expense record owned by a user.
type Expense struct {
	// ID is the unique identifier for the expense, assigned by storage on insert.
	ID int64 `json:"id"`
	// Description is a short free-text label for the expense.
	Description string `json:"description"`
	// Amount is the expense amount. Sign and zero are unconstrained.
	Amount float64 `json:"amount"`
	// Date is the server-assigned creation timestamp ("2006-01-02 15:04:05").
	Date string `json:"date"`
	// UserID references the owning user. Only the owner can see the expense.
	UserID int64 `json:"user_id"`
}
