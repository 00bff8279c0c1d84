package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avagyan/expense-tracker/internal/apperrors"
	"github.com/avagyan/expense-tracker/internal/middleware"
	"github.com/avagyan/expense-tracker/internal/models"
)

// ExpenseService defines the interface for expense operations required by
// the HTTP handlers. Every call is scoped to the authenticated user id.
type ExpenseService interface {
	// List returns all expenses owned by userID in insertion order.
	List(ctx context.Context, userID int64) ([]models.Expense, error)
	// Get returns one expense owned by userID.
	Get(ctx context.Context, userID, id int64) (*models.Expense, error)
	// Create validates and inserts a new expense owned by userID.
	Create(ctx context.Context, userID int64, description *string, amount *float64) (*models.Expense, error)
	// Update applies a partial update to an expense owned by userID.
	Update(ctx context.Context, userID, id int64, description *string, amount *float64) error
	// Delete removes an expense owned by userID.
	Delete(ctx context.Context, userID, id int64) error
}

// ExpenseHandler handles HTTP requests for expense CRUD.
type ExpenseHandler struct {
	// ExpenseService performs the underlying expense operations.
	ExpenseService ExpenseService
}

// expenseRequest represents the JSON payload for creating and updating
// expenses. Pointer fields distinguish absent from zero values, which is
// what makes partial updates possible.
type expenseRequest struct {
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
}

// List handles GET /expenses.
// Responds with every expense owned by the authenticated user.
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	expenses, err := h.ExpenseService.List(r.Context(), userID)
	if err != nil {
		writeError(w, "msg", err)
		return
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}

	writeJSON(w, http.StatusOK, expenses)
}

// Get handles GET /expenses/{id}.
// A missing expense and one owned by another user are both reported as 404.
func (h *ExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	id, err := expenseID(r)
	if err != nil {
		writeError(w, "msg", err)
		return
	}

	expense, err := h.ExpenseService.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, "msg", err)
		return
	}

	writeJSON(w, http.StatusOK, expense)
}

// Create handles POST /expenses.
// Requires "description" and "amount"; the creation date is stamped
// server-side and any client-supplied date is ignored.
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "msg", apperrors.Validation("invalid request"))
		return
	}

	if _, err := h.ExpenseService.Create(r.Context(), userID, req.Description, req.Amount); err != nil {
		writeError(w, "msg", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"msg": "Expense added successfully."})
}

// Update handles PUT /expenses/{id}.
// At least one of "description" and "amount" must be supplied; only the
// supplied fields change.
func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	id, err := expenseID(r)
	if err != nil {
		writeError(w, "msg", err)
		return
	}

	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "msg", apperrors.Validation("invalid request"))
		return
	}

	if err := h.ExpenseService.Update(r.Context(), userID, id, req.Description, req.Amount); err != nil {
		writeError(w, "msg", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"msg": "Expense updated successfully."})
}

// Delete handles DELETE /expenses/{id}.
func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	id, err := expenseID(r)
	if err != nil {
		writeError(w, "msg", err)
		return
	}

	if err := h.ExpenseService.Delete(r.Context(), userID, id); err != nil {
		writeError(w, "msg", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"msg": "Expense deleted successfully."})
}

// expenseID parses the {id} route parameter. The route pattern restricts it
// to digits, so a parse failure can only mean the value is out of range.
func expenseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, apperrors.NotFound("Expense not found or not authorized.")
	}
	return id, nil
}
