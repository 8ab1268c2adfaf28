package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/application/usecase/expense"
	"github.com/kakeibo/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description"`
	Date        string          `json:"date" binding:"required"`
	IsRecurring bool            `json:"is_recurring"`
}

// UpdateExpenseRequest represents the request body for expense update.
// Absent fields keep their stored value.
type UpdateExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Description *string          `json:"description,omitempty"`
	Date        *string          `json:"date,omitempty"`
	IsRecurring *bool            `json:"is_recurring,omitempty"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	IsRecurring bool            `json:"is_recurring"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// MonthGroupResponse represents one month's one-time expenses.
type MonthGroupResponse struct {
	Month    string            `json:"month"`
	Total    decimal.Decimal   `json:"total"`
	Expenses []ExpenseResponse `json:"expenses"`
}

// ExpenseListResponse represents the response for listing expenses:
// one-time expenses grouped by month, newest month first, and the
// recurring expenses as a flat list.
type ExpenseListResponse struct {
	Months    []MonthGroupResponse `json:"months"`
	Recurring []ExpenseResponse    `json:"recurring"`
}

// ToExpenseResponse converts a domain Expense entity to its DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID.String(),
		UserID:      e.UserID.String(),
		Amount:      e.Amount,
		Category:    string(e.Category),
		Description: e.Description,
		Date:        e.Date.Format("2006-01-02"),
		IsRecurring: e.IsRecurring,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToExpenseListResponse converts the split expense listing to its DTO.
func ToExpenseListResponse(oneTime, recurring []*entity.Expense) ExpenseListResponse {
	groups := expense.GroupByMonth(oneTime)

	months := make([]MonthGroupResponse, len(groups))
	for i, group := range groups {
		expenses := make([]ExpenseResponse, len(group.Expenses))
		for j, e := range group.Expenses {
			expenses[j] = ToExpenseResponse(e)
		}
		months[i] = MonthGroupResponse{
			Month:    group.Month,
			Total:    group.Total,
			Expenses: expenses,
		}
	}

	recurringResponses := make([]ExpenseResponse, len(recurring))
	for i, e := range recurring {
		recurringResponses[i] = ToExpenseResponse(e)
	}

	return ExpenseListResponse{
		Months:    months,
		Recurring: recurringResponses,
	}
}
