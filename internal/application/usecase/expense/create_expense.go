// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/application/adapter"
	"github.com/kakeibo/backend/internal/domain/entity"
	domainerror "github.com/kakeibo/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        time.Time
	IsRecurring bool
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	category, err := validateExpenseInput(input.Amount, input.Category, input.Date)
	if err != nil {
		return nil, err
	}

	expense := entity.NewExpense(
		input.UserID,
		input.Amount,
		category,
		input.Description,
		input.Date,
		input.IsRecurring,
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{
		Expense: expense,
	}, nil
}

// validateExpenseInput checks amount, category, and date, normalizing the
// category to the canonical taxonomy.
func validateExpenseInput(amount decimal.Decimal, category string, date time.Time) (entity.Category, error) {
	if !amount.IsPositive() {
		return "", domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must be greater than zero",
			domainerror.NewValidationError("amount", "must be greater than zero"),
		)
	}

	canonical, ok := entity.ParseCategory(category)
	if !ok {
		return "", domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidCategory,
			"category is not part of the taxonomy",
			domainerror.NewValidationError("category", "unknown category: "+category),
		)
	}

	if date.IsZero() {
		return "", domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseDate,
			"date is required",
			domainerror.NewValidationError("date", "is required"),
		)
	}

	return canonical, nil
}
