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

// UpdateExpenseInput represents the input for expense update. Nil fields are
// left unchanged.
type UpdateExpenseInput struct {
	ExpenseID   uuid.UUID
	UserID      uuid.UUID
	Amount      *decimal.Decimal
	Category    *string
	Description *string
	Date        *time.Time
	IsRecurring *bool
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		return nil, err
	}

	if expense.UserID != input.UserID {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeUnauthorizedExpenseAccess,
			"expense does not belong to user",
			domainerror.ErrUnauthorizedExpenseAccess,
		)
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseAmount,
				"amount must be greater than zero",
				domainerror.NewValidationError("amount", "must be greater than zero"),
			)
		}
		expense.Amount = *input.Amount
	}

	if input.Category != nil {
		canonical, ok := entity.ParseCategory(*input.Category)
		if !ok {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidCategory,
				"category is not part of the taxonomy",
				domainerror.NewValidationError("category", "unknown category: "+*input.Category),
			)
		}
		expense.Category = canonical
	}

	if input.Description != nil {
		expense.Description = *input.Description
	}

	if input.Date != nil {
		if input.Date.IsZero() {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseDate,
				"date is required",
				domainerror.NewValidationError("date", "is required"),
			)
		}
		expense.Date = *input.Date
	}

	if input.IsRecurring != nil {
		expense.IsRecurring = *input.IsRecurring
	}

	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &UpdateExpenseOutput{
		Expense: expense,
	}, nil
}
