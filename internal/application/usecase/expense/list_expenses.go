// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kakeibo/backend/internal/application/adapter"
	"github.com/kakeibo/backend/internal/domain/entity"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	UserID uuid.UUID
}

// ListExpensesOutput splits the user's expenses into one-time and recurring
// sets, the shape every aggregation consumes.
type ListExpensesOutput struct {
	OneTime   []*entity.Expense
	Recurring []*entity.Expense
}

// ListExpensesUseCase handles listing expenses for a user.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute retrieves all expenses for the user.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	all, err := uc.expenseRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	output := &ListExpensesOutput{
		OneTime:   make([]*entity.Expense, 0, len(all)),
		Recurring: make([]*entity.Expense, 0),
	}
	for _, e := range all {
		if e.IsRecurring {
			output.Recurring = append(output.Recurring, e)
		} else {
			output.OneTime = append(output.OneTime, e)
		}
	}

	return output, nil
}
