// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/kakeibo/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the store.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByUserID retrieves all expenses for a user, newest date first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error)

	// FindRecurringByUserID retrieves only the recurring expenses for a user.
	FindRecurringByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error)

	// Update replaces an existing expense.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense from the store.
	Delete(ctx context.Context, id uuid.UUID) error
}
