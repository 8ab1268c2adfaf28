// Package savings contains the savings pool ledger use cases.
package savings

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/application/adapter"
)

// AllocateInput represents the input for allocating pool money to a goal.
type AllocateInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
	Amount decimal.Decimal
	// IdempotencyKey makes a retried allocation safe after a transport
	// failure; a transfer already applied under the same key is a no-op.
	IdempotencyKey *uuid.UUID
}

// AllocateUseCase moves money from the pool into a goal. Pool debit and goal
// credit apply as one unit; a partially applied transfer is never observable.
type AllocateUseCase struct {
	savingsRepo adapter.SavingsRepository
}

// NewAllocateUseCase creates a new AllocateUseCase instance.
func NewAllocateUseCase(savingsRepo adapter.SavingsRepository) *AllocateUseCase {
	return &AllocateUseCase{
		savingsRepo: savingsRepo,
	}
}

// Execute performs the allocation.
func (uc *AllocateUseCase) Execute(ctx context.Context, input AllocateInput) error {
	if err := validateTransferAmount(input.Amount); err != nil {
		return err
	}

	return uc.savingsRepo.Transfer(ctx, adapter.TransferParams{
		UserID:         input.UserID,
		GoalID:         input.GoalID,
		Amount:         input.Amount,
		Direction:      adapter.TransferAllocate,
		IdempotencyKey: input.IdempotencyKey,
	})
}
