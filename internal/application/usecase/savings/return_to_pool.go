// Package savings contains the savings pool ledger use cases.
package savings

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/application/adapter"
)

// ReturnToPoolInput represents the input for returning goal money to the pool.
type ReturnToPoolInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
	Amount decimal.Decimal
	// IdempotencyKey makes a retried return safe after a transport failure.
	IdempotencyKey *uuid.UUID
}

// ReturnToPoolUseCase moves money from a goal back into the pool. Goal debit
// and pool credit apply as one unit.
type ReturnToPoolUseCase struct {
	savingsRepo adapter.SavingsRepository
}

// NewReturnToPoolUseCase creates a new ReturnToPoolUseCase instance.
func NewReturnToPoolUseCase(savingsRepo adapter.SavingsRepository) *ReturnToPoolUseCase {
	return &ReturnToPoolUseCase{
		savingsRepo: savingsRepo,
	}
}

// Execute performs the return transfer.
func (uc *ReturnToPoolUseCase) Execute(ctx context.Context, input ReturnToPoolInput) error {
	if err := validateTransferAmount(input.Amount); err != nil {
		return err
	}

	return uc.savingsRepo.Transfer(ctx, adapter.TransferParams{
		UserID:         input.UserID,
		GoalID:         input.GoalID,
		Amount:         input.Amount,
		Direction:      adapter.TransferReturn,
		IdempotencyKey: input.IdempotencyKey,
	})
}
