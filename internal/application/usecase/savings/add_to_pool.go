// Package savings contains the savings pool ledger use cases. The pool and
// the goals form one consistency domain; every operation validates first and
// leaves the ledger untouched on failure.
package savings

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/application/adapter"
	"github.com/kakeibo/backend/internal/domain/entity"
	domainerror "github.com/kakeibo/backend/internal/domain/error"
)

// AddToPoolInput represents the input for a pool contribution.
type AddToPoolInput struct {
	UserID uuid.UUID
	Amount decimal.Decimal
}

// AddToPoolOutput represents the output of a pool contribution.
type AddToPoolOutput struct {
	Pool *entity.SavingsPool
}

// AddToPoolUseCase credits the unallocated savings pool, used for periodic
// income-derived contributions or manual top-ups.
type AddToPoolUseCase struct {
	savingsRepo adapter.SavingsRepository
}

// NewAddToPoolUseCase creates a new AddToPoolUseCase instance.
func NewAddToPoolUseCase(savingsRepo adapter.SavingsRepository) *AddToPoolUseCase {
	return &AddToPoolUseCase{
		savingsRepo: savingsRepo,
	}
}

// Execute performs the pool contribution.
func (uc *AddToPoolUseCase) Execute(ctx context.Context, input AddToPoolInput) (*AddToPoolOutput, error) {
	if err := validateTransferAmount(input.Amount); err != nil {
		return nil, err
	}

	pool, err := uc.savingsRepo.AddToPool(ctx, input.UserID, input.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to add to pool: %w", err)
	}

	return &AddToPoolOutput{
		Pool: pool,
	}, nil
}

// validateTransferAmount rejects non-positive amounts before any state is touched.
func validateTransferAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.NewSavingsError(
			domainerror.ErrCodeInvalidTransferAmount,
			"amount must be greater than zero",
			domainerror.NewValidationError("amount", "must be greater than zero"),
		)
	}
	return nil
}
