// Package savings contains the savings pool ledger use cases.
package savings

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/application/adapter"
	"github.com/kakeibo/backend/internal/domain/entity"
)

// WithdrawFromPoolInput represents the input for a pool withdrawal.
type WithdrawFromPoolInput struct {
	UserID uuid.UUID
	Amount decimal.Decimal
}

// WithdrawFromPoolOutput represents the output of a pool withdrawal.
type WithdrawFromPoolOutput struct {
	Pool *entity.SavingsPool
}

// WithdrawFromPoolUseCase debits the unallocated savings pool. The balance
// never goes negative; an oversized withdrawal fails with no state change.
type WithdrawFromPoolUseCase struct {
	savingsRepo adapter.SavingsRepository
}

// NewWithdrawFromPoolUseCase creates a new WithdrawFromPoolUseCase instance.
func NewWithdrawFromPoolUseCase(savingsRepo adapter.SavingsRepository) *WithdrawFromPoolUseCase {
	return &WithdrawFromPoolUseCase{
		savingsRepo: savingsRepo,
	}
}

// Execute performs the pool withdrawal.
func (uc *WithdrawFromPoolUseCase) Execute(ctx context.Context, input WithdrawFromPoolInput) (*WithdrawFromPoolOutput, error) {
	if err := validateTransferAmount(input.Amount); err != nil {
		return nil, err
	}

	pool, err := uc.savingsRepo.WithdrawFromPool(ctx, input.UserID, input.Amount)
	if err != nil {
		return nil, err
	}

	return &WithdrawFromPoolOutput{
		Pool: pool,
	}, nil
}
