// Package savings contains the savings pool ledger use cases.
package savings

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kakeibo/backend/internal/application/adapter"
	"github.com/kakeibo/backend/internal/domain/entity"
)

// GetLedgerInput represents the input for reading the ledger snapshot.
type GetLedgerInput struct {
	UserID uuid.UUID
}

// GetLedgerOutput represents the ledger snapshot: pool plus all goals.
type GetLedgerOutput struct {
	Ledger entity.LedgerState
}

// GetLedgerUseCase reads the pool and goals as one view model.
type GetLedgerUseCase struct {
	savingsRepo adapter.SavingsRepository
}

// NewGetLedgerUseCase creates a new GetLedgerUseCase instance.
func NewGetLedgerUseCase(savingsRepo adapter.SavingsRepository) *GetLedgerUseCase {
	return &GetLedgerUseCase{
		savingsRepo: savingsRepo,
	}
}

// Execute retrieves the ledger snapshot for the user.
func (uc *GetLedgerUseCase) Execute(ctx context.Context, input GetLedgerInput) (*GetLedgerOutput, error) {
	pool, err := uc.savingsRepo.GetPool(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load savings pool: %w", err)
	}

	goals, err := uc.savingsRepo.FindGoalsByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load savings goals: %w", err)
	}

	return &GetLedgerOutput{
		Ledger: entity.LedgerState{
			Pool:  *pool,
			Goals: goals,
		},
	}, nil
}
