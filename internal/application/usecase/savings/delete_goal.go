// Package savings contains the savings pool ledger use cases.
package savings

import (
	"context"

	"github.com/google/uuid"

	"github.com/kakeibo/backend/internal/application/adapter"
)

// DeleteGoalInput represents the input for savings goal deletion.
type DeleteGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// DeleteGoalUseCase removes a goal. Any allocated balance is returned to the
// pool in the same transaction as the removal; deleting a goal never
// destroys money.
type DeleteGoalUseCase struct {
	savingsRepo adapter.SavingsRepository
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(savingsRepo adapter.SavingsRepository) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		savingsRepo: savingsRepo,
	}
}

// Execute performs the goal deletion.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	return uc.savingsRepo.DeleteGoal(ctx, input.UserID, input.GoalID)
}
