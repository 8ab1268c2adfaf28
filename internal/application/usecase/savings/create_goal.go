// Package savings contains the savings pool ledger use cases.
package savings

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/application/adapter"
	"github.com/kakeibo/backend/internal/domain/entity"
	domainerror "github.com/kakeibo/backend/internal/domain/error"
)

// CreateGoalInput represents the input for savings goal creation.
type CreateGoalInput struct {
	UserID       uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	Deadline     *time.Time
}

// CreateGoalOutput represents the output of savings goal creation.
type CreateGoalOutput struct {
	Goal *entity.SavingsGoal
}

// CreateGoalUseCase handles savings goal creation. New goals start with
// nothing allocated.
type CreateGoalUseCase struct {
	savingsRepo adapter.SavingsRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(savingsRepo adapter.SavingsRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		savingsRepo: savingsRepo,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewSavingsError(
			domainerror.ErrCodeMissingGoalName,
			"goal name is required",
			domainerror.NewValidationError("name", "is required"),
		)
	}

	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewSavingsError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.NewValidationError("targetAmount", "must be greater than zero"),
		)
	}

	goal := entity.NewSavingsGoal(input.UserID, strings.TrimSpace(input.Name), input.TargetAmount, input.Deadline)

	if err := uc.savingsRepo.CreateGoal(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}
