// Package income contains income-related use cases.
package income

import (
	"context"

	"github.com/google/uuid"

	"github.com/kakeibo/backend/internal/application/adapter"
	"github.com/kakeibo/backend/internal/domain/entity"
)

// GetIncomeInput represents the input for retrieving the income profile.
type GetIncomeInput struct {
	UserID uuid.UUID
}

// GetIncomeOutput represents the output of retrieving the income profile.
type GetIncomeOutput struct {
	Profile *entity.IncomeProfile
}

// GetIncomeUseCase retrieves the user's active income profile.
type GetIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewGetIncomeUseCase creates a new GetIncomeUseCase instance.
func NewGetIncomeUseCase(incomeRepo adapter.IncomeRepository) *GetIncomeUseCase {
	return &GetIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute retrieves the income profile for the user.
func (uc *GetIncomeUseCase) Execute(ctx context.Context, input GetIncomeInput) (*GetIncomeOutput, error) {
	profile, err := uc.incomeRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetIncomeOutput{
		Profile: profile,
	}, nil
}
