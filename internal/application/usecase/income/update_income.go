// Package income contains income-related use cases.
package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/application/adapter"
	"github.com/kakeibo/backend/internal/domain/entity"
	domainerror "github.com/kakeibo/backend/internal/domain/error"
)

// UpdateIncomeInput represents the input for replacing the income profile.
type UpdateIncomeInput struct {
	UserID             uuid.UUID
	GrossAmount        decimal.Decimal
	Period             entity.IncomePeriod
	Currency           string
	TaxRatePercent     decimal.Decimal
	SavingsRatePercent decimal.Decimal
}

// UpdateIncomeOutput represents the output of an income update.
type UpdateIncomeOutput struct {
	Profile *entity.IncomeProfile
}

// UpdateIncomeUseCase derives the income breakdown and replaces the user's
// active profile wholesale.
type UpdateIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewUpdateIncomeUseCase creates a new UpdateIncomeUseCase instance.
func NewUpdateIncomeUseCase(incomeRepo adapter.IncomeRepository) *UpdateIncomeUseCase {
	return &UpdateIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the income update.
func (uc *UpdateIncomeUseCase) Execute(ctx context.Context, input UpdateIncomeInput) (*UpdateIncomeOutput, error) {
	if input.Currency == "" {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeMissingIncomeFields,
			"currency is required",
			domainerror.NewValidationError("currency", "is required"),
		)
	}

	derived, err := DeriveIncome(DeriveIncomeInput{
		GrossAmount:        input.GrossAmount,
		Period:             input.Period,
		TaxRatePercent:     input.TaxRatePercent,
		SavingsRatePercent: input.SavingsRatePercent,
	})
	if err != nil {
		return nil, err
	}

	profile := entity.NewIncomeProfile(
		input.UserID,
		input.GrossAmount,
		input.Period,
		input.Currency,
		input.TaxRatePercent,
		input.SavingsRatePercent,
		derived,
	)

	if err := uc.incomeRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save income profile: %w", err)
	}

	return &UpdateIncomeOutput{
		Profile: profile,
	}, nil
}
