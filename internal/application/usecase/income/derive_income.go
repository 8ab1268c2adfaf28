// Package income contains income-related use cases.
package income

import (
	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/domain/entity"
	domainerror "github.com/kakeibo/backend/internal/domain/error"
	"github.com/kakeibo/backend/internal/domain/money"
)

// DeriveIncomeInput represents the raw income entry to derive from.
type DeriveIncomeInput struct {
	GrossAmount        decimal.Decimal
	Period             entity.IncomePeriod
	TaxRatePercent     decimal.Decimal
	SavingsRatePercent decimal.Decimal
}

var oneHundred = decimal.NewFromInt(100)

// DeriveIncome computes the full monthly/yearly breakdown from a raw income
// entry. It is a pure function: validation errors aside, it has no side
// effects and touches no stores.
//
// Every output field is rounded to two decimal places, and each yearly figure
// is exactly its monthly counterpart times twelve.
func DeriveIncome(input DeriveIncomeInput) (entity.DerivedIncome, error) {
	if err := validateDeriveInput(input); err != nil {
		return entity.DerivedIncome{}, err
	}

	var monthlyGross decimal.Decimal
	if input.Period == entity.IncomePeriodMonthly {
		monthlyGross = money.Round2(input.GrossAmount)
	} else {
		monthlyGross = money.Monthly(input.GrossAmount)
	}
	yearlyGross := money.Yearly(monthlyGross)

	monthlyTax := money.ApplyRate(monthlyGross, input.TaxRatePercent)
	yearlyTax := money.Yearly(monthlyTax)

	monthlyNet := money.Round2(monthlyGross.Sub(monthlyTax))
	yearlyNet := money.Yearly(monthlyNet)

	monthlySavings := money.ApplyRate(monthlyNet, input.SavingsRatePercent)
	yearlySavings := money.Yearly(monthlySavings)

	monthlySpendable := money.Round2(monthlyNet.Sub(monthlySavings))
	yearlySpendable := money.Yearly(monthlySpendable)

	return entity.DerivedIncome{
		MonthlyGross:     monthlyGross,
		YearlyGross:      yearlyGross,
		MonthlyTax:       monthlyTax,
		YearlyTax:        yearlyTax,
		MonthlyNet:       monthlyNet,
		YearlyNet:        yearlyNet,
		MonthlySavings:   monthlySavings,
		YearlySavings:    yearlySavings,
		MonthlySpendable: monthlySpendable,
		YearlySpendable:  yearlySpendable,
	}, nil
}

// validateDeriveInput checks the input constraints, attributing each failure
// to the offending field.
func validateDeriveInput(input DeriveIncomeInput) error {
	if !input.GrossAmount.IsPositive() {
		return domainerror.NewIncomeError(
			domainerror.ErrCodeInvalidGrossAmount,
			"gross amount must be greater than zero",
			domainerror.NewValidationError("grossAmount", "must be greater than zero"),
		)
	}

	if input.Period != entity.IncomePeriodMonthly && input.Period != entity.IncomePeriodYearly {
		return domainerror.NewIncomeError(
			domainerror.ErrCodeInvalidIncomePeriod,
			"period must be 'monthly' or 'yearly'",
			domainerror.NewValidationError("period", "must be 'monthly' or 'yearly'"),
		)
	}

	if input.TaxRatePercent.IsNegative() || input.TaxRatePercent.GreaterThan(oneHundred) {
		return domainerror.NewIncomeError(
			domainerror.ErrCodeInvalidTaxRate,
			"tax rate must be between 0 and 100",
			domainerror.NewValidationError("taxRatePercent", "must be between 0 and 100"),
		)
	}

	if input.SavingsRatePercent.IsNegative() || input.SavingsRatePercent.GreaterThan(oneHundred) {
		return domainerror.NewIncomeError(
			domainerror.ErrCodeInvalidSavingsRate,
			"savings rate must be between 0 and 100",
			domainerror.NewValidationError("savingsRatePercent", "must be between 0 and 100"),
		)
	}

	return nil
}
