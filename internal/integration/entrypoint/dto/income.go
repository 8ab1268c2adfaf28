package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/domain/entity"
)

// UpdateIncomeRequest represents the request body for setting the income
// profile. Rates are percentages in [0, 100]; zero is a valid rate, so the
// numeric fields carry no binding constraints and are validated downstream.
type UpdateIncomeRequest struct {
	GrossAmount        decimal.Decimal `json:"gross_amount"`
	Period             string          `json:"period" binding:"required,oneof=monthly yearly"`
	Currency           string          `json:"currency" binding:"required"`
	TaxRatePercent     decimal.Decimal `json:"tax_rate_percent"`
	SavingsRatePercent decimal.Decimal `json:"savings_rate_percent"`
}

// DerivedIncomeResponse represents the computed income breakdown.
type DerivedIncomeResponse struct {
	MonthlyGross     decimal.Decimal `json:"monthly_gross"`
	YearlyGross      decimal.Decimal `json:"yearly_gross"`
	MonthlyTax       decimal.Decimal `json:"monthly_tax"`
	YearlyTax        decimal.Decimal `json:"yearly_tax"`
	MonthlyNet       decimal.Decimal `json:"monthly_net"`
	YearlyNet        decimal.Decimal `json:"yearly_net"`
	MonthlySavings   decimal.Decimal `json:"monthly_savings"`
	YearlySavings    decimal.Decimal `json:"yearly_savings"`
	MonthlySpendable decimal.Decimal `json:"monthly_spendable"`
	YearlySpendable  decimal.Decimal `json:"yearly_spendable"`
}

// IncomeProfileResponse represents the income profile in API responses.
type IncomeProfileResponse struct {
	ID                 string                `json:"id"`
	UserID             string                `json:"user_id"`
	GrossAmount        decimal.Decimal       `json:"gross_amount"`
	Period             string                `json:"period"`
	Currency           string                `json:"currency"`
	TaxRatePercent     decimal.Decimal       `json:"tax_rate_percent"`
	SavingsRatePercent decimal.Decimal       `json:"savings_rate_percent"`
	Derived            DerivedIncomeResponse `json:"derived"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}

// ToIncomeProfileResponse converts an IncomeProfile entity to its DTO.
func ToIncomeProfileResponse(p *entity.IncomeProfile) IncomeProfileResponse {
	return IncomeProfileResponse{
		ID:                 p.ID.String(),
		UserID:             p.UserID.String(),
		GrossAmount:        p.GrossAmount,
		Period:             string(p.Period),
		Currency:           p.Currency,
		TaxRatePercent:     p.TaxRatePercent,
		SavingsRatePercent: p.SavingsRatePercent,
		Derived: DerivedIncomeResponse{
			MonthlyGross:     p.Derived.MonthlyGross,
			YearlyGross:      p.Derived.YearlyGross,
			MonthlyTax:       p.Derived.MonthlyTax,
			YearlyTax:        p.Derived.YearlyTax,
			MonthlyNet:       p.Derived.MonthlyNet,
			YearlyNet:        p.Derived.YearlyNet,
			MonthlySavings:   p.Derived.MonthlySavings,
			YearlySavings:    p.Derived.YearlySavings,
			MonthlySpendable: p.Derived.MonthlySpendable,
			YearlySpendable:  p.Derived.YearlySpendable,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
