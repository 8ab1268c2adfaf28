// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomePeriod represents how a gross income amount is expressed.
type IncomePeriod string

const (
	IncomePeriodMonthly IncomePeriod = "monthly"
	IncomePeriodYearly  IncomePeriod = "yearly"
)

// IncomeProfile represents a user's single active income entry.
// It is replaced wholesale on each income update; there are no partial edits.
type IncomeProfile struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	GrossAmount        decimal.Decimal
	Period             IncomePeriod
	Currency           string // ISO 4217 code
	TaxRatePercent     decimal.Decimal
	SavingsRatePercent decimal.Decimal
	Derived            DerivedIncome
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// DerivedIncome is the full monthly/yearly breakdown computed from a raw
// income entry. All fields are rounded to two decimal places.
type DerivedIncome struct {
	MonthlyGross     decimal.Decimal
	YearlyGross      decimal.Decimal
	MonthlyTax       decimal.Decimal
	YearlyTax        decimal.Decimal
	MonthlyNet       decimal.Decimal
	YearlyNet        decimal.Decimal
	MonthlySavings   decimal.Decimal
	YearlySavings    decimal.Decimal
	MonthlySpendable decimal.Decimal
	YearlySpendable  decimal.Decimal
}

// NewIncomeProfile creates a new IncomeProfile entity.
func NewIncomeProfile(
	userID uuid.UUID,
	grossAmount decimal.Decimal,
	period IncomePeriod,
	currency string,
	taxRatePercent decimal.Decimal,
	savingsRatePercent decimal.Decimal,
	derived DerivedIncome,
) *IncomeProfile {
	now := time.Now().UTC()

	return &IncomeProfile{
		ID:                 uuid.New(),
		UserID:             userID,
		GrossAmount:        grossAmount,
		Period:             period,
		Currency:           currency,
		TaxRatePercent:     taxRatePercent,
		SavingsRatePercent: savingsRatePercent,
		Derived:            derived,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
