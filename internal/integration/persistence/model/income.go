// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/domain/entity"
)

// IncomeProfileModel represents the income_profiles table. One row per user;
// the derived breakdown is stored alongside the raw entry so readers never
// recompute it.
type IncomeProfileModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	GrossAmount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Period             string          `gorm:"type:varchar(10);not null"`
	Currency           string          `gorm:"type:varchar(3);not null"`
	TaxRatePercent     decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	SavingsRatePercent decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	MonthlyGross       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	YearlyGross        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	MonthlyTax         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	YearlyTax          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	MonthlyNet         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	YearlyNet          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	MonthlySavings     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	YearlySavings      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	MonthlySpendable   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	YearlySpendable    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt          time.Time       `gorm:"not null"`
	UpdatedAt          time.Time       `gorm:"not null"`
}

// TableName returns the table name for the IncomeProfileModel.
func (IncomeProfileModel) TableName() string {
	return "income_profiles"
}

// ToEntity converts an IncomeProfileModel to a domain IncomeProfile entity.
func (m *IncomeProfileModel) ToEntity() *entity.IncomeProfile {
	return &entity.IncomeProfile{
		ID:                 m.ID,
		UserID:             m.UserID,
		GrossAmount:        m.GrossAmount,
		Period:             entity.IncomePeriod(m.Period),
		Currency:           m.Currency,
		TaxRatePercent:     m.TaxRatePercent,
		SavingsRatePercent: m.SavingsRatePercent,
		Derived: entity.DerivedIncome{
			MonthlyGross:     m.MonthlyGross,
			YearlyGross:      m.YearlyGross,
			MonthlyTax:       m.MonthlyTax,
			YearlyTax:        m.YearlyTax,
			MonthlyNet:       m.MonthlyNet,
			YearlyNet:        m.YearlyNet,
			MonthlySavings:   m.MonthlySavings,
			YearlySavings:    m.YearlySavings,
			MonthlySpendable: m.MonthlySpendable,
			YearlySpendable:  m.YearlySpendable,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// IncomeProfileFromEntity creates an IncomeProfileModel from a domain entity.
func IncomeProfileFromEntity(p *entity.IncomeProfile) *IncomeProfileModel {
	return &IncomeProfileModel{
		ID:                 p.ID,
		UserID:             p.UserID,
		GrossAmount:        p.GrossAmount,
		Period:             string(p.Period),
		Currency:           p.Currency,
		TaxRatePercent:     p.TaxRatePercent,
		SavingsRatePercent: p.SavingsRatePercent,
		MonthlyGross:       p.Derived.MonthlyGross,
		YearlyGross:        p.Derived.YearlyGross,
		MonthlyTax:         p.Derived.MonthlyTax,
		YearlyTax:          p.Derived.YearlyTax,
		MonthlyNet:         p.Derived.MonthlyNet,
		YearlyNet:          p.Derived.YearlyNet,
		MonthlySavings:     p.Derived.MonthlySavings,
		YearlySavings:      p.Derived.YearlySavings,
		MonthlySpendable:   p.Derived.MonthlySpendable,
		YearlySpendable:    p.Derived.YearlySpendable,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
