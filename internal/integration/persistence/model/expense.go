// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/kakeibo/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category    string          `gorm:"type:varchar(30);not null;index"`
	Description string          `gorm:"type:varchar(255)"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	IsRecurring bool            `gorm:"not null;default:false;index"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:          m.ID,
		UserID:      m.UserID,
		Amount:      m.Amount,
		Category:    entity.Category(m.Category),
		Description: m.Description,
		Date:        m.Date,
		IsRecurring: m.IsRecurring,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(e *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:          e.ID,
		UserID:      e.UserID,
		Amount:      e.Amount,
		Category:    string(e.Category),
		Description: e.Description,
		Date:        e.Date,
		IsRecurring: e.IsRecurring,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
