// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/domain/entity"
)

// SavingsGoalModel represents the savings_goals table in the database.
type SavingsGoalModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(100);not null"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Deadline      *time.Time      `gorm:"type:date"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SavingsGoalModel.
func (SavingsGoalModel) TableName() string {
	return "savings_goals"
}

// ToEntity converts a SavingsGoalModel to a domain SavingsGoal entity.
func (m *SavingsGoalModel) ToEntity() *entity.SavingsGoal {
	return &entity.SavingsGoal{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		Deadline:      m.Deadline,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// SavingsGoalFromEntity creates a SavingsGoalModel from a domain entity.
func SavingsGoalFromEntity(g *entity.SavingsGoal) *SavingsGoalModel {
	return &SavingsGoalModel{
		ID:            g.ID,
		UserID:        g.UserID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Deadline:      g.Deadline,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

// SavingsPoolModel represents the savings_pool table, one row per user.
type SavingsPoolModel struct {
	UserID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SavingsPoolModel.
func (SavingsPoolModel) TableName() string {
	return "savings_pool"
}

// ToEntity converts a SavingsPoolModel to a domain SavingsPool entity.
func (m *SavingsPoolModel) ToEntity() *entity.SavingsPool {
	return &entity.SavingsPool{
		UserID:    m.UserID,
		Amount:    m.Amount,
		UpdatedAt: m.UpdatedAt,
	}
}

// TransferReceiptModel records applied pool/goal transfers by idempotency
// key, inside the same transaction as the transfer itself, so a retried
// request can be recognized as already applied.
type TransferReceiptModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	GoalID    uuid.UUID       `gorm:"type:uuid;not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Direction string          `gorm:"type:varchar(10);not null"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransferReceiptModel.
func (TransferReceiptModel) TableName() string {
	return "transfer_receipts"
}
