// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsGoal represents a named savings target with its own allocated
// balance. Over-funding is allowed: CurrentAmount may exceed TargetAmount,
// but it never goes below zero.
type SavingsGoal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewSavingsGoal creates a new SavingsGoal entity with nothing allocated yet.
func NewSavingsGoal(userID uuid.UUID, name string, targetAmount decimal.Decimal, deadline *time.Time) *SavingsGoal {
	now := time.Now().UTC()

	return &SavingsGoal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		Deadline:      deadline,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// SavingsPool is the unallocated savings balance for a user, one row per
// user. Together with the goals' allocated amounts it forms a single
// consistency domain: pool + sum(goal.CurrentAmount) must equal the total
// savings ever added minus the total ever withdrawn.
type SavingsPool struct {
	UserID    uuid.UUID
	Amount    decimal.Decimal
	UpdatedAt time.Time
}

// LedgerState is a read-only snapshot of the whole savings consistency
// domain, handed to presentation as a view model.
type LedgerState struct {
	Pool  SavingsPool
	Goals []*SavingsGoal
}

// TotalSavings returns pool plus everything allocated across goals.
func (s LedgerState) TotalSavings() decimal.Decimal {
	total := s.Pool.Amount
	for _, g := range s.Goals {
		total = total.Add(g.CurrentAmount)
	}
	return total
}
