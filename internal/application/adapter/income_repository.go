// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/kakeibo/backend/internal/domain/entity"
)

// IncomeRepository defines the interface for income profile persistence.
// Exactly one active profile exists per user; saving replaces it wholesale.
type IncomeRepository interface {
	// Upsert inserts or replaces the income profile for the profile's user.
	Upsert(ctx context.Context, profile *entity.IncomeProfile) error

	// FindByUserID retrieves the active income profile for a user.
	// Returns domain ErrIncomeNotFound when none exists.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.IncomeProfile, error)
}
