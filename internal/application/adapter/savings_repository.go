// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/domain/entity"
)

// TransferDirection identifies which way money moves between the pool and a goal.
type TransferDirection string

const (
	// TransferAllocate moves money from the pool into a goal.
	TransferAllocate TransferDirection = "allocate"
	// TransferReturn moves money from a goal back into the pool.
	TransferReturn TransferDirection = "return"
)

// TransferParams describes a pool/goal transfer. IdempotencyKey, when set,
// lets a caller safely retry after a transport failure: a transfer that
// already applied under the same key is reported as success without moving
// money again.
type TransferParams struct {
	UserID         uuid.UUID
	GoalID         uuid.UUID
	Amount         decimal.Decimal
	Direction      TransferDirection
	IdempotencyKey *uuid.UUID
}

// SavingsRepository defines the interface for savings pool and goal
// persistence. The pool and the goals form one consistency domain: every
// operation that touches both records must apply as a single transaction,
// never as two sequential writes.
type SavingsRepository interface {
	// GetPool retrieves the savings pool for a user, creating the row with a
	// zero balance on first access.
	GetPool(ctx context.Context, userID uuid.UUID) (*entity.SavingsPool, error)

	// AddToPool atomically increments the pool balance.
	AddToPool(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*entity.SavingsPool, error)

	// WithdrawFromPool atomically decrements the pool balance. Returns domain
	// ErrInsufficientFunds, with no state change, when the balance is too low.
	WithdrawFromPool(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*entity.SavingsPool, error)

	// Transfer moves money between the pool and a goal as one transaction.
	// Returns domain ErrGoalNotFound or ErrInsufficientFunds with no state
	// change on failure.
	Transfer(ctx context.Context, params TransferParams) error

	// CreateGoal creates a new savings goal.
	CreateGoal(ctx context.Context, goal *entity.SavingsGoal) error

	// FindGoalByID retrieves a goal by its ID.
	FindGoalByID(ctx context.Context, id uuid.UUID) (*entity.SavingsGoal, error)

	// FindGoalsByUserID retrieves all goals for a user, newest first.
	FindGoalsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.SavingsGoal, error)

	// DeleteGoal removes a goal, returning any allocated balance to the pool
	// in the same transaction. Deleting a goal never destroys money.
	DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) error
}
