package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/domain/entity"
	"github.com/kakeibo/backend/internal/domain/money"
)

// PoolAmountRequest represents the request body for pool contributions and
// withdrawals. Validation of the amount happens downstream.
type PoolAmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// TransferRequest represents the request body for moving money between the
// pool and a goal. The optional idempotency key lets a client retry a failed
// request without risking a double transfer.
type TransferRequest struct {
	Amount         decimal.Decimal `json:"amount"`
	IdempotencyKey *string         `json:"idempotency_key,omitempty" binding:"omitempty,uuid"`
}

// CreateGoalRequest represents the request body for savings goal creation.
type CreateGoalRequest struct {
	Name         string          `json:"name" binding:"required"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	Deadline     *string         `json:"deadline,omitempty"`
}

// PoolResponse represents the unallocated savings pool.
type PoolResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// GoalResponse represents a single savings goal in API responses.
type GoalResponse struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	Name            string          `json:"name"`
	TargetAmount    decimal.Decimal `json:"target_amount"`
	CurrentAmount   decimal.Decimal `json:"current_amount"`
	ProgressPercent decimal.Decimal `json:"progress_percent"`
	Deadline        *string         `json:"deadline,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// LedgerResponse represents the full savings view: the pool plus all goals.
type LedgerResponse struct {
	Pool         PoolResponse    `json:"pool"`
	Goals        []GoalResponse  `json:"goals"`
	TotalSavings decimal.Decimal `json:"total_savings"`
}

// ToPoolResponse converts a SavingsPool entity to its DTO.
func ToPoolResponse(p *entity.SavingsPool) PoolResponse {
	return PoolResponse{
		Amount:    p.Amount,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToGoalResponse converts a SavingsGoal entity to its DTO. Progress is
// capped at 100 so an over-funded goal still reads as complete.
func ToGoalResponse(g *entity.SavingsGoal) GoalResponse {
	progress := money.Percentage(g.CurrentAmount, g.TargetAmount)
	if progress.GreaterThan(decimal.NewFromInt(100)) {
		progress = decimal.NewFromInt(100)
	}

	response := GoalResponse{
		ID:              g.ID.String(),
		UserID:          g.UserID.String(),
		Name:            g.Name,
		TargetAmount:    g.TargetAmount,
		CurrentAmount:   g.CurrentAmount,
		ProgressPercent: progress,
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
	}

	if g.Deadline != nil {
		deadline := g.Deadline.Format("2006-01-02")
		response.Deadline = &deadline
	}

	return response
}

// ToLedgerResponse converts a LedgerState to its DTO.
func ToLedgerResponse(ledger entity.LedgerState) LedgerResponse {
	goals := make([]GoalResponse, len(ledger.Goals))
	for i, g := range ledger.Goals {
		goals[i] = ToGoalResponse(g)
	}

	return LedgerResponse{
		Pool:         ToPoolResponse(&ledger.Pool),
		Goals:        goals,
		TotalSavings: ledger.TotalSavings(),
	}
}
