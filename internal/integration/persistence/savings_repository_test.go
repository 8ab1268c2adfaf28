package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/application/adapter"
	"github.com/kakeibo/backend/internal/domain/entity"
	domainerror "github.com/kakeibo/backend/internal/domain/error"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newLedger(t *testing.T) (adapter.SavingsRepository, uuid.UUID) {
	t.Helper()
	return NewSavingsRepository(newTestDB(t)), uuid.New()
}

func mustCreateGoal(t *testing.T, repo adapter.SavingsRepository, userID uuid.UUID, name, target string) *entity.SavingsGoal {
	t.Helper()
	goal := entity.NewSavingsGoal(userID, name, d(target), nil)
	if err := repo.CreateGoal(context.Background(), goal); err != nil {
		t.Fatalf("failed to create goal: %v", err)
	}
	return goal
}

func poolAmount(t *testing.T, repo adapter.SavingsRepository, userID uuid.UUID) decimal.Decimal {
	t.Helper()
	pool, err := repo.GetPool(context.Background(), userID)
	if err != nil {
		t.Fatalf("failed to get pool: %v", err)
	}
	return pool.Amount
}

func goalAmount(t *testing.T, repo adapter.SavingsRepository, goalID uuid.UUID) decimal.Decimal {
	t.Helper()
	goal, err := repo.FindGoalByID(context.Background(), goalID)
	if err != nil {
		t.Fatalf("failed to get goal: %v", err)
	}
	return goal.CurrentAmount
}

func TestSavingsRepository_PoolLifecycle(t *testing.T) {
	repo, userID := newLedger(t)
	ctx := context.Background()

	t.Run("pool starts at zero", func(t *testing.T) {
		if got := poolAmount(t, repo, userID); !got.IsZero() {
			t.Errorf("fresh pool = %s, want 0", got)
		}
	})

	t.Run("add credits the pool", func(t *testing.T) {
		pool, err := repo.AddToPool(ctx, userID, d("1000"))
		if err != nil {
			t.Fatalf("AddToPool failed: %v", err)
		}
		if !pool.Amount.Equal(d("1000")) {
			t.Errorf("pool = %s, want 1000", pool.Amount)
		}
	})

	t.Run("withdraw debits the pool", func(t *testing.T) {
		pool, err := repo.WithdrawFromPool(ctx, userID, d("250"))
		if err != nil {
			t.Fatalf("WithdrawFromPool failed: %v", err)
		}
		if !pool.Amount.Equal(d("750")) {
			t.Errorf("pool = %s, want 750", pool.Amount)
		}
	})

	t.Run("overdraw is rejected without state change", func(t *testing.T) {
		_, err := repo.WithdrawFromPool(ctx, userID, d("751"))
		if !errors.Is(err, domainerror.ErrInsufficientFunds) {
			t.Fatalf("expected ErrInsufficientFunds, got %v", err)
		}
		if got := poolAmount(t, repo, userID); !got.Equal(d("750")) {
			t.Errorf("pool after rejected withdraw = %s, want 750", got)
		}
	})
}

func TestSavingsRepository_AllocateAndReturn(t *testing.T) {
	repo, userID := newLedger(t)
	ctx := context.Background()

	if _, err := repo.AddToPool(ctx, userID, d("1000")); err != nil {
		t.Fatalf("AddToPool failed: %v", err)
	}
	goal := mustCreateGoal(t, repo, userID, "Vacation", "5000")

	t.Run("allocate moves pool money into the goal", func(t *testing.T) {
		err := repo.Transfer(ctx, adapter.TransferParams{
			UserID:    userID,
			GoalID:    goal.ID,
			Amount:    d("400"),
			Direction: adapter.TransferAllocate,
		})
		if err != nil {
			t.Fatalf("Transfer failed: %v", err)
		}
		if got := poolAmount(t, repo, userID); !got.Equal(d("600")) {
			t.Errorf("pool = %s, want 600", got)
		}
		if got := goalAmount(t, repo, goal.ID); !got.Equal(d("400")) {
			t.Errorf("goal = %s, want 400", got)
		}
	})

	t.Run("over-balance allocate leaves both sides unchanged", func(t *testing.T) {
		err := repo.Transfer(ctx, adapter.TransferParams{
			UserID:    userID,
			GoalID:    goal.ID,
			Amount:    d("601"),
			Direction: adapter.TransferAllocate,
		})
		if !errors.Is(err, domainerror.ErrInsufficientFunds) {
			t.Fatalf("expected ErrInsufficientFunds, got %v", err)
		}
		if got := poolAmount(t, repo, userID); !got.Equal(d("600")) {
			t.Errorf("pool = %s, want 600", got)
		}
		if got := goalAmount(t, repo, goal.ID); !got.Equal(d("400")) {
			t.Errorf("goal = %s, want 400", got)
		}
	})

	t.Run("exact-balance allocate drains the pool to zero", func(t *testing.T) {
		err := repo.Transfer(ctx, adapter.TransferParams{
			UserID:    userID,
			GoalID:    goal.ID,
			Amount:    d("600"),
			Direction: adapter.TransferAllocate,
		})
		if err != nil {
			t.Fatalf("Transfer failed: %v", err)
		}
		if got := poolAmount(t, repo, userID); !got.IsZero() {
			t.Errorf("pool = %s, want 0", got)
		}
		if got := goalAmount(t, repo, goal.ID); !got.Equal(d("1000")) {
			t.Errorf("goal = %s, want 1000", got)
		}
	})

	t.Run("return moves goal money back to the pool", func(t *testing.T) {
		err := repo.Transfer(ctx, adapter.TransferParams{
			UserID:    userID,
			GoalID:    goal.ID,
			Amount:    d("300"),
			Direction: adapter.TransferReturn,
		})
		if err != nil {
			t.Fatalf("Transfer failed: %v", err)
		}
		if got := poolAmount(t, repo, userID); !got.Equal(d("300")) {
			t.Errorf("pool = %s, want 300", got)
		}
		if got := goalAmount(t, repo, goal.ID); !got.Equal(d("700")) {
			t.Errorf("goal = %s, want 700", got)
		}
	})

	t.Run("over-balance return is rejected", func(t *testing.T) {
		err := repo.Transfer(ctx, adapter.TransferParams{
			UserID:    userID,
			GoalID:    goal.ID,
			Amount:    d("701"),
			Direction: adapter.TransferReturn,
		})
		if !errors.Is(err, domainerror.ErrInsufficientFunds) {
			t.Fatalf("expected ErrInsufficientFunds, got %v", err)
		}
	})

	t.Run("unknown goal is rejected", func(t *testing.T) {
		err := repo.Transfer(ctx, adapter.TransferParams{
			UserID:    userID,
			GoalID:    uuid.New(),
			Amount:    d("10"),
			Direction: adapter.TransferAllocate,
		})
		if !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Fatalf("expected ErrGoalNotFound, got %v", err)
		}
	})
}

func TestSavingsRepository_MoneyConservation(t *testing.T) {
	repo, userID := newLedger(t)
	ctx := context.Background()

	goalA := mustCreateGoal(t, repo, userID, "Emergency fund", "10000")
	goalB := mustCreateGoal(t, repo, userID, "New bicycle", "800")

	// Total added minus total withdrawn across the run.
	if _, err := repo.AddToPool(ctx, userID, d("2000")); err != nil {
		t.Fatalf("AddToPool failed: %v", err)
	}
	if _, err := repo.AddToPool(ctx, userID, d("500.50")); err != nil {
		t.Fatalf("AddToPool failed: %v", err)
	}
	if _, err := repo.WithdrawFromPool(ctx, userID, d("100.50")); err != nil {
		t.Fatalf("WithdrawFromPool failed: %v", err)
	}
	expectedTotal := d("2400")

	transfers := []adapter.TransferParams{
		{UserID: userID, GoalID: goalA.ID, Amount: d("900"), Direction: adapter.TransferAllocate},
		{UserID: userID, GoalID: goalB.ID, Amount: d("400.25"), Direction: adapter.TransferAllocate},
		{UserID: userID, GoalID: goalA.ID, Amount: d("150"), Direction: adapter.TransferReturn},
		{UserID: userID, GoalID: goalB.ID, Amount: d("0.25"), Direction: adapter.TransferReturn},
	}
	for _, params := range transfers {
		if err := repo.Transfer(ctx, params); err != nil {
			t.Fatalf("Transfer(%+v) failed: %v", params, err)
		}
	}

	total := poolAmount(t, repo, userID).
		Add(goalAmount(t, repo, goalA.ID)).
		Add(goalAmount(t, repo, goalB.ID))
	if !total.Equal(expectedTotal) {
		t.Errorf("pool + goals = %s, want %s", total, expectedTotal)
	}
}

func TestSavingsRepository_DeleteGoalReturnsAllocation(t *testing.T) {
	repo, userID := newLedger(t)
	ctx := context.Background()

	if _, err := repo.AddToPool(ctx, userID, d("1000")); err != nil {
		t.Fatalf("AddToPool failed: %v", err)
	}
	goal := mustCreateGoal(t, repo, userID, "Camera", "1500")

	err := repo.Transfer(ctx, adapter.TransferParams{
		UserID:    userID,
		GoalID:    goal.ID,
		Amount:    d("400"),
		Direction: adapter.TransferAllocate,
	})
	if err != nil {
		t.Fatalf("Transfer failed: %v", err)
	}

	if err := repo.DeleteGoal(ctx, userID, goal.ID); err != nil {
		t.Fatalf("DeleteGoal failed: %v", err)
	}

	if got := poolAmount(t, repo, userID); !got.Equal(d("1000")) {
		t.Errorf("pool after delete = %s, want 1000", got)
	}
	if _, err := repo.FindGoalByID(ctx, goal.ID); !errors.Is(err, domainerror.ErrGoalNotFound) {
		t.Errorf("expected deleted goal to be gone, got %v", err)
	}

	t.Run("deleting an unknown goal reports not found", func(t *testing.T) {
		if err := repo.DeleteGoal(ctx, userID, uuid.New()); !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Errorf("expected ErrGoalNotFound, got %v", err)
		}
	})
}

func TestSavingsRepository_IdempotentTransfer(t *testing.T) {
	repo, userID := newLedger(t)
	ctx := context.Background()

	if _, err := repo.AddToPool(ctx, userID, d("1000")); err != nil {
		t.Fatalf("AddToPool failed: %v", err)
	}
	goal := mustCreateGoal(t, repo, userID, "Laptop", "2000")

	key := uuid.New()
	params := adapter.TransferParams{
		UserID:         userID,
		GoalID:         goal.ID,
		Amount:         d("300"),
		Direction:      adapter.TransferAllocate,
		IdempotencyKey: &key,
	}

	if err := repo.Transfer(ctx, params); err != nil {
		t.Fatalf("first Transfer failed: %v", err)
	}
	// A retry under the same key must not move money again.
	if err := repo.Transfer(ctx, params); err != nil {
		t.Fatalf("retried Transfer failed: %v", err)
	}

	if got := poolAmount(t, repo, userID); !got.Equal(d("700")) {
		t.Errorf("pool after replay = %s, want 700", got)
	}
	if got := goalAmount(t, repo, goal.ID); !got.Equal(d("300")) {
		t.Errorf("goal after replay = %s, want 300", got)
	}
}
