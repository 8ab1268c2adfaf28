package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kakeibo/backend/internal/domain/entity"
	domainerror "github.com/kakeibo/backend/internal/domain/error"
)

func TestExpenseRepository_CRUD(t *testing.T) {
	repo := NewExpenseRepository(newTestDB(t))
	ctx := context.Background()
	userID := uuid.New()

	rent := entity.NewExpense(userID, d("850"), entity.CategoryHousing, "Rent",
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), true)
	cinema := entity.NewExpense(userID, d("15.50"), entity.CategoryLeisure, "Cinema",
		time.Date(2025, time.February, 14, 0, 0, 0, 0, time.UTC), false)

	for _, e := range []*entity.Expense{rent, cinema} {
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	t.Run("list returns newest date first", func(t *testing.T) {
		expenses, err := repo.FindByUserID(ctx, userID)
		if err != nil {
			t.Fatalf("FindByUserID failed: %v", err)
		}
		if len(expenses) != 2 {
			t.Fatalf("expected 2 expenses, got %d", len(expenses))
		}
		if expenses[0].ID != cinema.ID {
			t.Errorf("expected cinema first, got %s", expenses[0].Description)
		}
	})

	t.Run("recurring filter", func(t *testing.T) {
		recurring, err := repo.FindRecurringByUserID(ctx, userID)
		if err != nil {
			t.Fatalf("FindRecurringByUserID failed: %v", err)
		}
		if len(recurring) != 1 || recurring[0].ID != rent.ID {
			t.Fatalf("expected only the rent expense, got %d entries", len(recurring))
		}
	})

	t.Run("update is persisted", func(t *testing.T) {
		cinema.Amount = d("18")
		cinema.Category = entity.CategoryWants
		if err := repo.Update(ctx, cinema); err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		reloaded, err := repo.FindByID(ctx, cinema.ID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if !reloaded.Amount.Equal(d("18")) || reloaded.Category != entity.CategoryWants {
			t.Errorf("reloaded = %s %s, want 18 wants", reloaded.Amount, reloaded.Category)
		}
	})

	t.Run("delete removes the expense", func(t *testing.T) {
		if err := repo.Delete(ctx, cinema.ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := repo.FindByID(ctx, cinema.ID); !errors.Is(err, domainerror.ErrExpenseNotFound) {
			t.Errorf("expected ErrExpenseNotFound, got %v", err)
		}
	})
}
