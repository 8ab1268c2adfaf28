package expense

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/domain/entity"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func makeExpense(amount string, category entity.Category, date time.Time, recurring bool) *entity.Expense {
	return entity.NewExpense(uuid.New(), d(amount), category, "test", date, recurring)
}

func TestTotalForYear(t *testing.T) {
	year := 2025
	inYear := time.Date(year, time.March, 10, 0, 0, 0, 0, time.UTC)
	otherYear := time.Date(year-1, time.December, 31, 0, 0, 0, 0, time.UTC)

	t.Run("one recurring plus one one-time", func(t *testing.T) {
		oneTime := []*entity.Expense{makeExpense("50", entity.CategoryWants, inYear, false)}
		recurring := []*entity.Expense{makeExpense("100", entity.CategorySubscriptions, otherYear, true)}

		// 50 + 100*12 = 1250; recurring contributes regardless of date.
		got := TotalForYear(oneTime, recurring, year)
		if !got.Equal(d("1250")) {
			t.Errorf("TotalForYear = %s, want 1250", got)
		}
	})

	t.Run("one-time outside year excluded", func(t *testing.T) {
		oneTime := []*entity.Expense{
			makeExpense("50", entity.CategoryWants, inYear, false),
			makeExpense("75", entity.CategoryLeisure, otherYear, false),
		}

		got := TotalForYear(oneTime, nil, year)
		if !got.Equal(d("50")) {
			t.Errorf("TotalForYear = %s, want 50", got)
		}
	})

	t.Run("empty snapshot", func(t *testing.T) {
		if got := TotalForYear(nil, nil, year); !got.IsZero() {
			t.Errorf("TotalForYear on empty snapshot = %s, want 0", got)
		}
	})
}

func TestGroupByMonth(t *testing.T) {
	expenses := []*entity.Expense{
		makeExpense("10", entity.CategoryWants, time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC), false),
		makeExpense("20", entity.CategoryWants, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), false),
		makeExpense("30", entity.CategoryHousing, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), false),
		nil, // malformed rows are skipped, not surfaced
	}

	groups := GroupByMonth(expenses)
	if len(groups) != 2 {
		t.Fatalf("expected 2 month groups, got %d", len(groups))
	}

	// Sorted descending by month.
	if groups[0].Month != "2025-03" || groups[1].Month != "2025-01" {
		t.Errorf("unexpected month order: %s, %s", groups[0].Month, groups[1].Month)
	}
	if len(groups[0].Expenses) != 2 {
		t.Errorf("expected 2 expenses in 2025-03, got %d", len(groups[0].Expenses))
	}
	if !groups[0].Total.Equal(d("50")) {
		t.Errorf("2025-03 total = %s, want 50", groups[0].Total)
	}
}

func TestCategoryBreakdown(t *testing.T) {
	now := time.Now().UTC()

	t.Run("empty snapshot yields empty list", func(t *testing.T) {
		shares := CategoryBreakdown(nil, nil)
		if len(shares) != 0 {
			t.Errorf("expected empty breakdown, got %d entries", len(shares))
		}
	})

	t.Run("percentages against combined total", func(t *testing.T) {
		oneTime := []*entity.Expense{
			makeExpense("150", entity.CategoryHousing, now, false),
			makeExpense("50", entity.CategoryWants, now, false),
		}
		recurring := []*entity.Expense{
			makeExpense("50", entity.CategoryWants, now, true),
		}

		shares := CategoryBreakdown(oneTime, recurring)
		if len(shares) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(shares))
		}

		byCategory := make(map[entity.Category]CategoryShare)
		for _, s := range shares {
			byCategory[s.Category] = s
		}

		housing := byCategory[entity.CategoryHousing]
		if !housing.Amount.Equal(d("150")) || !housing.PercentOfTotal.Equal(d("60")) {
			t.Errorf("housing = %s (%s%%), want 150 (60%%)", housing.Amount, housing.PercentOfTotal)
		}

		wants := byCategory[entity.CategoryWants]
		if !wants.Amount.Equal(d("100")) || !wants.PercentOfTotal.Equal(d("40")) {
			t.Errorf("wants = %s (%s%%), want 100 (40%%)", wants.Amount, wants.PercentOfTotal)
		}
	})

	t.Run("idempotent over the same snapshot", func(t *testing.T) {
		oneTime := []*entity.Expense{
			makeExpense("33.33", entity.CategoryDailyNeeds, now, false),
			makeExpense("66.67", entity.CategoryLeisure, now, false),
		}

		first := CategoryBreakdown(oneTime, nil)
		second := CategoryBreakdown(oneTime, nil)

		if len(first) != len(second) {
			t.Fatalf("breakdown lengths differ: %d vs %d", len(first), len(second))
		}
		for i := range first {
			if first[i].Category != second[i].Category ||
				!first[i].Amount.Equal(second[i].Amount) ||
				!first[i].PercentOfTotal.Equal(second[i].PercentOfTotal) {
				t.Errorf("breakdown differs at %d: %+v vs %+v", i, first[i], second[i])
			}
		}
	})
}

func TestSpendingProgress(t *testing.T) {
	t.Run("zero spendable yields zero", func(t *testing.T) {
		got := SpendingProgress(d("500"), decimal.Zero)
		if !got.IsZero() {
			t.Errorf("SpendingProgress(500, 0) = %s, want 0", got)
		}
	})

	t.Run("computes percent spent", func(t *testing.T) {
		got := SpendingProgress(d("9600"), d("38400"))
		if !got.Equal(d("25")) {
			t.Errorf("SpendingProgress = %s, want 25", got)
		}
	})
}

func TestProjectedYearlySpending(t *testing.T) {
	expenses := []*entity.Expense{
		makeExpense("100", entity.CategoryWants, time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC), false),
		makeExpense("300", entity.CategoryWants, time.Date(2025, time.February, 5, 0, 0, 0, 0, time.UTC), false),
	}

	// Two months averaging 200/month -> 2400/year.
	got := ProjectedYearlySpending(expenses)
	if !got.Equal(d("2400")) {
		t.Errorf("ProjectedYearlySpending = %s, want 2400", got)
	}

	if got := ProjectedYearlySpending(nil); !got.IsZero() {
		t.Errorf("ProjectedYearlySpending(nil) = %s, want 0", got)
	}
}
