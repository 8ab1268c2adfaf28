package summary

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/application/adapter"
	"github.com/kakeibo/backend/internal/domain/entity"
	domainerror "github.com/kakeibo/backend/internal/domain/error"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fakeIncomeRepo struct {
	profile *entity.IncomeProfile
}

func (f *fakeIncomeRepo) Upsert(_ context.Context, p *entity.IncomeProfile) error {
	f.profile = p
	return nil
}

func (f *fakeIncomeRepo) FindByUserID(context.Context, uuid.UUID) (*entity.IncomeProfile, error) {
	if f.profile == nil {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeIncomeNotFound,
			"income profile not found",
			domainerror.ErrIncomeNotFound,
		)
	}
	return f.profile, nil
}

type fakeExpenseRepo struct {
	expenses []*entity.Expense
}

func (f *fakeExpenseRepo) Create(_ context.Context, e *entity.Expense) error {
	f.expenses = append(f.expenses, e)
	return nil
}

func (f *fakeExpenseRepo) FindByID(context.Context, uuid.UUID) (*entity.Expense, error) {
	return nil, domainerror.ErrExpenseNotFound
}

func (f *fakeExpenseRepo) FindByUserID(context.Context, uuid.UUID) ([]*entity.Expense, error) {
	return f.expenses, nil
}

func (f *fakeExpenseRepo) FindRecurringByUserID(context.Context, uuid.UUID) ([]*entity.Expense, error) {
	var recurring []*entity.Expense
	for _, e := range f.expenses {
		if e.IsRecurring {
			recurring = append(recurring, e)
		}
	}
	return recurring, nil
}

func (f *fakeExpenseRepo) Update(context.Context, *entity.Expense) error { return nil }
func (f *fakeExpenseRepo) Delete(context.Context, uuid.UUID) error       { return nil }

type fakeSavingsRepo struct {
	pool  decimal.Decimal
	goals []*entity.SavingsGoal
}

func (f *fakeSavingsRepo) GetPool(_ context.Context, userID uuid.UUID) (*entity.SavingsPool, error) {
	return &entity.SavingsPool{UserID: userID, Amount: f.pool}, nil
}

func (f *fakeSavingsRepo) AddToPool(context.Context, uuid.UUID, decimal.Decimal) (*entity.SavingsPool, error) {
	return nil, nil
}

func (f *fakeSavingsRepo) WithdrawFromPool(context.Context, uuid.UUID, decimal.Decimal) (*entity.SavingsPool, error) {
	return nil, nil
}

func (f *fakeSavingsRepo) Transfer(context.Context, adapter.TransferParams) error { return nil }
func (f *fakeSavingsRepo) CreateGoal(context.Context, *entity.SavingsGoal) error  { return nil }

func (f *fakeSavingsRepo) FindGoalByID(context.Context, uuid.UUID) (*entity.SavingsGoal, error) {
	return nil, domainerror.ErrGoalNotFound
}

func (f *fakeSavingsRepo) FindGoalsByUserID(context.Context, uuid.UUID) ([]*entity.SavingsGoal, error) {
	return f.goals, nil
}

func (f *fakeSavingsRepo) DeleteGoal(context.Context, uuid.UUID, uuid.UUID) error { return nil }

type fakeCache struct {
	payloads map[uuid.UUID][]byte
	hits     int
}

func newFakeCache() *fakeCache {
	return &fakeCache{payloads: make(map[uuid.UUID][]byte)}
}

func (f *fakeCache) Get(_ context.Context, userID uuid.UUID) ([]byte, bool, error) {
	payload, ok := f.payloads[userID]
	if ok {
		f.hits++
	}
	return payload, ok, nil
}

func (f *fakeCache) Set(_ context.Context, userID uuid.UUID, payload []byte) error {
	f.payloads[userID] = payload
	return nil
}

func (f *fakeCache) Invalidate(_ context.Context, userID uuid.UUID) error {
	delete(f.payloads, userID)
	return nil
}

func TestGetOverview(t *testing.T) {
	userID := uuid.New()
	year := 2025
	inYear := time.Date(year, time.April, 2, 0, 0, 0, 0, time.UTC)

	incomeRepo := &fakeIncomeRepo{
		profile: &entity.IncomeProfile{
			UserID:   userID,
			Currency: "EUR",
			Derived: entity.DerivedIncome{
				YearlySpendable: d("38400"),
			},
		},
	}
	expenseRepo := &fakeExpenseRepo{
		expenses: []*entity.Expense{
			entity.NewExpense(userID, d("50"), entity.CategoryWants, "gift", inYear, false),
			entity.NewExpense(userID, d("100"), entity.CategorySubscriptions, "gym", inYear, true),
		},
	}
	savingsRepo := &fakeSavingsRepo{
		pool: d("600"),
		goals: []*entity.SavingsGoal{
			{ID: uuid.New(), UserID: userID, Name: "Vacation", TargetAmount: d("5000"), CurrentAmount: d("400")},
		},
	}
	cache := newFakeCache()

	uc := NewGetOverviewUseCase(incomeRepo, expenseRepo, savingsRepo, cache)

	output, err := uc.Execute(context.Background(), GetOverviewInput{UserID: userID, Year: year})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !output.TotalSpentYear.Equal(d("1250")) {
		t.Errorf("total spent = %s, want 1250 (50 one-time + 100*12 recurring)", output.TotalSpentYear)
	}
	if !output.RemainingSpendable.Equal(d("37150")) {
		t.Errorf("remaining spendable = %s, want 37150", output.RemainingSpendable)
	}
	if !output.PoolAmount.Equal(d("600")) {
		t.Errorf("pool = %s, want 600", output.PoolAmount)
	}
	if !output.TotalSavings.Equal(d("1000")) {
		t.Errorf("total savings = %s, want 1000", output.TotalSavings)
	}
	if len(output.Breakdown) != 2 {
		t.Errorf("breakdown entries = %d, want 2", len(output.Breakdown))
	}

	t.Run("second call is served from cache", func(t *testing.T) {
		cachedOutput, err := uc.Execute(context.Background(), GetOverviewInput{UserID: userID, Year: year})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if cache.hits == 0 {
			t.Error("expected a cache hit on the second call")
		}
		if !cachedOutput.TotalSpentYear.Equal(output.TotalSpentYear) {
			t.Errorf("cached total = %s, want %s", cachedOutput.TotalSpentYear, output.TotalSpentYear)
		}
	})

	t.Run("different year bypasses the cached payload", func(t *testing.T) {
		other, err := uc.Execute(context.Background(), GetOverviewInput{UserID: userID, Year: year + 1})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if !other.TotalSpentYear.Equal(d("1200")) {
			t.Errorf("total spent in empty year = %s, want 1200 (recurring only)", other.TotalSpentYear)
		}
	})
}

func TestGetOverview_NoIncomeProfile(t *testing.T) {
	userID := uuid.New()

	uc := NewGetOverviewUseCase(&fakeIncomeRepo{}, &fakeExpenseRepo{}, &fakeSavingsRepo{pool: decimal.Zero}, nil)

	output, err := uc.Execute(context.Background(), GetOverviewInput{UserID: userID, Year: 2025})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if output.Income != nil {
		t.Error("expected empty income section without a profile")
	}
	if !output.SpendingProgressPercent.IsZero() {
		t.Errorf("progress with zero spendable = %s, want 0", output.SpendingProgressPercent)
	}
}
