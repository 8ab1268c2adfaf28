// Package summary contains the overview use case combining income, expense,
// and savings figures into one view model.
package summary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/application/adapter"
	"github.com/kakeibo/backend/internal/application/usecase/expense"
	"github.com/kakeibo/backend/internal/domain/entity"
	domainerror "github.com/kakeibo/backend/internal/domain/error"
	"github.com/kakeibo/backend/internal/domain/money"
)

// GetOverviewInput represents the input for the overview.
type GetOverviewInput struct {
	UserID uuid.UUID
	Year   int
}

// DerivedIncomeView is the derived income breakdown in response form.
type DerivedIncomeView struct {
	MonthlyGross     decimal.Decimal `json:"monthly_gross"`
	YearlyGross      decimal.Decimal `json:"yearly_gross"`
	MonthlyTax       decimal.Decimal `json:"monthly_tax"`
	YearlyTax        decimal.Decimal `json:"yearly_tax"`
	MonthlyNet       decimal.Decimal `json:"monthly_net"`
	YearlyNet        decimal.Decimal `json:"yearly_net"`
	MonthlySavings   decimal.Decimal `json:"monthly_savings"`
	YearlySavings    decimal.Decimal `json:"yearly_savings"`
	MonthlySpendable decimal.Decimal `json:"monthly_spendable"`
	YearlySpendable  decimal.Decimal `json:"yearly_spendable"`
}

// CategoryShareView is one category's slice of the spending breakdown.
type CategoryShareView struct {
	Category       string          `json:"category"`
	Amount         decimal.Decimal `json:"amount"`
	PercentOfTotal decimal.Decimal `json:"percent_of_total"`
}

// GetOverviewOutput is the combined budgeting view model. It is cached
// per user and serialized as JSON.
type GetOverviewOutput struct {
	Year                    int                 `json:"year"`
	Currency                string              `json:"currency,omitempty"`
	Income                  *DerivedIncomeView  `json:"income,omitempty"`
	TotalSpentYear          decimal.Decimal     `json:"total_spent_year"`
	RemainingSpendable      decimal.Decimal     `json:"remaining_spendable"`
	SpendingProgressPercent decimal.Decimal     `json:"spending_progress_percent"`
	ProjectedYearlySpending decimal.Decimal     `json:"projected_yearly_spending"`
	Breakdown               []CategoryShareView `json:"breakdown"`
	PoolAmount              decimal.Decimal     `json:"pool_amount"`
	TotalSavings            decimal.Decimal     `json:"total_savings"`
}

// GetOverviewUseCase computes the overview from the store, with a
// per-user cache in front. Mutations elsewhere invalidate the cache, so a
// hit is always consistent with the last local write.
type GetOverviewUseCase struct {
	incomeRepo  adapter.IncomeRepository
	expenseRepo adapter.ExpenseRepository
	savingsRepo adapter.SavingsRepository
	cache       adapter.SummaryCache
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
// The cache may be nil, in which case every call recomputes.
func NewGetOverviewUseCase(
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
	savingsRepo adapter.SavingsRepository,
	cache adapter.SummaryCache,
) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
		savingsRepo: savingsRepo,
		cache:       cache,
	}
}

// Execute computes the overview for the user and year.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	if cached := uc.fromCache(ctx, input); cached != nil {
		return cached, nil
	}

	output, err := uc.compute(ctx, input)
	if err != nil {
		return nil, err
	}

	uc.toCache(ctx, input.UserID, output)
	return output, nil
}

func (uc *GetOverviewUseCase) compute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	output := &GetOverviewOutput{
		Year:      input.Year,
		Breakdown: []CategoryShareView{},
	}

	// A user without an income profile still gets expense and savings
	// figures; the derived section stays empty.
	profile, err := uc.incomeRepo.FindByUserID(ctx, input.UserID)
	switch {
	case err == nil:
		output.Currency = profile.Currency
		output.Income = &DerivedIncomeView{
			MonthlyGross:     profile.Derived.MonthlyGross,
			YearlyGross:      profile.Derived.YearlyGross,
			MonthlyTax:       profile.Derived.MonthlyTax,
			YearlyTax:        profile.Derived.YearlyTax,
			MonthlyNet:       profile.Derived.MonthlyNet,
			YearlyNet:        profile.Derived.YearlyNet,
			MonthlySavings:   profile.Derived.MonthlySavings,
			YearlySavings:    profile.Derived.YearlySavings,
			MonthlySpendable: profile.Derived.MonthlySpendable,
			YearlySpendable:  profile.Derived.YearlySpendable,
		}
	case errors.Is(err, domainerror.ErrIncomeNotFound):
		// Leave the income section empty.
	default:
		return nil, fmt.Errorf("failed to load income: %w", err)
	}

	all, err := uc.expenseRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	var oneTime, recurring []*entity.Expense
	for _, e := range all {
		if e.IsRecurring {
			recurring = append(recurring, e)
		} else {
			oneTime = append(oneTime, e)
		}
	}

	output.TotalSpentYear = expense.TotalForYear(oneTime, recurring, input.Year)
	output.ProjectedYearlySpending = expense.ProjectedYearlySpending(all)

	yearlySpendable := decimal.Zero
	if output.Income != nil {
		yearlySpendable = output.Income.YearlySpendable
	}
	output.RemainingSpendable = money.Round2(yearlySpendable.Sub(output.TotalSpentYear))
	output.SpendingProgressPercent = expense.SpendingProgress(output.TotalSpentYear, yearlySpendable)

	for _, share := range expense.CategoryBreakdown(oneTime, recurring) {
		output.Breakdown = append(output.Breakdown, CategoryShareView{
			Category:       string(share.Category),
			Amount:         share.Amount,
			PercentOfTotal: share.PercentOfTotal,
		})
	}

	pool, err := uc.savingsRepo.GetPool(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load savings pool: %w", err)
	}
	goals, err := uc.savingsRepo.FindGoalsByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load savings goals: %w", err)
	}
	ledger := entity.LedgerState{Pool: *pool, Goals: goals}
	output.PoolAmount = pool.Amount
	output.TotalSavings = ledger.TotalSavings()

	return output, nil
}

// fromCache returns the cached overview for the same year, or nil.
func (uc *GetOverviewUseCase) fromCache(ctx context.Context, input GetOverviewInput) *GetOverviewOutput {
	if uc.cache == nil {
		return nil
	}

	payload, ok, err := uc.cache.Get(ctx, input.UserID)
	if err != nil {
		slog.Warn("summary cache read failed", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var output GetOverviewOutput
	if err := json.Unmarshal(payload, &output); err != nil {
		slog.Warn("summary cache payload malformed", "error", err)
		return nil
	}
	if output.Year != input.Year {
		return nil
	}
	return &output
}

func (uc *GetOverviewUseCase) toCache(ctx context.Context, userID uuid.UUID, output *GetOverviewOutput) {
	if uc.cache == nil {
		return
	}

	payload, err := json.Marshal(output)
	if err != nil {
		slog.Warn("summary cache marshal failed", "error", err)
		return
	}
	if err := uc.cache.Set(ctx, userID, payload); err != nil {
		slog.Warn("summary cache write failed", "error", err)
	}
}
