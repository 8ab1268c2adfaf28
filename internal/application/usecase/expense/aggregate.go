// Package expense contains expense-related use cases.
package expense

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/domain/entity"
	"github.com/kakeibo/backend/internal/domain/money"
)

// The aggregation functions below are pure over a snapshot of expenses.
// Malformed internal data (nil entries) is skipped, never reported:
// bad input parameters are the caller's problem, bad stored rows are not.

var monthsPerYear = decimal.NewFromInt(12)

// MonthGroup holds the expenses of a single calendar month.
type MonthGroup struct {
	Month    string // "YYYY-MM"
	Expenses []*entity.Expense
	Total    decimal.Decimal
}

// CategoryShare is one category's slice of the combined spending total.
type CategoryShare struct {
	Category       entity.Category
	Amount         decimal.Decimal
	PercentOfTotal decimal.Decimal
}

// TotalForYear sums the one-time expenses dated within the given year plus
// twelve months of every recurring charge. A recurring expense contributes
// amount*12 regardless of its date; the date denotes the start reference only.
func TotalForYear(oneTime, recurring []*entity.Expense, year int) decimal.Decimal {
	total := decimal.Zero
	for _, e := range oneTime {
		if e == nil {
			continue
		}
		if e.Date.Year() == year {
			total = total.Add(e.Amount)
		}
	}
	for _, e := range recurring {
		if e == nil {
			continue
		}
		total = total.Add(e.Amount.Mul(monthsPerYear))
	}
	return money.Round2(total)
}

// GroupByMonth groups expenses by their local calendar month, newest month
// first for display.
func GroupByMonth(expenses []*entity.Expense) []MonthGroup {
	byMonth := make(map[string][]*entity.Expense)
	for _, e := range expenses {
		if e == nil {
			continue
		}
		key := e.Date.Format("2006-01")
		byMonth[key] = append(byMonth[key], e)
	}

	groups := make([]MonthGroup, 0, len(byMonth))
	for month, list := range byMonth {
		total := decimal.Zero
		for _, e := range list {
			total = total.Add(e.Amount)
		}
		groups = append(groups, MonthGroup{
			Month:    month,
			Expenses: list,
			Total:    money.Round2(total),
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Month > groups[j].Month
	})

	return groups
}

// CategoryBreakdown totals one-time and recurring expenses per category at
// face value and computes each category's share of the combined total.
// A zero combined total yields an empty list rather than divisions by zero.
func CategoryBreakdown(oneTime, recurring []*entity.Expense) []CategoryShare {
	amounts := make(map[entity.Category]decimal.Decimal)
	total := decimal.Zero

	accumulate := func(expenses []*entity.Expense) {
		for _, e := range expenses {
			if e == nil {
				continue
			}
			amounts[e.Category] = amounts[e.Category].Add(e.Amount)
			total = total.Add(e.Amount)
		}
	}
	accumulate(oneTime)
	accumulate(recurring)

	if total.IsZero() {
		return []CategoryShare{}
	}

	shares := make([]CategoryShare, 0, len(amounts))
	for _, category := range entity.Categories {
		amount, ok := amounts[category]
		if !ok {
			continue
		}
		shares = append(shares, CategoryShare{
			Category:       category,
			Amount:         money.Round2(amount),
			PercentOfTotal: money.Percentage(amount, total),
		})
	}

	return shares
}

// SpendingProgress returns how much of the yearly spendable income has been
// consumed, as a percentage. A zero spendable yields 0 rather than an
// unbounded figure so progress displays stay stable.
func SpendingProgress(totalSpent, yearlySpendable decimal.Decimal) decimal.Decimal {
	return money.Percentage(totalSpent, yearlySpendable)
}

// ProjectedYearlySpending extrapolates the average monthly spend across the
// months that actually contain expenses to a full year.
func ProjectedYearlySpending(expenses []*entity.Expense) decimal.Decimal {
	groups := GroupByMonth(expenses)
	if len(groups) == 0 {
		return decimal.Zero
	}

	total := decimal.Zero
	for _, g := range groups {
		total = total.Add(g.Total)
	}
	average := total.Div(decimal.NewFromInt(int64(len(groups))))
	return money.Round2(average.Mul(monthsPerYear))
}
