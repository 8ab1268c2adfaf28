// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category is the canonical expense category taxonomy.
type Category string

const (
	CategoryHousing       Category = "housing"
	CategorySubscriptions Category = "subscriptions"
	CategoryDailyNeeds    Category = "daily-needs"
	CategoryWants         Category = "wants"
	CategoryLeisure       Category = "leisure"
	CategoryUnexpected    Category = "unexpected"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryHousing,
	CategorySubscriptions,
	CategoryDailyNeeds,
	CategoryWants,
	CategoryLeisure,
	CategoryUnexpected,
}

// ParseCategory normalizes an input string to a canonical Category.
// Historical data carries several spellings of the same taxonomy
// ("DailyNeeds", "Daily Needs", "daily-needs"), so case, spaces, and
// underscores are all folded into the hyphenated lowercase form.
func ParseCategory(s string) (Category, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")
	if normalized == "dailyneeds" {
		normalized = "daily-needs"
	}

	c := Category(normalized)
	for _, valid := range Categories {
		if c == valid {
			return c, true
		}
	}
	return "", false
}

// Expense represents a single expense record. A recurring expense models a
// fixed monthly charge; its date denotes the start reference only.
type Expense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Category    Category
	Description string
	Date        time.Time
	IsRecurring bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	userID uuid.UUID,
	amount decimal.Decimal,
	category Category,
	description string,
	date time.Time,
	isRecurring bool,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
		IsRecurring: isRecurring,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
