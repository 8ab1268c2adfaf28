// Package money provides currency-safe arithmetic helpers.
// All derived money values pass through Round2 before being stored or compared.
package money

import "github.com/shopspring/decimal"

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// Round2 rounds an amount to two decimal places using half-up rounding.
func Round2(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// ApplyRate applies a percentage rate to an amount and rounds the result
// to two decimal places.
func ApplyRate(amount decimal.Decimal, percent decimal.Decimal) decimal.Decimal {
	return Round2(amount.Mul(percent).Div(hundred))
}

// Yearly converts a monthly amount to its yearly equivalent, rounded.
func Yearly(monthly decimal.Decimal) decimal.Decimal {
	return Round2(monthly.Mul(twelve))
}

// Monthly converts a yearly amount to its monthly equivalent, rounded.
func Monthly(yearly decimal.Decimal) decimal.Decimal {
	return Round2(yearly.Div(twelve))
}

// Percentage returns part/total*100 rounded to two decimal places.
// A zero total yields zero rather than a division error so that callers
// rendering progress figures never see an infinite or NaN value.
func Percentage(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return Round2(part.Mul(hundred).Div(total))
}
