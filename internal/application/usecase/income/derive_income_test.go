package income

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/domain/entity"
	domainerror "github.com/kakeibo/backend/internal/domain/error"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDeriveIncome_YearlyScenario(t *testing.T) {
	// 60000 yearly, 20% tax, 20% savings.
	derived, err := DeriveIncome(DeriveIncomeInput{
		GrossAmount:        d("60000"),
		Period:             entity.IncomePeriodYearly,
		TaxRatePercent:     d("20"),
		SavingsRatePercent: d("20"),
	})
	if err != nil {
		t.Fatalf("DeriveIncome returned error: %v", err)
	}

	checks := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"monthly gross", derived.MonthlyGross, "5000"},
		{"yearly gross", derived.YearlyGross, "60000"},
		{"monthly tax", derived.MonthlyTax, "1000"},
		{"yearly tax", derived.YearlyTax, "12000"},
		{"monthly net", derived.MonthlyNet, "4000"},
		{"yearly net", derived.YearlyNet, "48000"},
		{"monthly savings", derived.MonthlySavings, "800"},
		{"yearly savings", derived.YearlySavings, "9600"},
		{"monthly spendable", derived.MonthlySpendable, "3200"},
		{"yearly spendable", derived.YearlySpendable, "38400"},
	}

	for _, c := range checks {
		if !c.got.Equal(d(c.want)) {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}
}

func TestDeriveIncome_Invariants(t *testing.T) {
	inputs := []DeriveIncomeInput{
		{GrossAmount: d("3456.78"), Period: entity.IncomePeriodMonthly, TaxRatePercent: d("17.5"), SavingsRatePercent: d("12.3")},
		{GrossAmount: d("100000"), Period: entity.IncomePeriodYearly, TaxRatePercent: d("0"), SavingsRatePercent: d("100")},
		{GrossAmount: d("0.01"), Period: entity.IncomePeriodMonthly, TaxRatePercent: d("100"), SavingsRatePercent: d("0")},
		{GrossAmount: d("7777.77"), Period: entity.IncomePeriodYearly, TaxRatePercent: d("33"), SavingsRatePercent: d("50")},
	}

	twelve := decimal.NewFromInt(12)

	for _, input := range inputs {
		derived, err := DeriveIncome(input)
		if err != nil {
			t.Fatalf("DeriveIncome(%v) returned error: %v", input, err)
		}

		pairs := []struct {
			name    string
			monthly decimal.Decimal
			yearly  decimal.Decimal
		}{
			{"gross", derived.MonthlyGross, derived.YearlyGross},
			{"tax", derived.MonthlyTax, derived.YearlyTax},
			{"net", derived.MonthlyNet, derived.YearlyNet},
			{"savings", derived.MonthlySavings, derived.YearlySavings},
			{"spendable", derived.MonthlySpendable, derived.YearlySpendable},
		}
		for _, p := range pairs {
			if !p.yearly.Equal(p.monthly.Mul(twelve).Round(2)) {
				t.Errorf("%s: yearly %s != monthly %s * 12", p.name, p.yearly, p.monthly)
			}
		}

		if !derived.MonthlyNet.Equal(derived.MonthlyGross.Sub(derived.MonthlyTax)) {
			t.Errorf("monthly net %s != gross %s - tax %s", derived.MonthlyNet, derived.MonthlyGross, derived.MonthlyTax)
		}
		if !derived.MonthlySpendable.Equal(derived.MonthlyNet.Sub(derived.MonthlySavings)) {
			t.Errorf("monthly spendable %s != net %s - savings %s", derived.MonthlySpendable, derived.MonthlyNet, derived.MonthlySavings)
		}
	}
}

func TestDeriveIncome_PeriodRoundTrip(t *testing.T) {
	// Yearly G must produce the same monthly gross as monthly G/12.
	gross := d("54321")

	fromYearly, err := DeriveIncome(DeriveIncomeInput{
		GrossAmount:        gross,
		Period:             entity.IncomePeriodYearly,
		TaxRatePercent:     d("15"),
		SavingsRatePercent: d("10"),
	})
	if err != nil {
		t.Fatalf("yearly derivation failed: %v", err)
	}

	fromMonthly, err := DeriveIncome(DeriveIncomeInput{
		GrossAmount:        gross.Div(decimal.NewFromInt(12)),
		Period:             entity.IncomePeriodMonthly,
		TaxRatePercent:     d("15"),
		SavingsRatePercent: d("10"),
	})
	if err != nil {
		t.Fatalf("monthly derivation failed: %v", err)
	}

	if !fromYearly.MonthlyGross.Equal(fromMonthly.MonthlyGross) {
		t.Errorf("monthly gross mismatch: yearly path %s, monthly path %s",
			fromYearly.MonthlyGross, fromMonthly.MonthlyGross)
	}
}

func TestDeriveIncome_Validation(t *testing.T) {
	valid := DeriveIncomeInput{
		GrossAmount:        d("5000"),
		Period:             entity.IncomePeriodMonthly,
		TaxRatePercent:     d("20"),
		SavingsRatePercent: d("10"),
	}

	cases := []struct {
		name     string
		mutate   func(*DeriveIncomeInput)
		wantCode domainerror.IncomeErrorCode
	}{
		{
			name:     "zero gross amount",
			mutate:   func(i *DeriveIncomeInput) { i.GrossAmount = decimal.Zero },
			wantCode: domainerror.ErrCodeInvalidGrossAmount,
		},
		{
			name:     "negative gross amount",
			mutate:   func(i *DeriveIncomeInput) { i.GrossAmount = d("-100") },
			wantCode: domainerror.ErrCodeInvalidGrossAmount,
		},
		{
			name:     "unknown period",
			mutate:   func(i *DeriveIncomeInput) { i.Period = "hourly" },
			wantCode: domainerror.ErrCodeInvalidIncomePeriod,
		},
		{
			name:     "tax rate above 100",
			mutate:   func(i *DeriveIncomeInput) { i.TaxRatePercent = d("101") },
			wantCode: domainerror.ErrCodeInvalidTaxRate,
		},
		{
			name:     "negative savings rate",
			mutate:   func(i *DeriveIncomeInput) { i.SavingsRatePercent = d("-1") },
			wantCode: domainerror.ErrCodeInvalidSavingsRate,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := valid
			tc.mutate(&input)

			_, err := DeriveIncome(input)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}

			var incomeErr *domainerror.IncomeError
			if !errors.As(err, &incomeErr) {
				t.Fatalf("expected IncomeError, got %T", err)
			}
			if incomeErr.Code != tc.wantCode {
				t.Errorf("expected code %s, got %s", tc.wantCode, incomeErr.Code)
			}

			var validationErr *domainerror.ValidationError
			if !errors.As(err, &validationErr) {
				t.Errorf("expected wrapped ValidationError naming the field, got %v", err)
			}
		})
	}
}

func TestDeriveIncome_BoundaryRates(t *testing.T) {
	derived, err := DeriveIncome(DeriveIncomeInput{
		GrossAmount:        d("1000"),
		Period:             entity.IncomePeriodMonthly,
		TaxRatePercent:     d("100"),
		SavingsRatePercent: d("100"),
	})
	if err != nil {
		t.Fatalf("DeriveIncome returned error: %v", err)
	}
	if !derived.MonthlyNet.IsZero() {
		t.Errorf("monthly net with 100%% tax = %s, want 0", derived.MonthlyNet)
	}
	if !derived.MonthlySpendable.IsZero() {
		t.Errorf("monthly spendable = %s, want 0", derived.MonthlySpendable)
	}
}
