package calculation

import (
	"testing"

	"github.com/rgehrsitz/budgetcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmortize_ThirtyYearMortgage(t *testing.T) {
	result := Amortize(decimal.NewFromInt(320000), decimal.NewFromFloat(6.5), 360)

	assertDecimalNear(t, 2022.62, result.PeriodicPayment, 0.01, "Monthly payment")
	assertDecimalNear(t, 408142.36, result.TotalInterest, 0.05, "Total interest")
	assert.True(t, result.TotalPaid.Equal(result.PeriodicPayment.Mul(decimal.NewFromInt(360))), "Total paid is payment times term")
	require.Len(t, result.Schedule, 360, "One entry per month")

	principalSum := decimal.Zero
	interestSum := decimal.Zero
	for i, entry := range result.Schedule {
		assert.Equal(t, i+1, entry.Period, "Periods are numbered from one")
		assert.False(t, entry.RemainingBalance.IsNegative(), "Balance never goes negative")
		principalSum = principalSum.Add(entry.PrincipalPortion)
		interestSum = interestSum.Add(entry.InterestPortion)
	}

	assert.True(t, principalSum.Equal(decimal.NewFromInt(320000)), "Principal portions sum to the original principal, got %s", principalSum)
	assert.True(t, result.Schedule[359].RemainingBalance.IsZero(), "Final balance is zero")
	assertDecimalNear(t, result.TotalInterest.InexactFloat64(), interestSum, 1.0, "Schedule interest tracks total interest")

	first := result.Schedule[0]
	assertDecimalNear(t, 1733.33, first.InterestPortion, 0.01, "First month interest")
	assert.True(t, first.InterestPortion.GreaterThan(first.PrincipalPortion), "Early payments are interest heavy")
}

func TestAmortize_ZeroRateIsStraightLine(t *testing.T) {
	result := Amortize(decimal.NewFromInt(12000), decimal.Zero, 12)

	assert.True(t, result.PeriodicPayment.Equal(decimal.NewFromInt(1000)), "Payment is principal over term")
	assert.True(t, result.TotalInterest.IsZero(), "No interest at zero rate")
	require.Len(t, result.Schedule, 12)
	for _, entry := range result.Schedule {
		assert.True(t, entry.InterestPortion.IsZero(), "Period %d interest", entry.Period)
		assert.True(t, entry.PrincipalPortion.Equal(decimal.NewFromInt(1000)), "Period %d principal", entry.Period)
	}
	assert.True(t, result.Schedule[11].RemainingBalance.IsZero())
}

func TestAmortize_DegenerateInputs(t *testing.T) {
	tests := []struct {
		name      string
		principal decimal.Decimal
		rate      decimal.Decimal
		term      int
	}{
		{"zero principal", decimal.Zero, decimal.NewFromFloat(5), 360},
		{"negative principal", decimal.NewFromInt(-1000), decimal.NewFromFloat(5), 360},
		{"zero term", decimal.NewFromInt(100000), decimal.NewFromFloat(5), 0},
		{"negative term", decimal.NewFromInt(100000), decimal.NewFromFloat(5), -12},
		{"negative rate", decimal.NewFromInt(100000), decimal.NewFromFloat(-1), 360},
		{"term past the schedule limit", decimal.NewFromInt(100000), decimal.NewFromFloat(5), MaxTermMonths + 1},
		{"absurd term", decimal.NewFromInt(1000), decimal.Zero, 1_000_000_000_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Amortize(tt.principal, tt.rate, tt.term)

			assert.True(t, result.IsDegenerate(), "Should be degenerate")
			assert.NotNil(t, result.Schedule, "Schedule should be empty, not nil")
			assert.Empty(t, result.Schedule)
			assert.True(t, result.PeriodicPayment.IsZero())
			assert.True(t, result.TotalPaid.IsZero())
			assert.True(t, result.TotalInterest.IsZero())
		})
	}
}

func TestAmortize_ScheduleProperties(t *testing.T) {
	tests := []struct {
		name      string
		principal decimal.Decimal
		rate      decimal.Decimal
		term      int
	}{
		{"single period", decimal.NewFromInt(1000), decimal.NewFromInt(12), 1},
		{"single period tiny rate", decimal.NewFromInt(1000), decimal.NewFromFloat(0.0001), 1},
		{"tiny rate", decimal.NewFromInt(5000), decimal.NewFromFloat(0.001), 24},
		{"zero rate uneven split", decimal.NewFromInt(12000), decimal.Zero, 7},
		{"odd cents", decimal.NewFromFloat(99.99), decimal.NewFromInt(7), 7},
		{"fifteen year mortgage", decimal.NewFromInt(250000), decimal.NewFromFloat(3.75), 180},
		{"car loan", decimal.NewFromInt(25000), decimal.NewFromFloat(5.9), 60},
		{"high rate", decimal.NewFromInt(1000000), decimal.NewFromInt(25), 360},
		{"longest schedule", decimal.NewFromInt(320000), decimal.NewFromFloat(6.5), MaxTermMonths},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Amortize(tt.principal, tt.rate, tt.term)
			require.Len(t, result.Schedule, tt.term)

			principalSum := decimal.Zero
			previous := tt.principal
			for _, entry := range result.Schedule {
				assert.False(t, entry.PrincipalPortion.IsNegative(), "Period %d principal portion", entry.Period)
				assert.True(t, entry.RemainingBalance.LessThanOrEqual(previous), "Balance rises in period %d", entry.Period)
				previous = entry.RemainingBalance
				principalSum = principalSum.Add(entry.PrincipalPortion)
			}

			assert.True(t, principalSum.Equal(tt.principal), "Principal portions sum to %s, got %s", tt.principal, principalSum)
			assert.True(t, result.Schedule[tt.term-1].RemainingBalance.IsZero(), "Final balance is zero")
		})
	}
}

func TestAmortize_SinglePeriod(t *testing.T) {
	result := Amortize(decimal.NewFromInt(1000), decimal.NewFromInt(12), 1)

	require.Len(t, result.Schedule, 1)
	assertDecimalNear(t, 1010, result.PeriodicPayment, 1e-9, "One month at 1% per month")
	assert.True(t, result.Schedule[0].PrincipalPortion.Equal(decimal.NewFromInt(1000)))
	assert.True(t, result.Schedule[0].RemainingBalance.IsZero())
}

func TestPeriodicPayment_Guards(t *testing.T) {
	assert.True(t, PeriodicPayment(decimal.Zero, decimal.NewFromFloat(0.01), 12).IsZero())
	assert.True(t, PeriodicPayment(decimal.NewFromInt(1200), decimal.NewFromFloat(0.01), 0).IsZero())
	assert.True(t, PeriodicPayment(decimal.NewFromInt(1200), decimal.Zero, 12).Equal(decimal.NewFromInt(100)))
	assert.True(t, PeriodicPayment(decimal.NewFromInt(1200), decimal.NewFromFloat(0.01), MaxTermMonths+1).IsZero(), "Beyond the schedule limit")
}

func TestLoanResult_YearlySummary(t *testing.T) {
	result := CalculateLoan(domain.LoanInputs{
		Name:              "car",
		Principal:         decimal.NewFromInt(25000),
		AnnualRatePercent: decimal.NewFromFloat(5.9),
		TermMonths:        60,
	})

	years := result.YearlySummary()
	require.Len(t, years, 5, "Five loan years")

	principal := decimal.Zero
	for i, y := range years {
		assert.Equal(t, i+1, y.Year)
		principal = principal.Add(y.PrincipalPaid)
	}
	assert.True(t, principal.Equal(decimal.NewFromInt(25000)), "Yearly principal sums to the loan")
	assert.True(t, years[4].EndingBalance.IsZero(), "Loan is paid off at the end of year five")
	assert.True(t, years[0].InterestPaid.GreaterThan(years[4].InterestPaid), "Interest declines over the loan")

	assert.Nil(t, domain.LoanResult{}.YearlySummary(), "Empty schedule has no years")
}

func TestCalculateMortgage(t *testing.T) {
	base := domain.MortgageInputs{
		HomePrice:              decimal.NewFromInt(400000),
		DownPayment:            decimal.NewFromInt(80000),
		AnnualRatePercent:      decimal.NewFromFloat(6.5),
		TermYears:              30,
		PropertyTaxRatePercent: decimal.NewFromFloat(1.2),
		AnnualInsurance:        decimal.NewFromInt(1200),
		MonthlyHOA:             decimal.NewFromInt(50),
	}

	t.Run("twenty percent down has no PMI", func(t *testing.T) {
		result := CalculateMortgage(base)

		assert.True(t, result.Loan.Principal.Equal(decimal.NewFromInt(320000)), "Principal is price less down payment")
		assert.Equal(t, 360, result.Loan.TermMonths)
		assertDecimalNear(t, 0.8, result.LoanToValue, 1e-12, "Loan to value")
		assert.True(t, result.MonthlyPMI.IsZero(), "PMI only applies above 80% LTV")
		assertDecimalNear(t, 400, result.MonthlyPropertyTax, 1e-9, "Property tax")
		assertDecimalNear(t, 100, result.MonthlyInsurance, 1e-9, "Insurance")
		assertDecimalNear(t, 2022.62+400+100+50, result.TotalMonthlyPayment, 0.01, "Total monthly payment")
	})

	t.Run("ten percent down adds default PMI", func(t *testing.T) {
		in := base
		in.DownPayment = decimal.NewFromInt(40000)
		result := CalculateMortgage(in)

		assertDecimalNear(t, 150, result.MonthlyPMI, 1e-9, "0.5% of 360,000 per year")
		expected := result.MonthlyPrincipalInterest.Add(result.MonthlyPropertyTax).Add(result.MonthlyInsurance).
			Add(result.MonthlyHOA).Add(result.MonthlyPMI)
		assert.True(t, expected.Equal(result.TotalMonthlyPayment), "Total is the sum of its parts")
	})

	t.Run("explicit PMI rate", func(t *testing.T) {
		in := base
		in.DownPayment = decimal.NewFromInt(40000)
		in.PMIRatePercent = decimal.NewFromInt(1)
		result := CalculateMortgage(in)

		assertDecimalNear(t, 300, result.MonthlyPMI, 1e-9, "1% of 360,000 per year")
	})

	t.Run("term past the schedule limit is degenerate", func(t *testing.T) {
		for _, years := range []int{MaxTermMonths/12 + 1, 1_000_000_000_000_000} {
			in := base
			in.TermYears = years
			result := CalculateMortgage(in)

			assert.True(t, result.Loan.IsDegenerate(), "%d years", years)
			assert.True(t, result.MonthlyPrincipalInterest.IsZero(), "%d years", years)
			assert.True(t, result.MonthlyPMI.IsZero(), "%d years", years)
		}
	})

	t.Run("down payment covers the price", func(t *testing.T) {
		in := base
		in.DownPayment = decimal.NewFromInt(400000)
		result := CalculateMortgage(in)

		assert.True(t, result.Loan.IsDegenerate(), "Nothing to amortize")
		assert.True(t, result.MonthlyPrincipalInterest.IsZero())
		assert.True(t, result.MonthlyPMI.IsZero())
		assertDecimalNear(t, 550, result.TotalMonthlyPayment, 1e-9, "Escrow and HOA remain")
	})
}
