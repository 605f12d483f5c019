package calculation

import (
	"testing"

	"github.com/rgehrsitz/budgetcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectGrowth_FortyYearHorizon(t *testing.T) {
	in := domain.RetirementInputs{
		CurrentAge:          25,
		RetirementAge:       65,
		CurrentBalance:      decimal.NewFromInt(10000),
		MonthlyContribution: decimal.NewFromInt(500),
		AnnualReturnPercent: decimal.NewFromInt(7),
	}

	result := ProjectGrowth(in, domain.DefaultRetirementOptions())

	assert.Equal(t, 40, result.Years)
	assertDecimalNear(t, 1347555.25, result.FinalBalance, 0.01, "Final balance")
	assert.True(t, result.FinalBalance.GreaterThan(decimal.NewFromInt(1300000)), "Final balance in the low 1.3M range")
	assert.True(t, result.FinalBalance.LessThan(decimal.NewFromInt(1400000)), "Final balance in the low 1.3M range")
	assert.True(t, result.TotalContributions.Equal(decimal.NewFromInt(250000)), "Starting balance plus 40 years of contributions")
	assert.True(t, result.TotalGrowth.Equal(result.FinalBalance.Sub(result.TotalContributions)), "Growth is final minus contributions")

	require.Len(t, result.Trajectory, 40)
	last := result.Trajectory[39]
	assert.Equal(t, 40, last.Year)
	assert.Equal(t, 65, last.Age)
	assertDecimalNear(t, result.FinalBalance.InexactFloat64(), last.Balance, 1e-4, "Trajectory ends at the closed-form balance")

	first := result.Trajectory[0]
	assertDecimalNear(t, 700, first.Growth, 1e-9, "First year growth on the starting balance")
	assertDecimalNear(t, 16700, first.Balance, 1e-9, "Balance after the first year-end contribution")
}

func TestProjectGrowth_ZeroRate(t *testing.T) {
	in := domain.RetirementInputs{
		Years:               10,
		CurrentBalance:      decimal.NewFromInt(1000),
		MonthlyContribution: decimal.NewFromInt(100),
	}

	result := ProjectGrowth(in, domain.DefaultRetirementOptions())

	assert.True(t, result.FinalBalance.Equal(decimal.NewFromInt(13000)), "Zero rate is balance plus contributions, got %s", result.FinalBalance)
	assert.True(t, result.TotalGrowth.IsZero())
	for _, y := range result.Trajectory {
		assert.True(t, y.Growth.IsZero(), "Year %d growth", y.Year)
		assert.Zero(t, y.Age, "No age without a current age")
	}
}

func TestProjectGrowth_NonPositiveHorizon(t *testing.T) {
	tests := []struct {
		name string
		in   domain.RetirementInputs
	}{
		{"retirement age already passed", domain.RetirementInputs{CurrentAge: 65, RetirementAge: 60, CurrentBalance: decimal.NewFromInt(500000)}},
		{"no horizon at all", domain.RetirementInputs{}},
		{"negative explicit years", domain.RetirementInputs{Years: -3, CurrentBalance: decimal.NewFromInt(1000)}},
		{"horizon past the projection limit", domain.RetirementInputs{Years: MaxProjectionYears + 1, CurrentBalance: decimal.NewFromInt(1000)}},
		{"absurd explicit years", domain.RetirementInputs{Years: 1_000_000_000_000_000, AnnualReturnPercent: decimal.NewFromInt(7)}},
		{"absurd retirement age", domain.RetirementInputs{CurrentAge: 30, RetirementAge: 1_000_000_000_000_000, MonthlyContribution: decimal.NewFromInt(500)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ProjectGrowth(tt.in, domain.DefaultRetirementOptions())

			assert.Zero(t, result.Years)
			assert.True(t, result.FinalBalance.IsZero())
			assert.True(t, result.TotalContributions.IsZero())
			assert.NotNil(t, result.Trajectory)
			assert.Empty(t, result.Trajectory)
			assert.Equal(t, domain.BenchmarkBehind, result.Benchmark.Status)
			assert.Empty(t, result.Recommendations)
		})
	}
}

func TestFutureValue(t *testing.T) {
	assertDecimalNear(t, 1347555.25, FutureValue(decimal.NewFromInt(10000), decimal.NewFromInt(6000), decimal.NewFromFloat(0.07), 40), 0.01, "Annual compounding")
	assert.True(t, FutureValue(decimal.NewFromInt(10000), decimal.NewFromInt(6000), decimal.NewFromFloat(0.07), 0).Equal(decimal.NewFromInt(10000)), "Zero years returns the balance")
	assert.True(t, FutureValue(decimal.NewFromInt(10000), decimal.NewFromInt(6000), decimal.NewFromFloat(0.07), 1_000_000_000).IsZero(), "Beyond the projection limit")
}

func TestProjectGrowth_LongestHorizon(t *testing.T) {
	in := domain.RetirementInputs{
		Years:               MaxProjectionYears,
		CurrentBalance:      decimal.NewFromInt(10000),
		MonthlyContribution: decimal.NewFromInt(500),
		AnnualReturnPercent: decimal.NewFromInt(7),
	}

	result := ProjectGrowth(in, domain.DefaultRetirementOptions())

	require.Len(t, result.Trajectory, MaxProjectionYears)
	last := result.Trajectory[MaxProjectionYears-1].Balance
	assert.InEpsilon(t, result.FinalBalance.InexactFloat64(), last.InexactFloat64(), 1e-9, "Trajectory ends at the closed-form balance")
}

func TestProjectGrowth_Deterministic(t *testing.T) {
	in := domain.RetirementInputs{
		CurrentAge:               40,
		RetirementAge:            67,
		CurrentBalance:           decimal.NewFromInt(150000),
		MonthlyContribution:      decimal.NewFromInt(800),
		AnnualReturnPercent:      decimal.NewFromFloat(6.5),
		AnnualIncome:             decimal.NewFromInt(95000),
		AnnualRetirementExpenses: decimal.NewFromInt(60000),
	}

	first := ProjectGrowth(in, domain.DefaultRetirementOptions())
	second := ProjectGrowth(in, domain.DefaultRetirementOptions())
	assert.Equal(t, first, second, "Same inputs give the same result")
}

func TestClassifyBenchmark(t *testing.T) {
	base := domain.RetirementInputs{
		CurrentAge:   40,
		AnnualIncome: decimal.NewFromInt(100000),
	}

	tests := []struct {
		name    string
		age     int
		balance int64
		want    domain.BenchmarkStatus
		target  float64
	}{
		{"exactly on target", 40, 300000, domain.BenchmarkOnTrack, 300000},
		{"at 120 percent is ahead", 40, 360000, domain.BenchmarkAhead, 300000},
		{"at 80 percent is on track", 40, 240000, domain.BenchmarkOnTrack, 300000},
		{"just under 80 percent is behind", 40, 239999, domain.BenchmarkBehind, 300000},
		{"ten times income at 67", 67, 1000000, domain.BenchmarkOnTrack, 1000000},
		{"one times income at 30", 30, 100000, domain.BenchmarkOnTrack, 100000},
		{"half of income before 30", 29, 50000, domain.BenchmarkOnTrack, 50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			in.CurrentAge = tt.age
			in.CurrentBalance = decimal.NewFromInt(tt.balance)

			b := ClassifyBenchmark(in)

			assert.Equal(t, tt.want, b.Status)
			assertDecimalNear(t, tt.target, b.TargetSavings, 1e-9, "Target savings")
		})
	}
}

func TestClassifyBenchmark_IncomeProxy(t *testing.T) {
	in := domain.RetirementInputs{
		CurrentAge:          35,
		MonthlyContribution: decimal.NewFromInt(500),
		CurrentBalance:      decimal.NewFromInt(80000),
	}

	b := ClassifyBenchmark(in)

	assertDecimalNear(t, 40000, b.IncomeProxy, 1e-9, "Contributions grossed up at 15%")
	assertDecimalNear(t, 80000, b.TargetSavings, 1e-9, "Two times proxy income at 35")
	assert.Equal(t, domain.BenchmarkOnTrack, b.Status)

	empty := ClassifyBenchmark(domain.RetirementInputs{CurrentAge: 35})
	assert.Equal(t, domain.BenchmarkBehind, empty.Status, "No savings and no income is behind")
	assert.True(t, empty.Ratio.IsZero(), "Ratio is guarded against a zero target")
}

func TestProjectGrowth_Recommendations(t *testing.T) {
	in := domain.RetirementInputs{
		CurrentAge:          55,
		RetirementAge:       65,
		CurrentBalance:      decimal.NewFromInt(50000),
		MonthlyContribution: decimal.NewFromInt(200),
		AnnualReturnPercent: decimal.NewFromInt(9),
		AnnualIncome:        decimal.NewFromInt(100000),
	}

	t.Run("default cap keeps the first four", func(t *testing.T) {
		result := ProjectGrowth(in, domain.DefaultRetirementOptions())

		require.Len(t, result.Recommendations, 4)
		assert.Equal(t, "savings", result.Recommendations[0].Category)
		assert.Equal(t, domain.PriorityHigh, result.Recommendations[0].Priority)
		assert.Contains(t, result.Recommendations[0].Message, "falls short")
		assert.Equal(t, "contributions", result.Recommendations[1].Category)
		assert.Equal(t, "allocation", result.Recommendations[2].Category)
		assert.Contains(t, result.Recommendations[2].Message, "aggressive")
		assert.Contains(t, result.Recommendations[3].Message, "catch-up")
	})

	t.Run("no cap returns every rule", func(t *testing.T) {
		result := ProjectGrowth(in, domain.RetirementOptions{})

		require.Len(t, result.Recommendations, 5)
		assert.Equal(t, "emergency_fund", result.Recommendations[4].Category)
	})

	t.Run("goal from explicit expenses", func(t *testing.T) {
		withExpenses := in
		withExpenses.AnnualRetirementExpenses = decimal.NewFromInt(40000)
		result := ProjectGrowth(withExpenses, domain.DefaultRetirementOptions())

		assertDecimalNear(t, 1000000, result.RetirementGoal, 1e-9, "25x annual expenses")
	})

	t.Run("young saver with a conservative return", func(t *testing.T) {
		young := domain.RetirementInputs{
			CurrentAge:          28,
			RetirementAge:       65,
			CurrentBalance:      decimal.NewFromInt(20000),
			MonthlyContribution: decimal.NewFromInt(1500),
			AnnualReturnPercent: decimal.NewFromInt(4),
			AnnualIncome:        decimal.NewFromInt(90000),
			EmergencySavings:    decimal.NewFromInt(30000),
		}
		result := ProjectGrowth(young, domain.RetirementOptions{})

		categories := make([]string, 0, len(result.Recommendations))
		for _, r := range result.Recommendations {
			categories = append(categories, r.Category)
		}
		assert.Contains(t, categories, "allocation")
		assert.NotContains(t, categories, "emergency_fund")
	})
}

func TestProjectGrowth_EmergencyFundOnly(t *testing.T) {
	in := domain.RetirementInputs{
		CurrentAge:          25,
		RetirementAge:       65,
		CurrentBalance:      decimal.NewFromInt(10000),
		MonthlyContribution: decimal.NewFromInt(500),
		AnnualReturnPercent: decimal.NewFromInt(7),
	}

	result := ProjectGrowth(in, domain.DefaultRetirementOptions())

	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "emergency_fund", result.Recommendations[0].Category)
	assertDecimalNear(t, 800000, result.RetirementGoal, 1e-6, "25x of 80% of the proxy income")
	assert.Equal(t, domain.BenchmarkBehind, result.Benchmark.Status, "Half of proxy income expected before 30")
}
