package calculation

import (
	"fmt"

	"github.com/rgehrsitz/budgetcalc/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	// savings rate assumed when no income is supplied; income is inferred from contributions
	assumedSavingsRate   = decimal.NewFromFloat(0.15)
	retirementGoalFactor = decimal.NewFromInt(25)
	expenseReplacement   = decimal.NewFromFloat(0.8)
	aheadRatio           = decimal.NewFromFloat(1.2)
	behindRatio          = decimal.NewFromFloat(0.8)
	emergencyIncomeShare = decimal.NewFromFloat(0.25)

	// savings-to-income multiple expected by age: 1x by 30 rising to 10x by 67
	benchmarkMultipliers = steps(AtLeast, 0.5,
		pair{67, 10},
		pair{60, 8},
		pair{55, 7},
		pair{50, 6},
		pair{45, 4},
		pair{40, 3},
		pair{35, 2},
		pair{30, 1},
	)
)

// FutureValue compounds balance annually for years and adds an ordinary annuity of
// annualContribution paid at each year end. Horizons beyond MaxProjectionYears give zero.
func FutureValue(balance, annualContribution, annualRate decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return balance
	}
	if years > MaxProjectionYears {
		return zero
	}
	grown := balance.Mul(compoundFactor(annualRate, years))
	return grown.Add(annualContribution.Mul(annuityFactor(annualRate, years)))
}

// ProjectGrowth projects a retirement balance with annual compounding.
//
// The closed form and the year-by-year trajectory use the same cadence, so the
// last trajectory balance matches FinalBalance to within internal rounding.
// A horizon outside 1..MaxProjectionYears returns an all-zero result classified as behind.
func ProjectGrowth(in domain.RetirementInputs, opts domain.RetirementOptions) domain.RetirementResult {
	years := in.ProjectionYears()
	if years <= 0 || years > MaxProjectionYears {
		return domain.RetirementResult{
			Trajectory:      []domain.YearEntry{},
			Benchmark:       domain.Benchmark{Status: domain.BenchmarkBehind},
			Recommendations: []domain.Recommendation{},
		}
	}

	rate := in.AnnualReturnPercent.Div(hundred)
	annualContribution := in.MonthlyContribution.Mul(twelve)

	final := FutureValue(in.CurrentBalance, annualContribution, rate, years)
	totalContributions := in.CurrentBalance.Add(annualContribution.Mul(decimal.NewFromInt(int64(years))))

	result := domain.RetirementResult{
		Years:              years,
		FinalBalance:       final,
		TotalContributions: totalContributions,
		TotalGrowth:        final.Sub(totalContributions),
		Trajectory:         buildTrajectory(in, annualContribution, rate, years),
		Benchmark:          ClassifyBenchmark(in),
		RetirementGoal:     retirementGoal(in),
	}

	facts := retirementFacts{
		in:          in,
		rate:        rate,
		years:       years,
		final:       final,
		goal:        result.RetirementGoal,
		incomeProxy: result.Benchmark.IncomeProxy,
	}
	result.Recommendations = capList(EvaluateRules(retirementRules, facts), opts.RecommendationLimit)

	return result
}

func buildTrajectory(in domain.RetirementInputs, annualContribution, rate decimal.Decimal, years int) []domain.YearEntry {
	trajectory := make([]domain.YearEntry, 0, years)
	balance := in.CurrentBalance

	for year := 1; year <= years; year++ {
		growth := balance.Mul(rate).Round(internalPrecision)
		balance = balance.Add(growth).Add(annualContribution)

		entry := domain.YearEntry{
			Year:         year,
			Contribution: annualContribution,
			Growth:       growth,
			Balance:      balance,
		}
		if in.CurrentAge > 0 {
			entry.Age = in.CurrentAge + year
		}
		trajectory = append(trajectory, entry)
	}

	return trajectory
}

// IncomeProxy is the stated income, or annual contributions grossed up by the assumed savings rate
func IncomeProxy(in domain.RetirementInputs) decimal.Decimal {
	if in.AnnualIncome.IsPositive() {
		return in.AnnualIncome
	}
	annual := in.MonthlyContribution.Mul(twelve)
	if !annual.IsPositive() {
		return zero
	}
	return annual.Div(assumedSavingsRate)
}

// ClassifyBenchmark compares current savings to the age-indexed multiple of income
func ClassifyBenchmark(in domain.RetirementInputs) domain.Benchmark {
	multiplier := benchmarkMultipliers.Lookup(decimal.NewFromInt(int64(in.CurrentAge)))
	proxy := IncomeProxy(in)
	target := multiplier.Mul(proxy)

	b := domain.Benchmark{
		Multiplier:    multiplier,
		IncomeProxy:   proxy,
		TargetSavings: target,
	}
	if target.IsPositive() {
		b.Ratio = in.CurrentBalance.Div(target)
	}

	switch {
	case !target.IsPositive() && !in.CurrentBalance.IsPositive():
		b.Status = domain.BenchmarkBehind
	case in.CurrentBalance.GreaterThanOrEqual(target.Mul(aheadRatio)):
		b.Status = domain.BenchmarkAhead
	case in.CurrentBalance.LessThan(target.Mul(behindRatio)):
		b.Status = domain.BenchmarkBehind
	default:
		b.Status = domain.BenchmarkOnTrack
	}
	return b
}

// retirementGoal is 25x annual retirement expenses, defaulting expenses to 80% of income
func retirementGoal(in domain.RetirementInputs) decimal.Decimal {
	expenses := in.AnnualRetirementExpenses
	if !expenses.IsPositive() {
		expenses = IncomeProxy(in).Mul(expenseReplacement)
	}
	return expenses.Mul(retirementGoalFactor)
}

type retirementFacts struct {
	in          domain.RetirementInputs
	rate        decimal.Decimal
	years       int
	final       decimal.Decimal
	goal        decimal.Decimal
	incomeProxy decimal.Decimal
}

func (f retirementFacts) returnPercent() decimal.Decimal {
	return f.in.AnnualReturnPercent
}

// retirementRules are evaluated in order; the cap keeps the earliest
var retirementRules = []Rule[retirementFacts, domain.Recommendation]{
	{
		Name: "shortfall",
		When: func(f retirementFacts) bool {
			return f.goal.IsPositive() && f.final.LessThan(f.goal)
		},
		Then: func(f retirementFacts) domain.Recommendation {
			gap := f.goal.Sub(f.final)
			extraMonthly := zero
			if factor := annuityFactor(f.rate, f.years); factor.IsPositive() {
				extraMonthly = gap.Div(factor).Div(twelve)
			}
			return domain.Recommendation{
				Category: "savings",
				Message: fmt.Sprintf("Projected balance of %s falls short of the %s goal (25x annual expenses); about %s more per month would close the gap",
					dollars(f.final), dollars(f.goal), dollars(extraMonthly)),
				Priority: domain.PriorityHigh,
			}
		},
	},
	{
		Name: "contribution_size",
		When: func(f retirementFacts) bool {
			return f.incomeProxy.IsPositive() &&
				f.in.MonthlyContribution.Mul(twelve).LessThan(f.incomeProxy.Mul(assumedSavingsRate))
		},
		Then: func(f retirementFacts) domain.Recommendation {
			target := f.incomeProxy.Mul(assumedSavingsRate).Div(twelve)
			return domain.Recommendation{
				Category: "contributions",
				Message: fmt.Sprintf("Contributions are below 15%% of income; %s per month meets that guideline",
					dollars(target)),
				Priority: domain.PriorityMedium,
			}
		},
	},
	{
		Name: "conservative_allocation",
		When: func(f retirementFacts) bool {
			return f.in.CurrentAge > 0 && f.in.CurrentAge < 40 && f.returnPercent().LessThan(decimal.NewFromInt(6))
		},
		Then: func(f retirementFacts) domain.Recommendation {
			return domain.Recommendation{
				Category: "allocation",
				Message: fmt.Sprintf("A %s%% return assumption is conservative for a %d-year horizon; a growth-oriented mix may suit it better",
					f.returnPercent().StringFixed(1), f.years),
				Priority: domain.PriorityMedium,
			}
		},
	},
	{
		Name: "aggressive_allocation",
		When: func(f retirementFacts) bool {
			return f.in.CurrentAge >= 55 && f.returnPercent().GreaterThan(decimal.NewFromInt(8))
		},
		Then: func(f retirementFacts) domain.Recommendation {
			return domain.Recommendation{
				Category: "allocation",
				Message: fmt.Sprintf("A %s%% return assumption is aggressive this close to retirement; test the plan at a lower rate",
					f.returnPercent().StringFixed(1)),
				Priority: domain.PriorityMedium,
			}
		},
	},
	{
		Name: "catch_up",
		When: func(f retirementFacts) bool { return f.in.CurrentAge > 50 },
		Then: func(f retirementFacts) domain.Recommendation {
			return domain.Recommendation{
				Category: "contributions",
				Message:  fmt.Sprintf("At age %d you are eligible for catch-up contributions to tax-advantaged accounts", f.in.CurrentAge),
				Priority: domain.PriorityMedium,
			}
		},
	},
	{
		Name: "emergency_fund",
		When: func(f retirementFacts) bool {
			return f.incomeProxy.IsPositive() && f.in.EmergencySavings.LessThan(f.incomeProxy.Mul(emergencyIncomeShare))
		},
		Then: func(f retirementFacts) domain.Recommendation {
			return domain.Recommendation{
				Category: "emergency_fund",
				Message: fmt.Sprintf("Hold 3-6 months of income (%s) in an emergency fund before taking on more investment risk",
					dollars(f.incomeProxy.Mul(emergencyIncomeShare))),
				Priority: domain.PriorityLow,
			}
		},
	},
}

func dollars(d decimal.Decimal) string {
	return "$" + d.StringFixed(0)
}
