package calculation

import (
	"sort"

	"github.com/rgehrsitz/budgetcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// score bounds of the FICO-style scale
const (
	scoreFloor = 300
	scoreCeil  = 850
	scoreBand  = 25
)

var scoreSpan = decimal.NewFromInt(scoreCeil - scoreFloor)

// creditFactorSpec binds a factor to its weight and impact table
type creditFactorSpec struct {
	Factor domain.CreditFactor
	Label  string
	Weight int
	Table  StepTable
	Value  func(domain.CreditFactors) decimal.Decimal
}

var creditFactorSpecs = []creditFactorSpec{
	{
		Factor: domain.FactorPaymentHistory,
		Label:  "Payment history",
		Weight: 35,
		Table:  steps(AtLeast, 20, pair{95, 100}, pair{90, 80}, pair{80, 60}, pair{70, 40}),
		Value:  func(f domain.CreditFactors) decimal.Decimal { return f.PaymentHistoryPercent },
	},
	{
		Factor: domain.FactorUtilization,
		Label:  "Credit utilization",
		Weight: 30,
		Table:  steps(AtMost, 25, pair{10, 100}, pair{30, 75}, pair{50, 50}),
		Value:  func(f domain.CreditFactors) decimal.Decimal { return f.UtilizationPercent },
	},
	{
		Factor: domain.FactorHistoryLength,
		Label:  "Length of credit history",
		Weight: 15,
		Table:  steps(AtLeast, 15, pair{10, 100}, pair{7, 85}, pair{5, 70}, pair{3, 50}, pair{1, 30}),
		Value:  func(f domain.CreditFactors) decimal.Decimal { return f.HistoryLengthYears },
	},
	{
		Factor: domain.FactorCreditMix,
		Label:  "Credit mix",
		Weight: 10,
		Table:  steps(AtLeast, 20, pair{4, 100}, pair{3, 85}, pair{2, 65}, pair{1, 40}),
		Value:  func(f domain.CreditFactors) decimal.Decimal { return decimal.NewFromInt(int64(f.AccountTypeCount)) },
	},
	{
		Factor: domain.FactorNewCredit,
		Label:  "New credit",
		Weight: 10,
		Table:  steps(AtMost, 25, pair{0, 100}, pair{1, 85}, pair{2, 70}, pair{4, 50}),
		Value:  func(f domain.CreditFactors) decimal.Decimal { return decimal.NewFromInt(int64(f.RecentInquiryCount)) },
	},
}

var creditRatings = []struct {
	Min   int
	Label string
}{
	{800, "Exceptional"},
	{740, "Very Good"},
	{670, "Good"},
	{580, "Fair"},
	{0, "Poor"},
}

// EstimateCreditScore maps the five factors onto the 300-850 scale.
//
// Each factor's impact (0-100) comes from its step table and is weighted
// 35/30/15/10/10. Improvements are ranked high, medium, low and keep their
// rule order within a priority.
func EstimateCreditScore(f domain.CreditFactors, opts domain.CreditOptions) domain.CreditScoreResult {
	factors := make([]domain.FactorContribution, 0, len(creditFactorSpecs))
	weighted := zero

	for _, spec := range creditFactorSpecs {
		impact := spec.Table.LookupInt(spec.Value(f))
		points := decimal.NewFromInt(int64(impact * spec.Weight)).Div(hundred)
		weighted = weighted.Add(points)
		factors = append(factors, domain.FactorContribution{
			Factor: spec.Factor,
			Label:  spec.Label,
			Weight: spec.Weight,
			Impact: impact,
			Points: points,
		})
	}

	score := ScoreFromWeighted(weighted)

	improvements := EvaluateRules(creditRules, f)
	sort.SliceStable(improvements, func(i, j int) bool {
		return improvements[i].Priority.Rank() < improvements[j].Priority.Rank()
	})

	return domain.CreditScoreResult{
		EstimatedScore: score,
		WeightedScore:  weighted,
		Range: domain.ScoreRange{
			Low:  ClampInt(score-scoreBand, scoreFloor, scoreCeil),
			High: ClampInt(score+scoreBand, scoreFloor, scoreCeil),
		},
		Rating:       CreditRating(score),
		Factors:      factors,
		Improvements: capList(improvements, opts.RecommendationLimit),
		Timeline:     creditTimeline(score, f, opts.Month12Jitter),
	}
}

// ScoreFromWeighted converts a 0-100 weighted impact to the 300-850 scale, rounding half away from zero
func ScoreFromWeighted(weighted decimal.Decimal) int {
	raw := decimal.NewFromInt(scoreFloor).Add(weighted.Div(hundred).Mul(scoreSpan))
	return ClampInt(int(raw.Round(0).IntPart()), scoreFloor, scoreCeil)
}

// CreditRating labels a score band
func CreditRating(score int) string {
	for _, r := range creditRatings {
		if score >= r.Min {
			return r.Label
		}
	}
	return "Poor"
}

func creditTimeline(score int, f domain.CreditFactors, jitter int) []domain.TimelinePoint {
	util := f.UtilizationPercent
	late := f.PaymentHistoryPercent.LessThan(decimal.NewFromInt(95))

	m3 := score
	switch {
	case util.GreaterThan(decimal.NewFromInt(30)):
		m3 += 20
	case util.GreaterThan(decimal.NewFromInt(10)):
		m3 += 10
	}
	m3 = ClampInt(m3, scoreFloor, scoreCeil)

	m6 := m3
	if f.RecentInquiryCount > 2 {
		m6 += 10
	}
	if late {
		m6 += 15
	}
	m6 = ClampInt(m6, scoreFloor, scoreCeil)

	m12 := m6 + jitter
	if late {
		m12 += 20
	}
	if f.HistoryLengthYears.LessThan(decimal.NewFromInt(5)) {
		m12 += 5
	}
	if f.AccountTypeCount < 3 {
		m12 += 5
	}
	m12 = ClampInt(m12, scoreFloor, scoreCeil)

	return []domain.TimelinePoint{
		{Month: 0, Score: ClampInt(score, scoreFloor, scoreCeil), Note: "Current estimate"},
		{Month: 3, Score: m3, Note: "Lower utilization reported"},
		{Month: 6, Score: m6, Note: "Inquiries age and on-time payments accumulate"},
		{Month: 12, Score: m12, Note: "Longer history and a broader mix"},
	}
}

var creditRules = []Rule[domain.CreditFactors, domain.CreditImprovement]{
	{
		Name: "utilization_high",
		When: func(f domain.CreditFactors) bool { return f.UtilizationPercent.GreaterThan(decimal.NewFromInt(30)) },
		Then: func(domain.CreditFactors) domain.CreditImprovement {
			return domain.CreditImprovement{
				Factor:      domain.FactorUtilization,
				Action:      "Pay revolving balances down below 30% of their limits",
				PointImpact: 35,
				Timeframe:   "1-2 months",
				Priority:    domain.PriorityHigh,
			}
		},
	},
	{
		Name: "utilization_moderate",
		When: func(f domain.CreditFactors) bool {
			u := f.UtilizationPercent
			return u.GreaterThan(decimal.NewFromInt(10)) && u.LessThanOrEqual(decimal.NewFromInt(30))
		},
		Then: func(domain.CreditFactors) domain.CreditImprovement {
			return domain.CreditImprovement{
				Factor:      domain.FactorUtilization,
				Action:      "Bring utilization under 10% before statement dates",
				PointImpact: 15,
				Timeframe:   "1-2 months",
				Priority:    domain.PriorityMedium,
			}
		},
	},
	{
		Name: "payment_history",
		When: func(f domain.CreditFactors) bool { return f.PaymentHistoryPercent.LessThan(decimal.NewFromInt(95)) },
		Then: func(domain.CreditFactors) domain.CreditImprovement {
			return domain.CreditImprovement{
				Factor:      domain.FactorPaymentHistory,
				Action:      "Set up autopay and bring any past-due accounts current",
				PointImpact: 40,
				Timeframe:   "6-12 months",
				Priority:    domain.PriorityHigh,
			}
		},
	},
	{
		Name: "history_length",
		When: func(f domain.CreditFactors) bool { return f.HistoryLengthYears.LessThan(decimal.NewFromInt(5)) },
		Then: func(domain.CreditFactors) domain.CreditImprovement {
			return domain.CreditImprovement{
				Factor:      domain.FactorHistoryLength,
				Action:      "Keep your oldest accounts open to lengthen average age",
				PointImpact: 10,
				Timeframe:   "12+ months",
				Priority:    domain.PriorityLow,
			}
		},
	},
	{
		Name: "credit_mix",
		When: func(f domain.CreditFactors) bool { return f.AccountTypeCount < 3 },
		Then: func(domain.CreditFactors) domain.CreditImprovement {
			return domain.CreditImprovement{
				Factor:      domain.FactorCreditMix,
				Action:      "Add a different account type when it fits your plans",
				PointImpact: 10,
				Timeframe:   "6-12 months",
				Priority:    domain.PriorityLow,
			}
		},
	},
	{
		Name: "inquiries",
		When: func(f domain.CreditFactors) bool { return f.RecentInquiryCount > 2 },
		Then: func(domain.CreditFactors) domain.CreditImprovement {
			return domain.CreditImprovement{
				Factor:      domain.FactorNewCredit,
				Action:      "Pause new credit applications",
				PointImpact: 15,
				Timeframe:   "6-12 months",
				Priority:    domain.PriorityMedium,
			}
		},
	},
}
