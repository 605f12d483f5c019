package domain

import (
	"github.com/shopspring/decimal"
)

// RetirementInputs holds the starting point and assumptions for a growth projection
type RetirementInputs struct {
	CurrentAge    int `yaml:"current_age,omitempty" json:"currentAge,omitempty"`
	RetirementAge int `yaml:"retirement_age,omitempty" json:"retirementAge,omitempty"`
	Years         int `yaml:"years,omitempty" json:"years,omitempty"` // overrides RetirementAge - CurrentAge when set

	CurrentBalance      decimal.Decimal `yaml:"current_balance" json:"currentBalance"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthlyContribution"`
	AnnualReturnPercent decimal.Decimal `yaml:"annual_return_percent" json:"annualReturnPercent"`

	// Optional context used by the benchmark and recommendations
	AnnualIncome             decimal.Decimal `yaml:"annual_income,omitempty" json:"annualIncome"`
	AnnualRetirementExpenses decimal.Decimal `yaml:"annual_retirement_expenses,omitempty" json:"annualRetirementExpenses"`
	EmergencySavings         decimal.Decimal `yaml:"emergency_savings,omitempty" json:"emergencySavings"`
}

// ProjectionYears returns the explicit horizon, falling back to the age span
func (in RetirementInputs) ProjectionYears() int {
	if in.Years != 0 {
		return in.Years
	}
	return in.RetirementAge - in.CurrentAge
}

// YearEntry is one year of the growth trajectory
type YearEntry struct {
	Year         int             `json:"year"`
	Age          int             `json:"age,omitempty"` // zero when no current age was supplied
	Contribution decimal.Decimal `json:"contribution"`
	Growth       decimal.Decimal `json:"growth"`
	Balance      decimal.Decimal `json:"balance"`
}

// BenchmarkStatus classifies savings against the age-indexed target
type BenchmarkStatus string

const (
	BenchmarkAhead   BenchmarkStatus = "ahead"
	BenchmarkOnTrack BenchmarkStatus = "on-track"
	BenchmarkBehind  BenchmarkStatus = "behind"
)

// Benchmark explains how the status was derived
type Benchmark struct {
	Status        BenchmarkStatus `json:"status"`
	Multiplier    decimal.Decimal `json:"multiplier"`
	IncomeProxy   decimal.Decimal `json:"incomeProxy"`
	TargetSavings decimal.Decimal `json:"targetSavings"`
	Ratio         decimal.Decimal `json:"ratio"` // current savings / target
}

// RetirementResult is the projected outcome of a RetirementInputs
type RetirementResult struct {
	Years              int              `json:"years"`
	FinalBalance       decimal.Decimal  `json:"finalBalance"`
	TotalContributions decimal.Decimal  `json:"totalContributions"`
	TotalGrowth        decimal.Decimal  `json:"totalGrowth"`
	RetirementGoal     decimal.Decimal  `json:"retirementGoal"` // 25x annual retirement expenses
	Trajectory         []YearEntry      `json:"trajectory"`
	Benchmark          Benchmark        `json:"benchmark"`
	Recommendations    []Recommendation `json:"recommendations"`
}

// RetirementOptions tunes the projector's outer behaviour
type RetirementOptions struct {
	RecommendationLimit int `yaml:"recommendation_limit" json:"recommendationLimit" toml:"recommendation_limit"` // <= 0 means no cap
}

// DefaultRetirementOptions caps recommendations at four
func DefaultRetirementOptions() RetirementOptions {
	return RetirementOptions{RecommendationLimit: 4}
}
