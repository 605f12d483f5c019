package compare

import (
	"fmt"

	"github.com/rgehrsitz/budgetcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult represents a single mortgage variant with calculated metrics
type ComparisonResult struct {
	ScenarioName string                `json:"scenarioName"`
	Description  string                `json:"description"`
	Inputs       domain.MortgageInputs `json:"inputs"`

	// Key Metrics
	Principal                decimal.Decimal `json:"principal"`
	TermMonths               int             `json:"termMonths"`
	MonthlyPrincipalInterest decimal.Decimal `json:"monthlyPrincipalInterest"`
	TotalMonthlyPayment      decimal.Decimal `json:"totalMonthlyPayment"`
	TotalInterest            decimal.Decimal `json:"totalInterest"`
	MonthlyPMI               decimal.Decimal `json:"monthlyPmi"`

	// Comparison to Base
	PaymentDiffFromBase    decimal.Decimal `json:"paymentDiffFromBase"`
	InterestDiffFromBase   decimal.Decimal `json:"interestDiffFromBase"`
	InterestPctFromBase    decimal.Decimal `json:"interestPctFromBase"`
	TermMonthsDiffFromBase int             `json:"termMonthsDiffFromBase"`
}

// ComparisonSet represents a base mortgage and its alternatives
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath,omitempty"`
}

// MetricsCalculator extracts key metrics from mortgage results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes all comparison metrics for a mortgage result
func (mc *MetricsCalculator) CalculateMetrics(name string, result *domain.MortgageResult) ComparisonResult {
	return ComparisonResult{
		ScenarioName:             name,
		Inputs:                   result.Inputs,
		Principal:                result.Loan.Principal,
		TermMonths:               result.Loan.TermMonths,
		MonthlyPrincipalInterest: result.MonthlyPrincipalInterest,
		TotalMonthlyPayment:      result.TotalMonthlyPayment,
		TotalInterest:            result.Loan.TotalInterest,
		MonthlyPMI:               result.MonthlyPMI,
	}
}

// CalculateComparison computes deltas between a variant and the base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.PaymentDiffFromBase = scenario.TotalMonthlyPayment.Sub(base.TotalMonthlyPayment)
	scenario.InterestDiffFromBase = scenario.TotalInterest.Sub(base.TotalInterest)

	if !base.TotalInterest.IsZero() {
		scenario.InterestPctFromBase = scenario.InterestDiffFromBase.
			Div(base.TotalInterest).
			Mul(decimal.NewFromInt(100))
	}

	scenario.TermMonthsDiffFromBase = scenario.TermMonths - base.TermMonths

	return scenario
}

// GenerateRecommendations names the variants with the lowest lifetime interest and the lowest payment
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}

	lowestInterest := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.TotalInterest.LessThan(lowestInterest.TotalInterest) {
			lowestInterest = alt
		}
	}

	if lowestInterest != compSet.BaseResult {
		savings := compSet.BaseResult.TotalInterest.Sub(lowestInterest.TotalInterest)
		recommendations = append(recommendations,
			"Lowest Interest: "+lowestInterest.ScenarioName+" saves $"+savings.StringFixed(0)+
				" in interest over the life of the loan")
	}

	lowestPayment := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.TotalMonthlyPayment.LessThan(lowestPayment.TotalMonthlyPayment) {
			lowestPayment = alt
		}
	}

	if lowestPayment != compSet.BaseResult {
		savings := compSet.BaseResult.TotalMonthlyPayment.Sub(lowestPayment.TotalMonthlyPayment)
		recommendations = append(recommendations,
			"Lowest Payment: "+lowestPayment.ScenarioName+" lowers the monthly payment by $"+savings.StringFixed(2))
	}

	for _, alt := range compSet.AlternativeResults {
		if compSet.BaseResult.MonthlyPMI.IsPositive() && !alt.MonthlyPMI.IsPositive() {
			recommendations = append(recommendations,
				fmt.Sprintf("Avoid PMI: %s removes $%s per month of mortgage insurance",
					alt.ScenarioName, compSet.BaseResult.MonthlyPMI.StringFixed(2)))
			break
		}
	}

	return recommendations
}
