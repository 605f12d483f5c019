package scenes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/budgetcalc/internal/calculation"
	"github.com/rgehrsitz/budgetcalc/internal/domain"
	"github.com/rgehrsitz/budgetcalc/internal/output"
	"github.com/rgehrsitz/budgetcalc/internal/tui/components"
	"github.com/rgehrsitz/budgetcalc/internal/tui/tuistyles"
)

// DefaultRetirement seeds the retirement tab when no file is loaded
func DefaultRetirement() domain.RetirementInputs {
	return domain.RetirementInputs{
		CurrentAge:          30,
		RetirementAge:       65,
		CurrentBalance:      decimal.NewFromInt(25000),
		MonthlyContribution: decimal.NewFromInt(500),
		AnnualReturnPercent: decimal.NewFromInt(7),
	}
}

// NewRetirementScene creates the retirement tab
func NewRetirementScene(in domain.RetirementInputs, opts domain.RetirementOptions) *FormScene {
	fields := []*components.Field{
		components.NewField("age", "Current age", strconv.Itoa(in.CurrentAge)),
		components.NewField("retire", "Retirement age", strconv.Itoa(in.RetirementAge)),
		components.NewField("balance", "Current savings", in.CurrentBalance.String()).WithUnit("$"),
		components.NewField("monthly", "Monthly contribution", in.MonthlyContribution.String()).WithUnit("$"),
		components.NewField("return", "Expected return", in.AnnualReturnPercent.String()).WithUnit("%/yr"),
		components.NewField("income", "Annual income", in.AnnualIncome.String()).WithUnit("$").WithPlaceholder("optional"),
		components.NewField("expenses", "Retirement expenses", in.AnnualRetirementExpenses.String()).WithUnit("$/yr").WithPlaceholder("optional"),
		components.NewField("emergency", "Emergency savings", in.EmergencySavings.String()).WithUnit("$").WithPlaceholder("optional"),
	}

	render := func(v *Values, width int) (string, error) {
		return renderRetirement(v, width, opts)
	}
	return NewFormScene("Retirement", fields, render)
}

func renderRetirement(v *Values, width int, opts domain.RetirementOptions) (string, error) {
	in := domain.RetirementInputs{
		CurrentAge:               v.Int("age"),
		RetirementAge:            v.Int("retire"),
		CurrentBalance:           v.Decimal("balance"),
		MonthlyContribution:      v.Decimal("monthly"),
		AnnualReturnPercent:      v.Decimal("return"),
		AnnualIncome:             v.Decimal("income"),
		AnnualRetirementExpenses: v.Decimal("expenses"),
		EmergencySavings:         v.Decimal("emergency"),
	}
	if v.Err() != nil {
		return "", v.Err()
	}
	if in.ProjectionYears() <= 0 {
		return "", errIncomplete
	}
	if err := checkInputs(domain.Configuration{Retirement: &in}); err != nil {
		return "", err
	}

	r := calculation.ProjectGrowth(in, opts)

	cards := []*components.MetricCard{
		components.NewMetricCard("Balance at "+strconv.Itoa(in.RetirementAge), output.FormatWholeMoney("$", r.FinalBalance)).
			WithTone(tuistyles.TonePositive).
			WithNote(fmt.Sprintf("after %d years", r.Years)),
		components.NewMetricCard("You contribute", output.FormatWholeMoney("$", r.TotalContributions)),
		components.NewMetricCard("Growth", output.FormatWholeMoney("$", r.TotalGrowth)),
		components.NewMetricCard("Benchmark", output.Title(string(r.Benchmark.Status))).
			WithTone(benchmarkTone(r.Benchmark.Status)).
			WithNote(output.FormatRatio(r.Benchmark.Ratio) + " of " + output.FormatWholeMoney("$", r.Benchmark.TargetSavings)),
	}
	if r.RetirementGoal.IsPositive() {
		tone := tuistyles.TonePositive
		if r.FinalBalance.LessThan(r.RetirementGoal) {
			tone = tuistyles.ToneNegative
		}
		cards = append(cards, components.NewMetricCard("Goal (25x expenses)", output.FormatWholeMoney("$", r.RetirementGoal)).WithTone(tone))
	}

	balances := make([]float64, 0, len(r.Trajectory)+1)
	contributed := make([]float64, 0, len(r.Trajectory)+1)
	balances = append(balances, in.CurrentBalance.InexactFloat64())
	contributed = append(contributed, in.CurrentBalance.InexactFloat64())
	running := in.CurrentBalance
	for _, y := range r.Trajectory {
		running = running.Add(y.Contribution)
		balances = append(balances, y.Balance.InexactFloat64())
		contributed = append(contributed, running.InexactFloat64())
	}

	chart := components.NewASCIIChart("Projected balance").
		AddSeries("balance", balances, tuistyles.ColorChartLine1).
		AddSeries("contributions", contributed, tuistyles.ColorChartLine2).
		WithLabels([]string{"age " + strconv.Itoa(in.CurrentAge), "age " + strconv.Itoa(in.RetirementAge)}).
		WithSize(width, 8)

	var sb strings.Builder
	sb.WriteString(components.MetricGrid(cards, 2))
	sb.WriteString("\n")
	sb.WriteString(chart.Render())
	if recs := renderRecommendations(r.Recommendations, 0); recs != "" {
		sb.WriteString("\n\n")
		sb.WriteString(recs)
	}
	return sb.String(), nil
}

func benchmarkTone(s domain.BenchmarkStatus) tuistyles.Tone {
	switch s {
	case domain.BenchmarkAhead:
		return tuistyles.TonePositive
	case domain.BenchmarkOnTrack:
		return tuistyles.ToneNeutral
	default:
		return tuistyles.ToneNegative
	}
}
