package scenes

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/budgetcalc/internal/calculation"
	"github.com/rgehrsitz/budgetcalc/internal/domain"
	"github.com/rgehrsitz/budgetcalc/internal/output"
	"github.com/rgehrsitz/budgetcalc/internal/tui/components"
	"github.com/rgehrsitz/budgetcalc/internal/tui/tuistyles"
)

// DefaultInsurance seeds the insurance tab when no file is loaded
func DefaultInsurance() domain.InsuranceProfile {
	return domain.InsuranceProfile{
		Age:             35,
		AnnualIncome:    decimal.NewFromInt(80000),
		Dependents:      2,
		TotalDebt:       decimal.NewFromInt(50000),
		Savings:         decimal.NewFromInt(20000),
		MonthlyExpenses: decimal.NewFromInt(4000),
		FundEducation:   true,
		HomeValue:       decimal.NewFromInt(300000),
		VehicleCount:    1,
		VehicleValue:    decimal.NewFromInt(20000),
		JobRisk:         domain.JobRiskLow,
	}
}

// NewInsuranceScene creates the insurance tab. Fields the form does not show,
// such as health conditions and employer benefits, are carried over from p.
func NewInsuranceScene(p domain.InsuranceProfile, opts domain.InsuranceOptions) *FormScene {
	fields := []*components.Field{
		components.NewField("age", "Age", strconv.Itoa(p.Age)),
		components.NewField("income", "Annual income", p.AnnualIncome.String()).WithUnit("$"),
		components.NewField("dependents", "Dependents", strconv.Itoa(p.Dependents)),
		components.NewField("debt", "Total debt", p.TotalDebt.String()).WithUnit("$"),
		components.NewField("savings", "Savings", p.Savings.String()).WithUnit("$"),
		components.NewField("expenses", "Monthly expenses", p.MonthlyExpenses.String()).WithUnit("$"),
		components.NewField("home", "Home value", p.HomeValue.String()).WithUnit("$"),
		components.NewField("vehicles", "Vehicles", strconv.Itoa(p.VehicleCount)),
		components.NewField("vehicleValue", "Vehicle value", p.VehicleValue.String()).WithUnit("$"),
	}

	render := func(v *Values, width int) (string, error) {
		profile := p
		profile.Age = v.Int("age")
		profile.AnnualIncome = v.Decimal("income")
		profile.Dependents = v.Int("dependents")
		profile.TotalDebt = v.Decimal("debt")
		profile.Savings = v.Decimal("savings")
		profile.MonthlyExpenses = v.Decimal("expenses")
		profile.HomeValue = v.Decimal("home")
		profile.VehicleCount = v.Int("vehicles")
		profile.VehicleValue = v.Decimal("vehicleValue")
		if v.Err() != nil {
			return "", v.Err()
		}
		if err := checkInputs(domain.Configuration{Insurance: &profile}); err != nil {
			return "", err
		}
		return renderInsurance(profile, opts), nil
	}
	return NewFormScene("Insurance", fields, render)
}

func renderInsurance(p domain.InsuranceProfile, opts domain.InsuranceOptions) string {
	r := calculation.EstimateInsuranceNeeds(p, opts)

	premiumNote := ""
	if r.PremiumIsEstimate {
		premiumNote = "rough estimate"
	}

	cards := []*components.MetricCard{
		components.NewMetricCard("Life insurance", output.FormatWholeMoney("$", r.Life.Recommended)).
			WithTone(tuistyles.TonePositive).
			WithNote(strconv.Itoa(r.Life.IncomeMultiple) + "x income"),
		components.NewMetricCard("Long-term disability", output.FormatWholeMoney("$", r.Disability.LongTerm)+"/yr"),
		components.NewMetricCard("Annual premium", output.FormatWholeMoney("$", r.EstimatedAnnualPremium)).WithNote(premiumNote),
		components.NewMetricCard("Risk", output.Title(string(r.Risk.Level))).
			WithTone(riskTone(r.Risk.Level)).
			WithNote(strconv.Itoa(r.Risk.Points) + " points"),
	}

	var sb strings.Builder
	sb.WriteString(components.MetricGrid(cards, 2))
	sb.WriteString("\n")
	sb.WriteString(breakdownLine("Short-term disability", r.Disability.ShortTerm))
	sb.WriteString(breakdownLine("Auto liability", r.Auto.Liability))
	sb.WriteString(breakdownLine("Auto comp/collision", r.Auto.ComprehensiveCollision))
	sb.WriteString(breakdownLine("Home dwelling", r.Home.Dwelling))
	sb.WriteString(breakdownLine("Personal property", r.Home.PersonalProperty))
	sb.WriteString(breakdownLine("Home liability", r.Home.Liability))
	sb.WriteString(breakdownLine("Emergency fund", r.Health.EmergencyFund))
	if recs := renderRecommendations(r.Recommendations, 0); recs != "" {
		sb.WriteString("\n")
		sb.WriteString(recs)
	}
	return sb.String()
}

func riskTone(l domain.RiskLevel) tuistyles.Tone {
	switch l {
	case domain.RiskLow:
		return tuistyles.TonePositive
	case domain.RiskModerate:
		return tuistyles.ToneWarning
	default:
		return tuistyles.ToneNegative
	}
}
