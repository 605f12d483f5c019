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

// DefaultMortgage seeds the mortgage tab when no file is loaded
func DefaultMortgage() domain.MortgageInputs {
	return domain.MortgageInputs{
		HomePrice:              decimal.NewFromInt(400000),
		DownPayment:            decimal.NewFromInt(80000),
		AnnualRatePercent:      decimal.NewFromFloat(6.5),
		TermYears:              30,
		PropertyTaxRatePercent: decimal.NewFromFloat(1.2),
		AnnualInsurance:        decimal.NewFromInt(1200),
	}
}

// NewMortgageScene creates the mortgage tab
func NewMortgageScene(in domain.MortgageInputs) *FormScene {
	fields := []*components.Field{
		components.NewField("price", "Home price", in.HomePrice.String()).WithUnit("$"),
		components.NewField("down", "Down payment", in.DownPayment.String()).WithUnit("$"),
		components.NewField("rate", "Interest rate", in.AnnualRatePercent.String()).WithUnit("%/yr"),
		components.NewField("term", "Term", strconv.Itoa(in.TermYears)).WithUnit("years"),
		components.NewField("tax", "Property tax rate", in.PropertyTaxRatePercent.String()).WithUnit("%/yr"),
		components.NewField("insurance", "Homeowners insurance", in.AnnualInsurance.String()).WithUnit("$/yr"),
		components.NewField("hoa", "HOA dues", in.MonthlyHOA.String()).WithUnit("$/mo"),
		components.NewField("pmi", "PMI rate (0 = default)", in.PMIRatePercent.String()).WithUnit("%/yr"),
	}
	return NewFormScene("Mortgage", fields, renderMortgage)
}

func mortgageFromValues(v *Values) domain.MortgageInputs {
	return domain.MortgageInputs{
		HomePrice:              v.Decimal("price"),
		DownPayment:            v.Decimal("down"),
		AnnualRatePercent:      v.Decimal("rate"),
		TermYears:              v.Int("term"),
		PropertyTaxRatePercent: v.Decimal("tax"),
		AnnualInsurance:        v.Decimal("insurance"),
		MonthlyHOA:             v.Decimal("hoa"),
		PMIRatePercent:         v.Decimal("pmi"),
	}
}

func renderMortgage(v *Values, width int) (string, error) {
	in := mortgageFromValues(v)
	if v.Err() != nil {
		return "", v.Err()
	}
	if !in.HomePrice.IsPositive() || in.TermYears <= 0 {
		return "", errIncomplete
	}
	if err := checkInputs(domain.Configuration{Mortgage: &in}); err != nil {
		return "", err
	}

	r := calculation.CalculateMortgage(in)

	pmiTone := tuistyles.ToneNeutral
	pmiNote := "LTV " + output.FormatRatio(r.LoanToValue)
	if r.MonthlyPMI.IsPositive() {
		pmiTone = tuistyles.ToneWarning
		pmiNote += " > 80%"
	}

	cards := []*components.MetricCard{
		components.NewMetricCard("Monthly payment", output.FormatCurrency(r.TotalMonthlyPayment)).WithTone(tuistyles.TonePositive),
		components.NewMetricCard("Principal & interest", output.FormatCurrency(r.MonthlyPrincipalInterest)),
		components.NewMetricCard("Total interest", output.FormatWholeMoney("$", r.Loan.TotalInterest)),
		components.NewMetricCard("PMI", output.FormatCurrency(r.MonthlyPMI)).WithTone(pmiTone).WithNote(pmiNote),
	}

	var sb strings.Builder
	sb.WriteString(components.MetricGrid(cards, 2))
	sb.WriteString("\n")
	sb.WriteString(breakdownLine("Property tax", r.MonthlyPropertyTax))
	sb.WriteString(breakdownLine("Insurance", r.MonthlyInsurance))
	sb.WriteString(breakdownLine("HOA", r.MonthlyHOA))
	sb.WriteString(breakdownLine("Loan amount", r.Loan.Principal))
	sb.WriteString("\n")
	sb.WriteString(balanceChart("Remaining balance", r.Loan, width))
	return sb.String(), nil
}

func breakdownLine(label string, amount decimal.Decimal) string {
	return fmt.Sprintf("%s %s\n",
		tuistyles.MetricLabelStyle.Width(22).Render(label),
		tuistyles.MetricValueStyle.Render(output.FormatCurrency(amount)))
}

// balanceChart plots the year-end balance of an amortization schedule
func balanceChart(title string, lr domain.LoanResult, width int) string {
	years := lr.YearlySummary()
	if len(years) == 0 {
		return tuistyles.InfoStyle.Render("No schedule")
	}

	points := make([]float64, 0, len(years)+1)
	points = append(points, lr.Principal.InexactFloat64())
	for _, y := range years {
		points = append(points, y.EndingBalance.InexactFloat64())
	}

	return components.NewASCIIChart(title).
		AddSeries("balance", points, tuistyles.ColorChartLine1).
		WithLabels([]string{"start", fmt.Sprintf("year %d", len(years))}).
		WithSize(width, 8).
		Render()
}
