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

// DefaultLoan seeds the loan tab when no file is loaded
func DefaultLoan() domain.LoanInputs {
	return domain.LoanInputs{
		Principal:         decimal.NewFromInt(25000),
		AnnualRatePercent: decimal.NewFromFloat(5.9),
		TermMonths:        60,
	}
}

// NewLoanScene creates the loan tab
func NewLoanScene(in domain.LoanInputs) *FormScene {
	fields := []*components.Field{
		components.NewField("principal", "Amount financed", in.Principal.String()).WithUnit("$"),
		components.NewField("rate", "Interest rate", in.AnnualRatePercent.String()).WithUnit("%/yr"),
		components.NewField("term", "Term", strconv.Itoa(in.TermMonths)).WithUnit("months"),
	}
	title := "Loan"
	if in.Name != "" {
		title = "Loan: " + in.Name
	}
	return NewFormScene(title, fields, renderLoan)
}

func renderLoan(v *Values, width int) (string, error) {
	in := domain.LoanInputs{
		Principal:         v.Decimal("principal"),
		AnnualRatePercent: v.Decimal("rate"),
		TermMonths:        v.Int("term"),
	}
	if v.Err() != nil {
		return "", v.Err()
	}
	if !in.Principal.IsPositive() || in.TermMonths <= 0 {
		return "", errIncomplete
	}
	if err := checkInputs(domain.Configuration{Loans: []domain.LoanInputs{in}}); err != nil {
		return "", err
	}

	r := calculation.CalculateLoan(in)
	if r.IsDegenerate() {
		return "", errIncomplete
	}

	interestShare := decimal.Zero
	if r.TotalPaid.IsPositive() {
		interestShare = r.TotalInterest.Div(r.TotalPaid)
	}

	cards := []*components.MetricCard{
		components.NewMetricCard("Monthly payment", output.FormatCurrency(r.PeriodicPayment)).WithTone(tuistyles.TonePositive),
		components.NewMetricCard("Total interest", output.FormatCurrency(r.TotalInterest)).
			WithNote(output.FormatRatio(interestShare) + " of all payments"),
		components.NewMetricCard("Total paid", output.FormatCurrency(r.TotalPaid)),
		components.NewMetricCard("Payments", strconv.Itoa(len(r.Schedule))),
	}

	var sb strings.Builder
	sb.WriteString(components.MetricGrid(cards, 2))
	sb.WriteString("\n")
	sb.WriteString(balanceChart("Remaining balance", r, width))
	return sb.String(), nil
}
