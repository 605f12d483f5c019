package scenes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/budgetcalc/internal/calculation"
	"github.com/rgehrsitz/budgetcalc/internal/domain"
	"github.com/rgehrsitz/budgetcalc/internal/tui/components"
	"github.com/rgehrsitz/budgetcalc/internal/tui/tuistyles"
)

// DefaultCredit seeds the credit tab when no file is loaded
func DefaultCredit() domain.CreditFactors {
	return domain.CreditFactors{
		PaymentHistoryPercent: decimal.NewFromInt(95),
		UtilizationPercent:    decimal.NewFromInt(25),
		HistoryLengthYears:    decimal.NewFromInt(7),
		AccountTypeCount:      3,
		RecentInquiryCount:    1,
	}
}

// NewCreditScene creates the credit score tab
func NewCreditScene(f domain.CreditFactors, opts domain.CreditOptions) *FormScene {
	fields := []*components.Field{
		components.NewField("history", "On-time payments", f.PaymentHistoryPercent.String()).WithUnit("%"),
		components.NewField("utilization", "Credit utilization", f.UtilizationPercent.String()).WithUnit("%"),
		components.NewField("length", "Credit history", f.HistoryLengthYears.String()).WithUnit("years"),
		components.NewField("types", "Account types", strconv.Itoa(f.AccountTypeCount)),
		components.NewField("inquiries", "Inquiries (2 yrs)", strconv.Itoa(f.RecentInquiryCount)),
	}

	render := func(v *Values, width int) (string, error) {
		return renderCredit(v, opts)
	}
	return NewFormScene("Credit Score", fields, render)
}

func renderCredit(v *Values, opts domain.CreditOptions) (string, error) {
	f := domain.CreditFactors{
		PaymentHistoryPercent: v.Decimal("history"),
		UtilizationPercent:    v.Decimal("utilization"),
		HistoryLengthYears:    v.Decimal("length"),
		AccountTypeCount:      v.Int("types"),
		RecentInquiryCount:    v.Int("inquiries"),
	}
	if v.Err() != nil {
		return "", v.Err()
	}
	if err := checkInputs(domain.Configuration{Credit: &f}); err != nil {
		return "", err
	}

	r := calculation.EstimateCreditScore(f, opts)
	tone := creditTone(r.EstimatedScore)

	cards := []*components.MetricCard{
		components.NewMetricCard("Estimated score", strconv.Itoa(r.EstimatedScore)).
			WithTone(tone).
			WithNote(fmt.Sprintf("range %d-%d", r.Range.Low, r.Range.High)),
		components.NewMetricCard("Rating", r.Rating).WithTone(tone),
	}

	var sb strings.Builder
	sb.WriteString(components.MetricGrid(cards, 2))
	sb.WriteString("\n")
	sb.WriteString(components.NewGauge("Score", float64(r.EstimatedScore), 300, 850).WithTone(tone).Render())
	sb.WriteString("\n\n")

	sb.WriteString(tuistyles.SectionStyle.Render("Factors"))
	for _, fc := range r.Factors {
		sb.WriteString("\n")
		sb.WriteString(components.NewGauge(fmt.Sprintf("%-20s %2d%%", fc.Label, fc.Weight), float64(fc.Impact), 0, 100).
			WithWidth(20).
			WithTone(impactTone(fc.Impact)).
			Render())
	}

	if len(r.Improvements) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(tuistyles.SectionStyle.Render("Improvements"))
		for _, imp := range r.Improvements {
			sb.WriteString("\n")
			sb.WriteString(tuistyles.PriorityStyle(string(imp.Priority)).Render("• "))
			sb.WriteString(fmt.Sprintf("%s (+%d pts, %s)", imp.Action, imp.PointImpact, imp.Timeframe))
		}
	}

	if len(r.Timeline) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(tuistyles.SectionStyle.Render("Outlook"))
		for _, tp := range r.Timeline {
			sb.WriteString(fmt.Sprintf("\n%3d mo  %d  %s", tp.Month, tp.Score, tuistyles.SubtitleStyle.Render(tp.Note)))
		}
	}

	return sb.String(), nil
}

func creditTone(score int) tuistyles.Tone {
	switch {
	case score >= 740:
		return tuistyles.TonePositive
	case score >= 670:
		return tuistyles.ToneNeutral
	case score >= 580:
		return tuistyles.ToneWarning
	default:
		return tuistyles.ToneNegative
	}
}

func impactTone(impact int) tuistyles.Tone {
	switch {
	case impact >= 80:
		return tuistyles.TonePositive
	case impact >= 50:
		return tuistyles.ToneWarning
	default:
		return tuistyles.ToneNegative
	}
}
