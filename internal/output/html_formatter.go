package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/rgehrsitz/budgetcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report
type HTMLFormatter struct {
	Currency string
}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

func (h HTMLFormatter) template() (*template.Template, error) {
	symbol := h.Currency
	if symbol == "" {
		symbol = "$"
	}
	return template.New("report").Funcs(template.FuncMap{
		"curr":  func(d decimal.Decimal) string { return FormatMoney(symbol, d) },
		"pct":   FormatPercentage,
		"ratio": FormatRatio,
		"title": Title,
		"fixed": func(d decimal.Decimal) string { return d.StringFixed(2) },
	}).Parse(htmlTemplateSource)
}

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("report is nil")
	}
	tmpl, err := h.template()
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}
	data := struct {
		*domain.Report
		DebtService decimal.Decimal
		HasDebt     bool
		Assumptions []string
	}{
		Report:      report,
		DebtService: report.TotalMonthlyDebtService(),
		HasDebt:     report.Mortgage != nil || len(report.Loans) > 0,
		Assumptions: reportAssumptions(report),
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
