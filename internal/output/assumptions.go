package output

import "github.com/rgehrsitz/budgetcalc/internal/domain"

// DefaultAssumptions lists modeling assumptions rendered when a report carries none
var DefaultAssumptions = []string{
	"Loans amortize monthly at a fixed rate; a zero rate repays principal in equal parts",
	"PMI applies while loan-to-value exceeds 80%",
	"Figures are estimates for planning, not financial advice",
}

// reportAssumptions returns the report's own assumptions followed by the defaults
func reportAssumptions(report *domain.Report) []string {
	out := make([]string, 0, len(report.Assumptions)+len(DefaultAssumptions))
	out = append(out, report.Assumptions...)
	return append(out, DefaultAssumptions...)
}
