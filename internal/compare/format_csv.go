package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Principal",
		"Rate %",
		"Term (Months)",
		"Principal & Interest",
		"Total Monthly Payment",
		"Total Interest",
		"Monthly PMI",
		"Payment Diff from Base",
		"Interest Diff from Base",
		"Interest % Change",
		"Term Diff (Months)",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	return []string{
		result.ScenarioName,
		scenarioType,
		result.Principal.StringFixed(2),
		result.Inputs.AnnualRatePercent.StringFixed(3),
		strconv.Itoa(result.TermMonths),
		result.MonthlyPrincipalInterest.StringFixed(2),
		result.TotalMonthlyPayment.StringFixed(2),
		result.TotalInterest.StringFixed(2),
		result.MonthlyPMI.StringFixed(2),
		result.PaymentDiffFromBase.StringFixed(2),
		result.InterestDiffFromBase.StringFixed(2),
		result.InterestPctFromBase.StringFixed(2),
		strconv.Itoa(result.TermMonthsDiffFromBase),
	}
}
