package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing mortgage variants
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	// Header
	sb.WriteString("MORTGAGE COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	// Column widths
	nameWidth := 25
	numWidth := 13

	// Table header
	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Loan",
		numWidth, "Rate/Term",
		numWidth, "Monthly",
		numWidth, "Interest"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	// Base mortgage row
	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))
	}

	// Variants
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	// Deltas from base
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))
			if alt.Description != "" {
				sb.WriteString(fmt.Sprintf("  %s\n", alt.Description))
			}

			// Payment difference, escrow and PMI included
			sb.WriteString(fmt.Sprintf("  Monthly Payment:  %s$%s\n",
				tf.deltaSymbol(alt.PaymentDiffFromBase),
				alt.PaymentDiffFromBase.Abs().StringFixed(2)))

			// Lifetime interest difference
			sb.WriteString(fmt.Sprintf("  Total Interest:   %s$%s (%s%%)\n",
				tf.deltaSymbol(alt.InterestDiffFromBase),
				tf.formatDecimal(alt.InterestDiffFromBase.Abs()),
				alt.InterestPctFromBase.StringFixed(1)))

			if alt.TermMonthsDiffFromBase != 0 {
				sb.WriteString(fmt.Sprintf("  Term:             %+d months\n", alt.TermMonthsDiffFromBase))
			}
		}
		sb.WriteString("\n")
	}

	// Recommendations
	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}

	rateTerm := fmt.Sprintf("%s%%/%dy", result.Inputs.AnnualRatePercent.StringFixed(2), result.TermMonths/12)

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, "$"+tf.formatDecimal(result.Principal),
		numWidth, rateTerm,
		numWidth, "$"+result.TotalMonthlyPayment.StringFixed(2),
		numWidth, "$"+tf.formatDecimal(result.TotalInterest))
}

// formatDecimal formats a decimal for display (in thousands or millions)
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		// Format in millions
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		// Format in thousands
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns the sign prefix for a delta
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary of payment changes
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseScenarioName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if alt.PaymentDiffFromBase.IsPositive() {
			change = fmt.Sprintf("+$%s/mo", alt.PaymentDiffFromBase.StringFixed(2))
		} else if alt.PaymentDiffFromBase.IsNegative() {
			change = fmt.Sprintf("-$%s/mo", alt.PaymentDiffFromBase.Abs().StringFixed(2))
		}

		sb.WriteString(fmt.Sprintf("%s: %s", alt.ScenarioName, change))
	}

	return sb.String()
}
