package solver

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats solver results as console text
type TableFormatter struct{}

// Format generates a formatted summary of a solve
func (tf *TableFormatter) Format(result *Result) string {
	var sb strings.Builder

	sb.WriteString("GOAL SOLVER RESULTS\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Goal:         %s\n", tf.goalLabel(result.Goal)))
	sb.WriteString(fmt.Sprintf("Status:       %s\n", tf.formatStatus(result.Success)))
	sb.WriteString(fmt.Sprintf("Iterations:   %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Convergence:  %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")

	switch result.Goal {
	case GoalRequiredContribution:
		sb.WriteString(fmt.Sprintf("Required monthly contribution: $%s\n", result.Value.StringFixed(2)))
		sb.WriteString(fmt.Sprintf("Target balance:                $%s\n", tf.formatShort(result.Target)))
		sb.WriteString(fmt.Sprintf("Projected balance:             $%s\n", tf.formatShort(result.Achieved)))
	case GoalAffordablePrincipal:
		sb.WriteString(fmt.Sprintf("Affordable principal: $%s\n", result.Value.StringFixed(2)))
		sb.WriteString(fmt.Sprintf("Monthly budget:       $%s\n", result.Target.StringFixed(2)))
		sb.WriteString(fmt.Sprintf("Monthly payment:      $%s\n", result.Achieved.StringFixed(2)))
	default:
		sb.WriteString(fmt.Sprintf("Value: %s\n", result.Value.StringFixed(2)))
	}

	return sb.String()
}

func (tf *TableFormatter) goalLabel(g Goal) string {
	switch g {
	case GoalRequiredContribution:
		return "Required contribution"
	case GoalAffordablePrincipal:
		return "Affordable principal"
	default:
		return string(g)
	}
}

func (tf *TableFormatter) formatStatus(success bool) string {
	if success {
		return "✓ Converged"
	}
	return "⚠ Did not converge"
}

func (tf *TableFormatter) formatShort(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		return d.Div(decimal.NewFromInt(1000000)).StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		return d.Div(decimal.NewFromInt(1000)).StringFixed(1) + "K"
	}
	return d.StringFixed(2)
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output
func (jf *JSONFormatter) Format(result *Result) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}
