package output

import (
	"encoding/json"
	"fmt"

	"github.com/rgehrsitz/budgetcalc/internal/domain"
)

// JSONFormatter renders the report as JSON. Decimals serialize as strings.
type JSONFormatter struct {
	Pretty bool
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("report is nil")
	}
	if j.Pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}
