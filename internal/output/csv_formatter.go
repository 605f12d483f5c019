package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/budgetcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVFormatter flattens schedules and trajectories into one table.
// Every row shares the same columns; cells that do not apply stay empty.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

var csvHeader = []string{"Section", "Name", "Period", "Age", "Payment", "Principal", "Interest", "Contribution", "Growth", "Balance"}

func (c CSVFormatter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	if report == nil {
		w.Flush()
		return buf.Bytes(), w.Error()
	}

	if report.Mortgage != nil {
		name := report.Mortgage.Inputs.Name
		if name == "" {
			name = "mortgage"
		}
		if err := writeScheduleRows(w, "mortgage", name, report.Mortgage.Loan); err != nil {
			return nil, err
		}
	}
	for _, loan := range report.Loans {
		if err := writeScheduleRows(w, "loan", loan.Name, loan.Result); err != nil {
			return nil, err
		}
	}
	if report.Retirement != nil {
		for _, y := range report.Retirement.Trajectory {
			age := ""
			if y.Age > 0 {
				age = strconv.Itoa(y.Age)
			}
			row := []string{"retirement", "projection", strconv.Itoa(y.Year), age, "", "", "",
				money2(y.Contribution), money2(y.Growth), money2(y.Balance)}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func writeScheduleRows(w *csv.Writer, section, name string, r domain.LoanResult) error {
	for _, e := range r.Schedule {
		payment := e.PrincipalPortion.Add(e.InterestPortion)
		row := []string{section, name, strconv.Itoa(e.Period), "",
			money2(payment), money2(e.PrincipalPortion), money2(e.InterestPortion), "", "", money2(e.RemainingBalance)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func money2(d decimal.Decimal) string { return d.StringFixed(2) }
