package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/rgehrsitz/budgetcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleFormatter renders the sectioned plain-text report
type ConsoleFormatter struct {
	Currency string
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) money(d decimal.Decimal) string {
	symbol := c.Currency
	if symbol == "" {
		symbol = "$"
	}
	return FormatMoney(symbol, d)
}

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("report is nil")
	}
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 72))
	fmt.Fprintf(&buf, "BUDGET CALCULATION REPORT: %s\n", report.Name)
	fmt.Fprintln(&buf, strings.Repeat("=", 72))
	if report.Description != "" {
		fmt.Fprintln(&buf, report.Description)
	}
	if !report.GeneratedAt.IsZero() {
		fmt.Fprintf(&buf, "Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(&buf)

	if report.Mortgage != nil {
		c.writeMortgage(&buf, report.Mortgage)
	}
	for _, loan := range report.Loans {
		c.writeLoan(&buf, loan)
	}
	if report.Mortgage != nil || len(report.Loans) > 0 {
		fmt.Fprintf(&buf, "Total monthly debt service: %s\n\n", c.money(report.TotalMonthlyDebtService()))
	}
	if report.Retirement != nil {
		c.writeRetirement(&buf, report.Retirement)
	}
	if report.Credit != nil {
		c.writeCredit(&buf, report.Credit)
	}
	if report.Insurance != nil {
		c.writeInsurance(&buf, report.Insurance)
	}

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range reportAssumptions(report) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}

	return buf.Bytes(), nil
}

func sectionHeader(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("-", len(title)))
}

func (c ConsoleFormatter) writeMortgage(w io.Writer, m *domain.MortgageResult) {
	title := "MORTGAGE"
	if m.Inputs.Name != "" {
		title += ": " + m.Inputs.Name
	}
	sectionHeader(w, title)
	fmt.Fprintf(w, "  Home price:             %s\n", c.money(m.Inputs.HomePrice))
	fmt.Fprintf(w, "  Down payment:           %s\n", c.money(m.Inputs.DownPayment))
	fmt.Fprintf(w, "  Loan amount:            %s (LTV %s)\n", c.money(m.Loan.Principal), FormatRatio(m.LoanToValue))
	fmt.Fprintf(w, "  Rate / term:            %s over %d months\n", FormatPercentage(m.Loan.AnnualRatePercent), m.Loan.TermMonths)
	fmt.Fprintf(w, "  Principal & interest:   %s\n", c.money(m.MonthlyPrincipalInterest))
	fmt.Fprintf(w, "  Property tax:           %s\n", c.money(m.MonthlyPropertyTax))
	fmt.Fprintf(w, "  Insurance:              %s\n", c.money(m.MonthlyInsurance))
	fmt.Fprintf(w, "  HOA:                    %s\n", c.money(m.MonthlyHOA))
	fmt.Fprintf(w, "  PMI:                    %s\n", c.money(m.MonthlyPMI))
	fmt.Fprintf(w, "  Total monthly payment:  %s\n", c.money(m.TotalMonthlyPayment))
	fmt.Fprintf(w, "  Total interest:         %s\n", c.money(m.Loan.TotalInterest))
	c.writeYearlySummary(w, m.Loan)
	fmt.Fprintln(w)
}

func (c ConsoleFormatter) writeLoan(w io.Writer, loan domain.NamedLoan) {
	sectionHeader(w, "LOAN: "+loan.Name)
	r := loan.Result
	if r.IsDegenerate() {
		fmt.Fprintln(w, "  No schedule: principal and term must be positive and the rate non-negative")
		fmt.Fprintln(w)
		return
	}
	fmt.Fprintf(w, "  Principal:              %s\n", c.money(r.Principal))
	fmt.Fprintf(w, "  Rate / term:            %s over %d months\n", FormatPercentage(r.AnnualRatePercent), r.TermMonths)
	fmt.Fprintf(w, "  Monthly payment:        %s\n", c.money(r.PeriodicPayment))
	fmt.Fprintf(w, "  Total paid:             %s\n", c.money(r.TotalPaid))
	fmt.Fprintf(w, "  Total interest:         %s\n", c.money(r.TotalInterest))
	c.writeYearlySummary(w, r)
	fmt.Fprintln(w)
}

func (c ConsoleFormatter) writeYearlySummary(w io.Writer, r domain.LoanResult) {
	years := r.YearlySummary()
	if len(years) == 0 {
		return
	}
	fmt.Fprintf(w, "\n  %-6s %16s %16s %16s\n", "Year", "Principal", "Interest", "Balance")
	for _, y := range years {
		fmt.Fprintf(w, "  %-6d %16s %16s %16s\n", y.Year, c.money(y.PrincipalPaid), c.money(y.InterestPaid), c.money(y.EndingBalance))
	}
}

func (c ConsoleFormatter) writeRetirement(w io.Writer, r *domain.RetirementResult) {
	sectionHeader(w, "RETIREMENT PROJECTION")
	if r.Years == 0 {
		fmt.Fprintln(w, "  No projection: the horizon must be at least one year")
		fmt.Fprintln(w)
		return
	}
	fmt.Fprintf(w, "  Years projected:        %d\n", r.Years)
	fmt.Fprintf(w, "  Projected balance:      %s\n", c.money(r.FinalBalance))
	fmt.Fprintf(w, "  Total contributions:    %s\n", c.money(r.TotalContributions))
	fmt.Fprintf(w, "  Investment growth:      %s\n", c.money(r.TotalGrowth))
	fmt.Fprintf(w, "  Retirement goal (25x):  %s\n", c.money(r.RetirementGoal))
	fmt.Fprintf(w, "  Benchmark:              %s (target %s, %sx income)\n",
		Title(string(r.Benchmark.Status)), c.money(r.Benchmark.TargetSavings), r.Benchmark.Multiplier.String())

	fmt.Fprintf(w, "\n  %-6s %-5s %16s %16s\n", "Year", "Age", "Growth", "Balance")
	for _, y := range r.Trajectory {
		// every fifth year plus the last keeps long horizons readable
		if y.Year%5 != 0 && y.Year != r.Years && y.Year != 1 {
			continue
		}
		age := ""
		if y.Age > 0 {
			age = fmt.Sprintf("%d", y.Age)
		}
		fmt.Fprintf(w, "  %-6d %-5s %16s %16s\n", y.Year, age, c.money(y.Growth), c.money(y.Balance))
	}
	writeRecommendations(w, r.Recommendations)
	fmt.Fprintln(w)
}

func (c ConsoleFormatter) writeCredit(w io.Writer, r *domain.CreditScoreResult) {
	sectionHeader(w, "CREDIT SCORE ESTIMATE")
	fmt.Fprintf(w, "  Estimated score:        %d (%s), range %d-%d\n", r.EstimatedScore, r.Rating, r.Range.Low, r.Range.High)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-26s %6s %6s %8s\n", "Factor", "Weight", "Impact", "Points")
	for _, f := range r.Factors {
		fmt.Fprintf(w, "  %-26s %5d%% %6d %8s\n", f.Label, f.Weight, f.Impact, f.Points.StringFixed(2))
	}
	if len(r.Improvements) > 0 {
		fmt.Fprintln(w, "\n  Improvements:")
		for _, imp := range r.Improvements {
			fmt.Fprintf(w, "  [%s] %s (+%d points, %s)\n", strings.ToUpper(string(imp.Priority)), imp.Action, imp.PointImpact, imp.Timeframe)
		}
	}
	if len(r.Timeline) > 0 {
		fmt.Fprintln(w, "\n  Projected timeline:")
		for _, p := range r.Timeline {
			fmt.Fprintf(w, "  Month %-3d %d  %s\n", p.Month, p.Score, p.Note)
		}
	}
	fmt.Fprintln(w)
}

func (c ConsoleFormatter) writeInsurance(w io.Writer, r *domain.InsuranceResult) {
	sectionHeader(w, "INSURANCE COVERAGE")
	fmt.Fprintf(w, "  Life:                   %s (%dx income)\n", c.money(r.Life.Recommended), r.Life.IncomeMultiple)
	fmt.Fprintf(w, "  Disability:             %s short-term, %s/yr long-term\n", c.money(r.Disability.ShortTerm), c.money(r.Disability.LongTerm))
	fmt.Fprintf(w, "  Auto:                   %s liability, %s comprehensive/collision\n", c.money(r.Auto.Liability), c.money(r.Auto.ComprehensiveCollision))
	fmt.Fprintf(w, "  Home:                   %s dwelling, %s property, %s liability\n", c.money(r.Home.Dwelling), c.money(r.Home.PersonalProperty), c.money(r.Home.Liability))
	fmt.Fprintf(w, "  Health:                 %s emergency fund, %s/yr premium\n", c.money(r.Health.EmergencyFund), c.money(r.Health.AnnualPremium))
	label := "Annual premium:"
	if r.PremiumIsEstimate {
		label = "Annual premium (est.):"
	}
	fmt.Fprintf(w, "  %-23s %s\n", label, c.money(r.EstimatedAnnualPremium))
	fmt.Fprintf(w, "  Risk:                   %s (%d points)\n", Title(string(r.Risk.Level)), r.Risk.Points)
	writeRecommendations(w, r.Recommendations)
	fmt.Fprintln(w)
}

func writeRecommendations(w io.Writer, recs []domain.Recommendation) {
	if len(recs) == 0 {
		return
	}
	fmt.Fprintln(w, "\n  Recommendations:")
	for _, r := range recs {
		fmt.Fprintf(w, "  [%s] %s\n", strings.ToUpper(string(r.Priority)), r.Message)
	}
}
