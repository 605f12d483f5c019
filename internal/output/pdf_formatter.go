package output

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/rgehrsitz/budgetcalc/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// PDFFormatter renders an A4 report with one section per calculation
type PDFFormatter struct {
	Currency string
}

func (p PDFFormatter) Name() string { return "pdf" }

type pdfReport struct {
	pdf    *fpdf.Fpdf
	text   func(string) string
	symbol string
}

func (p PDFFormatter) Format(report *domain.Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("report is nil")
	}
	symbol := p.Currency
	if symbol == "" {
		symbol = "$"
	}
	doc := fpdf.New("P", "mm", "A4", "")
	r := &pdfReport{
		pdf:    doc,
		text:   doc.UnicodeTranslatorFromDescriptor(""),
		symbol: symbol,
	}
	doc.SetMargins(marginLeft, marginTop, marginRight)
	doc.SetAutoPageBreak(true, marginBottom)
	doc.SetTitle(report.Name, true)

	r.addTitle(report)
	if report.Mortgage != nil {
		r.addMortgage(report.Mortgage)
	}
	for _, loan := range report.Loans {
		r.addLoan(loan)
	}
	if report.Retirement != nil {
		r.addRetirement(report.Retirement)
	}
	if report.Credit != nil {
		r.addCredit(report.Credit)
	}
	if report.Insurance != nil {
		r.addInsurance(report.Insurance)
	}
	r.addAssumptions(reportAssumptions(report))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) money(d decimal.Decimal) string {
	return FormatMoney(r.symbol, d)
}

func (r *pdfReport) addTitle(report *domain.Report) {
	r.pdf.AddPage()
	r.pdf.SetFont("Arial", "B", 22)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 12, r.text("Budget Report: "+report.Name), "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "I", 11)
	r.pdf.SetTextColor(80, 80, 80)
	if report.Description != "" {
		r.pdf.MultiCell(contentWidth, 6, r.text(report.Description), "", "C", false)
	}
	if !report.GeneratedAt.IsZero() {
		r.pdf.CellFormat(contentWidth, 8, fmt.Sprintf("Generated: %s", report.GeneratedAt.Format("2 January 2006")), "", 1, "C", false, 0, "")
	}
	if report.Mortgage != nil || len(report.Loans) > 0 {
		r.pdf.SetFont("Arial", "B", 12)
		r.pdf.SetTextColor(0, 51, 102)
		r.pdf.CellFormat(contentWidth, 8, r.text("Total monthly debt service: "+r.money(report.TotalMonthlyDebtService())), "", 1, "C", false, 0, "")
	}
	r.pdf.Ln(8)
}

func (r *pdfReport) addMortgage(m *domain.MortgageResult) {
	title := "Mortgage"
	if m.Inputs.Name != "" {
		title += ": " + m.Inputs.Name
	}
	r.drawSectionHeader(title)
	widths := []float64{110, 70}
	r.drawTableHeader([]string{"Item", "Amount"}, widths)
	r.drawTableRow([]string{"Home price", r.money(m.Inputs.HomePrice)}, widths, false)
	r.drawTableRow([]string{"Down payment", r.money(m.Inputs.DownPayment)}, widths, false)
	r.drawTableRow([]string{"Loan amount (LTV " + FormatRatio(m.LoanToValue) + ")", r.money(m.Loan.Principal)}, widths, false)
	r.drawTableRow([]string{"Principal & interest", r.money(m.MonthlyPrincipalInterest)}, widths, false)
	r.drawTableRow([]string{"Property tax", r.money(m.MonthlyPropertyTax)}, widths, false)
	r.drawTableRow([]string{"Insurance", r.money(m.MonthlyInsurance)}, widths, false)
	r.drawTableRow([]string{"HOA", r.money(m.MonthlyHOA)}, widths, false)
	r.drawTableRow([]string{"PMI", r.money(m.MonthlyPMI)}, widths, false)
	r.drawTableRow([]string{"Total monthly payment", r.money(m.TotalMonthlyPayment)}, widths, true)
	r.drawTableRow([]string{"Total interest", r.money(m.Loan.TotalInterest)}, widths, true)
	r.pdf.Ln(4)
	r.drawYearlySummary(m.Loan)
}

func (r *pdfReport) addLoan(loan domain.NamedLoan) {
	r.drawSectionHeader("Loan: " + loan.Name)
	res := loan.Result
	if res.IsDegenerate() {
		r.pdf.SetFont("Arial", "", 10)
		r.pdf.SetTextColor(50, 50, 50)
		r.pdf.MultiCell(contentWidth, 5, "No schedule: principal and term must be positive and the rate non-negative.", "", "L", false)
		r.pdf.Ln(6)
		return
	}
	widths := []float64{110, 70}
	r.drawTableHeader([]string{"Item", "Amount"}, widths)
	r.drawTableRow([]string{"Principal", r.money(res.Principal)}, widths, false)
	r.drawTableRow([]string{"Rate", FormatPercentage(res.AnnualRatePercent)}, widths, false)
	r.drawTableRow([]string{"Term (months)", strconv.Itoa(res.TermMonths)}, widths, false)
	r.drawTableRow([]string{"Monthly payment", r.money(res.PeriodicPayment)}, widths, true)
	r.drawTableRow([]string{"Total interest", r.money(res.TotalInterest)}, widths, true)
	r.pdf.Ln(4)
	r.drawYearlySummary(res)
}

func (r *pdfReport) drawYearlySummary(res domain.LoanResult) {
	years := res.YearlySummary()
	if len(years) == 0 {
		return
	}
	widths := []float64{20, 53, 53, 54}
	r.drawTableHeader([]string{"Year", "Principal", "Interest", "Balance"}, widths)
	for _, y := range years {
		r.drawTableRow([]string{strconv.Itoa(y.Year), r.money(y.PrincipalPaid), r.money(y.InterestPaid), r.money(y.EndingBalance)}, widths, false)
	}
	r.pdf.Ln(8)
}

func (r *pdfReport) addRetirement(res *domain.RetirementResult) {
	r.drawSectionHeader("Retirement Projection")
	widths := []float64{110, 70}
	r.drawTableHeader([]string{"Item", "Amount"}, widths)
	r.drawTableRow([]string{"Years projected", strconv.Itoa(res.Years)}, widths, false)
	r.drawTableRow([]string{"Total contributions", r.money(res.TotalContributions)}, widths, false)
	r.drawTableRow([]string{"Investment growth", r.money(res.TotalGrowth)}, widths, false)
	r.drawTableRow([]string{"Projected balance", r.money(res.FinalBalance)}, widths, true)
	r.drawTableRow([]string{"Retirement goal (25x expenses)", r.money(res.RetirementGoal)}, widths, false)
	r.drawTableRow([]string{"Benchmark (" + Title(string(res.Benchmark.Status)) + ")", r.money(res.Benchmark.TargetSavings)}, widths, false)
	r.pdf.Ln(4)

	if len(res.Trajectory) > 0 {
		tw := []float64{20, 20, 46, 46, 48}
		r.drawTableHeader([]string{"Year", "Age", "Contribution", "Growth", "Balance"}, tw)
		for _, y := range res.Trajectory {
			age := ""
			if y.Age > 0 {
				age = strconv.Itoa(y.Age)
			}
			r.drawTableRow([]string{strconv.Itoa(y.Year), age, r.money(y.Contribution), r.money(y.Growth), r.money(y.Balance)}, tw, false)
		}
		r.pdf.Ln(4)
	}
	r.drawRecommendations(res.Recommendations)
}

func (r *pdfReport) addCredit(res *domain.CreditScoreResult) {
	r.drawSectionHeader("Credit Score Estimate")
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.CellFormat(contentWidth, 8, r.text(fmt.Sprintf("Estimated score %d (%s), range %d-%d", res.EstimatedScore, res.Rating, res.Range.Low, res.Range.High)), "", 1, "L", false, 0, "")
	r.pdf.Ln(2)

	widths := []float64{80, 30, 30, 40}
	r.drawTableHeader([]string{"Factor", "Weight", "Impact", "Points"}, widths)
	for _, f := range res.Factors {
		r.drawTableRow([]string{f.Label, strconv.Itoa(f.Weight) + "%", strconv.Itoa(f.Impact), f.Points.StringFixed(2)}, widths, false)
	}
	r.pdf.Ln(4)

	if len(res.Improvements) > 0 {
		iw := []float64{20, 110, 20, 30}
		r.drawTableHeader([]string{"Priority", "Action", "Points", "Timeframe"}, iw)
		for _, imp := range res.Improvements {
			r.drawTableRow([]string{Title(string(imp.Priority)), truncate(imp.Action, 70), "+" + strconv.Itoa(imp.PointImpact), imp.Timeframe}, iw, false)
		}
		r.pdf.Ln(4)
	}
	if len(res.Timeline) > 0 {
		tw := []float64{25, 25, 130}
		r.drawTableHeader([]string{"Month", "Score", "Note"}, tw)
		for _, p := range res.Timeline {
			r.drawTableRow([]string{strconv.Itoa(p.Month), strconv.Itoa(p.Score), p.Note}, tw, false)
		}
		r.pdf.Ln(8)
	}
}

func (r *pdfReport) addInsurance(res *domain.InsuranceResult) {
	r.drawSectionHeader("Insurance Coverage")
	widths := []float64{110, 70}
	r.drawTableHeader([]string{"Coverage", "Recommended"}, widths)
	r.drawTableRow([]string{fmt.Sprintf("Life (%dx income)", res.Life.IncomeMultiple), r.money(res.Life.Recommended)}, widths, false)
	r.drawTableRow([]string{"Short-term disability", r.money(res.Disability.ShortTerm)}, widths, false)
	r.drawTableRow([]string{"Long-term disability (annual)", r.money(res.Disability.LongTerm)}, widths, false)
	r.drawTableRow([]string{"Auto liability", r.money(res.Auto.Liability)}, widths, false)
	r.drawTableRow([]string{"Auto comprehensive/collision", r.money(res.Auto.ComprehensiveCollision)}, widths, false)
	r.drawTableRow([]string{"Home dwelling", r.money(res.Home.Dwelling)}, widths, false)
	r.drawTableRow([]string{"Personal property", r.money(res.Home.PersonalProperty)}, widths, false)
	r.drawTableRow([]string{"Home liability", r.money(res.Home.Liability)}, widths, false)
	r.drawTableRow([]string{"Health emergency fund", r.money(res.Health.EmergencyFund)}, widths, false)
	label := "Annual premium"
	if res.PremiumIsEstimate {
		label += " (estimate)"
	}
	r.drawTableRow([]string{label, r.money(res.EstimatedAnnualPremium)}, widths, true)
	r.drawTableRow([]string{"Risk level (" + strconv.Itoa(res.Risk.Points) + " points)", Title(string(res.Risk.Level))}, widths, true)
	r.pdf.Ln(4)
	r.drawRecommendations(res.Recommendations)
}

func (r *pdfReport) drawRecommendations(recs []domain.Recommendation) {
	if len(recs) == 0 {
		return
	}
	r.pdf.SetFont("Arial", "B", 11)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 7, "Recommendations", "", 1, "L", false, 0, "")
	for _, rec := range recs {
		r.setPriorityColor(rec.Priority)
		r.pdf.SetFont("Arial", "B", 9)
		r.pdf.CellFormat(20, 5, strings.ToUpper(string(rec.Priority)), "", 0, "L", false, 0, "")
		r.pdf.SetFont("Arial", "", 9)
		r.pdf.SetTextColor(50, 50, 50)
		r.pdf.MultiCell(contentWidth-20, 5, r.text(rec.Message), "", "L", false)
	}
	r.pdf.Ln(8)
}

func (r *pdfReport) addAssumptions(assumptions []string) {
	r.drawSectionHeader("Key Assumptions")
	r.pdf.SetFont("Arial", "", 9)
	r.pdf.SetTextColor(80, 80, 80)
	for _, a := range assumptions {
		r.pdf.MultiCell(contentWidth, 5, r.text("- "+a), "", "L", false)
	}
	r.pdf.Ln(4)
	r.pdf.SetFont("Arial", "I", 8)
	r.pdf.MultiCell(contentWidth, 4,
		"This report is generated from user-supplied inputs for planning purposes. "+
			"This is not financial advice.", "", "C", false)
}

func (r *pdfReport) drawSectionHeader(title string) {
	r.pdf.SetFont("Arial", "B", 16)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 10, r.text(title), "", 1, "L", false, 0, "")
	r.pdf.SetDrawColor(0, 51, 102)
	r.pdf.Line(marginLeft, r.pdf.GetY(), marginLeft+contentWidth, r.pdf.GetY())
	r.pdf.Ln(5)
}

func (r *pdfReport) drawTableHeader(headers []string, widths []float64) {
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 9)

	for i, header := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 6, header, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *pdfReport) drawTableRow(cells []string, widths []float64, isBold bool) {
	r.pdf.SetFillColor(250, 250, 250)
	r.pdf.SetTextColor(50, 50, 50)

	if isBold {
		r.pdf.SetFont("Arial", "B", 9)
		r.pdf.SetFillColor(240, 240, 240)
	} else {
		r.pdf.SetFont("Arial", "", 9)
	}

	for i, cell := range cells {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 5, r.text(cell), "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *pdfReport) setPriorityColor(p domain.Priority) {
	switch p {
	case domain.PriorityHigh:
		r.pdf.SetTextColor(180, 0, 0)
	case domain.PriorityMedium:
		r.pdf.SetTextColor(180, 100, 0)
	default:
		r.pdf.SetTextColor(0, 128, 0)
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
