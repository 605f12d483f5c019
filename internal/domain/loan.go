package domain

import (
	"github.com/shopspring/decimal"
)

// LoanInputs describes an amortizing loan in its direct framing (a stated amount financed)
type LoanInputs struct {
	Name              string          `yaml:"name,omitempty" json:"name,omitempty"`
	Principal         decimal.Decimal `yaml:"principal" json:"principal"`
	AnnualRatePercent decimal.Decimal `yaml:"annual_rate_percent" json:"annualRatePercent"`
	TermMonths        int             `yaml:"term_months" json:"termMonths"`
}

// PeriodEntry is one row of an amortization schedule
type PeriodEntry struct {
	Period           int             `json:"period"` // 1-based
	PrincipalPortion decimal.Decimal `json:"principalPortion"`
	InterestPortion  decimal.Decimal `json:"interestPortion"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
}

// LoanResult is the fixed payment, totals and full schedule for an amortizing loan
type LoanResult struct {
	Principal         decimal.Decimal `json:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annualRatePercent"`
	TermMonths        int             `json:"termMonths"`

	PeriodicPayment decimal.Decimal `json:"periodicPayment"`
	TotalPaid       decimal.Decimal `json:"totalPaid"`
	TotalInterest   decimal.Decimal `json:"totalInterest"`
	Schedule        []PeriodEntry   `json:"schedule"`
}

// IsDegenerate reports whether the inputs produced the zeroed no-op result
func (lr LoanResult) IsDegenerate() bool {
	return len(lr.Schedule) == 0
}

// LoanYearSummary aggregates twelve schedule periods
type LoanYearSummary struct {
	Year          int             `json:"year"`
	PrincipalPaid decimal.Decimal `json:"principalPaid"`
	InterestPaid  decimal.Decimal `json:"interestPaid"`
	EndingBalance decimal.Decimal `json:"endingBalance"`
}

// YearlySummary groups the schedule into loan years. A trailing partial year is kept.
func (lr LoanResult) YearlySummary() []LoanYearSummary {
	if len(lr.Schedule) == 0 {
		return nil
	}
	years := make([]LoanYearSummary, 0, (len(lr.Schedule)+11)/12)
	for _, entry := range lr.Schedule {
		year := (entry.Period-1)/12 + 1
		if len(years) < year {
			years = append(years, LoanYearSummary{Year: year})
		}
		current := &years[year-1]
		current.PrincipalPaid = current.PrincipalPaid.Add(entry.PrincipalPortion)
		current.InterestPaid = current.InterestPaid.Add(entry.InterestPortion)
		current.EndingBalance = entry.RemainingBalance
	}
	return years
}

// MortgageInputs frames a loan as a home purchase
type MortgageInputs struct {
	Name              string          `yaml:"name,omitempty" json:"name,omitempty"`
	HomePrice         decimal.Decimal `yaml:"home_price" json:"homePrice"`
	DownPayment       decimal.Decimal `yaml:"down_payment" json:"downPayment"`
	AnnualRatePercent decimal.Decimal `yaml:"annual_rate_percent" json:"annualRatePercent"`
	TermYears         int             `yaml:"term_years" json:"termYears"`

	// Escrow and add-ons; all optional
	PropertyTaxRatePercent decimal.Decimal `yaml:"property_tax_rate_percent,omitempty" json:"propertyTaxRatePercent"`
	AnnualInsurance        decimal.Decimal `yaml:"annual_insurance,omitempty" json:"annualInsurance"`
	MonthlyHOA             decimal.Decimal `yaml:"monthly_hoa,omitempty" json:"monthlyHoa"`
	PMIRatePercent         decimal.Decimal `yaml:"pmi_rate_percent,omitempty" json:"pmiRatePercent"` // annual, of principal; zero uses the default
}

// Principal is the amount financed: price less down payment
func (m MortgageInputs) Principal() decimal.Decimal {
	return m.HomePrice.Sub(m.DownPayment)
}

// TermMonths converts the term in years to payment periods
func (m MortgageInputs) TermMonths() int {
	return m.TermYears * 12
}

// LoanToValue returns principal/price as a fraction, or zero when the price is not positive
func (m MortgageInputs) LoanToValue() decimal.Decimal {
	if !m.HomePrice.IsPositive() {
		return decimal.Zero
	}
	return m.Principal().Div(m.HomePrice)
}

// MortgageResult is the amortized loan plus the monthly housing costs layered on top of it
type MortgageResult struct {
	Inputs      MortgageInputs  `json:"inputs"`
	Loan        LoanResult      `json:"loan"`
	LoanToValue decimal.Decimal `json:"loanToValue"`

	MonthlyPrincipalInterest decimal.Decimal `json:"monthlyPrincipalInterest"`
	MonthlyPropertyTax       decimal.Decimal `json:"monthlyPropertyTax"`
	MonthlyInsurance         decimal.Decimal `json:"monthlyInsurance"`
	MonthlyHOA               decimal.Decimal `json:"monthlyHoa"`
	MonthlyPMI               decimal.Decimal `json:"monthlyPmi"`
	TotalMonthlyPayment      decimal.Decimal `json:"totalMonthlyPayment"`
}

// NamedLoan pairs a loan result with the label it was configured under
type NamedLoan struct {
	Name   string     `json:"name"`
	Result LoanResult `json:"result"`
}
