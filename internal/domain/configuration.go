package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Configuration is a calculation input file: any subset of the calculators plus options
type Configuration struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	Mortgage   *MortgageInputs   `yaml:"mortgage,omitempty" json:"mortgage,omitempty"`
	Loans      []LoanInputs      `yaml:"loans,omitempty" json:"loans,omitempty"`
	Retirement *RetirementInputs `yaml:"retirement,omitempty" json:"retirement,omitempty"`
	Credit     *CreditFactors    `yaml:"credit,omitempty" json:"credit,omitempty"`
	Insurance  *InsuranceProfile `yaml:"insurance,omitempty" json:"insurance,omitempty"`

	Options CalculationOptions `yaml:"options,omitempty" json:"options"`
}

// HasCalculations reports whether at least one calculator section is present
func (c *Configuration) HasCalculations() bool {
	return c.Mortgage != nil || len(c.Loans) > 0 || c.Retirement != nil || c.Credit != nil || c.Insurance != nil
}

// CalculationOptions groups the per-calculator options
type CalculationOptions struct {
	Retirement RetirementOptions `yaml:"retirement,omitempty" json:"retirement"`
	Credit     CreditOptions     `yaml:"credit,omitempty" json:"credit"`
	Insurance  InsuranceOptions  `yaml:"insurance,omitempty" json:"insurance"`
}

// DefaultCalculationOptions returns the options used when a file omits them
func DefaultCalculationOptions() CalculationOptions {
	return CalculationOptions{
		Retirement: DefaultRetirementOptions(),
		Insurance:  DefaultInsuranceOptions(),
	}
}

// Report collects every calculator result produced from one Configuration
type Report struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	GeneratedAt time.Time          `json:"generatedAt"`
	Mortgage    *MortgageResult    `json:"mortgage,omitempty"`
	Loans       []NamedLoan        `json:"loans,omitempty"`
	Retirement  *RetirementResult  `json:"retirement,omitempty"`
	Credit      *CreditScoreResult `json:"credit,omitempty"`
	Insurance   *InsuranceResult   `json:"insurance,omitempty"`
	Assumptions []string           `json:"assumptions"`
}

// TotalMonthlyDebtService sums the mortgage and loan payments in the report
func (r *Report) TotalMonthlyDebtService() decimal.Decimal {
	total := decimal.Zero
	if r.Mortgage != nil {
		total = total.Add(r.Mortgage.TotalMonthlyPayment)
	}
	for _, l := range r.Loans {
		total = total.Add(l.Result.PeriodicPayment)
	}
	return total
}
