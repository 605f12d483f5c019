package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/budgetcalc/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct {
	// Defaults seeds the options section before a file is decoded
	Defaults domain.CalculationOptions
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{Defaults: domain.DefaultCalculationOptions()}
}

// NewInputParserWithDefaults creates a parser whose option defaults come from user settings
func NewInputParserWithDefaults(defaults domain.CalculationOptions) *InputParser {
	return &InputParser{Defaults: defaults}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config, err := ip.Parse(data)
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Parse decodes and validates configuration bytes. Options omitted by the
// file keep their defaults.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	config := domain.Configuration{Options: ip.Defaults}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration checks that a file describes something plausible.
// The calculators accept any input; this only guards the file layer.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !config.HasCalculations() {
		return fmt.Errorf("at least one of mortgage, loans, retirement, credit or insurance is required")
	}

	if config.Mortgage != nil {
		if err := ip.validateMortgage(config.Mortgage); err != nil {
			return fmt.Errorf("mortgage validation failed: %w", err)
		}
	}
	for i := range config.Loans {
		if err := ip.validateLoan(&config.Loans[i]); err != nil {
			return fmt.Errorf("loan %d (%s) validation failed: %w", i, config.Loans[i].Name, err)
		}
	}
	if config.Retirement != nil {
		if err := ip.validateRetirement(config.Retirement); err != nil {
			return fmt.Errorf("retirement validation failed: %w", err)
		}
	}
	if config.Credit != nil {
		if err := ip.validateCredit(config.Credit); err != nil {
			return fmt.Errorf("credit validation failed: %w", err)
		}
	}
	if config.Insurance != nil {
		if err := ip.validateInsurance(config.Insurance); err != nil {
			return fmt.Errorf("insurance validation failed: %w", err)
		}
	}
	if err := ip.validateOptions(&config.Options); err != nil {
		return fmt.Errorf("options validation failed: %w", err)
	}

	return nil
}

func (ip *InputParser) validateMortgage(m *domain.MortgageInputs) error {
	if !m.HomePrice.IsPositive() {
		return fmt.Errorf("home price must be positive")
	}
	if err := nonNegative("down payment", m.DownPayment); err != nil {
		return err
	}
	if m.DownPayment.GreaterThan(m.HomePrice) {
		return fmt.Errorf("down payment cannot exceed home price")
	}
	if err := inRange("annual rate percent", m.AnnualRatePercent, 0, 30); err != nil {
		return err
	}
	if m.TermYears < 1 || m.TermYears > 50 {
		return fmt.Errorf("term years must be between 1 and 50")
	}
	if err := inRange("property tax rate percent", m.PropertyTaxRatePercent, 0, 10); err != nil {
		return err
	}
	if err := nonNegative("annual insurance", m.AnnualInsurance); err != nil {
		return err
	}
	if err := nonNegative("monthly HOA", m.MonthlyHOA); err != nil {
		return err
	}
	return inRange("PMI rate percent", m.PMIRatePercent, 0, 5)
}

func (ip *InputParser) validateLoan(l *domain.LoanInputs) error {
	if !l.Principal.IsPositive() {
		return fmt.Errorf("principal must be positive")
	}
	if err := inRange("annual rate percent", l.AnnualRatePercent, 0, 100); err != nil {
		return err
	}
	if l.TermMonths < 1 || l.TermMonths > 600 {
		return fmt.Errorf("term months must be between 1 and 600")
	}
	return nil
}

func (ip *InputParser) validateRetirement(r *domain.RetirementInputs) error {
	if r.CurrentAge < 0 || r.CurrentAge > 120 {
		return fmt.Errorf("current age must be between 0 and 120")
	}
	if r.Years < 0 || r.Years > 100 {
		return fmt.Errorf("years must be between 0 and 100")
	}
	if r.Years == 0 && r.RetirementAge <= r.CurrentAge {
		return fmt.Errorf("retirement age must be after current age when years is not set")
	}
	if r.ProjectionYears() > 100 {
		return fmt.Errorf("projection horizon must be at most 100 years")
	}
	if err := nonNegative("current balance", r.CurrentBalance); err != nil {
		return err
	}
	if err := nonNegative("monthly contribution", r.MonthlyContribution); err != nil {
		return err
	}
	if err := inRange("annual return percent", r.AnnualReturnPercent, -50, 50); err != nil {
		return err
	}
	if err := nonNegative("annual income", r.AnnualIncome); err != nil {
		return err
	}
	if err := nonNegative("annual retirement expenses", r.AnnualRetirementExpenses); err != nil {
		return err
	}
	return nonNegative("emergency savings", r.EmergencySavings)
}

func (ip *InputParser) validateCredit(c *domain.CreditFactors) error {
	if err := inRange("payment history percent", c.PaymentHistoryPercent, 0, 100); err != nil {
		return err
	}
	if err := nonNegative("utilization percent", c.UtilizationPercent); err != nil {
		return err
	}
	if err := nonNegative("history length years", c.HistoryLengthYears); err != nil {
		return err
	}
	if c.AccountTypeCount < 0 {
		return fmt.Errorf("account type count cannot be negative")
	}
	if c.RecentInquiryCount < 0 {
		return fmt.Errorf("recent inquiry count cannot be negative")
	}
	return nil
}

var (
	validMaritalStatuses = map[domain.MaritalStatus]bool{
		"":                     true,
		domain.MaritalSingle:   true,
		domain.MaritalMarried:  true,
		domain.MaritalDivorced: true,
		domain.MaritalWidowed:  true,
	}
	validJobRisks = map[domain.JobRisk]bool{
		"":                   true,
		domain.JobRiskLow:    true,
		domain.JobRiskMedium: true,
		domain.JobRiskHigh:   true,
	}
)

func (ip *InputParser) validateInsurance(p *domain.InsuranceProfile) error {
	if p.Age < 18 || p.Age > 120 {
		return fmt.Errorf("age must be between 18 and 120")
	}
	if p.Dependents < 0 {
		return fmt.Errorf("dependents cannot be negative")
	}
	if !validMaritalStatuses[p.MaritalStatus] {
		return fmt.Errorf("marital status must be 'single', 'married', 'divorced' or 'widowed'")
	}
	if !validJobRisks[p.JobRisk] {
		return fmt.Errorf("job risk must be 'low', 'medium' or 'high'")
	}
	if p.HomeAgeYears < 0 || p.VehicleCount < 0 {
		return fmt.Errorf("home age and vehicle count cannot be negative")
	}
	amounts := []struct {
		field string
		value decimal.Decimal
	}{
		{"annual income", p.AnnualIncome},
		{"total debt", p.TotalDebt},
		{"savings", p.Savings},
		{"monthly expenses", p.MonthlyExpenses},
		{"home value", p.HomeValue},
		{"vehicle value", p.VehicleValue},
	}
	for _, a := range amounts {
		if err := nonNegative(a.field, a.value); err != nil {
			return err
		}
	}
	return nil
}

func (ip *InputParser) validateOptions(o *domain.CalculationOptions) error {
	if o.Retirement.RecommendationLimit < 0 || o.Credit.RecommendationLimit < 0 || o.Insurance.RecommendationLimit < 0 {
		return fmt.Errorf("recommendation limits cannot be negative")
	}
	if o.Credit.Month12Jitter < -50 || o.Credit.Month12Jitter > 50 {
		return fmt.Errorf("month 12 jitter must be between -50 and 50")
	}
	return nonNegative("education per child", o.Insurance.EducationPerChild)
}

func nonNegative(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return fmt.Errorf("%s cannot be negative", field)
	}
	return nil
}

func inRange(field string, d decimal.Decimal, lo, hi int64) error {
	if d.LessThan(decimal.NewFromInt(lo)) || d.GreaterThan(decimal.NewFromInt(hi)) {
		return fmt.Errorf("%s must be between %d and %d", field, lo, hi)
	}
	return nil
}
