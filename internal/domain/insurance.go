package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// JobRisk is the occupational hazard category
type JobRisk string

const (
	JobRiskLow    JobRisk = "low"
	JobRiskMedium JobRisk = "medium"
	JobRiskHigh   JobRisk = "high"
)

// MaritalStatus is a closed set of recognized household states
type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "single"
	MaritalMarried  MaritalStatus = "married"
	MaritalDivorced MaritalStatus = "divorced"
	MaritalWidowed  MaritalStatus = "widowed"
)

// Employer benefit identifiers recognized in InsuranceProfile.EmployerBenefits
const (
	BenefitLife       = "life"
	BenefitDisability = "disability"
	BenefitHealth     = "health"
)

// InsuranceProfile gathers the personal, property and risk inputs
type InsuranceProfile struct {
	// Personal
	Age             int             `yaml:"age" json:"age"`
	AnnualIncome    decimal.Decimal `yaml:"annual_income" json:"annualIncome"`
	Dependents      int             `yaml:"dependents" json:"dependents"`
	MaritalStatus   MaritalStatus   `yaml:"marital_status,omitempty" json:"maritalStatus,omitempty"`
	TotalDebt       decimal.Decimal `yaml:"total_debt" json:"totalDebt"`
	Savings         decimal.Decimal `yaml:"savings" json:"savings"`
	MonthlyExpenses decimal.Decimal `yaml:"monthly_expenses" json:"monthlyExpenses"`
	FundEducation   bool            `yaml:"fund_education" json:"fundEducation"`

	// Property
	HomeValue    decimal.Decimal `yaml:"home_value,omitempty" json:"homeValue"`
	HomeAgeYears int             `yaml:"home_age_years,omitempty" json:"homeAgeYears,omitempty"`
	VehicleCount int             `yaml:"vehicle_count,omitempty" json:"vehicleCount"`
	VehicleValue decimal.Decimal `yaml:"vehicle_value,omitempty" json:"vehicleValue"`

	// Risk
	HealthConditions []string `yaml:"health_conditions,omitempty" json:"healthConditions,omitempty"`
	JobRisk          JobRisk  `yaml:"job_risk,omitempty" json:"jobRisk,omitempty"`
	EmployerBenefits []string `yaml:"employer_benefits,omitempty" json:"employerBenefits,omitempty"`
}

// HasEmployerBenefit matches a benefit name case-insensitively
func (p InsuranceProfile) HasEmployerBenefit(name string) bool {
	for _, b := range p.EmployerBenefits {
		if strings.EqualFold(strings.TrimSpace(b), name) {
			return true
		}
	}
	return false
}

// HealthConditionCount ignores blank entries and the literal "none"
func (p InsuranceProfile) HealthConditionCount() int {
	count := 0
	for _, c := range p.HealthConditions {
		c = strings.TrimSpace(c)
		if c == "" || strings.EqualFold(c, "none") {
			continue
		}
		count++
	}
	return count
}

// LifeCoverage is the DIME-style life insurance need and its components
type LifeCoverage struct {
	Recommended       decimal.Decimal `json:"recommended"`
	IncomeMultiple    int             `json:"incomeMultiple"`
	IncomeReplacement decimal.Decimal `json:"incomeReplacement"`
	Debt              decimal.Decimal `json:"debt"`
	Education         decimal.Decimal `json:"education"`
	FinalExpenses     decimal.Decimal `json:"finalExpenses"`
	ExistingSavings   decimal.Decimal `json:"existingSavings"`
}

// DisabilityCoverage splits short- and long-term disability needs
type DisabilityCoverage struct {
	ShortTerm decimal.Decimal `json:"shortTerm"`
	LongTerm  decimal.Decimal `json:"longTerm"`
}

// AutoCoverage holds the recommended auto limits
type AutoCoverage struct {
	Liability              decimal.Decimal `json:"liability"`
	ComprehensiveCollision decimal.Decimal `json:"comprehensiveCollision"`
}

// HomeCoverage holds the recommended homeowner limits
type HomeCoverage struct {
	Dwelling         decimal.Decimal `json:"dwelling"`
	PersonalProperty decimal.Decimal `json:"personalProperty"`
	Liability        decimal.Decimal `json:"liability"`
}

// HealthCoverage holds the emergency reserve and premium estimate
type HealthCoverage struct {
	EmergencyFund decimal.Decimal `json:"emergencyFund"`
	AnnualPremium decimal.Decimal `json:"annualPremium"`
}

// RiskLevel buckets the additive risk points
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// RiskAssessment records the points and which inputs contributed them
type RiskAssessment struct {
	Level   RiskLevel `json:"level"`
	Points  int       `json:"points"`
	Factors []string  `json:"factors"`
}

// InsuranceResult is the per-line coverage recommendation.
// EstimatedAnnualPremium is a fixed-percentage blend, not an actuarial price.
type InsuranceResult struct {
	Life                   LifeCoverage       `json:"life"`
	Disability             DisabilityCoverage `json:"disability"`
	Auto                   AutoCoverage       `json:"auto"`
	Home                   HomeCoverage       `json:"home"`
	Health                 HealthCoverage     `json:"health"`
	EstimatedAnnualPremium decimal.Decimal    `json:"estimatedAnnualPremium"`
	PremiumIsEstimate      bool               `json:"premiumIsEstimate"`
	Risk                   RiskAssessment     `json:"risk"`
	Recommendations        []Recommendation   `json:"recommendations"`
}

// InsuranceOptions tunes the estimator
type InsuranceOptions struct {
	RecommendationLimit int             `yaml:"recommendation_limit" json:"recommendationLimit" toml:"recommendation_limit"`
	EducationPerChild   decimal.Decimal `yaml:"education_per_child" json:"educationPerChild" toml:"-"`
}

// DefaultInsuranceOptions provisions 100,000 of education per dependent
func DefaultInsuranceOptions() InsuranceOptions {
	return InsuranceOptions{EducationPerChild: decimal.NewFromInt(100000)}
}
