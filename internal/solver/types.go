package solver

import (
	"fmt"

	"github.com/rgehrsitz/budgetcalc/internal/calculation"
	"github.com/rgehrsitz/budgetcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Goal names the quantity a solve produces
type Goal string

const (
	GoalRequiredContribution Goal = "contribution" // monthly contribution reaching a target balance
	GoalAffordablePrincipal  Goal = "principal"    // largest loan whose payment fits a budget
)

// SolverOptions configures the bisection
type SolverOptions struct {
	Tolerance     decimal.Decimal // width of the final bracket, in dollars
	MaxIterations int
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     decimal.NewFromFloat(0.001),
		MaxIterations: 200,
	}
}

// ContributionRequest asks for the monthly contribution that grows Inputs to TargetBalance.
// Inputs.MonthlyContribution is ignored.
type ContributionRequest struct {
	Inputs        domain.RetirementInputs `json:"inputs"`
	TargetBalance decimal.Decimal         `json:"targetBalance"`
}

// PrincipalRequest asks for the largest principal whose monthly payment fits MonthlyBudget
type PrincipalRequest struct {
	MonthlyBudget     decimal.Decimal `json:"monthlyBudget"`
	AnnualRatePercent decimal.Decimal `json:"annualRatePercent"`
	TermMonths        int             `json:"termMonths"`
}

// Result contains the solved value and the outcome it produces
type Result struct {
	Goal            Goal            `json:"goal"`
	Value           decimal.Decimal `json:"value"`    // contribution or principal, in cents
	Target          decimal.Decimal `json:"target"`   // target balance or monthly budget
	Achieved        decimal.Decimal `json:"achieved"` // final balance or payment at Value
	Iterations      int             `json:"iterations"`
	Success         bool            `json:"success"`
	ConvergenceInfo string          `json:"convergenceInfo"`
}

// Validate checks that a contribution solve is well posed
func (r ContributionRequest) Validate() error {
	if !r.TargetBalance.IsPositive() {
		return &SolverError{Operation: "validate_contribution", Message: "target balance must be positive"}
	}
	if r.Inputs.ProjectionYears() <= 0 {
		return &SolverError{Operation: "validate_contribution", Message: "projection horizon must be at least one year"}
	}
	if r.Inputs.ProjectionYears() > calculation.MaxProjectionYears {
		return &SolverError{Operation: "validate_contribution", Message: fmt.Sprintf("projection horizon cannot exceed %d years", calculation.MaxProjectionYears)}
	}
	if r.Inputs.AnnualReturnPercent.LessThanOrEqual(decimal.NewFromInt(-100)) {
		return &SolverError{Operation: "validate_contribution", Message: "annual return must be above -100%"}
	}
	return nil
}

// Validate checks that a principal solve is well posed
func (r PrincipalRequest) Validate() error {
	if !r.MonthlyBudget.IsPositive() {
		return &SolverError{Operation: "validate_principal", Message: "monthly budget must be positive"}
	}
	if r.TermMonths <= 0 {
		return &SolverError{Operation: "validate_principal", Message: "term must be at least one month"}
	}
	if r.TermMonths > calculation.MaxTermMonths {
		return &SolverError{Operation: "validate_principal", Message: fmt.Sprintf("term cannot exceed %d months", calculation.MaxTermMonths)}
	}
	if r.AnnualRatePercent.IsNegative() {
		return &SolverError{Operation: "validate_principal", Message: "rate cannot be negative"}
	}
	return nil
}

// SolverError represents errors from the goal solver
type SolverError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *SolverError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *SolverError) Unwrap() error {
	return e.Cause
}
