package solver

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/budgetcalc/internal/calculation"
	"github.com/shopspring/decimal"
)

var (
	two     = decimal.NewFromInt(2)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// maxExpansions bounds the doubling used to bracket a contribution
const maxExpansions = 64

// Solver inverts the calculators by bisection
type Solver struct {
	Options SolverOptions
	Logger  calculation.Logger
}

// NewSolver creates a new goal solver
func NewSolver(options SolverOptions) *Solver {
	return &Solver{
		Options: options,
		Logger:  calculation.NopLogger{},
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultSolverOptions())
}

// RequiredContribution finds the smallest monthly contribution, rounded up to the cent,
// whose projected final balance reaches the target.
func (s *Solver) RequiredContribution(ctx context.Context, req ContributionRequest) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	in := req.Inputs
	years := in.ProjectionYears()
	rate := in.AnnualReturnPercent.Div(hundred)
	finalBalance := func(monthly decimal.Decimal) decimal.Decimal {
		return calculation.FutureValue(in.CurrentBalance, monthly.Mul(twelve), rate, years)
	}

	result := &Result{Goal: GoalRequiredContribution, Target: req.TargetBalance}

	if without := finalBalance(decimal.Zero); without.GreaterThanOrEqual(req.TargetBalance) {
		result.Value = decimal.Zero
		result.Achieved = without
		result.Success = true
		result.ConvergenceInfo = "Current balance already reaches the target"
		return result, nil
	}

	reaches := func(monthly decimal.Decimal) bool {
		return finalBalance(monthly).GreaterThanOrEqual(req.TargetBalance)
	}

	// Non-negative growth makes this a valid upper bound; doubling covers losses.
	hi := req.TargetBalance.Sub(finalBalance(decimal.Zero)).Div(twelve.Mul(decimal.NewFromInt(int64(years))))
	hi = calculation.MaxDecimal(hi, decimal.NewFromInt(1))
	for i := 0; !reaches(hi); i++ {
		if i >= maxExpansions {
			return nil, &SolverError{
				Operation: "required_contribution",
				Message:   "target balance is unreachable",
			}
		}
		hi = hi.Mul(two)
	}

	_, hi, iterations, converged, err := s.bisect(ctx, "required_contribution", decimal.Zero, hi, reaches)
	if err != nil {
		return nil, err
	}

	result.Value = ceilCents(hi)
	result.Achieved = finalBalance(result.Value)
	result.Iterations = iterations
	s.finish(result, converged)
	return result, nil
}

// AffordablePrincipal finds the largest principal, rounded down to the cent, whose
// monthly payment at the given rate and term does not exceed the budget.
func (s *Solver) AffordablePrincipal(ctx context.Context, req PrincipalRequest) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rate := calculation.MonthlyRate(req.AnnualRatePercent)
	payment := func(principal decimal.Decimal) decimal.Decimal {
		return calculation.PeriodicPayment(principal, rate, req.TermMonths)
	}

	result := &Result{Goal: GoalAffordablePrincipal, Target: req.MonthlyBudget}

	// At a zero rate the budget times the term is exact; any interest lowers it.
	hi := req.MonthlyBudget.Mul(decimal.NewFromInt(int64(req.TermMonths)))
	if payment(hi).LessThanOrEqual(req.MonthlyBudget) {
		result.Value = hi
		result.Achieved = payment(hi)
		result.Success = true
		result.ConvergenceInfo = "Exact at a zero interest rate"
		return result, nil
	}

	exceeds := func(principal decimal.Decimal) bool {
		return payment(principal).GreaterThan(req.MonthlyBudget)
	}

	lo, _, iterations, converged, err := s.bisect(ctx, "affordable_principal", decimal.Zero, hi, exceeds)
	if err != nil {
		return nil, err
	}

	result.Value = floorCents(lo)
	result.Achieved = payment(result.Value)
	result.Iterations = iterations
	s.finish(result, converged)
	return result, nil
}

// bisect narrows [lo, hi] where pred(lo) is false and pred(hi) is true until the
// bracket is narrower than the tolerance.
func (s *Solver) bisect(ctx context.Context, op string, lo, hi decimal.Decimal, pred func(decimal.Decimal) bool) (decimal.Decimal, decimal.Decimal, int, bool, error) {
	tolerance := s.Options.Tolerance
	if !tolerance.IsPositive() {
		tolerance = DefaultSolverOptions().Tolerance
	}
	maxIterations := s.Options.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultSolverOptions().MaxIterations
	}

	iterations := 0
	for iterations < maxIterations {
		select {
		case <-ctx.Done():
			return lo, hi, iterations, false, &SolverError{
				Operation: op,
				Message:   "cancelled",
				Cause:     ctx.Err(),
			}
		default:
		}

		if hi.Sub(lo).LessThanOrEqual(tolerance) {
			return lo, hi, iterations, true, nil
		}

		iterations++
		mid := lo.Add(hi).Div(two).Round(8)
		if pred(mid) {
			hi = mid
		} else {
			lo = mid
		}
	}

	s.logger().Debugf("%s: bracket [%s, %s] after %d iterations", op, lo.StringFixed(4), hi.StringFixed(4), iterations)
	return lo, hi, iterations, hi.Sub(lo).LessThanOrEqual(tolerance), nil
}

func (s *Solver) finish(result *Result, converged bool) {
	result.Success = converged
	if converged {
		result.ConvergenceInfo = fmt.Sprintf("Bisection converged in %d iterations", result.Iterations)
	} else {
		result.ConvergenceInfo = fmt.Sprintf("Max iterations (%d) reached", result.Iterations)
	}
	s.logger().Infof("solve %s: %s (%s)", result.Goal, result.Value.StringFixed(2), result.ConvergenceInfo)
}

func (s *Solver) logger() calculation.Logger {
	if s.Logger == nil {
		return calculation.NopLogger{}
	}
	return s.Logger
}

func ceilCents(d decimal.Decimal) decimal.Decimal {
	return d.Mul(hundred).Ceil().Div(hundred)
}

func floorCents(d decimal.Decimal) decimal.Decimal {
	return d.Mul(hundred).Floor().Div(hundred)
}
