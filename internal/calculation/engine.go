package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/rgehrsitz/budgetcalc/internal/domain"
)

// CalculationEngine runs every calculator section of a configuration and assembles a report
type CalculationEngine struct {
	Logger Logger
	Debug  bool // log intermediate values
	Now    func() time.Time
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Logger: NopLogger{},
		Now:    time.Now,
	}
}

// SetLogger replaces the engine logger; nil restores the no-op logger
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunConfiguration computes every section present in cfg.
// Calculators never fail; the only error is context cancellation.
func (ce *CalculationEngine) RunConfiguration(ctx context.Context, cfg *domain.Configuration) (*domain.Report, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is nil")
	}

	now := time.Now
	if ce.Now != nil {
		now = ce.Now
	}

	report := &domain.Report{
		Name:        cfg.Name,
		Description: cfg.Description,
		GeneratedAt: now(),
		Assumptions: []string{},
	}

	if cfg.Mortgage != nil {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("mortgage calculation cancelled: %w", err)
		}
		result := CalculateMortgage(*cfg.Mortgage)
		ce.Logger.Infof("mortgage: principal %s, total monthly payment %s",
			result.Loan.Principal.StringFixed(2), result.TotalMonthlyPayment.StringFixed(2))
		if result.Loan.IsDegenerate() {
			ce.Logger.Warnf("mortgage inputs produced no amortization schedule")
		}
		report.Mortgage = &result
	}

	for i, in := range cfg.Loans {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("loan calculation cancelled: %w", err)
		}
		name := in.Name
		if name == "" {
			name = fmt.Sprintf("loan %d", i+1)
		}
		result := CalculateLoan(in)
		if ce.Debug {
			ce.Logger.Debugf("%s: payment %s over %d months", name, result.PeriodicPayment.StringFixed(2), result.TermMonths)
		}
		if result.IsDegenerate() {
			ce.Logger.Warnf("%s produced no amortization schedule", name)
		}
		report.Loans = append(report.Loans, domain.NamedLoan{Name: name, Result: result})
	}

	if cfg.Retirement != nil {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("retirement projection cancelled: %w", err)
		}
		result := ProjectGrowth(*cfg.Retirement, cfg.Options.Retirement)
		ce.Logger.Infof("retirement: %d years, final balance %s, benchmark %s",
			result.Years, result.FinalBalance.StringFixed(2), result.Benchmark.Status)
		if result.Years == 0 {
			ce.Logger.Warnf("retirement projection has no years to project")
		}
		report.Retirement = &result
		report.Assumptions = append(report.Assumptions,
			"Retirement growth compounds annually with contributions made at each year end")
	}

	if cfg.Credit != nil {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("credit estimate cancelled: %w", err)
		}
		result := EstimateCreditScore(*cfg.Credit, cfg.Options.Credit)
		ce.Logger.Infof("credit: estimated score %d (%s)", result.EstimatedScore, result.Rating)
		report.Credit = &result
		report.Assumptions = append(report.Assumptions,
			"Credit score is an educational estimate, not a bureau score")
	}

	if cfg.Insurance != nil {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("insurance estimate cancelled: %w", err)
		}
		result := EstimateInsuranceNeeds(*cfg.Insurance, cfg.Options.Insurance)
		ce.Logger.Infof("insurance: life need %s, risk %s",
			result.Life.Recommended.StringFixed(2), result.Risk.Level)
		report.Insurance = &result
		report.Assumptions = append(report.Assumptions,
			"Insurance premium is a fixed-percentage estimate, not a quote")
	}

	return report, nil
}
