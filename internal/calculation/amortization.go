package calculation

import (
	"github.com/rgehrsitz/budgetcalc/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	defaultPMIRatePercent = decimal.NewFromFloat(0.5)
	pmiLoanToValueLimit   = decimal.NewFromFloat(0.8)
)

// Amortize computes the fixed monthly payment and the period-by-period schedule for a loan.
//
// A non-positive principal, a term outside 1..MaxTermMonths, or a negative rate yields
// a zeroed result with an empty schedule. A zero rate amortizes straight-line. The final period pays off whatever
// balance remains, so the principal portions always sum to the original principal.
func Amortize(principal, annualRatePercent decimal.Decimal, termInPeriods int) domain.LoanResult {
	result := domain.LoanResult{
		Principal:         principal,
		AnnualRatePercent: annualRatePercent,
		TermMonths:        termInPeriods,
		Schedule:          []domain.PeriodEntry{},
	}
	if !principal.IsPositive() || termInPeriods <= 0 || termInPeriods > MaxTermMonths || annualRatePercent.IsNegative() {
		return result
	}

	rate := MonthlyRate(annualRatePercent)
	payment := PeriodicPayment(principal, rate, termInPeriods)

	result.PeriodicPayment = payment
	result.TotalPaid = payment.Mul(decimal.NewFromInt(int64(termInPeriods)))
	result.TotalInterest = result.TotalPaid.Sub(principal)
	result.Schedule = buildSchedule(principal, rate, payment, termInPeriods)
	return result
}

// MonthlyRate converts an annual percentage to a per-month fraction
func MonthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.Div(hundred).Div(twelve)
}

// PeriodicPayment is the annuity payment that retires principal over periods at periodicRate.
// It is zero outside 1..MaxTermMonths periods.
func PeriodicPayment(principal, periodicRate decimal.Decimal, periods int) decimal.Decimal {
	if !principal.IsPositive() || periods <= 0 || periods > MaxTermMonths {
		return zero
	}
	n := decimal.NewFromInt(int64(periods))
	if periodicRate.IsZero() {
		return principal.Div(n)
	}
	factor := compoundFactor(periodicRate, periods)
	denominator := factor.Sub(one)
	if denominator.IsZero() {
		return principal.Div(n)
	}
	return principal.Mul(periodicRate).Mul(factor).Div(denominator)
}

func buildSchedule(principal, rate, payment decimal.Decimal, term int) []domain.PeriodEntry {
	schedule := make([]domain.PeriodEntry, 0, term)
	balance := principal

	for period := 1; period <= term; period++ {
		interest := balance.Mul(rate).Round(internalPrecision)
		principalPortion := payment.Sub(interest)

		// last period absorbs rounding drift
		if period == term || principalPortion.GreaterThan(balance) {
			principalPortion = balance
		}
		balance = floorZero(balance.Sub(principalPortion))

		schedule = append(schedule, domain.PeriodEntry{
			Period:           period,
			PrincipalPortion: principalPortion,
			InterestPortion:  interest,
			RemainingBalance: balance,
		})
	}

	return schedule
}

// CalculateLoan runs the direct loan framing
func CalculateLoan(in domain.LoanInputs) domain.LoanResult {
	return Amortize(in.Principal, in.AnnualRatePercent, in.TermMonths)
}

// CalculateMortgage amortizes price less down payment and layers escrow, HOA and PMI on top.
// PMI applies when the loan-to-value ratio exceeds 80%.
func CalculateMortgage(in domain.MortgageInputs) domain.MortgageResult {
	term := in.TermMonths()
	if in.TermYears > MaxTermMonths/12 {
		// out of range, and TermYears*12 may have overflowed
		term = 0
	}
	loan := Amortize(in.Principal(), in.AnnualRatePercent, term)

	result := domain.MortgageResult{
		Inputs:                   in,
		Loan:                     loan,
		LoanToValue:              in.LoanToValue(),
		MonthlyPrincipalInterest: loan.PeriodicPayment,
		MonthlyPropertyTax:       percentOf(floorZero(in.HomePrice), floorZero(in.PropertyTaxRatePercent)).Div(twelve),
		MonthlyInsurance:         floorZero(in.AnnualInsurance).Div(twelve),
		MonthlyHOA:               floorZero(in.MonthlyHOA),
	}

	if !loan.IsDegenerate() && result.LoanToValue.GreaterThan(pmiLoanToValueLimit) {
		pmiRate := in.PMIRatePercent
		if !pmiRate.IsPositive() {
			pmiRate = defaultPMIRatePercent
		}
		result.MonthlyPMI = percentOf(loan.Principal, pmiRate).Div(twelve)
	}

	result.TotalMonthlyPayment = result.MonthlyPrincipalInterest.
		Add(result.MonthlyPropertyTax).
		Add(result.MonthlyInsurance).
		Add(result.MonthlyHOA).
		Add(result.MonthlyPMI)

	return result
}
