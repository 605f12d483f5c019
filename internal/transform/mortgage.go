package transform

import (
	"fmt"

	"github.com/rgehrsitz/budgetcalc/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// AdjustRate shifts the annual rate by DeltaPercent percentage points
type AdjustRate struct {
	DeltaPercent decimal.Decimal
}

func (t *AdjustRate) Name() string { return "adjust_rate" }

func (t *AdjustRate) Description() string {
	sign := "+"
	if t.DeltaPercent.IsNegative() {
		sign = ""
	}
	return fmt.Sprintf("Change the interest rate by %s%s percentage points", sign, t.DeltaPercent.String())
}

func (t *AdjustRate) Validate(base *domain.MortgageInputs) error {
	if base == nil {
		return NewTransformError(t.Name(), "validate", "base mortgage is nil", nil)
	}
	if base.AnnualRatePercent.Add(t.DeltaPercent).IsNegative() {
		return NewTransformError(t.Name(), "validate",
			fmt.Sprintf("rate %s%% cannot drop by %s points", base.AnnualRatePercent.String(), t.DeltaPercent.Abs().String()), nil)
	}
	return nil
}

func (t *AdjustRate) Apply(base *domain.MortgageInputs) (*domain.MortgageInputs, error) {
	if err := t.Validate(base); err != nil {
		return nil, err
	}
	// Copy, then shift the rate
	next := *base
	next.AnnualRatePercent = base.AnnualRatePercent.Add(t.DeltaPercent)
	return &next, nil
}

// SetTerm replaces the loan term
type SetTerm struct {
	Years int
}

func (t *SetTerm) Name() string { return "set_term" }

func (t *SetTerm) Description() string {
	return fmt.Sprintf("Use a %d-year term", t.Years)
}

func (t *SetTerm) Validate(base *domain.MortgageInputs) error {
	if base == nil {
		return NewTransformError(t.Name(), "validate", "base mortgage is nil", nil)
	}
	if t.Years < 1 || t.Years > 50 {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("term of %d years is outside 1-50", t.Years), nil)
	}
	return nil
}

func (t *SetTerm) Apply(base *domain.MortgageInputs) (*domain.MortgageInputs, error) {
	if err := t.Validate(base); err != nil {
		return nil, err
	}
	next := *base
	next.TermYears = t.Years
	return &next, nil
}

// SetDownPaymentPercent sets the down payment to a share of the home price
type SetDownPaymentPercent struct {
	Percent decimal.Decimal
}

func (t *SetDownPaymentPercent) Name() string { return "set_down_payment_percent" }

func (t *SetDownPaymentPercent) Description() string {
	return fmt.Sprintf("Put %s%% down", t.Percent.String())
}

func (t *SetDownPaymentPercent) Validate(base *domain.MortgageInputs) error {
	if base == nil {
		return NewTransformError(t.Name(), "validate", "base mortgage is nil", nil)
	}
	if t.Percent.IsNegative() || t.Percent.GreaterThan(hundred) {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("down payment of %s%% is outside 0-100", t.Percent.String()), nil)
	}
	return nil
}

func (t *SetDownPaymentPercent) Apply(base *domain.MortgageInputs) (*domain.MortgageInputs, error) {
	if err := t.Validate(base); err != nil {
		return nil, err
	}
	// Down payment as a share of the price
	next := *base
	next.DownPayment = base.HomePrice.Mul(t.Percent).Div(hundred)
	return &next, nil
}

// AddDownPayment increases the down payment by a fixed amount
type AddDownPayment struct {
	Amount decimal.Decimal
}

func (t *AddDownPayment) Name() string { return "add_down_payment" }

func (t *AddDownPayment) Description() string {
	return fmt.Sprintf("Add $%s to the down payment", t.Amount.StringFixed(0))
}

func (t *AddDownPayment) Validate(base *domain.MortgageInputs) error {
	if base == nil {
		return NewTransformError(t.Name(), "validate", "base mortgage is nil", nil)
	}
	if !t.Amount.IsPositive() {
		return NewTransformError(t.Name(), "validate", "amount must be positive", nil)
	}
	// Check the loan does not go negative
	if base.DownPayment.Add(t.Amount).GreaterThan(base.HomePrice) {
		return NewTransformError(t.Name(), "validate", "down payment would exceed the home price", nil)
	}
	return nil
}

func (t *AddDownPayment) Apply(base *domain.MortgageInputs) (*domain.MortgageInputs, error) {
	if err := t.Validate(base); err != nil {
		return nil, err
	}
	next := *base
	next.DownPayment = base.DownPayment.Add(t.Amount)
	return &next, nil
}
