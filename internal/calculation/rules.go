package calculation

import (
	"github.com/shopspring/decimal"
)

var (
	zero    = decimal.Zero
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// internalPrecision bounds the mantissa of running balances so long schedules stay cheap
const internalPrecision int32 = 10

// powPrecision is the decimal places kept between squarings in compoundFactor
const powPrecision int32 = 24

const (
	// MaxTermMonths is the longest schedule Amortize builds. Longer terms are degenerate.
	MaxTermMonths = 1200
	// MaxProjectionYears is the longest horizon ProjectGrowth runs. Longer horizons are degenerate.
	MaxProjectionYears = 100
)

// Comparison selects how a StepTable matches its thresholds
type Comparison int

const (
	// AtLeast matches the first step whose threshold is <= x (thresholds descending)
	AtLeast Comparison = iota
	// AtMost matches the first step whose threshold is >= x (thresholds ascending)
	AtMost
)

// Step maps a threshold to an outcome
type Step struct {
	Threshold decimal.Decimal
	Value     decimal.Decimal
}

// StepTable is an ordered step function evaluated first-match
type StepTable struct {
	Match   Comparison
	Steps   []Step
	Default decimal.Decimal
}

// Lookup returns the value of the first matching step, or Default
func (t StepTable) Lookup(x decimal.Decimal) decimal.Decimal {
	for _, s := range t.Steps {
		switch t.Match {
		case AtLeast:
			if x.GreaterThanOrEqual(s.Threshold) {
				return s.Value
			}
		case AtMost:
			if x.LessThanOrEqual(s.Threshold) {
				return s.Value
			}
		}
	}
	return t.Default
}

// LookupInt is Lookup for integer-valued tables
func (t StepTable) LookupInt(x decimal.Decimal) int {
	return int(t.Lookup(x).IntPart())
}

// pair is a (threshold, value) literal used to declare tables
type pair = [2]float64

// steps builds a table from (threshold, value) pairs
func steps(match Comparison, def float64, pairs ...pair) StepTable {
	table := StepTable{Match: match, Default: decimal.NewFromFloat(def)}
	for _, p := range pairs {
		table.Steps = append(table.Steps, Step{
			Threshold: decimal.NewFromFloat(p[0]),
			Value:     decimal.NewFromFloat(p[1]),
		})
	}
	return table
}

// Rule is a (predicate, outcome) pair evaluated against a fact set
type Rule[F any, O any] struct {
	Name string
	When func(F) bool
	Then func(F) O
}

// EvaluateRules runs every rule in order and collects the outcomes of those that apply
func EvaluateRules[F any, O any](rules []Rule[F, O], facts F) []O {
	out := make([]O, 0, len(rules))
	for _, r := range rules {
		if r.When(facts) {
			out = append(out, r.Then(facts))
		}
	}
	return out
}

// capList truncates items to limit; a limit <= 0 leaves the list uncapped
func capList[T any](items []T, limit int) []T {
	if limit <= 0 || len(items) <= limit {
		return items
	}
	return items[:limit]
}

// ClampInt bounds v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MaxDecimal returns the larger of a and b
func MaxDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// floorZero clamps negative amounts to zero
func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return zero
	}
	return d
}

// percentOf returns pct% of amount
func percentOf(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Div(hundred)
}

// compoundFactor returns (1+rate)^periods for periods >= 0, squaring with rounding
// so the mantissa stays bounded
func compoundFactor(rate decimal.Decimal, periods int) decimal.Decimal {
	if periods <= 0 {
		return one
	}
	base := one.Add(rate)
	result := one
	for n := periods; n > 0; n >>= 1 {
		if n&1 == 1 {
			result = result.Mul(base).Round(powPrecision)
		}
		if n > 1 {
			base = base.Mul(base).Round(powPrecision)
		}
	}
	return result
}

// annuityFactor is the future value of 1 paid at the end of each of n periods: ((1+r)^n - 1) / r
func annuityFactor(rate decimal.Decimal, periods int) decimal.Decimal {
	if periods <= 0 {
		return zero
	}
	if rate.IsZero() {
		return decimal.NewFromInt(int64(periods))
	}
	return compoundFactor(rate, periods).Sub(one).Div(rate)
}
