package calculation

import (
	"testing"

	"github.com/rgehrsitz/budgetcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func creditFactors(payment, utilization, history float64, mix, inquiries int) domain.CreditFactors {
	return domain.CreditFactors{
		PaymentHistoryPercent: decimal.NewFromFloat(payment),
		UtilizationPercent:    decimal.NewFromFloat(utilization),
		HistoryLengthYears:    decimal.NewFromFloat(history),
		AccountTypeCount:      mix,
		RecentInquiryCount:    inquiries,
	}
}

func TestEstimateCreditScore_Scores(t *testing.T) {
	tests := []struct {
		name    string
		factors domain.CreditFactors
		score   int
		rating  string
		low     int
		high    int
	}{
		{
			name:    "every factor at its best",
			factors: creditFactors(100, 5, 12, 4, 0),
			score:   850,
			rating:  "Exceptional",
			low:     825,
			high:    850,
		},
		{
			name:    "solid profile with moderate utilization",
			factors: creditFactors(95, 25, 7, 3, 1),
			score:   780, // weighted 87.25
			rating:  "Very Good",
			low:     755,
			high:    805,
		},
		{
			name:    "thin file with missed payments",
			factors: creditFactors(60, 80, 0.5, 0, 6),
			score:   417, // weighted 21.25
			rating:  "Poor",
			low:     392,
			high:    442,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EstimateCreditScore(tt.factors, domain.CreditOptions{})

			assert.Equal(t, tt.score, result.EstimatedScore, "Estimated score")
			assert.Equal(t, tt.rating, result.Rating, "Rating")
			assert.Equal(t, tt.low, result.Range.Low, "Range low")
			assert.Equal(t, tt.high, result.Range.High, "Range high")
			assert.GreaterOrEqual(t, result.EstimatedScore, 300)
			assert.LessOrEqual(t, result.EstimatedScore, 850)
			require.Len(t, result.Factors, 5, "One contribution per factor")
		})
	}
}

func TestEstimateCreditScore_FactorBreakdown(t *testing.T) {
	result := EstimateCreditScore(creditFactors(95, 25, 7, 3, 1), domain.CreditOptions{})

	weights := 0
	points := decimal.Zero
	for _, f := range result.Factors {
		weights += f.Weight
		points = points.Add(f.Points)
	}
	assert.Equal(t, 100, weights, "Weights sum to 100")
	assert.True(t, points.Equal(result.WeightedScore), "Factor points sum to the weighted score")
	assertDecimalNear(t, 87.25, result.WeightedScore, 1e-12, "Weighted score")

	assert.Equal(t, domain.FactorPaymentHistory, result.Factors[0].Factor)
	assert.Equal(t, 100, result.Factors[0].Impact)
	assert.Equal(t, domain.FactorUtilization, result.Factors[1].Factor)
	assert.Equal(t, 75, result.Factors[1].Impact)
}

func TestScoreFromWeighted(t *testing.T) {
	assert.Equal(t, 300, ScoreFromWeighted(decimal.Zero), "Floor of the scale")
	assert.Equal(t, 850, ScoreFromWeighted(decimal.NewFromInt(100)), "Ceiling of the scale")
	assert.Equal(t, 746, ScoreFromWeighted(decimal.NewFromInt(81)), "745.5 rounds half away from zero")
	assert.Equal(t, 850, ScoreFromWeighted(decimal.NewFromInt(120)), "Clamped to the ceiling")
}

func TestCreditRating(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{850, "Exceptional"},
		{800, "Exceptional"},
		{799, "Very Good"},
		{740, "Very Good"},
		{739, "Good"},
		{670, "Good"},
		{669, "Fair"},
		{580, "Fair"},
		{579, "Poor"},
		{300, "Poor"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CreditRating(tt.score), "Rating for %d", tt.score)
	}
}

func TestEstimateCreditScore_Improvements(t *testing.T) {
	factors := creditFactors(60, 80, 0.5, 0, 6)

	result := EstimateCreditScore(factors, domain.CreditOptions{})

	require.Len(t, result.Improvements, 5)
	got := make([]domain.CreditFactor, 0, len(result.Improvements))
	for _, imp := range result.Improvements {
		got = append(got, imp.Factor)
	}
	assert.Equal(t, []domain.CreditFactor{
		domain.FactorUtilization,
		domain.FactorPaymentHistory,
		domain.FactorNewCredit,
		domain.FactorHistoryLength,
		domain.FactorCreditMix,
	}, got, "High first, rule order kept within a priority")

	assert.Equal(t, 35, result.Improvements[0].PointImpact)
	assert.Equal(t, "1-2 months", result.Improvements[0].Timeframe)

	capped := EstimateCreditScore(factors, domain.CreditOptions{RecommendationLimit: 2})
	require.Len(t, capped.Improvements, 2)
	assert.Equal(t, domain.PriorityHigh, capped.Improvements[1].Priority)
}

func TestEstimateCreditScore_NoImprovementsForStrongProfile(t *testing.T) {
	result := EstimateCreditScore(creditFactors(100, 5, 12, 4, 0), domain.CreditOptions{})

	assert.NotNil(t, result.Improvements)
	assert.Empty(t, result.Improvements)
}

func TestEstimateCreditScore_Timeline(t *testing.T) {
	factors := creditFactors(60, 80, 0.5, 0, 6)

	result := EstimateCreditScore(factors, domain.CreditOptions{})
	require.Len(t, result.Timeline, 4)

	months := []int{0, 3, 6, 12}
	scores := []int{417, 437, 462, 492}
	for i, point := range result.Timeline {
		assert.Equal(t, months[i], point.Month)
		assert.Equal(t, scores[i], point.Score, "Month %d", point.Month)
	}

	jittered := EstimateCreditScore(factors, domain.CreditOptions{Month12Jitter: 7})
	assert.Equal(t, 499, jittered.Timeline[3].Score, "Jitter only moves month twelve")
	assert.Equal(t, 462, jittered.Timeline[2].Score)

	again := EstimateCreditScore(factors, domain.CreditOptions{Month12Jitter: 7})
	assert.Equal(t, jittered, again, "Same inputs give the same result")

	top := EstimateCreditScore(creditFactors(100, 5, 12, 4, 0), domain.CreditOptions{Month12Jitter: 15})
	assert.Equal(t, 850, top.Timeline[3].Score, "Timeline is clamped to the ceiling")
}
