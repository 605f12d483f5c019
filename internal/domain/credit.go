package domain

import (
	"github.com/shopspring/decimal"
)

// CreditFactors are the five inputs to the score estimate
type CreditFactors struct {
	PaymentHistoryPercent decimal.Decimal `yaml:"payment_history_percent" json:"paymentHistoryPercent"` // share of payments made on time
	UtilizationPercent    decimal.Decimal `yaml:"utilization_percent" json:"utilizationPercent"`
	HistoryLengthYears    decimal.Decimal `yaml:"history_length_years" json:"historyLengthYears"`
	AccountTypeCount      int             `yaml:"account_type_count" json:"accountTypeCount"`
	RecentInquiryCount    int             `yaml:"recent_inquiry_count" json:"recentInquiryCount"`
}

// CreditFactor names one of the scored factors
type CreditFactor string

const (
	FactorPaymentHistory CreditFactor = "payment_history"
	FactorUtilization    CreditFactor = "utilization"
	FactorHistoryLength  CreditFactor = "history_length"
	FactorCreditMix      CreditFactor = "credit_mix"
	FactorNewCredit      CreditFactor = "new_credit"
)

// FactorContribution is a factor's impact and its weighted share of the score
type FactorContribution struct {
	Factor CreditFactor    `json:"factor"`
	Label  string          `json:"label"`
	Weight int             `json:"weight"`
	Impact int             `json:"impact"` // 0-100
	Points decimal.Decimal `json:"points"` // impact/100 * weight
}

// ScoreRange is the band reported around the point estimate
type ScoreRange struct {
	Low  int `json:"low"`
	High int `json:"high"`
}

// CreditImprovement is an action that should raise the score
type CreditImprovement struct {
	Factor      CreditFactor `json:"factor"`
	Action      string       `json:"action"`
	PointImpact int          `json:"pointImpact"`
	Timeframe   string       `json:"timeframe"`
	Priority    Priority     `json:"priority"`
}

// TimelinePoint is the projected score a number of months out
type TimelinePoint struct {
	Month int    `json:"month"`
	Score int    `json:"score"`
	Note  string `json:"note"`
}

// CreditScoreResult is the output of the score estimator
type CreditScoreResult struct {
	EstimatedScore int                  `json:"estimatedScore"`
	WeightedScore  decimal.Decimal      `json:"weightedScore"` // 0-100
	Range          ScoreRange           `json:"range"`
	Rating         string               `json:"rating"`
	Factors        []FactorContribution `json:"factors"`
	Improvements   []CreditImprovement  `json:"improvements"`
	Timeline       []TimelinePoint      `json:"timeline"`
}

// CreditOptions tunes the estimator. Month12Jitter is added to the twelve-month
// projection; callers wanting variation supply it explicitly.
type CreditOptions struct {
	RecommendationLimit int `yaml:"recommendation_limit" json:"recommendationLimit" toml:"recommendation_limit"`
	Month12Jitter       int `yaml:"month12_jitter" json:"month12Jitter" toml:"month12_jitter"`
}
