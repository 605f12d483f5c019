package transform

import (
	"errors"
	"testing"

	"github.com/rgehrsitz/budgetcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Helper function to create a basic test mortgage
func createTestMortgage() *domain.MortgageInputs {
	return &domain.MortgageInputs{
		Name:              "Starter Home",
		HomePrice:         decimal.NewFromInt(400000),
		DownPayment:       decimal.NewFromInt(40000),
		AnnualRatePercent: decimal.NewFromFloat(6.5),
		TermYears:         30,
	}
}

func TestApplyTransforms_NilMortgage(t *testing.T) {
	transforms := []MortgageTransform{&SetTerm{Years: 15}}

	_, err := ApplyTransforms(nil, transforms)
	if err == nil {
		t.Error("Expected error for nil mortgage, got nil")
	}
}

func TestApplyTransforms_EmptyTransforms(t *testing.T) {
	base := createTestMortgage()

	result, err := ApplyTransforms(base, nil)
	if err != nil {
		t.Fatalf("Expected no error for empty transforms, got: %v", err)
	}
	if result == base {
		t.Error("Expected a copy, got the base pointer")
	}
	if result.TermYears != base.TermYears || !result.HomePrice.Equal(base.HomePrice) {
		t.Error("Expected copy to match base")
	}
}

func TestApplyTransforms_NilTransform(t *testing.T) {
	_, err := ApplyTransforms(createTestMortgage(), []MortgageTransform{nil})
	if err == nil {
		t.Error("Expected error for nil transform")
	}
}

func TestApplyTransforms_Chain(t *testing.T) {
	base := createTestMortgage()
	transforms := []MortgageTransform{
		&AdjustRate{DeltaPercent: decimal.NewFromFloat(-0.5)},
		&SetTerm{Years: 15},
		&AddDownPayment{Amount: decimal.NewFromInt(10000)},
	}

	result, err := ApplyTransforms(base, transforms)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !result.AnnualRatePercent.Equal(decimal.NewFromInt(6)) {
		t.Errorf("Expected rate 6, got %s", result.AnnualRatePercent)
	}
	if result.TermYears != 15 {
		t.Errorf("Expected 15-year term, got %d", result.TermYears)
	}
	if !result.DownPayment.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("Expected down payment 50000, got %s", result.DownPayment)
	}

	// Base must be untouched
	if !base.AnnualRatePercent.Equal(decimal.NewFromFloat(6.5)) || base.TermYears != 30 || !base.DownPayment.Equal(decimal.NewFromInt(40000)) {
		t.Error("Base mortgage was mutated")
	}
}

func TestApplyTransforms_ValidationFailure(t *testing.T) {
	base := createTestMortgage()
	base.AnnualRatePercent = decimal.NewFromFloat(0.5)

	_, err := ApplyTransforms(base, []MortgageTransform{&AdjustRate{DeltaPercent: decimal.NewFromInt(-1)}})
	if err == nil {
		t.Fatal("Expected error when the rate would go negative")
	}

	var te *TransformError
	if !errors.As(err, &te) {
		t.Fatalf("Expected TransformError in chain, got %T", err)
	}
	if te.TransformName != "adjust_rate" {
		t.Errorf("Expected transform name adjust_rate, got %s", te.TransformName)
	}
}

func TestSetTerm_Validate(t *testing.T) {
	tests := []struct {
		years   int
		wantErr bool
	}{
		{1, false},
		{15, false},
		{50, false},
		{0, true},
		{51, true},
	}

	for _, tt := range tests {
		err := (&SetTerm{Years: tt.years}).Validate(createTestMortgage())
		if (err != nil) != tt.wantErr {
			t.Errorf("SetTerm{%d}.Validate() error = %v, wantErr %v", tt.years, err, tt.wantErr)
		}
	}
}

func TestSetDownPaymentPercent(t *testing.T) {
	result, err := (&SetDownPaymentPercent{Percent: decimal.NewFromInt(20)}).Apply(createTestMortgage())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.DownPayment.Equal(decimal.NewFromInt(80000)) {
		t.Errorf("Expected down payment 80000, got %s", result.DownPayment)
	}

	if err := (&SetDownPaymentPercent{Percent: decimal.NewFromInt(120)}).Validate(createTestMortgage()); err == nil {
		t.Error("Expected error for a down payment above 100%")
	}
}

func TestAddDownPayment_Validate(t *testing.T) {
	base := createTestMortgage()

	if err := (&AddDownPayment{Amount: decimal.Zero}).Validate(base); err == nil {
		t.Error("Expected error for zero amount")
	}
	if err := (&AddDownPayment{Amount: decimal.NewFromInt(400000)}).Validate(base); err == nil {
		t.Error("Expected error when down payment would exceed price")
	}
	if err := (&AddDownPayment{Amount: decimal.NewFromInt(360000)}).Validate(base); err != nil {
		t.Errorf("Paying the full price should be allowed, got %v", err)
	}
}

func TestTransformError(t *testing.T) {
	cause := errors.New("boom")
	err := NewTransformError("set_term", "apply", "bad years", cause)

	if err.Error() != "transform set_term (apply): bad years: boom" {
		t.Errorf("Unexpected message: %s", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("Expected error to unwrap to its cause")
	}

	noCause := NewTransformError("set_term", "validate", "bad years", nil)
	if noCause.Error() != "transform set_term (validate): bad years" {
		t.Errorf("Unexpected message: %s", noCause.Error())
	}
}

func TestTransformRegistry_ParseTransformSpec(t *testing.T) {
	registry := NewTransformRegistry()

	tests := []struct {
		spec     string
		wantName string
		wantErr  bool
	}{
		{"adjust_rate:delta=-0.25", "adjust_rate", false},
		{"set_term:years=20", "set_term", false},
		{"set_down_payment_percent:percent=25", "set_down_payment_percent", false},
		{"add_down_payment: amount = 5000", "add_down_payment", false},
		{"adjust_rate", "", true},
		{"adjust_rate:", "", true},
		{"adjust_rate:delta=abc", "", true},
		{"set_term:years", "", true},
		{"set_term:years=ten", "", true},
		{"refinance:rate=5", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			transform, err := registry.ParseTransformSpec(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTransformSpec(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}
			if err == nil && transform.Name() != tt.wantName {
				t.Errorf("Expected %s, got %s", tt.wantName, transform.Name())
			}
		})
	}
}

func TestTransformRegistry_List(t *testing.T) {
	names := NewTransformRegistry().List()
	expected := []string{"add_down_payment", "adjust_rate", "set_down_payment_percent", "set_term"}

	if len(names) != len(expected) {
		t.Fatalf("Expected %d transforms, got %d", len(expected), len(names))
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Expected %s at %d, got %s", expected[i], i, names[i])
		}
	}
}
