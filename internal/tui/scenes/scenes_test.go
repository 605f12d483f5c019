package scenes

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/budgetcalc/internal/domain"
	"github.com/rgehrsitz/budgetcalc/internal/tui/components"
)

func typeText(s *FormScene, text string) {
	for _, r := range text {
		s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func clearFocused(s *FormScene) {
	f := s.FocusedField()
	for range f.Value() {
		s.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
}

func TestMortgageScene_InitialResults(t *testing.T) {
	s := NewMortgageScene(DefaultMortgage())

	require.NoError(t, s.Err())
	out := s.Output()
	assert.Contains(t, out, "Monthly payment")
	assert.Contains(t, out, "$2,022.62", "Principal and interest on 320k at 6.5% over 30 years")
	assert.Contains(t, out, "$2,522.62", "Plus 400 tax and 100 insurance")
	assert.Contains(t, out, "Remaining balance")
}

func TestFormScene_FocusCycles(t *testing.T) {
	s := NewMortgageScene(DefaultMortgage())
	s.Activate()
	assert.Equal(t, "price", s.FocusedField().Key)

	s.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "down", s.FocusedField().Key)
	assert.False(t, s.Field("price").Focused())
	assert.True(t, s.Field("down").Focused())

	s.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	s.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "pmi", s.FocusedField().Key, "Moving up from the first field wraps to the last")

	s.Deactivate()
	assert.False(t, s.Field("pmi").Focused())
}

func TestFormScene_RecalculatesOnEveryKeystroke(t *testing.T) {
	s := NewMortgageScene(DefaultMortgage())
	s.Activate()
	s.Update(tea.KeyMsg{Type: tea.KeyTab}) // down payment

	clearFocused(s)
	require.NoError(t, s.Err(), "An empty field counts as zero")
	assert.Contains(t, s.Output(), "LTV 100.0% > 80%")

	typeText(s, "80000")
	require.NoError(t, s.Err())
	assert.Contains(t, s.Output(), "$2,022.62")
	assert.Equal(t, "80000", s.Field("down").Value())
}

func TestFormScene_InvalidInputKeepsLastResults(t *testing.T) {
	s := NewMortgageScene(DefaultMortgage())
	s.Activate()
	before := s.Output()

	typeText(s, "x")
	require.Error(t, s.Err())
	assert.Contains(t, s.Err().Error(), "Home price")
	assert.Equal(t, before, s.Output())
	assert.Contains(t, s.View(), "showing last valid results")

	s.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.NoError(t, s.Err())
}

func TestMortgageScene_Incomplete(t *testing.T) {
	in := DefaultMortgage()
	in.HomePrice = decimal.Zero
	s := NewMortgageScene(in)

	assert.True(t, errors.Is(s.Err(), errIncomplete))
	assert.Empty(t, s.Output())
}

func TestLoanScene(t *testing.T) {
	s := NewLoanScene(domain.LoanInputs{
		Name:       "furniture",
		Principal:  decimal.NewFromInt(5000),
		TermMonths: 10,
	})

	assert.Equal(t, "Loan: furniture", s.Title)
	require.NoError(t, s.Err())
	assert.Contains(t, s.Output(), "$500.00")
	assert.Contains(t, s.Output(), "0.0% of all payments")

	zeroTerm := NewLoanScene(domain.LoanInputs{Principal: decimal.NewFromInt(5000)})
	assert.True(t, errors.Is(zeroTerm.Err(), errIncomplete))
}

func TestLoanScene_HugeTermShowsValidationError(t *testing.T) {
	s := NewLoanScene(DefaultLoan())
	s.Activate()
	s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, "term", s.FocusedField().Key)

	clearFocused(s)
	typeText(s, "1000000000000000")

	require.Error(t, s.Err())
	assert.Contains(t, s.Err().Error(), "term months must be between 1 and 600")
	assert.Contains(t, s.Output(), "Monthly payment", "Last valid results stay on screen")
}

func TestRetirementScene_HorizonPastLimit(t *testing.T) {
	in := DefaultRetirement()
	in.RetirementAge = 1_000_000_000
	s := NewRetirementScene(in, domain.DefaultRetirementOptions())

	require.Error(t, s.Err())
	assert.Contains(t, s.Err().Error(), "projection horizon must be at most 100 years")
	assert.Empty(t, s.Output())
}

func TestRetirementScene(t *testing.T) {
	s := NewRetirementScene(DefaultRetirement(), domain.DefaultRetirementOptions())

	require.NoError(t, s.Err())
	out := s.Output()
	assert.Contains(t, out, "Balance at 65")
	assert.Contains(t, out, "after 35 years")
	assert.Contains(t, out, "Projected balance")
	assert.Contains(t, out, "contributions")

	in := DefaultRetirement()
	in.RetirementAge = in.CurrentAge
	assert.True(t, errors.Is(NewRetirementScene(in, domain.RetirementOptions{}).Err(), errIncomplete))
}

func TestRetirementScene_Goal(t *testing.T) {
	in := DefaultRetirement()
	in.AnnualRetirementExpenses = decimal.NewFromInt(40000)
	s := NewRetirementScene(in, domain.DefaultRetirementOptions())

	require.NoError(t, s.Err())
	assert.Contains(t, s.Output(), "$1,000,000")
}

func TestCreditScene(t *testing.T) {
	s := NewCreditScene(DefaultCredit(), domain.CreditOptions{})

	require.NoError(t, s.Err())
	out := s.Output()
	assert.Contains(t, out, "Estimated score")
	assert.Contains(t, out, "Factors")
	assert.Contains(t, out, "Outlook")
}

func TestInsuranceScene(t *testing.T) {
	p := DefaultInsurance()
	p.EmployerBenefits = []string{domain.BenefitHealth}
	s := NewInsuranceScene(p, domain.DefaultInsuranceOptions())

	require.NoError(t, s.Err())
	out := s.Output()
	assert.Contains(t, out, "Life insurance")
	assert.Contains(t, out, "x income")
	assert.Contains(t, out, "rough estimate")
	assert.Contains(t, out, "Emergency fund")
}

func TestValues_FirstErrorWins(t *testing.T) {
	v := &Values{fields: map[string]*components.Field{
		"a": components.NewField("a", "First", "oops"),
		"b": components.NewField("b", "Second", "nope"),
		"c": components.NewField("c", "Third", "7"),
	}}

	assert.True(t, v.Decimal("c").Equal(decimal.NewFromInt(7)))
	assert.Equal(t, 0, v.Int("a"))
	v.Decimal("b")
	assert.True(t, v.Decimal("missing").IsZero())

	require.Error(t, v.Err())
	assert.Contains(t, v.Err().Error(), "First")
}
