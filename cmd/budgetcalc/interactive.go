package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/budgetcalc/internal/config"
	"github.com/rgehrsitz/budgetcalc/internal/domain"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Pick a calculator and answer its questions in a form",
	Long: `Walk through one calculator in a terminal form and print its report.
For live results while typing, use budgetcalc-tui instead.`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

type wizardField struct {
	key   string
	title string
	value string // prefilled answer
	whole bool
}

// wizard is one calculator's questions and how the answers become a configuration
type wizard struct {
	key       string
	label     string
	fields    []wizardField
	configure func(r *numberReader) *domain.Configuration
}

var wizards = []wizard{
	{
		key:   "mortgage",
		label: "Mortgage",
		fields: []wizardField{
			{key: "price", title: "Home price", value: "400000"},
			{key: "down", title: "Down payment", value: "80000"},
			{key: "rate", title: "Interest rate (%/yr)", value: "6.5"},
			{key: "years", title: "Term (years)", value: "30", whole: true},
			{key: "tax-rate", title: "Property tax (% of price/yr)", value: "1.2"},
			{key: "insurance", title: "Homeowners insurance ($/yr)", value: "1200"},
			{key: "hoa", title: "HOA dues ($/mo)", value: "0"},
		},
		configure: func(r *numberReader) *domain.Configuration {
			return &domain.Configuration{Name: "Mortgage", Mortgage: &domain.MortgageInputs{
				HomePrice:              r.Decimal("price"),
				DownPayment:            r.Decimal("down"),
				AnnualRatePercent:      r.Decimal("rate"),
				TermYears:              r.Int("years"),
				PropertyTaxRatePercent: r.Decimal("tax-rate"),
				AnnualInsurance:        r.Decimal("insurance"),
				MonthlyHOA:             r.Decimal("hoa"),
			}}
		},
	},
	{
		key:   "loan",
		label: "Loan",
		fields: []wizardField{
			{key: "principal", title: "Amount financed", value: "25000"},
			{key: "rate", title: "Interest rate (%/yr)", value: "5.9"},
			{key: "months", title: "Term (months)", value: "60", whole: true},
		},
		configure: func(r *numberReader) *domain.Configuration {
			return &domain.Configuration{Name: "Loan", Loans: []domain.LoanInputs{{
				Name:              "loan",
				Principal:         r.Decimal("principal"),
				AnnualRatePercent: r.Decimal("rate"),
				TermMonths:        r.Int("months"),
			}}}
		},
	},
	{
		key:   "retirement",
		label: "Retirement",
		fields: []wizardField{
			{key: "age", title: "Current age", value: "30", whole: true},
			{key: "retire-age", title: "Retirement age", value: "65", whole: true},
			{key: "balance", title: "Current savings", value: "25000"},
			{key: "monthly", title: "Monthly contribution", value: "500"},
			{key: "return", title: "Expected return (%/yr)", value: "7"},
			{key: "income", title: "Annual income (optional)"},
			{key: "expenses", title: "Retirement spending $/yr (optional)"},
		},
		configure: func(r *numberReader) *domain.Configuration {
			return &domain.Configuration{Name: "Retirement", Retirement: &domain.RetirementInputs{
				CurrentAge:               r.Int("age"),
				RetirementAge:            r.Int("retire-age"),
				CurrentBalance:           r.Decimal("balance"),
				MonthlyContribution:      r.Decimal("monthly"),
				AnnualReturnPercent:      r.Decimal("return"),
				AnnualIncome:             r.Decimal("income"),
				AnnualRetirementExpenses: r.Decimal("expenses"),
			}}
		},
	},
	{
		key:   "credit",
		label: "Credit score",
		fields: []wizardField{
			{key: "on-time", title: "Payments on time (%)", value: "95"},
			{key: "utilization", title: "Credit utilization (%)", value: "25"},
			{key: "history-years", title: "Credit history (years)", value: "7"},
			{key: "account-types", title: "Account types", value: "3", whole: true},
			{key: "inquiries", title: "Recent hard inquiries", value: "1", whole: true},
		},
		configure: func(r *numberReader) *domain.Configuration {
			return &domain.Configuration{Name: "Credit", Credit: &domain.CreditFactors{
				PaymentHistoryPercent: r.Decimal("on-time"),
				UtilizationPercent:    r.Decimal("utilization"),
				HistoryLengthYears:    r.Decimal("history-years"),
				AccountTypeCount:      r.Int("account-types"),
				RecentInquiryCount:    r.Int("inquiries"),
			}}
		},
	},
	{
		key:   "insurance",
		label: "Insurance",
		fields: []wizardField{
			{key: "age", title: "Age", value: "35", whole: true},
			{key: "income", title: "Annual income", value: "80000"},
			{key: "dependents", title: "Dependents", value: "2", whole: true},
			{key: "debt", title: "Total debt", value: "250000"},
			{key: "savings", title: "Savings", value: "20000"},
			{key: "expenses", title: "Monthly expenses", value: "4000"},
			{key: "home-value", title: "Home value (0 if renting)", value: "0"},
			{key: "vehicles", title: "Vehicles", value: "1", whole: true},
			{key: "vehicle-value", title: "Combined vehicle value", value: "20000"},
		},
		configure: func(r *numberReader) *domain.Configuration {
			return &domain.Configuration{Name: "Insurance", Insurance: &domain.InsuranceProfile{
				Age:             r.Int("age"),
				AnnualIncome:    r.Decimal("income"),
				Dependents:      r.Int("dependents"),
				TotalDebt:       r.Decimal("debt"),
				Savings:         r.Decimal("savings"),
				MonthlyExpenses: r.Decimal("expenses"),
				HomeValue:       r.Decimal("home-value"),
				VehicleCount:    r.Int("vehicles"),
				VehicleValue:    r.Decimal("vehicle-value"),
			}}
		},
	},
}

func findWizard(key string) (wizard, bool) {
	for _, w := range wizards {
		if w.key == key {
			return w, true
		}
	}
	return wizard{}, false
}

// answer builds and validates the configuration for a set of answers
func (w wizard) answer(values map[string]string, settings config.Settings) (*domain.Configuration, error) {
	r := mapNumbers(values)
	cfg := w.configure(r)
	if err := r.Err(); err != nil {
		return nil, err
	}
	cfg.Options = settings.CalculationOptions()
	if err := config.NewInputParser().ValidateConfiguration(cfg); err != nil {
		return nil, fmt.Errorf("invalid %s inputs: %w", w.key, err)
	}
	return cfg, nil
}

func validateAnswer(f wizardField) func(string) error {
	return func(s string) error {
		r := mapNumbers(map[string]string{f.key: s})
		if f.whole {
			r.Int(f.key)
		} else {
			r.Decimal(f.key)
		}
		return r.Err()
	}
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	settings, logger := setup(cmd)

	options := make([]huh.Option[string], 0, len(wizards))
	for _, w := range wizards {
		options = append(options, huh.NewOption(w.label, w.key))
	}
	var choice string
	pick := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Which calculator?").
			Options(options...).
			Value(&choice),
	))
	if err := pick.Run(); err != nil {
		return formError(err)
	}

	w, ok := findWizard(choice)
	if !ok {
		return fmt.Errorf("unknown calculator %q", choice)
	}

	answers := make([]string, len(w.fields))
	inputs := make([]huh.Field, len(w.fields))
	for i, f := range w.fields {
		answers[i] = f.value
		inputs[i] = huh.NewInput().
			Title(f.title).
			Value(&answers[i]).
			Validate(validateAnswer(f))
	}
	if err := huh.NewForm(huh.NewGroup(inputs...).Title(w.label)).Run(); err != nil {
		return formError(err)
	}

	values := make(map[string]string, len(w.fields))
	for i, f := range w.fields {
		values[f.key] = answers[i]
	}
	cfg, err := w.answer(values, settings)
	if err != nil {
		return err
	}
	logger.Debug().Str("calculator", w.key).Msg("wizard completed")
	return runReport(cmd, cfg, settings, logger)
}

// formError treats an aborted form as a clean exit
func formError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return fmt.Errorf("form: %w", err)
}

func init() {
	addReportFlags(interactiveCmd)
	rootCmd.AddCommand(interactiveCmd)
}
