package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/budgetcalc/internal/config"
	"github.com/rgehrsitz/budgetcalc/internal/domain"
)

var mortgageCmd = &cobra.Command{
	Use:   "mortgage",
	Short: "Calculate a mortgage payment and amortization schedule",
	Long: `Calculate the monthly payment, escrow and amortization schedule of a home purchase.

Examples:
  budgetcalc mortgage --price 400000 --down 80000 --rate 6.5
  budgetcalc mortgage --price 350000 --down 17500 --rate 7 --years 15 --tax-rate 1.1 --insurance 1500`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		nums := flagNumbers(cmd)
		years, _ := cmd.Flags().GetInt("years")
		in := domain.MortgageInputs{
			HomePrice:              nums.Decimal("price"),
			DownPayment:            nums.Decimal("down"),
			AnnualRatePercent:      nums.Decimal("rate"),
			TermYears:              years,
			PropertyTaxRatePercent: nums.Decimal("tax-rate"),
			AnnualInsurance:        nums.Decimal("insurance"),
			MonthlyHOA:             nums.Decimal("hoa"),
			PMIRatePercent:         nums.Decimal("pmi-rate"),
		}
		if err := nums.Err(); err != nil {
			return err
		}
		return runSingle(cmd, &domain.Configuration{Name: "Mortgage", Mortgage: &in})
	},
}

var loanCmd = &cobra.Command{
	Use:   "loan",
	Short: "Calculate a loan payment and amortization schedule",
	Long: `Calculate the fixed monthly payment, total interest and schedule of an amortizing loan.

Examples:
  budgetcalc loan --principal 25000 --rate 5.9 --months 60
  budgetcalc loan --name furniture --principal 5000 --rate 0 --months 10`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		nums := flagNumbers(cmd)
		name, _ := cmd.Flags().GetString("name")
		months, _ := cmd.Flags().GetInt("months")
		in := domain.LoanInputs{
			Name:              name,
			Principal:         nums.Decimal("principal"),
			AnnualRatePercent: nums.Decimal("rate"),
			TermMonths:        months,
		}
		if err := nums.Err(); err != nil {
			return err
		}
		return runSingle(cmd, &domain.Configuration{Name: "Loan", Loans: []domain.LoanInputs{in}})
	},
}

var retirementCmd = &cobra.Command{
	Use:   "retirement",
	Short: "Project retirement savings growth",
	Long: `Project a savings balance with monthly contributions and annual compounding,
and compare current savings against the age-based benchmark.

Examples:
  budgetcalc retirement --age 30 --balance 25000 --monthly 500 --return 7
  budgetcalc retirement --years 20 --balance 100000 --monthly 1000 --expenses 40000`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := retirementFromFlags(cmd)
		if err != nil {
			return err
		}
		return runSingle(cmd, &domain.Configuration{Name: "Retirement", Retirement: &in})
	},
}

var creditCmd = &cobra.Command{
	Use:   "credit",
	Short: "Estimate a credit score from its five factors",
	Long: `Estimate a credit score, its likely range, improvement actions and a
twelve-month outlook.

Example:
  budgetcalc credit --on-time 95 --utilization 25 --history-years 7 --account-types 3 --inquiries 1`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		nums := flagNumbers(cmd)
		types, _ := cmd.Flags().GetInt("account-types")
		inquiries, _ := cmd.Flags().GetInt("inquiries")
		in := domain.CreditFactors{
			PaymentHistoryPercent: nums.Decimal("on-time"),
			UtilizationPercent:    nums.Decimal("utilization"),
			HistoryLengthYears:    nums.Decimal("history-years"),
			AccountTypeCount:      types,
			RecentInquiryCount:    inquiries,
		}
		if err := nums.Err(); err != nil {
			return err
		}
		return runSingle(cmd, &domain.Configuration{Name: "Credit", Credit: &in})
	},
}

var insuranceCmd = &cobra.Command{
	Use:   "insurance",
	Short: "Estimate insurance coverage needs",
	Long: `Estimate life, disability, auto, home and health coverage from a household profile.

Example:
  budgetcalc insurance --age 35 --income 80000 --dependents 2 --marital married \
    --debt 250000 --savings 20000 --expenses 4000 --education --benefits health`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		nums := flagNumbers(cmd)
		flags := cmd.Flags()
		age, _ := flags.GetInt("age")
		dependents, _ := flags.GetInt("dependents")
		marital, _ := flags.GetString("marital")
		education, _ := flags.GetBool("education")
		homeAge, _ := flags.GetInt("home-age")
		vehicles, _ := flags.GetInt("vehicles")
		health, _ := flags.GetString("health")
		jobRisk, _ := flags.GetString("job-risk")
		benefits, _ := flags.GetString("benefits")

		p := domain.InsuranceProfile{
			Age:              age,
			AnnualIncome:     nums.Decimal("income"),
			Dependents:       dependents,
			MaritalStatus:    domain.MaritalStatus(marital),
			TotalDebt:        nums.Decimal("debt"),
			Savings:          nums.Decimal("savings"),
			MonthlyExpenses:  nums.Decimal("expenses"),
			FundEducation:    education,
			HomeValue:        nums.Decimal("home-value"),
			HomeAgeYears:     homeAge,
			VehicleCount:     vehicles,
			VehicleValue:     nums.Decimal("vehicle-value"),
			HealthConditions: splitList(health),
			JobRisk:          domain.JobRisk(jobRisk),
			EmployerBenefits: splitList(benefits),
		}
		if err := nums.Err(); err != nil {
			return err
		}
		return runSingle(cmd, &domain.Configuration{Name: "Insurance", Insurance: &p})
	},
}

func retirementFromFlags(cmd *cobra.Command) (domain.RetirementInputs, error) {
	nums := flagNumbers(cmd)
	age, _ := cmd.Flags().GetInt("age")
	retireAge, _ := cmd.Flags().GetInt("retire-age")
	years, _ := cmd.Flags().GetInt("years")
	in := domain.RetirementInputs{
		CurrentAge:               age,
		RetirementAge:            retireAge,
		Years:                    years,
		CurrentBalance:           nums.Decimal("balance"),
		MonthlyContribution:      nums.Decimal("monthly"),
		AnnualReturnPercent:      nums.Decimal("return"),
		AnnualIncome:             nums.Decimal("income"),
		AnnualRetirementExpenses: nums.Decimal("expenses"),
		EmergencySavings:         nums.Decimal("emergency"),
	}
	return in, nums.Err()
}

// runSingle validates a flag-built configuration the way a file would be and renders it
func runSingle(cmd *cobra.Command, cfg *domain.Configuration) error {
	settings, logger := setup(cmd)
	cfg.Options = settings.CalculationOptions()

	if err := config.NewInputParser().ValidateConfiguration(cfg); err != nil {
		return fmt.Errorf("invalid %s inputs: %w", cmd.Name(), err)
	}
	return runReport(cmd, cfg, settings, logger)
}

// addRetirementFlags registers the projection inputs shared by retirement and solve contribution
func addRetirementFlags(cmd *cobra.Command, withContribution bool) {
	cmd.Flags().Int("age", 30, "Current age")
	cmd.Flags().Int("retire-age", 65, "Retirement age")
	cmd.Flags().Int("years", 0, "Projection years; overrides the age span when set")
	cmd.Flags().String("balance", "0", "Current savings balance")
	if withContribution {
		cmd.Flags().String("monthly", "0", "Monthly contribution")
	}
	cmd.Flags().String("return", "7", "Expected annual return, percent")
	cmd.Flags().String("income", "", "Annual income, used for the savings benchmark")
	cmd.Flags().String("expenses", "", "Annual spending in retirement, used for the 25x goal")
	cmd.Flags().String("emergency", "", "Emergency savings on hand")
}

func init() {
	mortgageCmd.Flags().String("price", "", "Home price (required)")
	mortgageCmd.Flags().String("down", "0", "Down payment")
	mortgageCmd.Flags().String("rate", "", "Annual interest rate, percent (required)")
	mortgageCmd.Flags().Int("years", 30, "Loan term in years")
	mortgageCmd.Flags().String("tax-rate", "0", "Annual property tax, percent of home price")
	mortgageCmd.Flags().String("insurance", "0", "Annual homeowners insurance")
	mortgageCmd.Flags().String("hoa", "0", "Monthly HOA dues")
	mortgageCmd.Flags().String("pmi-rate", "0", "Annual PMI rate, percent of the loan; 0 uses the default")
	_ = mortgageCmd.MarkFlagRequired("price")
	_ = mortgageCmd.MarkFlagRequired("rate")

	loanCmd.Flags().String("name", "loan", "Label for the loan")
	loanCmd.Flags().String("principal", "", "Amount financed (required)")
	loanCmd.Flags().String("rate", "0", "Annual interest rate, percent")
	loanCmd.Flags().Int("months", 60, "Term in months")
	_ = loanCmd.MarkFlagRequired("principal")

	addRetirementFlags(retirementCmd, true)

	creditCmd.Flags().String("on-time", "100", "Share of payments made on time, percent")
	creditCmd.Flags().String("utilization", "0", "Credit utilization, percent")
	creditCmd.Flags().String("history-years", "0", "Length of credit history in years")
	creditCmd.Flags().Int("account-types", 1, "Number of distinct account types")
	creditCmd.Flags().Int("inquiries", 0, "Hard inquiries in the last two years")

	insuranceCmd.Flags().Int("age", 35, "Age")
	insuranceCmd.Flags().String("income", "0", "Annual income")
	insuranceCmd.Flags().Int("dependents", 0, "Number of dependents")
	insuranceCmd.Flags().String("marital", "single", "Marital status (single, married, divorced, widowed)")
	insuranceCmd.Flags().String("debt", "0", "Total debt")
	insuranceCmd.Flags().String("savings", "0", "Liquid savings")
	insuranceCmd.Flags().String("expenses", "0", "Monthly expenses")
	insuranceCmd.Flags().Bool("education", false, "Provision college funding for dependents")
	insuranceCmd.Flags().String("home-value", "0", "Home value; 0 means renting")
	insuranceCmd.Flags().Int("home-age", 0, "Home age in years")
	insuranceCmd.Flags().Int("vehicles", 0, "Number of vehicles")
	insuranceCmd.Flags().String("vehicle-value", "0", "Combined vehicle value")
	insuranceCmd.Flags().String("health", "", "Comma-separated health conditions")
	insuranceCmd.Flags().String("job-risk", "low", "Occupational risk (low, medium, high)")
	insuranceCmd.Flags().String("benefits", "", "Comma-separated employer benefits (life, disability, health)")

	for _, c := range []*cobra.Command{mortgageCmd, loanCmd, retirementCmd, creditCmd, insuranceCmd} {
		addReportFlags(c)
		rootCmd.AddCommand(c)
	}
}
