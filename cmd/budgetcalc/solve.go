package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/budgetcalc/internal/logging"
	"github.com/rgehrsitz/budgetcalc/internal/solver"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Work a calculator backwards from a goal",
	Long: `Find the input that reaches a goal:

  contribution  monthly contribution that grows savings to a target balance
  principal     largest loan a monthly budget can carry`,
}

var solveContributionCmd = &cobra.Command{
	Use:   "contribution",
	Short: "Find the monthly contribution that reaches a target balance",
	Long: `Find the smallest monthly contribution, rounded up to the cent, whose
projected balance reaches the target.

Example:
  budgetcalc solve contribution --target 1000000 --age 30 --balance 25000 --return 7`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := retirementFromFlags(cmd)
		if err != nil {
			return err
		}
		nums := flagNumbers(cmd)
		target := nums.Decimal("target")
		if err := nums.Err(); err != nil {
			return err
		}

		s := newSolver(cmd)
		result, err := s.RequiredContribution(cmd.Context(), solver.ContributionRequest{
			Inputs:        in,
			TargetBalance: target,
		})
		if err != nil {
			return err
		}
		return printSolverResult(cmd, result)
	},
}

var solvePrincipalCmd = &cobra.Command{
	Use:   "principal",
	Short: "Find the largest principal a monthly budget can carry",
	Long: `Find the largest principal, rounded down to the cent, whose monthly
payment fits the budget at the given rate and term.

Example:
  budgetcalc solve principal --budget 2000 --rate 6.5 --months 360`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		nums := flagNumbers(cmd)
		months, _ := cmd.Flags().GetInt("months")
		req := solver.PrincipalRequest{
			MonthlyBudget:     nums.Decimal("budget"),
			AnnualRatePercent: nums.Decimal("rate"),
			TermMonths:        months,
		}
		if err := nums.Err(); err != nil {
			return err
		}

		s := newSolver(cmd)
		result, err := s.AffordablePrincipal(cmd.Context(), req)
		if err != nil {
			return err
		}
		return printSolverResult(cmd, result)
	},
}

func newSolver(cmd *cobra.Command) *solver.Solver {
	_, logger := setup(cmd)
	s := solver.NewDefaultSolver()
	s.Logger = logging.NewEngineLogger(logger)
	return s
}

func printSolverResult(cmd *cobra.Command, result *solver.Result) error {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json":
		out, err := (&solver.JSONFormatter{Pretty: true}).Format(result)
		if err != nil {
			return fmt.Errorf("formatting result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	case "table":
		fmt.Fprint(cmd.OutOrStdout(), (&solver.TableFormatter{}).Format(result))
	default:
		return fmt.Errorf("unsupported format: %s (supported: table, json)", format)
	}
	return nil
}

func init() {
	addRetirementFlags(solveContributionCmd, false)
	solveContributionCmd.Flags().String("target", "", "Target balance at the end of the projection (required)")
	_ = solveContributionCmd.MarkFlagRequired("target")

	solvePrincipalCmd.Flags().String("budget", "", "Monthly payment budget (required)")
	solvePrincipalCmd.Flags().String("rate", "0", "Annual interest rate, percent")
	solvePrincipalCmd.Flags().Int("months", 360, "Term in months")
	_ = solvePrincipalCmd.MarkFlagRequired("budget")

	for _, c := range []*cobra.Command{solveContributionCmd, solvePrincipalCmd} {
		c.Flags().StringP("format", "f", "table", "Output format (table, json)")
		c.Flags().Bool("debug", false, "Enable debug logging for the search")
		solveCmd.AddCommand(c)
	}
	rootCmd.AddCommand(solveCmd)
}
