package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/budgetcalc/internal/config"
	"github.com/rgehrsitz/budgetcalc/internal/domain"
)

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Run every calculator in a household file",
	Long: `Run every calculator section present in a YAML or JSON household file
(mortgage, loans, retirement, credit, insurance) and print one report.

Examples:
  budgetcalc calculate household.yaml
  budgetcalc calculate household.yaml --format html --output report.html
  budgetcalc calculate household.yaml --format pdf
  budgetcalc calculate household.yaml --copy`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, logger := setup(cmd)

		cfg, err := loadConfiguration(args[0], settings)
		if err != nil {
			return err
		}
		logger.Debug().Str("file", args[0]).Str("sections", strings.Join(sections(cfg), ",")).Msg("configuration loaded")

		return runReport(cmd, cfg, settings, logger)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a household file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, _ := setup(cmd)

		cfg, err := loadConfiguration(args[0], settings)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file %s is valid\n", args[0])
		fmt.Fprintf(cmd.OutOrStdout(), "  Name:     %s\n", cfg.Name)
		fmt.Fprintf(cmd.OutOrStdout(), "  Sections: %s\n", strings.Join(sections(cfg), ", "))
		return nil
	},
}

// loadConfiguration parses and validates a household file, seeding options from settings
func loadConfiguration(path string, settings config.Settings) (*domain.Configuration, error) {
	if !fileExists(path) {
		return nil, fmt.Errorf("input file %s not found", path)
	}
	parser := config.NewInputParserWithDefaults(settings.CalculationOptions())
	cfg, err := parser.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return cfg, nil
}

// sections names the calculator sections present in cfg
func sections(cfg *domain.Configuration) []string {
	var names []string
	if cfg.Mortgage != nil {
		names = append(names, "mortgage")
	}
	if n := len(cfg.Loans); n > 0 {
		names = append(names, fmt.Sprintf("loans (%d)", n))
	}
	if cfg.Retirement != nil {
		names = append(names, "retirement")
	}
	if cfg.Credit != nil {
		names = append(names, "credit")
	}
	if cfg.Insurance != nil {
		names = append(names, "insurance")
	}
	return names
}

func init() {
	addReportFlags(calculateCmd)

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
}
