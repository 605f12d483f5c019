package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/budgetcalc/internal/compare"
	"github.com/rgehrsitz/budgetcalc/internal/logging"
	"github.com/rgehrsitz/budgetcalc/internal/transform"
)

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare a mortgage against what-if variations",
	Long: `Compare the mortgage in a household file against built-in templates
and ad-hoc transforms, showing payment and interest deltas from the base.

Transforms take the form name:key=value and are separated by semicolons.

Examples:
  budgetcalc compare household.yaml --with rate_minus_1,term_15yr
  budgetcalc compare household.yaml --with down_20pct --format csv
  budgetcalc compare household.yaml --transform "adjust_rate:delta=-0.25;set_term:years=20"
  budgetcalc compare --list-templates  # Show all available templates
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if listTemplates, _ := cmd.Flags().GetBool("list-templates"); listTemplates {
			fmt.Fprint(cmd.OutOrStdout(), transform.GetTemplateHelp(transform.CreateBuiltInTemplates()))
			return nil
		}

		if len(args) == 0 {
			return fmt.Errorf("input file required for comparison (use --list-templates to see available templates)")
		}

		withStr, _ := cmd.Flags().GetString("with")
		transformStr, _ := cmd.Flags().GetString("transform")
		templates := transform.ParseTemplateList(withStr)
		specs := splitSpecs(transformStr)
		if len(templates) == 0 && len(specs) == 0 {
			return fmt.Errorf("nothing to compare: pass --with templates or --transform specs")
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "table", "compact", "csv", "json":
		default:
			return fmt.Errorf("unsupported format: %s (supported: table, compact, csv, json)", format)
		}

		settings, logger := setup(cmd)
		cfg, err := loadConfiguration(args[0], settings)
		if err != nil {
			return err
		}
		if cfg.Mortgage == nil {
			return fmt.Errorf("%s has no mortgage section to compare", args[0])
		}

		baseName, _ := cmd.Flags().GetString("base")
		engine := compare.NewCompareEngine()
		engine.Logger = logging.NewEngineLogger(logger)

		compSet, err := engine.Compare(cmd.Context(), *cfg.Mortgage, compare.CompareOptions{
			BaseScenarioName: baseName,
			Templates:        templates,
			TransformSpecs:   specs,
		})
		if err != nil {
			return fmt.Errorf("comparison failed: %w", err)
		}
		compSet.ConfigPath = args[0]

		var out string
		switch format {
		case "csv":
			out, err = (&compare.CSVFormatter{}).Format(compSet)
		case "json":
			out, err = (&compare.JSONFormatter{Pretty: true}).Format(compSet)
		case "compact":
			out = (&compare.TableFormatter{}).FormatCompact(compSet)
		default:
			out = (&compare.TableFormatter{}).Format(compSet)
		}
		if err != nil {
			return fmt.Errorf("formatting comparison: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

// splitSpecs splits semicolon-separated transform specs; commas belong to a spec's parameters
func splitSpecs(s string) []string {
	var specs []string
	for _, part := range strings.Split(s, ";") {
		if part = strings.TrimSpace(part); part != "" {
			specs = append(specs, part)
		}
	}
	return specs
}

func init() {
	compareCmd.Flags().String("base", "", "Label for the base row (defaults to the mortgage name)")
	compareCmd.Flags().String("with", "", "Comma-separated list of templates to compare")
	compareCmd.Flags().String("transform", "", "Semicolon-separated ad-hoc transforms, e.g. adjust_rate:delta=-0.5")
	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, compact, csv, json)")
	compareCmd.Flags().Bool("list-templates", false, "List all available templates")
	compareCmd.Flags().Bool("debug", false, "Enable debug logging for the comparison")

	rootCmd.AddCommand(compareCmd)
}
