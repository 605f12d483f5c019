package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/budgetcalc/internal/config"
	"github.com/rgehrsitz/budgetcalc/internal/output"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show current settings",
	Long: `Show the settings read from config.toml, .env and BUDGETCALC_* variables.

Use "settings save" to write new defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, _ := setup(cmd)
		printSettings(cmd.OutOrStdout(), settings)
		return nil
	},
}

var settingsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save settings to config.toml",
	Long: `Save settings to config.toml. Flags that are not given keep their current value.

Example:
  budgetcalc settings save --format json --currency € --log-level info`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, _ := setup(cmd)
		flags := cmd.Flags()

		if flags.Changed("format") {
			format, _ := flags.GetString("format")
			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("unknown format %q (available: %s)", format, strings.Join(output.AvailableFormatterNames(), ", "))
			}
			settings.Output.Format = f.Name()
		}
		if flags.Changed("currency") {
			settings.Output.Currency, _ = flags.GetString("currency")
		}
		if flags.Changed("log-level") {
			level, _ := flags.GetString("log-level")
			level = strings.ToLower(level)
			if !logLevels[level] {
				return fmt.Errorf("unknown log level %q (debug, info, warn, error, off)", level)
			}
			settings.Logging.Level = level
		}
		if flags.Changed("pretty") {
			settings.Logging.Pretty, _ = flags.GetBool("pretty")
		}
		if flags.Changed("retirement-recommendations") {
			settings.Calculation.Retirement.RecommendationLimit, _ = flags.GetInt("retirement-recommendations")
		}
		if flags.Changed("credit-recommendations") {
			settings.Calculation.Credit.RecommendationLimit, _ = flags.GetInt("credit-recommendations")
		}
		if flags.Changed("insurance-recommendations") {
			settings.Calculation.Insurance.RecommendationLimit, _ = flags.GetInt("insurance-recommendations")
		}

		if err := config.SaveSettings(settings); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Settings saved to %s\n", config.SettingsPath())
		return nil
	},
}

var logLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "warning": true, "error": true, "off": true, "disabled": true,
}

func printSettings(w io.Writer, s config.Settings) {
	fmt.Fprintf(w, "  Settings file: %s\n", config.SettingsPath())
	if config.SettingsExist() {
		fmt.Fprintln(w, "  Status: loaded")
	} else {
		fmt.Fprintln(w, "  Status: using defaults (no settings file)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Output]")
	fmt.Fprintf(w, "    Format:   %s\n", s.Output.Format)
	fmt.Fprintf(w, "    Currency: %s\n", s.Output.Currency)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Logging]")
	fmt.Fprintf(w, "    Level:  %s\n", s.Logging.Level)
	fmt.Fprintf(w, "    Pretty: %v\n", s.Logging.Pretty)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Calculation]")
	fmt.Fprintf(w, "    Retirement recommendations: %s\n", limitText(s.Calculation.Retirement.RecommendationLimit))
	fmt.Fprintf(w, "    Credit recommendations:     %s\n", limitText(s.Calculation.Credit.RecommendationLimit))
	fmt.Fprintf(w, "    Insurance recommendations:  %s\n", limitText(s.Calculation.Insurance.RecommendationLimit))
	fmt.Fprintf(w, "    Credit 12-month jitter:     %d\n", s.Calculation.Credit.Month12Jitter)
}

func limitText(n int) string {
	if n <= 0 {
		return "unlimited"
	}
	return fmt.Sprintf("%d", n)
}

func init() {
	f := settingsSaveCmd.Flags()
	f.String("format", "", "Default report format")
	f.String("currency", "", "Currency symbol for reports")
	f.String("log-level", "", "Log level (debug, info, warn, error, off)")
	f.Bool("pretty", true, "Human-readable log output")
	f.Int("retirement-recommendations", 0, "Cap on retirement recommendations; 0 means no cap")
	f.Int("credit-recommendations", 0, "Cap on credit recommendations; 0 means no cap")
	f.Int("insurance-recommendations", 0, "Cap on insurance recommendations; 0 means no cap")

	settingsCmd.AddCommand(settingsSaveCmd)
	rootCmd.AddCommand(settingsCmd)
}
