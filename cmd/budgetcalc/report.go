package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/budgetcalc/internal/calculation"
	"github.com/rgehrsitz/budgetcalc/internal/config"
	"github.com/rgehrsitz/budgetcalc/internal/domain"
	"github.com/rgehrsitz/budgetcalc/internal/logging"
	"github.com/rgehrsitz/budgetcalc/internal/output"
)

// setup loads user settings and builds the logger for a command run.
// A broken settings file is reported and the defaults are used.
func setup(cmd *cobra.Command) (config.Settings, zerolog.Logger) {
	settings, settingsErr := config.LoadSettings()

	level := settings.Logging.Level
	if f := cmd.Flags().Lookup("debug"); f != nil && f.Value.String() == "true" {
		level = "debug"
	}
	logger := logging.New(logging.Config{
		Level:  level,
		Pretty: settings.Logging.Pretty,
		Output: cmd.ErrOrStderr(),
	}).With().Str("command", cmd.Name()).Logger()

	if settingsErr != nil {
		logger.Warn().Err(settingsErr).Str("path", config.SettingsPath()).Msg("using default settings")
		settings = config.DefaultSettings()
	}
	return settings, logger
}

// addReportFlags registers the flags shared by every command that renders a report
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "", fmt.Sprintf("Output format (%s); defaults to the settings format", strings.Join(output.AvailableFormatterNames(), ", ")))
	cmd.Flags().StringP("output", "o", "", "Write the report to this file instead of stdout")
	cmd.Flags().Bool("copy", false, "Copy the CSV export of the report to the clipboard")
	cmd.Flags().Bool("debug", false, "Enable debug logging for the calculation")
}

// runReport computes cfg and renders the report according to the report flags
func runReport(cmd *cobra.Command, cfg *domain.Configuration, settings config.Settings, logger zerolog.Logger) error {
	debugMode, _ := cmd.Flags().GetBool("debug")

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logging.NewEngineLogger(logger))
	engine.Debug = debugMode

	report, err := engine.RunConfiguration(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("calculating %s: %w", cfg.Name, err)
	}
	return emitReport(cmd, report, settings, logger)
}

func emitReport(cmd *cobra.Command, report *domain.Report, settings config.Settings, logger zerolog.Logger) error {
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = settings.Output.Format
	}
	opts := output.Options{Currency: settings.Output.Currency}

	f := output.NewFormatter(format, opts)
	if f == nil {
		return fmt.Errorf("unknown format %q (available: %s)", format, strings.Join(output.AvailableFormatterNames(), ", "))
	}

	outPath, _ := cmd.Flags().GetString("output")
	switch {
	case outPath != "":
		data, err := f.Format(report)
		if err != nil {
			return fmt.Errorf("formatting %s report: %w", f.Name(), err)
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outPath)
	case f.Name() == "pdf":
		// binary output never goes to the terminal
		filename, err := output.WriteFormatted(f, report, output.Extension(f))
		if err != nil {
			return fmt.Errorf("formatting %s report: %w", f.Name(), err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
	default:
		data, err := f.Format(report)
		if err != nil {
			return fmt.Errorf("formatting %s report: %w", f.Name(), err)
		}
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return err
		}
	}

	if copyCSV, _ := cmd.Flags().GetBool("copy"); copyCSV {
		data, err := output.NewFormatter("csv", opts).Format(report)
		if err != nil {
			return fmt.Errorf("formatting csv export: %w", err)
		}
		if err := clipboard.WriteAll(string(data)); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		logger.Info().Int("bytes", len(data)).Msg("copied CSV export to clipboard")
	}
	return nil
}

// numberReader parses named text inputs, keeping the first error
type numberReader struct {
	lookup func(name string) string
	prefix string // prepended to names in errors
	err    error
}

func flagNumbers(cmd *cobra.Command) *numberReader {
	return &numberReader{
		lookup: func(name string) string {
			v, _ := cmd.Flags().GetString(name)
			return v
		},
		prefix: "--",
	}
}

func mapNumbers(values map[string]string) *numberReader {
	return &numberReader{lookup: func(name string) string { return values[name] }}
}

// Decimal parses name; an empty value is zero
func (r *numberReader) Decimal(name string) decimal.Decimal {
	raw := strings.TrimSpace(strings.NewReplacer(",", "", "$", "", "%", "").Replace(r.lookup(name)))
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		if r.err == nil {
			r.err = fmt.Errorf("%s%s: %q is not a number", r.prefix, name, r.lookup(name))
		}
		return decimal.Zero
	}
	return d
}

// Int parses name as a whole number; an empty value is zero
func (r *numberReader) Int(name string) int {
	raw := strings.TrimSpace(strings.ReplaceAll(r.lookup(name), ",", ""))
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		if r.err == nil {
			r.err = fmt.Errorf("%s%s: %q is not a whole number", r.prefix, name, r.lookup(name))
		}
		return 0
	}
	return n
}

func (r *numberReader) Err() error { return r.err }

// splitList splits a comma-separated flag value, dropping blanks
func splitList(s string) []string {
	var items []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
