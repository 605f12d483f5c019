package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/budgetcalc/internal/config"
	"github.com/rgehrsitz/budgetcalc/internal/solver"
)

const householdFile = "../../internal/config/testdata/household.yaml"

func TestMain(m *testing.M) {
	// keep the developer's own settings out of the runs
	dir, err := os.MkdirTemp("", "budgetcalc-settings")
	if err != nil {
		panic(err)
	}
	os.Setenv("XDG_CONFIG_HOME", dir)
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

// resetFlags restores every flag to its default so package-level commands can run repeatedly
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "budgetcalc", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestRootCommand_Help(t *testing.T) {
	out, _, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "calculate")
}

func TestCommandSubcommands(t *testing.T) {
	expected := []string{
		"calculate", "validate", "compare",
		"mortgage", "loan", "retirement", "credit", "insurance",
		"solve", "interactive", "settings", "version",
	}

	registered := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range expected {
		assert.True(t, registered[name], "command %s should be registered", name)
	}
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	_, _, err := execute(t, "invalid-command")
	assert.Error(t, err)
}

func TestFileExists(t *testing.T) {
	assert.True(t, fileExists(householdFile))
	assert.False(t, fileExists("non_existing_file.txt"))
}

func TestCalculate_Console(t *testing.T) {
	out, _, err := execute(t, "calculate", householdFile, "--format", "console")
	require.NoError(t, err)

	for _, want := range []string{
		"BUDGET CALCULATION REPORT: Sample household",
		"MORTGAGE",
		"LOAN: car",
		"Total monthly debt service",
		"RETIREMENT PROJECTION",
		"CREDIT SCORE ESTIMATE",
		"INSURANCE COVERAGE",
	} {
		assert.Contains(t, out, want)
	}
}

func TestCalculate_JSON(t *testing.T) {
	out, _, err := execute(t, "calculate", householdFile, "-f", "json")
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "Sample household", report["name"])
	assert.Contains(t, report, "mortgage")
	assert.Contains(t, report, "insurance")
}

func TestCalculate_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	out, _, err := execute(t, "calculate", householdFile, "-f", "csv", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestCalculate_DebugLogs(t *testing.T) {
	_, errOut, err := execute(t, "calculate", householdFile, "-f", "json", "--debug")
	require.NoError(t, err)
	assert.Contains(t, errOut, "configuration loaded")
}

func TestCalculate_UsesSettingsFormat(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	s := config.DefaultSettings()
	s.Output.Format = "json"
	require.NoError(t, config.SaveSettings(s))

	out, _, err := execute(t, "calculate", householdFile)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "{"), "settings format should apply without --format")
}

func TestCalculate_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing file", []string{"calculate", "missing.yaml", "-f", "console"}, "not found"},
		{"unknown format", []string{"calculate", householdFile, "-f", "xml"}, "unknown format"},
		{"no file", []string{"calculate"}, "accepts 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate(t *testing.T) {
	out, _, err := execute(t, "validate", householdFile)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
	assert.Contains(t, out, "Sample household")
	assert.Contains(t, out, "mortgage, loans (1), retirement, credit, insurance")
}

func TestValidate_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Bad\nmortgage:\n  home_price: 0\n  term_years: 30\n"), 0o644))

	_, _, err := execute(t, "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "home price must be positive")
}

func TestMortgageCommand(t *testing.T) {
	out, _, err := execute(t, "mortgage", "--price", "400000", "--down", "80000", "--rate", "6.5", "-f", "console")
	require.NoError(t, err)
	assert.Contains(t, out, "$2,022.62")
	assert.Contains(t, out, "360 months")
}

func TestMortgageCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"not a number", []string{"mortgage", "--price", "abc", "--rate", "6"}, "--price"},
		{"down exceeds price", []string{"mortgage", "--price", "400000", "--down", "500000", "--rate", "6"}, "down payment cannot exceed home price"},
		{"required flag", []string{"mortgage", "--price", "400000"}, "rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoanCommand(t *testing.T) {
	out, _, err := execute(t, "loan", "--name", "furniture", "--principal", "5000", "--months", "10", "-f", "console")
	require.NoError(t, err)
	assert.Contains(t, out, "LOAN: furniture")
	assert.Contains(t, out, "$500.00")
}

func TestRetirementCommand(t *testing.T) {
	out, _, err := execute(t, "retirement", "--age", "30", "--balance", "25000", "--monthly", "500", "-f", "console")
	require.NoError(t, err)
	assert.Contains(t, out, "RETIREMENT PROJECTION")
	assert.Contains(t, out, "Years projected:        35")
}

func TestCreditCommand(t *testing.T) {
	out, _, err := execute(t, "credit", "--on-time", "95", "--utilization", "25", "--history-years", "7", "--account-types", "3", "--inquiries", "1", "-f", "console")
	require.NoError(t, err)
	assert.Contains(t, out, "CREDIT SCORE ESTIMATE")
	assert.Contains(t, out, "Estimated score:")
}

func TestInsuranceCommand(t *testing.T) {
	out, _, err := execute(t, "insurance", "--income", "80000", "--dependents", "2", "--marital", "married",
		"--expenses", "4000", "--benefits", "health, life", "-f", "console")
	require.NoError(t, err)
	assert.Contains(t, out, "INSURANCE COVERAGE")

	_, _, err = execute(t, "insurance", "--marital", "engaged")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marital status")
}

func TestCompare(t *testing.T) {
	out, _, err := execute(t, "compare", householdFile, "--with", "rate_minus_1,term_15yr")
	require.NoError(t, err)
	assert.Contains(t, out, "MORTGAGE COMPARISON")
	assert.Contains(t, out, "rate_minus_1")
	assert.Contains(t, out, "term_15yr")
}

func TestCompare_TransformsAsCSV(t *testing.T) {
	out, _, err := execute(t, "compare", householdFile,
		"--transform", "adjust_rate:delta=-0.25; set_term:years=20", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "adjust_rate:delta=-0.25")
	assert.Contains(t, out, "set_term:years=20")
}

func TestCompare_ListTemplates(t *testing.T) {
	out, _, err := execute(t, "compare", "--list-templates")
	require.NoError(t, err)
	assert.Contains(t, out, "Available Templates")
	assert.Contains(t, out, "down_20pct")
}

func TestCompare_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no file", []string{"compare", "--with", "term_15yr"}, "input file required"},
		{"nothing to compare", []string{"compare", householdFile}, "nothing to compare"},
		{"unknown template", []string{"compare", householdFile, "--with", "term_5yr"}, "term_5yr"},
		{"bad format", []string{"compare", householdFile, "--with", "term_15yr", "-f", "xml"}, "unsupported format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSolvePrincipal(t *testing.T) {
	out, _, err := execute(t, "solve", "principal", "--budget", "2022.62", "--rate", "6.5", "--months", "360", "-f", "json")
	require.NoError(t, err)

	var result solver.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Success)
	assert.InDelta(t, 320000, result.Value.InexactFloat64(), 1)
}

func TestSolveContribution(t *testing.T) {
	out, _, err := execute(t, "solve", "contribution", "--target", "480000", "--years", "40", "--return", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "GOAL SOLVER RESULTS")
	assert.Contains(t, out, "Required monthly contribution: $1000.00")
}

func TestSolve_ValidationError(t *testing.T) {
	_, _, err := execute(t, "solve", "principal", "--budget", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "monthly budget must be positive")
}

func TestSettings_ShowAndSave(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	out, _, err := execute(t, "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "using defaults")

	out, _, err = execute(t, "settings", "save", "--format", "text", "--currency", "€", "--credit-recommendations", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Settings saved to")
	assert.True(t, config.SettingsExist())

	saved, err := config.LoadSettingsFrom(config.SettingsPath())
	require.NoError(t, err)
	assert.Equal(t, "console", saved.Output.Format, "aliases are saved by their canonical name")
	assert.Equal(t, "€", saved.Output.Currency)
	assert.Equal(t, 2, saved.Calculation.Credit.RecommendationLimit)
	assert.Equal(t, 4, saved.Calculation.Retirement.RecommendationLimit, "unchanged flags keep their value")

	out, _, err = execute(t, "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "Status: loaded")
	assert.Contains(t, out, "Currency: €")
}

func TestSettingsSave_Rejects(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, _, err := execute(t, "settings", "save", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")

	_, _, err = execute(t, "settings", "save", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
	assert.False(t, config.SettingsExist())
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "budgetcalc dev")
}

func TestWizards_DefaultAnswersAreValid(t *testing.T) {
	settings := config.DefaultSettings()
	for _, w := range wizards {
		t.Run(w.key, func(t *testing.T) {
			values := map[string]string{}
			for _, f := range w.fields {
				values[f.key] = f.value
			}
			cfg, err := w.answer(values, settings)
			require.NoError(t, err)
			assert.True(t, cfg.HasCalculations())
		})
	}
}

func TestWizard_RejectsBadAnswers(t *testing.T) {
	w, ok := findWizard("loan")
	require.True(t, ok)

	_, err := w.answer(map[string]string{"principal": "25000", "rate": "5.9", "months": "five"}, config.DefaultSettings())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "months")

	_, err = w.answer(map[string]string{"principal": "0", "months": "60"}, config.DefaultSettings())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "principal must be positive")

	_, ok = findWizard("lottery")
	assert.False(t, ok)
}

func TestValidateAnswer(t *testing.T) {
	whole := validateAnswer(wizardField{key: "years", whole: true})
	assert.NoError(t, whole("30"))
	assert.NoError(t, whole(""))
	assert.Error(t, whole("30.5"))

	amount := validateAnswer(wizardField{key: "price"})
	assert.NoError(t, amount("$400,000"))
	assert.Error(t, amount("lots"))
}

func TestNumberReader_FirstErrorWins(t *testing.T) {
	r := mapNumbers(map[string]string{"a": "x", "b": "1.5", "c": "y"})

	assert.True(t, r.Decimal("a").IsZero())
	assert.Equal(t, "1.5", r.Decimal("b").String())
	r.Int("c")
	require.Error(t, r.Err())
	assert.Contains(t, r.Err().Error(), `a: "x"`)
}

func TestSplitHelpers(t *testing.T) {
	assert.Equal(t, []string{"health", "life"}, splitList(" health, ,life "))
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"adjust_rate:delta=-0.5", "set_term:years=15"}, splitSpecs("adjust_rate:delta=-0.5; set_term:years=15;"))
}
