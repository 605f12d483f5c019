package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/rgehrsitz/budgetcalc/internal/domain"
)

const appName = "budgetcalc"

// Environment variables that override the settings file
const (
	EnvFormat    = "BUDGETCALC_FORMAT"
	EnvLogLevel  = "BUDGETCALC_LOG_LEVEL"
	EnvCurrency  = "BUDGETCALC_CURRENCY"
	EnvRecLimit  = "BUDGETCALC_RECOMMENDATION_LIMIT"
	EnvLogPretty = "BUDGETCALC_LOG_PRETTY"
)

// Settings holds the per-user preferences stored in config.toml
type Settings struct {
	Output      OutputSettings      `toml:"output"`
	Logging     LoggingSettings     `toml:"logging"`
	Calculation CalculationSettings `toml:"calculation"`
}

// OutputSettings controls report rendering
type OutputSettings struct {
	Format   string `toml:"format"`
	Currency string `toml:"currency"`
}

// LoggingSettings controls the diagnostic logger
type LoggingSettings struct {
	Level  string `toml:"level"`
	Pretty bool   `toml:"pretty"`
}

// CalculationSettings supplies option defaults for files that omit them
type CalculationSettings struct {
	Retirement domain.RetirementOptions `toml:"retirement"`
	Credit     domain.CreditOptions     `toml:"credit"`
	Insurance  domain.InsuranceOptions  `toml:"insurance"`
}

// DefaultSettings returns the settings used when no file exists
func DefaultSettings() Settings {
	defaults := domain.DefaultCalculationOptions()
	return Settings{
		Output: OutputSettings{
			Format:   "console",
			Currency: "$",
		},
		Logging: LoggingSettings{
			Level:  "warn",
			Pretty: true,
		},
		Calculation: CalculationSettings{
			Retirement: defaults.Retirement,
			Credit:     defaults.Credit,
			Insurance:  defaults.Insurance,
		},
	}
}

// CalculationOptions converts the settings into engine option defaults
func (s Settings) CalculationOptions() domain.CalculationOptions {
	opts := domain.DefaultCalculationOptions()
	opts.Retirement = s.Calculation.Retirement
	opts.Credit = s.Calculation.Credit
	opts.Insurance.RecommendationLimit = s.Calculation.Insurance.RecommendationLimit
	return opts
}

// SettingsDir returns the XDG-compliant settings directory
func SettingsDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName)
}

// SettingsPath returns the full path to the settings file
func SettingsPath() string {
	return filepath.Join(SettingsDir(), "config.toml")
}

// LoadSettings reads the settings file, loads .env files and applies environment
// overrides. A missing settings file yields defaults.
func LoadSettings(envFiles ...string) (Settings, error) {
	// .env is optional
	_ = godotenv.Load(envFiles...)

	s, err := LoadSettingsFrom(SettingsPath())
	if err != nil {
		return s, err
	}
	ApplyEnvironment(&s)
	return s, nil
}

// LoadSettingsFrom reads settings from path without consulting the environment
func LoadSettingsFrom(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("reading settings: %w", err)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing settings: %w", err)
	}

	return s, nil
}

// SaveSettings writes the settings to the default path
func SaveSettings(s Settings) error {
	return SaveSettingsTo(SettingsPath(), s)
}

// SaveSettingsTo writes the settings to path, creating its directory
func SaveSettingsTo(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating settings file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// SettingsExist reports whether a settings file exists on disk
func SettingsExist() bool {
	_, err := os.Stat(SettingsPath())
	return err == nil
}

// ApplyEnvironment overlays BUDGETCALC_* variables onto s
func ApplyEnvironment(s *Settings) {
	s.Output.Format = getEnv(EnvFormat, s.Output.Format)
	s.Output.Currency = getEnv(EnvCurrency, s.Output.Currency)
	s.Logging.Level = strings.ToLower(getEnv(EnvLogLevel, s.Logging.Level))
	s.Logging.Pretty = getEnvAsBool(EnvLogPretty, s.Logging.Pretty)
	s.Calculation.Retirement.RecommendationLimit = getEnvAsInt(EnvRecLimit, s.Calculation.Retirement.RecommendationLimit)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
