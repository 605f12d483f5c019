package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rgehrsitz/budgetcalc/internal/domain"
)

// Formatter renders a calculation report
type Formatter interface {
	Name() string
	Format(report *domain.Report) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(report *domain.Report) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(report *domain.Report) ([]byte, error) { return f.F(report) }

// Options carries presentation preferences shared by all formatters
type Options struct {
	Currency string
}

// DefaultOptions renders amounts in dollars
func DefaultOptions() Options {
	return Options{Currency: "$"}
}

var formatters = map[string]func(Options) Formatter{
	"console": func(o Options) Formatter { return ConsoleFormatter{Currency: o.Currency} },
	"json":    func(Options) Formatter { return JSONFormatter{Pretty: true} },
	"csv":     func(Options) Formatter { return CSVFormatter{} },
	"html":    func(o Options) Formatter { return HTMLFormatter{Currency: o.Currency} },
	"pdf":     func(o Options) Formatter { return PDFFormatter{Currency: o.Currency} },
}

var formatAliases = map[string]string{
	"text":    "console",
	"txt":     "console",
	"verbose": "console",
	"htm":     "html",
}

// NewFormatter resolves name or alias to a formatter configured with opts; nil if unknown
func NewFormatter(name string, opts Options) Formatter {
	name = strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := formatAliases[name]; ok {
		name = canonical
	}
	build, ok := formatters[name]
	if !ok {
		return nil
	}
	if opts.Currency == "" {
		opts.Currency = DefaultOptions().Currency
	}
	return build(opts)
}

// GetFormatterByName resolves name with default options
func GetFormatterByName(name string) Formatter {
	return NewFormatter(name, DefaultOptions())
}

// AvailableFormatterNames lists canonical formatter names in sorted order
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists accepted aliases in sorted order
func AvailableFormatAliases() []string {
	aliases := make([]string, 0, len(formatAliases))
	for alias := range formatAliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// Extension returns the file extension conventionally used for a formatter's output
func Extension(f Formatter) string {
	switch f.Name() {
	case "console":
		return "txt"
	default:
		return f.Name()
	}
}

// WriteFormatted renders report into a timestamped file in the working directory
func WriteFormatted(f Formatter, report *domain.Report, ext string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("budget_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}
