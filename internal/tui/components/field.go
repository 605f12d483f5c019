package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/budgetcalc/internal/tui/tuistyles"
)

// Field is a labelled numeric text input
type Field struct {
	Key   string
	Label string
	Unit  string
	Input textinput.Model
}

// NewField creates a field prefilled with value
func NewField(key, label, value string) *Field {
	ti := textinput.New()
	ti.CharLimit = 16
	ti.Width = 16
	ti.Prompt = ""
	ti.SetValue(value)

	return &Field{
		Key:   key,
		Label: label,
		Input: ti,
	}
}

// WithUnit sets the suffix shown after the input
func (f *Field) WithUnit(unit string) *Field {
	f.Unit = unit
	return f
}

// WithPlaceholder sets the hint shown when the input is empty
func (f *Field) WithPlaceholder(p string) *Field {
	f.Input.Placeholder = p
	return f
}

// Focus gives the field keyboard focus
func (f *Field) Focus() tea.Cmd {
	return f.Input.Focus()
}

// Blur removes keyboard focus
func (f *Field) Blur() {
	f.Input.Blur()
}

// Focused reports whether the field has focus
func (f *Field) Focused() bool {
	return f.Input.Focused()
}

// SetValue replaces the text
func (f *Field) SetValue(v string) {
	f.Input.SetValue(v)
}

// Value returns the trimmed text
func (f *Field) Value() string {
	return strings.TrimSpace(f.Input.Value())
}

// Update forwards a message to the text input
func (f *Field) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.Input, cmd = f.Input.Update(msg)
	return cmd
}

// Decimal parses the value, ignoring thousands separators and a leading $.
// An empty field is zero.
func (f *Field) Decimal() (decimal.Decimal, error) {
	raw := strings.NewReplacer(",", "", "$", "", "%", "").Replace(f.Value())
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %q is not a number", f.Label, f.Value())
	}
	return d, nil
}

// Int parses the value as a whole number. An empty field is zero.
func (f *Field) Int() (int, error) {
	raw := strings.ReplaceAll(f.Value(), ",", "")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a whole number", f.Label, f.Value())
	}
	return n, nil
}

// Render returns the label, the input and the unit on one line
func (f *Field) Render() string {
	label := tuistyles.FieldLabelStyle.Render(f.Label)
	marker := "  "
	if f.Focused() {
		label = tuistyles.FocusedFieldLabelStyle.Render(f.Label)
		marker = tuistyles.StatusKeyStyle.Render("▸ ")
	}

	line := marker + label + f.Input.View()
	if f.Unit != "" {
		line += " " + tuistyles.SubtitleStyle.Render(f.Unit)
	}
	return line
}
