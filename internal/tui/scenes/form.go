package scenes

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/budgetcalc/internal/config"
	"github.com/rgehrsitz/budgetcalc/internal/domain"
	"github.com/rgehrsitz/budgetcalc/internal/tui/components"
	"github.com/rgehrsitz/budgetcalc/internal/tui/tuistyles"
)

var (
	nextFieldKey = key.NewBinding(key.WithKeys("tab", "down", "enter"))
	prevFieldKey = key.NewBinding(key.WithKeys("shift+tab", "up"))
)

// Values reads typed values out of a form, keeping the first parse error
type Values struct {
	fields map[string]*components.Field
	err    error
}

// Decimal returns the named field as a decimal
func (v *Values) Decimal(name string) decimal.Decimal {
	f, ok := v.fields[name]
	if !ok {
		return decimal.Zero
	}
	d, err := f.Decimal()
	if err != nil && v.err == nil {
		v.err = err
	}
	return d
}

// Int returns the named field as an int
func (v *Values) Int(name string) int {
	f, ok := v.fields[name]
	if !ok {
		return 0
	}
	n, err := f.Int()
	if err != nil && v.err == nil {
		v.err = err
	}
	return n
}

// Err returns the first parse error
func (v *Values) Err() error {
	return v.err
}

// RenderFunc turns the current field values into the results panel
type RenderFunc func(v *Values, width int) (string, error)

// FormScene is one calculator tab: input fields on the left, live results on the right
type FormScene struct {
	Title   string
	fields  []*components.Field
	byKey   map[string]*components.Field
	focused int
	render  RenderFunc
	output  string
	err     error
	width   int
	height  int
}

// NewFormScene creates a calculator scene and computes its initial results
func NewFormScene(title string, fields []*components.Field, render RenderFunc) *FormScene {
	s := &FormScene{
		Title:  title,
		fields: fields,
		byKey:  make(map[string]*components.Field, len(fields)),
		render: render,
		width:  100,
		height: 30,
	}
	for _, f := range fields {
		s.byKey[f.Key] = f
	}
	s.Recalculate()
	return s
}

// Field returns the named field, or nil
func (s *FormScene) Field(name string) *components.Field {
	return s.byKey[name]
}

// FocusedField returns the field that receives keystrokes
func (s *FormScene) FocusedField() *components.Field {
	if s.focused < 0 || s.focused >= len(s.fields) {
		return nil
	}
	return s.fields[s.focused]
}

// SetSize updates the scene dimensions
func (s *FormScene) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.Recalculate()
}

// Activate focuses the current field
func (s *FormScene) Activate() tea.Cmd {
	if f := s.FocusedField(); f != nil {
		return f.Focus()
	}
	return nil
}

// Deactivate blurs every field
func (s *FormScene) Deactivate() {
	for _, f := range s.fields {
		f.Blur()
	}
}

// Output returns the last rendered results panel
func (s *FormScene) Output() string {
	return s.output
}

// Err returns the error from the last recalculation
func (s *FormScene) Err() error {
	return s.err
}

// Recalculate re-reads every field and re-renders the results
func (s *FormScene) Recalculate() {
	v := &Values{fields: s.byKey}
	out, err := s.render(v, s.resultsWidth())
	if err == nil {
		err = v.Err()
	}
	s.err = err
	if err == nil {
		s.output = out
	}
}

// Update moves focus between fields and recalculates after every keystroke
func (s *FormScene) Update(msg tea.Msg) (*FormScene, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if f := s.FocusedField(); f != nil {
			return s, f.Update(msg)
		}
		return s, nil
	}

	switch {
	case key.Matches(keyMsg, nextFieldKey):
		return s, s.moveFocus(1)
	case key.Matches(keyMsg, prevFieldKey):
		return s, s.moveFocus(-1)
	}

	f := s.FocusedField()
	if f == nil {
		return s, nil
	}
	cmd := f.Update(keyMsg)
	s.Recalculate()
	return s, cmd
}

func (s *FormScene) moveFocus(delta int) tea.Cmd {
	if len(s.fields) == 0 {
		return nil
	}
	s.fields[s.focused].Blur()
	s.focused = (s.focused + delta + len(s.fields)) % len(s.fields)
	return s.fields[s.focused].Focus()
}

func (s *FormScene) resultsWidth() int {
	w := s.width - 50
	if w < 40 {
		w = 40
	}
	return w
}

// View renders the form and the results side by side
func (s *FormScene) View() string {
	lines := make([]string, 0, len(s.fields)+2)
	lines = append(lines, tuistyles.SectionStyle.Render(s.Title), "")
	for _, f := range s.fields {
		lines = append(lines, f.Render())
	}
	form := lipgloss.NewStyle().Width(48).Render(strings.Join(lines, "\n"))

	results := s.output
	if s.err != nil {
		results = tuistyles.ErrorStyle.Render(s.err.Error())
		if s.output != "" {
			results += "\n\n" + tuistyles.SubtitleStyle.Render("showing last valid results") + "\n" + s.output
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, form, "  ", results)
}

// errIncomplete marks inputs that cannot be calculated yet
var errIncomplete = errors.New("enter the remaining inputs to see results")

// checkInputs runs the household-file validators over one calculator section and
// returns the section's own error message
func checkInputs(section domain.Configuration) error {
	section.Name = "form"
	if err := config.NewInputParser().ValidateConfiguration(&section); err != nil {
		if inner := errors.Unwrap(err); inner != nil {
			return inner
		}
		return err
	}
	return nil
}

// renderRecommendations lists recommendations, highest priority first as produced
func renderRecommendations(recs []domain.Recommendation, limit int) string {
	if len(recs) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(tuistyles.SectionStyle.Render("Recommendations"))
	for i, r := range recs {
		if limit > 0 && i >= limit {
			break
		}
		sb.WriteString("\n")
		sb.WriteString(tuistyles.PriorityStyle(string(r.Priority)).Render("• "))
		sb.WriteString(r.Message)
	}
	return sb.String()
}
