package tuistyles

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorPrimary   = lipgloss.Color("#7D56F4")
	ColorSecondary = lipgloss.Color("#43BF6D")
	ColorAccent    = lipgloss.Color("#F25D94")
	ColorSuccess   = lipgloss.Color("#04B575")
	ColorWarning   = lipgloss.Color("#F2C94C")
	ColorDanger    = lipgloss.Color("#FF4672")
	ColorInfo      = lipgloss.Color("#56B6F2")

	ColorForeground = lipgloss.Color("#FAFAFA")
	ColorMuted      = lipgloss.Color("#8A8A8A")
	ColorBorder     = lipgloss.Color("#3C3C3C")

	ColorChartLine1 = lipgloss.Color("#7D56F4")
	ColorChartLine2 = lipgloss.Color("#43BF6D")
)

// Base styles
var (
	AppStyle = lipgloss.NewStyle().Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorForeground).
			Background(ColorPrimary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusKeyStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Underline(true)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(ColorForeground).
			Width(26)

	FocusedFieldLabelStyle = FieldLabelStyle.
				Foreground(ColorAccent).
				Bold(true)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorForeground)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)
)

// Tone colors a metric by whether its value is good, bad or neither
type Tone int

const (
	ToneNeutral Tone = iota
	TonePositive
	ToneWarning
	ToneNegative
)

// ToneStyle returns the value style for a tone
func ToneStyle(t Tone) lipgloss.Style {
	switch t {
	case TonePositive:
		return MetricValueStyle.Foreground(ColorSuccess)
	case ToneWarning:
		return MetricValueStyle.Foreground(ColorWarning)
	case ToneNegative:
		return MetricValueStyle.Foreground(ColorDanger)
	default:
		return MetricValueStyle
	}
}

// PriorityStyle colors a recommendation by priority name
func PriorityStyle(priority string) lipgloss.Style {
	switch priority {
	case "high":
		return lipgloss.NewStyle().Foreground(ColorDanger)
	case "medium":
		return lipgloss.NewStyle().Foreground(ColorWarning)
	default:
		return lipgloss.NewStyle().Foreground(ColorInfo)
	}
}
