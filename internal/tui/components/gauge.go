package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/budgetcalc/internal/tui/tuistyles"
)

// Gauge shows where a value sits within [Min, Max]
type Gauge struct {
	Label string
	Value float64
	Min   float64
	Max   float64
	Width int
	Tone  tuistyles.Tone
}

// NewGauge creates a gauge over the given range
func NewGauge(label string, value, min, max float64) *Gauge {
	return &Gauge{
		Label: label,
		Value: value,
		Min:   min,
		Max:   max,
		Width: 30,
	}
}

// WithTone colors the filled part of the bar
func (g *Gauge) WithTone(t tuistyles.Tone) *Gauge {
	g.Tone = t
	return g
}

// WithWidth sets the bar width
func (g *Gauge) WithWidth(width int) *Gauge {
	g.Width = width
	return g
}

// Fraction returns the clamped position of Value in the range, 0 to 1
func (g *Gauge) Fraction() float64 {
	if g.Max <= g.Min {
		return 0
	}
	f := (g.Value - g.Min) / (g.Max - g.Min)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// Filled returns the number of filled cells
func (g *Gauge) Filled() int {
	return int(float64(g.Width) * g.Fraction())
}

// Render returns the label and the bar
func (g *Gauge) Render() string {
	var sb strings.Builder
	if g.Label != "" {
		sb.WriteString(tuistyles.MetricLabelStyle.Render(g.Label))
		sb.WriteString(" ")
	}

	filled := g.Filled()
	bar := tuistyles.ToneStyle(g.Tone).UnsetBold()
	empty := lipgloss.NewStyle().Foreground(tuistyles.ColorBorder)

	sb.WriteString("[")
	sb.WriteString(bar.Render(strings.Repeat("█", filled)))
	sb.WriteString(empty.Render(strings.Repeat("░", g.Width-filled)))
	sb.WriteString("] ")
	sb.WriteString(tuistyles.SubtitleStyle.Render(fmt.Sprintf("%.0f–%.0f", g.Min, g.Max)))

	return sb.String()
}
