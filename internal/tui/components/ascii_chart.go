package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/floats"

	"github.com/rgehrsitz/budgetcalc/internal/tui/tuistyles"
)

const yAxisWidth = 9

// DataSeries is one plotted line
type DataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// ASCIIChart plots one or more series on a character grid
type ASCIIChart struct {
	Title  string
	Series []DataSeries
	Labels []string // first and last are printed under the x axis
	Width  int
	Height int
}

// NewASCIIChart creates a new chart
func NewASCIIChart(title string) *ASCIIChart {
	return &ASCIIChart{
		Title:  title,
		Width:  60,
		Height: 10,
	}
}

// AddSeries adds a data series to the chart
func (c *ASCIIChart) AddSeries(name string, points []float64, color lipgloss.Color) *ASCIIChart {
	c.Series = append(c.Series, DataSeries{Name: name, Points: points, Color: color})
	return c
}

// WithLabels sets the x axis labels
func (c *ASCIIChart) WithLabels(labels []string) *ASCIIChart {
	c.Labels = labels
	return c
}

// WithSize sets the chart dimensions, including the y axis
func (c *ASCIIChart) WithSize(width, height int) *ASCIIChart {
	c.Width = width
	c.Height = height
	return c
}

// Bounds returns the min and max across every non-empty series
func (c *ASCIIChart) Bounds() (float64, float64, bool) {
	lo, hi := math.Inf(1), math.Inf(-1)
	found := false
	for _, s := range c.Series {
		if len(s.Points) == 0 {
			continue
		}
		found = true
		lo = math.Min(lo, floats.Min(s.Points))
		hi = math.Max(hi, floats.Max(s.Points))
	}
	return lo, hi, found
}

// Render returns the styled chart
func (c *ASCIIChart) Render() string {
	lo, hi, ok := c.Bounds()
	if !ok {
		return tuistyles.InfoStyle.Render("No data to display")
	}
	if hi == lo {
		hi = lo + 1
	}

	var sb strings.Builder
	if c.Title != "" {
		sb.WriteString(tuistyles.SectionStyle.Render(c.Title))
		sb.WriteString("\n")
	}
	sb.WriteString(c.renderGrid(lo, hi))
	if len(c.Series) > 1 {
		sb.WriteString("\n")
		sb.WriteString(c.renderLegend())
	}
	return sb.String()
}

// rows maps points onto grid rows, row 0 being the top
func (c *ASCIIChart) rows(points []float64, lo, hi float64) []int {
	scaled := make([]float64, len(points))
	copy(scaled, points)
	floats.AddConst(-lo, scaled)
	floats.Scale(float64(c.Height-1)/(hi-lo), scaled)

	out := make([]int, len(scaled))
	for i, v := range scaled {
		out[i] = c.Height - 1 - int(math.Round(v))
	}
	return out
}

func (c *ASCIIChart) renderGrid(lo, hi float64) string {
	plotWidth := c.Width - yAxisWidth - 2
	if plotWidth < 2 {
		plotWidth = 2
	}
	if c.Height < 2 {
		c.Height = 2
	}

	grid := make([][]rune, c.Height)
	colors := make([][]lipgloss.Color, c.Height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", plotWidth))
		colors[i] = make([]lipgloss.Color, plotWidth)
	}

	for idx, s := range c.Series {
		if len(s.Points) == 0 {
			continue
		}
		char := seriesChar(idx)
		ys := c.rows(s.Points, lo, hi)
		prevX, prevY := -1, -1
		for i, y := range ys {
			x := 0
			if len(ys) > 1 {
				x = i * (plotWidth - 1) / (len(ys) - 1)
			}
			if prevX >= 0 {
				drawLine(grid, colors, prevX, prevY, x, y, char, s.Color)
			} else {
				plot(grid, colors, x, y, char, s.Color)
			}
			prevX, prevY = x, y
		}
	}

	axis := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	var sb strings.Builder
	for i := range grid {
		label := ""
		if i == 0 {
			label = FormatAxisValue(hi)
		} else if i == c.Height-1 {
			label = FormatAxisValue(lo)
		}
		sb.WriteString(axis.Width(yAxisWidth).Align(lipgloss.Right).Render(label))
		sb.WriteString(axis.Render(" │"))
		for x, r := range grid[i] {
			if r == ' ' {
				sb.WriteRune(r)
				continue
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(colors[i][x]).Render(string(r)))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Repeat(" ", yAxisWidth+1))
	sb.WriteString(axis.Render("└" + strings.Repeat("─", plotWidth)))

	if len(c.Labels) > 0 {
		first, last := c.Labels[0], c.Labels[len(c.Labels)-1]
		gap := plotWidth - len(first) - len(last) + 1
		if gap < 1 {
			gap = 1
		}
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", yAxisWidth+1))
		sb.WriteString(axis.Render(first + strings.Repeat(" ", gap) + last))
	}

	return sb.String()
}

func (c *ASCIIChart) renderLegend() string {
	items := make([]string, 0, len(c.Series))
	for i, s := range c.Series {
		symbol := lipgloss.NewStyle().Foreground(s.Color).Render(string(seriesChar(i)))
		items = append(items, fmt.Sprintf("%s %s", symbol, s.Name))
	}
	return tuistyles.SubtitleStyle.Render(strings.Join(items, "  "))
}

func seriesChar(index int) rune {
	chars := []rune{'●', '■', '▲', '♦'}
	return chars[index%len(chars)]
}

func plot(grid [][]rune, colors [][]lipgloss.Color, x, y int, char rune, color lipgloss.Color) {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return
	}
	grid[y][x] = char
	colors[y][x] = color
}

// drawLine joins two points with Bresenham's algorithm
func drawLine(grid [][]rune, colors [][]lipgloss.Color, x0, y0, x1, y1 int, char rune, color lipgloss.Color) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}

	err := dx - dy
	x, y := x0, y0
	for {
		plot(grid, colors, x, y, char, color)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// FormatAxisValue abbreviates a dollar amount for the y axis
func FormatAxisValue(value float64) string {
	switch {
	case math.Abs(value) >= 1000000:
		return fmt.Sprintf("$%.1fM", value/1000000)
	case math.Abs(value) >= 1000:
		return fmt.Sprintf("$%.0fK", value/1000)
	default:
		return fmt.Sprintf("$%.0f", value)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
