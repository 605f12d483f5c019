package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/budgetcalc/internal/tui/tuistyles"
)

// View renders the current state of the application
func (m Model) View() string {
	var content string
	switch {
	case m.err != nil:
		content = m.renderError()
	case m.currentTab == TabHelp:
		content = m.renderHelp()
	default:
		content = m.activeScene().View()
	}

	return m.renderApp(content)
}

// renderApp wraps content with the title bar, tab bar and status bar
func (m Model) renderApp(content string) string {
	contentHeight := m.height - 4
	if contentHeight < 1 {
		contentHeight = 1
	}

	return tuistyles.AppStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		lipgloss.NewStyle().MaxHeight(contentHeight).Render(content),
		m.renderStatusBar(),
	))
}

// renderTitleBar renders the application title and the tab strip
func (m Model) renderTitleBar() string {
	title := tuistyles.TitleStyle.Render("budgetcalc")
	if m.config != nil && m.config.Name != "" {
		title += " " + tuistyles.SubtitleStyle.Render(m.config.Name)
	}
	return title + "\n" + m.renderTabBar() + "\n"
}

func (m Model) renderTabBar() string {
	parts := make([]string, 0, tabCount)
	for t := Tab(0); t < tabCount; t++ {
		if t == m.currentTab {
			parts = append(parts, tuistyles.ActiveTabStyle.Render(t.String()))
		} else {
			parts = append(parts, tuistyles.InactiveTabStyle.Render(t.String()))
		}
	}
	return strings.Join(parts, "  ")
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("tab", "next field"),
		formatShortcut(keys.NextTab.Help().Key, keys.NextTab.Help().Desc),
		formatShortcut(keys.PrevTab.Help().Key, keys.PrevTab.Help().Desc),
		formatShortcut(keys.Help.Help().Key, keys.Help.Help().Desc),
		formatShortcut(keys.Quit.Help().Key, keys.Quit.Help().Desc),
	}
	left := strings.Join(shortcuts, " • ")

	right := ""
	if m.configPath != "" {
		right = filepath.Base(m.configPath)
	}
	padding := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		padding = 1
	}

	return tuistyles.StatusBarStyle.Render(left + strings.Repeat(" ", padding) + right)
}

func formatShortcut(key, desc string) string {
	return tuistyles.StatusKeyStyle.Render(key) + " " + desc
}

func (m Model) renderError() string {
	return tuistyles.BorderStyle.Render(
		tuistyles.ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)) +
			"\n\nPress any key to continue...",
	)
}

func (m Model) renderHelp() string {
	help := `Every result updates as you type.

KEYS
  tab, enter, ↓     next field
  shift+tab, ↑      previous field
  ctrl+n, pgdown    next tab
  ctrl+p, pgup      previous tab
  f1                toggle this help
  esc, ctrl+c       quit

INPUTS
  Amounts accept thousands separators and a leading $.
  Rates are annual percentages, so 6.5 means 6.5%.
  An empty field counts as zero.

Start with a file to prefill the tabs:
  budgetcalc-tui household.yaml`

	return tuistyles.BorderStyle.Render(help)
}
