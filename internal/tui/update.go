package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for _, s := range m.scenes {
			s.SetSize(msg.Width, msg.Height-4)
		}
		return m, nil

	case NavigateMsg:
		return m.navigate(msg.Tab)

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case ConfigLoadedMsg:
		m.config = msg.Config
		m.configPath = msg.Path
		m.options = msg.Config.Options
		m.scenes = buildScenes(msg.Config, m.options)
		for _, s := range m.scenes {
			s.SetSize(m.width, m.height-4)
		}
		if s := m.activeScene(); s != nil {
			return m, s.Activate()
		}
		return m, nil
	}

	if s := m.activeScene(); s != nil {
		_, cmd := s.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyPress processes global shortcuts and hands the rest to the active scene
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		if m.currentTab == TabHelp {
			return m.navigate(m.previousTab)
		}
		return m, tea.Quit
	case key.Matches(msg, keys.NextTab):
		return m.navigate((m.currentTab + 1) % tabCount)
	case key.Matches(msg, keys.PrevTab):
		return m.navigate((m.currentTab + tabCount - 1) % tabCount)
	case key.Matches(msg, keys.Help):
		if m.currentTab == TabHelp {
			return m.navigate(m.previousTab)
		}
		return m.navigate(TabHelp)
	}

	if s := m.activeScene(); s != nil {
		_, cmd := s.Update(msg)
		return m, cmd
	}
	return m, nil
}

// navigate switches tabs, moving keyboard focus with it
func (m Model) navigate(t Tab) (tea.Model, tea.Cmd) {
	if t == m.currentTab {
		return m, nil
	}
	if s := m.activeScene(); s != nil {
		s.Deactivate()
	}
	m.previousTab = m.currentTab
	m.currentTab = t
	if s := m.activeScene(); s != nil {
		return m, s.Activate()
	}
	return m, nil
}
