package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/rgehrsitz/budgetcalc/internal/domain"
)

// Tab identifies one calculator screen
type Tab int

const (
	TabMortgage Tab = iota
	TabLoan
	TabRetirement
	TabCredit
	TabInsurance
	TabHelp
	tabCount
)

func (t Tab) String() string {
	switch t {
	case TabMortgage:
		return "Mortgage"
	case TabLoan:
		return "Loan"
	case TabRetirement:
		return "Retirement"
	case TabCredit:
		return "Credit"
	case TabInsurance:
		return "Insurance"
	case TabHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// NavigateMsg switches to a different tab
type NavigateMsg struct {
	Tab Tab
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ConfigLoadedMsg replaces every tab's inputs with those from a file
type ConfigLoadedMsg struct {
	Path   string
	Config *domain.Configuration
}

type keyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	NextTab: key.NewBinding(key.WithKeys("ctrl+n", "pgdown", "ctrl+right"), key.WithHelp("ctrl+n", "next tab")),
	PrevTab: key.NewBinding(key.WithKeys("ctrl+p", "pgup", "ctrl+left"), key.WithHelp("ctrl+p", "prev tab")),
	Help:    key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
	Quit:    key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
}
