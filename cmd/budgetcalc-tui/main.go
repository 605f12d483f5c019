package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/budgetcalc/internal/config"
	"github.com/rgehrsitz/budgetcalc/internal/tui"
)

func main() {
	// Optional input file to prefill the tabs
	configPath := ""
	if len(os.Args) > 2 {
		fmt.Println("Usage: budgetcalc-tui [input-file]")
		os.Exit(1)
	}
	if len(os.Args) == 2 {
		configPath = os.Args[1]
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			fmt.Printf("Error: input file not found: %s\n", configPath)
			os.Exit(1)
		}
	}

	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Printf("Warning: %v; using default settings\n", err)
		settings = config.DefaultSettings()
	}

	p := tea.NewProgram(
		tui.NewModel(configPath, settings.CalculationOptions()),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
