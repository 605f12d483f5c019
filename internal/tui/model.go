package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/budgetcalc/internal/config"
	"github.com/rgehrsitz/budgetcalc/internal/domain"
	"github.com/rgehrsitz/budgetcalc/internal/tui/scenes"
)

// Model represents the entire application state
type Model struct {
	currentTab  Tab
	previousTab Tab

	width  int
	height int

	configPath string
	config     *domain.Configuration
	options    domain.CalculationOptions

	// One scene per calculator tab, indexed by Tab
	scenes []*scenes.FormScene

	err error
}

// NewModel creates a model seeded with default inputs. A non-empty configPath
// is loaded on Init and replaces the defaults for every section it contains.
func NewModel(configPath string, opts domain.CalculationOptions) Model {
	m := Model{
		currentTab: TabMortgage,
		configPath: configPath,
		options:    opts,
		width:      100,
		height:     30,
	}
	m.scenes = buildScenes(&domain.Configuration{}, opts)
	return m
}

// buildScenes creates every calculator tab, using cfg's sections where present
func buildScenes(cfg *domain.Configuration, opts domain.CalculationOptions) []*scenes.FormScene {
	mortgage := scenes.DefaultMortgage()
	if cfg.Mortgage != nil {
		mortgage = *cfg.Mortgage
	}
	loan := scenes.DefaultLoan()
	if len(cfg.Loans) > 0 {
		loan = cfg.Loans[0]
	}
	retirement := scenes.DefaultRetirement()
	if cfg.Retirement != nil {
		retirement = *cfg.Retirement
	}
	credit := scenes.DefaultCredit()
	if cfg.Credit != nil {
		credit = *cfg.Credit
	}
	insurance := scenes.DefaultInsurance()
	if cfg.Insurance != nil {
		insurance = *cfg.Insurance
	}

	return []*scenes.FormScene{
		TabMortgage:   scenes.NewMortgageScene(mortgage),
		TabLoan:       scenes.NewLoanScene(loan),
		TabRetirement: scenes.NewRetirementScene(retirement, opts.Retirement),
		TabCredit:     scenes.NewCreditScene(credit, opts.Credit),
		TabInsurance:  scenes.NewInsuranceScene(insurance, opts.Insurance),
	}
}

// Init loads the configuration file, if any, and focuses the first field
func (m Model) Init() tea.Cmd {
	if m.configPath != "" {
		return tea.Batch(loadConfigCmd(m.configPath, m.options), m.activeScene().Activate())
	}
	return m.activeScene().Activate()
}

// CurrentTab returns the tab being shown
func (m Model) CurrentTab() Tab {
	return m.currentTab
}

// Scene returns the scene behind a calculator tab, or nil for Help
func (m Model) Scene(t Tab) *scenes.FormScene {
	if int(t) < 0 || int(t) >= len(m.scenes) {
		return nil
	}
	return m.scenes[t]
}

func (m Model) activeScene() *scenes.FormScene {
	return m.Scene(m.currentTab)
}

// loadConfigCmd returns a command that loads and validates the configuration file
func loadConfigCmd(path string, defaults domain.CalculationOptions) tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.NewInputParserWithDefaults(defaults).LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ConfigLoadedMsg{Path: path, Config: cfg}
	}
}
