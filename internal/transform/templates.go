package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/budgetcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// TemplateRegistry manages built-in mortgage templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []MortgageTransform
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// List returns all registered template names in sorted order
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates creates a template registry with the common what-if variations
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	// Interest rate templates
	registry.Register(Template{
		Name:        "rate_minus_1",
		Description: "Interest rate one percentage point lower",
		Transforms:  []MortgageTransform{&AdjustRate{DeltaPercent: decimal.NewFromInt(-1)}},
	})
	registry.Register(Template{
		Name:        "rate_plus_1",
		Description: "Interest rate one percentage point higher",
		Transforms:  []MortgageTransform{&AdjustRate{DeltaPercent: decimal.NewFromInt(1)}},
	})

	// Loan term templates
	for _, years := range []int{15, 20, 30} {
		registry.Register(Template{
			Name:        fmt.Sprintf("term_%dyr", years),
			Description: fmt.Sprintf("%d-year term", years),
			Transforms:  []MortgageTransform{&SetTerm{Years: years}},
		})
	}

	// Down payment templates
	registry.Register(Template{
		Name:        "down_20pct",
		Description: "20% down payment, avoiding PMI",
		Transforms:  []MortgageTransform{&SetDownPaymentPercent{Percent: decimal.NewFromInt(20)}},
	})
	registry.Register(Template{
		Name:        "extra_down_10k",
		Description: "Additional $10,000 down payment",
		Transforms:  []MortgageTransform{&AddDownPayment{Amount: decimal.NewFromInt(10000)}},
	})

	return registry
}

// ApplyTemplate applies a template to a base mortgage
func ApplyTemplate(base *domain.MortgageInputs, template Template) (*domain.MortgageInputs, error) {
	return ApplyTransforms(base, template.Transforms)
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(templateList string) []string {
	if templateList == "" {
		return nil
	}

	parts := strings.Split(templateList, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}

// GetTemplateHelp returns formatted help text for all templates
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	var sb strings.Builder
	sb.WriteString("Available Templates:\n\n")

	// Sort templates by category
	categories := map[string][]Template{}
	order := []string{"Interest Rate", "Loan Term", "Down Payment", "Other"}
	for _, name := range registry.List() {
		template := registry.templates[name]
		switch {
		case strings.HasPrefix(name, "rate_"):
			categories["Interest Rate"] = append(categories["Interest Rate"], template)
		case strings.HasPrefix(name, "term_"):
			categories["Loan Term"] = append(categories["Loan Term"], template)
		case strings.Contains(name, "down"):
			categories["Down Payment"] = append(categories["Down Payment"], template)
		default:
			categories["Other"] = append(categories["Other"], template)
		}
	}

	// Print each category
	for _, category := range order {
		templates := categories[category]
		if len(templates) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("%s:\n", category))
		for _, t := range templates {
			sb.WriteString(fmt.Sprintf("  %-20s %s\n", t.Name, t.Description))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Usage:\n")
	sb.WriteString("  budgetcalc compare house.yaml --with rate_minus_1,term_15yr\n")
	sb.WriteString("  budgetcalc compare house.yaml --with down_20pct --transform adjust_rate:delta=-0.25\n")

	return sb.String()
}
