package compare

import (
	"context"
	"errors"
	"fmt"

	"github.com/rgehrsitz/budgetcalc/internal/calculation"
	"github.com/rgehrsitz/budgetcalc/internal/domain"
	"github.com/rgehrsitz/budgetcalc/internal/transform"
)

// ErrUnknownTemplate is returned when a requested template is not registered
var ErrUnknownTemplate = errors.New("unknown template")

// CompareEngine orchestrates mortgage comparison
type CompareEngine struct {
	Logger            calculation.Logger
	MetricsCalculator *MetricsCalculator
	TemplateRegistry  *transform.TemplateRegistry
	TransformRegistry *transform.TransformRegistry
}

// NewCompareEngine creates a comparison engine with the built-in templates and transforms
func NewCompareEngine() *CompareEngine {
	return &CompareEngine{
		Logger:            calculation.NopLogger{},
		MetricsCalculator: NewMetricsCalculator(),
		TemplateRegistry:  transform.CreateBuiltInTemplates(),
		TransformRegistry: transform.NewTransformRegistry(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseScenarioName string   // label for the base row; defaults to the mortgage name
	Templates        []string // built-in template names to apply
	TransformSpecs   []string // ad-hoc "name:key=value" transforms, one variant each
}

// Compare computes the base mortgage and one variant per template or transform spec
func (ce *CompareEngine) Compare(
	ctx context.Context,
	base domain.MortgageInputs,
	options CompareOptions,
) (*ComparisonSet, error) {
	baseName := options.BaseScenarioName
	if baseName == "" {
		baseName = base.Name
	}
	if baseName == "" {
		baseName = "base"
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("comparison cancelled: %w", err)
	}
	baseMortgage := calculation.CalculateMortgage(base)
	baseResult := ce.MetricsCalculator.CalculateMetrics(baseName, &baseMortgage)
	baseResult.Description = "Base mortgage"

	alternatives := []ComparisonResult{}

	for _, templateName := range options.Templates {
		template, ok := ce.TemplateRegistry.Get(templateName)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTemplate, templateName)
		}

		variant, err := transform.ApplyTemplate(&base, template)
		if err != nil {
			return nil, fmt.Errorf("failed to apply template %s: %w", templateName, err)
		}

		alt, err := ce.evaluate(ctx, template.Name, template.Description, variant, baseResult)
		if err != nil {
			return nil, err
		}
		alternatives = append(alternatives, alt)
	}

	for _, spec := range options.TransformSpecs {
		t, err := ce.TransformRegistry.ParseTransformSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid transform %q: %w", spec, err)
		}

		variant, err := transform.ApplyTransforms(&base, []transform.MortgageTransform{t})
		if err != nil {
			return nil, fmt.Errorf("failed to apply transform %s: %w", spec, err)
		}

		alt, err := ce.evaluate(ctx, spec, t.Description(), variant, baseResult)
		if err != nil {
			return nil, err
		}
		alternatives = append(alternatives, alt)
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   baseName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	ce.logger().Infof("compared %s against %d variants", baseName, len(alternatives))
	return compSet, nil
}

func (ce *CompareEngine) evaluate(ctx context.Context, name, description string, variant *domain.MortgageInputs, base ComparisonResult) (ComparisonResult, error) {
	if err := ctx.Err(); err != nil {
		return ComparisonResult{}, fmt.Errorf("comparison cancelled before %s: %w", name, err)
	}

	result := calculation.CalculateMortgage(*variant)
	if result.Loan.IsDegenerate() {
		ce.logger().Warnf("variant %s produced no amortization schedule", name)
	}

	alt := ce.MetricsCalculator.CalculateMetrics(name, &result)
	alt.Description = description
	return ce.MetricsCalculator.CalculateComparison(alt, base), nil
}

func (ce *CompareEngine) logger() calculation.Logger {
	if ce.Logger == nil {
		return calculation.NopLogger{}
	}
	return ce.Logger
}
