package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (MortgageTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	// Rate and term transforms
	registry.Register("adjust_rate", createAdjustRate)
	registry.Register("set_term", createSetTerm)

	// Down payment transforms
	registry.Register("set_down_payment_percent", createSetDownPaymentPercent)
	registry.Register("add_down_payment", createAddDownPayment)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (MortgageTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the names of all registered transforms in sorted order.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "adjust_rate:delta=-0.5"
func (r *TransformRegistry) ParseTransformSpec(spec string) (MortgageTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	// Split name from parameters
	name := strings.TrimSpace(parts[0])
	paramsStr := strings.TrimSpace(parts[1])

	// Parse parameters
	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			kv := strings.SplitN(paramPair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	return r.Create(name, params)
}

func decimalParam(transform string, params map[string]string, key string) (decimal.Decimal, error) {
	raw, ok := params[key]
	if !ok {
		return decimal.Zero, fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return value, nil
}

func createAdjustRate(params map[string]string) (MortgageTransform, error) {
	delta, err := decimalParam("adjust_rate", params, "delta")
	if err != nil {
		return nil, err
	}
	return &AdjustRate{DeltaPercent: delta}, nil
}

func createSetTerm(params map[string]string) (MortgageTransform, error) {
	yearsStr, ok := params["years"]
	if !ok {
		return nil, fmt.Errorf("set_term requires 'years' parameter")
	}
	years, err := strconv.Atoi(yearsStr)
	if err != nil {
		return nil, fmt.Errorf("invalid years value: %w", err)
	}
	return &SetTerm{Years: years}, nil
}

func createSetDownPaymentPercent(params map[string]string) (MortgageTransform, error) {
	pct, err := decimalParam("set_down_payment_percent", params, "percent")
	if err != nil {
		return nil, err
	}
	return &SetDownPaymentPercent{Percent: pct}, nil
}

func createAddDownPayment(params map[string]string) (MortgageTransform, error) {
	amount, err := decimalParam("add_down_payment", params, "amount")
	if err != nil {
		return nil, err
	}
	return &AddDownPayment{Amount: amount}, nil
}
