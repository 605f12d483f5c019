package transform

import (
	"fmt"

	"github.com/rgehrsitz/budgetcalc/internal/domain"
)

// MortgageTransform defines the interface for all mortgage variations.
// Transforms are composable operations that derive a variant from a base mortgage,
// enabling side-by-side comparison of rate, term and down payment choices.
type MortgageTransform interface {
	// Apply returns a modified copy of base. The base is never mutated.
	Apply(base *domain.MortgageInputs) (*domain.MortgageInputs, error)

	// Name returns a short identifier for this transform (e.g., "adjust_rate").
	Name() string

	// Description returns a human-readable description of what this transform does.
	Description() string

	// Validate checks if the transform can be applied to base without applying it.
	Validate(base *domain.MortgageInputs) error
}

// ApplyTransforms applies a sequence of transforms to a base mortgage.
// Transforms are applied in order, with each transform receiving the output of the previous one.
func ApplyTransforms(base *domain.MortgageInputs, transforms []MortgageTransform) (*domain.MortgageInputs, error) {
	if base == nil {
		return nil, fmt.Errorf("base mortgage cannot be nil")
	}

	if len(transforms) == 0 {
		// No transforms to apply, return a copy of the base
		clone := *base
		return &clone, nil
	}

	// Apply each transform in sequence
	current := base
	for i, transform := range transforms {
		if transform == nil {
			return nil, fmt.Errorf("transform at index %d is nil", i)
		}

		// Validate before applying
		if err := transform.Validate(current); err != nil {
			return nil, fmt.Errorf("transform %s validation failed: %w", transform.Name(), err)
		}

		next, err := transform.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("transform %s failed: %w", transform.Name(), err)
		}

		current = next
	}

	return current, nil
}

// TransformError represents an error that occurred during transformation.
type TransformError struct {
	TransformName string
	Operation     string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %s (%s): %s: %v", e.TransformName, e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("transform %s (%s): %s", e.TransformName, e.Operation, e.Reason)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// NewTransformError creates a new TransformError.
func NewTransformError(transformName, operation, reason string, err error) error {
	return &TransformError{
		TransformName: transformName,
		Operation:     operation,
		Reason:        reason,
		Err:           err,
	}
}
