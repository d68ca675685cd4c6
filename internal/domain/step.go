package domain

import (
	"fmt"
	"strings"
)

// Step is a single procedural instruction in a recipe.
// Order starts at 1. Nothing here enforces uniqueness or contiguity of Order
// across a recipe's steps — see Recipe.
type Step struct {
	Order       int
	Description string
}

// NewStep validates and builds a Step.
// Fails with ErrOrder when order < 1 and ErrName when description trims to empty.
func NewStep(order int, description string) (Step, error) {
	s := Step{Order: order, Description: description}
	if err := s.Validate(); err != nil {
		return Step{}, err
	}
	return s, nil
}

// Validate enforces the step invariants.
func (s Step) Validate() error {
	if s.Order < 1 {
		return fmt.Errorf("%w: must be at least 1, got %d", ErrOrder, s.Order)
	}
	if strings.TrimSpace(s.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrName)
	}
	return nil
}

// Render formats the step for display: "Step 2: Fold in the cheese".
func (s Step) Render() string {
	return fmt.Sprintf("Step %d: %s", s.Order, s.Description)
}
