package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Recipe is the top-level aggregate: a named collection of already-valid
// Ingredients and Steps plus optional timing. Both collections may legally
// be empty, and step Order values may repeat or arrive out of sequence —
// the aggregate imposes no cross-entity invariants beyond its own fields.
// Insertion order of both slices is significant and preserved.
//
// ID is zero until assigned by the persistence layer.
type Recipe struct {
	ID          uuid.UUID
	Name        string
	Description string
	Ingredients []Ingredient
	Steps       []Step

	// PrepTimeMinutes and CookTimeMinutes are nil when unknown.
	// When present they must be >= 0.
	PrepTimeMinutes *int
	CookTimeMinutes *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRecipe validates and builds a Recipe from already-constructed parts.
// ingredients and steps may be nil or empty; they are normalized to non-nil
// slices so callers can always range over them.
func NewRecipe(name, description string, ingredients []Ingredient, steps []Step, prepTimeMinutes, cookTimeMinutes *int) (Recipe, error) {
	r := Recipe{
		Name:            name,
		Description:     description,
		Ingredients:     append([]Ingredient{}, ingredients...),
		Steps:           append([]Step{}, steps...),
		PrepTimeMinutes: prepTimeMinutes,
		CookTimeMinutes: cookTimeMinutes,
	}
	if err := r.Validate(); err != nil {
		return Recipe{}, err
	}
	return r, nil
}

// Validate enforces the aggregate's invariants: a non-empty name,
// non-negative times when present, and every constituent part valid.
// It deliberately does not require ingredients or steps to be non-empty,
// unique, or ordered.
func (r Recipe) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrName)
	}
	if r.PrepTimeMinutes != nil && *r.PrepTimeMinutes < 0 {
		return fmt.Errorf("%w: prep_time_minutes must not be negative, got %d", ErrValidation, *r.PrepTimeMinutes)
	}
	if r.CookTimeMinutes != nil && *r.CookTimeMinutes < 0 {
		return fmt.Errorf("%w: cook_time_minutes must not be negative, got %d", ErrValidation, *r.CookTimeMinutes)
	}
	for i, ing := range r.Ingredients {
		if err := ing.Validate(); err != nil {
			return fmt.Errorf("ingredient %d: %w", i, err)
		}
	}
	for i, st := range r.Steps {
		if err := st.Validate(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

// TotalTimeMinutes returns prep plus cook time, treating absent values as 0.
func (r Recipe) TotalTimeMinutes() int {
	total := 0
	if r.PrepTimeMinutes != nil {
		total += *r.PrepTimeMinutes
	}
	if r.CookTimeMinutes != nil {
		total += *r.CookTimeMinutes
	}
	return total
}

// SortedSteps returns a copy of the steps ordered by Order for display.
// The sort is stable, so steps sharing an Order value keep insertion order.
func (r Recipe) SortedSteps() []Step {
	out := append([]Step{}, r.Steps...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}
