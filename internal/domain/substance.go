// Package domain contains the core data types for the Pantry application:
// unit-aware, validated value records for recipes and kitchen inventory.
// It depends only on the measure package and is imported by every other
// internal package (repo, service, handler).
//
// All types are immutable value objects: construct them through their New*
// functions, which validate atomically and either return a fully valid value
// or a typed error — never a partially built one. A "change" is modeled as
// constructing a new value.
package domain

import (
	"fmt"
	"math"
	"strings"

	"github.com/pantrylog/pantrylog/internal/measure"
)

// Substance is the shared measured-substance record: a named, positive
// amount of something in a resolved unit. Both Ingredient (a recipe's
// requirement) and InventoryItem (stock on hand) embed it, so the
// quantity/unit validation contract lives in exactly one place.
type Substance struct {
	Name     string
	Quantity float64
	Unit     measure.Unit
}

// NewSubstance validates and builds a Substance.
// Fails with ErrName when name trims to empty, ErrQuantity when quantity is
// not a positive finite number, and ErrUnit when unit is the unresolved zero
// value — entity construction never resolves unit identifiers itself.
func NewSubstance(name string, quantity float64, unit measure.Unit) (Substance, error) {
	s := Substance{Name: name, Quantity: quantity, Unit: unit}
	if err := s.Validate(); err != nil {
		return Substance{}, err
	}
	return s, nil
}

// Validate enforces the measured-substance invariants. It exists separately
// from NewSubstance so aggregates and services can re-check values that
// crossed a process boundary (HTTP body, database row).
func (s Substance) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrName)
	}
	if math.IsNaN(s.Quantity) || math.IsInf(s.Quantity, 0) {
		return fmt.Errorf("%w: must be a finite number", ErrQuantity)
	}
	if s.Quantity <= 0 {
		return fmt.Errorf("%w: must be greater than 0, got %s", ErrQuantity, measure.FormatAmount(s.Quantity))
	}
	if s.Unit.IsZero() {
		return fmt.Errorf("%w: must be resolved through the measure registry", ErrUnit)
	}
	return nil
}

// Render formats the substance for display: "0.5 teaspoon of Salt".
// The unit token is omitted entirely for dimensionless counts: "3.0 Eggs".
func (s Substance) Render() string {
	if s.Unit.Dimensionless() {
		return fmt.Sprintf("%s %s", measure.FormatAmount(s.Quantity), s.Name)
	}
	return fmt.Sprintf("%s %s of %s", measure.FormatAmount(s.Quantity), s.Unit, s.Name)
}

// Measure returns the substance's amount as a dimensioned quantity.
// Magnitude and unit are taken exactly as stored; no conversion happens here.
func (s Substance) Measure() measure.Quantity {
	return measure.New(s.Quantity, s.Unit)
}

// ConvertTo returns a copy of the substance re-expressed in target, which
// must belong to the same unit family. Cross-family targets fail with
// measure.ErrUnitMismatch.
func (s Substance) ConvertTo(target measure.Unit) (Substance, error) {
	q, err := s.Measure().ConvertTo(target)
	if err != nil {
		return Substance{}, err
	}
	return Substance{Name: s.Name, Quantity: q.Magnitude, Unit: q.Unit}, nil
}
