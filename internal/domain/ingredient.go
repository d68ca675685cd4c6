package domain

import "github.com/pantrylog/pantrylog/internal/measure"

// Ingredient is a recipe's requirement for a substance: "0.5 teaspoon of
// Salt". It embeds Substance and adds nothing — the type exists so signatures
// distinguish a requirement from stock on hand (InventoryItem).
type Ingredient struct {
	Substance
}

// NewIngredient validates and builds an Ingredient.
// The validation contract is exactly Substance's: positive finite quantity,
// resolved unit, non-empty name.
func NewIngredient(name string, quantity float64, unit measure.Unit) (Ingredient, error) {
	s, err := NewSubstance(name, quantity, unit)
	if err != nil {
		return Ingredient{}, err
	}
	return Ingredient{Substance: s}, nil
}

// ConvertTo returns a copy of the ingredient re-expressed in target.
// Declared here (not just promoted) so the result is an Ingredient.
func (i Ingredient) ConvertTo(target measure.Unit) (Ingredient, error) {
	s, err := i.Substance.ConvertTo(target)
	if err != nil {
		return Ingredient{}, err
	}
	return Ingredient{Substance: s}, nil
}
