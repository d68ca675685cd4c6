package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/pantrylog/pantrylog/internal/measure"
)

// InventoryItem is stock on hand: a substance currently held in the kitchen,
// with storage provenance. It shares Ingredient's quantity/unit validation
// contract by embedding the same Substance value type, rather than by
// extending Ingredient — inventory fields stay out of ingredient internals.
//
// ID is zero until assigned by the persistence layer; this package neither
// generates nor validates identifiers.
type InventoryItem struct {
	ID uuid.UUID
	Substance
	StorageLocation string // free text, e.g. "Fridge"; empty means unspecified
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewInventoryItem validates and builds an InventoryItem.
// name/quantity/unit follow the Substance contract; storageLocation is
// unconstrained optional text.
func NewInventoryItem(name string, quantity float64, unit measure.Unit, storageLocation string) (InventoryItem, error) {
	s, err := NewSubstance(name, quantity, unit)
	if err != nil {
		return InventoryItem{}, err
	}
	return InventoryItem{Substance: s, StorageLocation: storageLocation}, nil
}
