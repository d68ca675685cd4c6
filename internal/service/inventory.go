package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pantrylog/pantrylog/internal/domain"
	"github.com/pantrylog/pantrylog/internal/repo"
)

// InventoryService implements business logic for InventoryItem operations.
// Validation is exactly the measured-substance contract shared with
// ingredients; this layer adds nothing beyond it.
type InventoryService struct {
	items repo.InventoryRepo
}

// NewInventoryService constructs an InventoryService backed by the provided repo.
func NewInventoryService(items repo.InventoryRepo) *InventoryService {
	return &InventoryService{items: items}
}

// Create validates and persists a new inventory item.
func (s *InventoryService) Create(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
	if err := item.Validate(); err != nil {
		return domain.InventoryItem{}, err
	}
	result, err := s.items.Create(ctx, item)
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("service.InventoryService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single inventory item by ID.
// Returns domain.ErrNotFound if no item with that ID exists.
func (s *InventoryService) GetByID(ctx context.Context, id uuid.UUID) (domain.InventoryItem, error) {
	result, err := s.items.GetByID(ctx, id)
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("service.InventoryService.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of inventory items plus the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *InventoryService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.InventoryItem, int64, error) {
	items, total, err := s.items.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.InventoryService.ListPaged: %w", err)
	}
	if items == nil {
		items = []domain.InventoryItem{}
	}
	return items, total, nil
}

// Update validates and persists changes to an existing inventory item.
func (s *InventoryService) Update(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
	if err := item.Validate(); err != nil {
		return domain.InventoryItem{}, err
	}
	result, err := s.items.Update(ctx, item)
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("service.InventoryService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an inventory item by ID.
// Returns domain.ErrNotFound if the item does not exist.
func (s *InventoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.items.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.InventoryService.Delete: %w", err)
	}
	return nil
}
