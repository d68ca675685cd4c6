// Package service contains the business logic for the Pantry API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pantrylog/pantrylog/internal/domain"
	"github.com/pantrylog/pantrylog/internal/repo"
)

// RecipeService implements business logic for Recipe operations.
type RecipeService struct {
	recipes repo.RecipeRepo
}

// NewRecipeService constructs a RecipeService backed by the provided RecipeRepo.
func NewRecipeService(r repo.RecipeRepo) *RecipeService {
	return &RecipeService{recipes: r}
}

// Create validates and persists a new recipe.
// Returns domain.ErrValidation (or one of its field sentinels) if the
// aggregate or any of its parts violates an invariant.
func (s *RecipeService) Create(ctx context.Context, recipe domain.Recipe) (domain.Recipe, error) {
	if err := recipe.Validate(); err != nil {
		return domain.Recipe{}, err
	}
	result, err := s.recipes.Create(ctx, recipe)
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("service.RecipeService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single recipe by ID, ingredients and steps included.
// Returns domain.ErrNotFound if no recipe with that ID exists.
func (s *RecipeService) GetByID(ctx context.Context, id uuid.UUID) (domain.Recipe, error) {
	result, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("service.RecipeService.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of recipes plus the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *RecipeService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Recipe, int64, error) {
	recipes, total, err := s.recipes.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.RecipeService.ListPaged: %w", err)
	}
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	return recipes, total, nil
}

// Update validates and persists changes to an existing recipe.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// recipe does not exist.
func (s *RecipeService) Update(ctx context.Context, recipe domain.Recipe) (domain.Recipe, error) {
	if err := recipe.Validate(); err != nil {
		return domain.Recipe{}, err
	}
	result, err := s.recipes.Update(ctx, recipe)
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("service.RecipeService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a recipe by ID.
// Returns domain.ErrNotFound if the recipe does not exist.
func (s *RecipeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.recipes.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.RecipeService.Delete: %w", err)
	}
	return nil
}
