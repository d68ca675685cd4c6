package service

import (
	"context"
	"fmt"

	"github.com/pantrylog/pantrylog/internal/domain"
	"github.com/pantrylog/pantrylog/internal/measure"
	"github.com/pantrylog/pantrylog/internal/repo"
)

// ExportService assembles a full flat export of all recipes and their
// ingredients.
type ExportService struct {
	recipes repo.RecipeRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(recipes repo.RecipeRepo) *ExportService {
	return &ExportService{recipes: recipes}
}

// Export returns one ExportRow per ingredient across all recipes.
// Recipes with no ingredients contribute one row with empty ingredient fields.
// Always returns a non-nil slice.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	recipes, err := s.recipes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := []domain.ExportRow{}
	for _, rec := range recipes {
		base := domain.ExportRow{
			RecipeID:         rec.ID.String(),
			RecipeName:       rec.Name,
			TotalTimeMinutes: rec.TotalTimeMinutes(),
			StepCount:        len(rec.Steps),
		}
		if len(rec.Ingredients) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, ing := range rec.Ingredients {
			row := base
			row.IngredientName = ing.Name
			row.Quantity = measure.FormatAmount(ing.Quantity)
			row.Unit = ing.Unit.Name()
			rows = append(rows, row)
		}
	}
	return rows, nil
}
