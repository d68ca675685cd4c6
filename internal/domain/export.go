package domain

// ExportRow is a single row in the full-data export.
// It is a flat, denormalized view: one row per ingredient, with recipe
// fields repeated for every ingredient on that recipe. Recipes with no
// ingredients yield one row with zero values for all ingredient fields.
type ExportRow struct {
	// Recipe fields — repeated for every ingredient on the recipe.
	RecipeID         string
	RecipeName       string
	TotalTimeMinutes int
	StepCount        int

	// Ingredient fields — zero values when the recipe has no ingredients.
	IngredientName string
	Quantity       string // rendered amount, e.g. "0.5"; empty when no ingredient
	Unit           string // canonical unit name; empty when no ingredient
}
