// Package repo contains all database access logic for the Pantry API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pantrylog/pantrylog/internal/domain"
	"github.com/pantrylog/pantrylog/internal/measure"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
//
// Begin is included because a recipe spans three tables; on a pgx.Tx it opens
// a savepoint, so the tests' rollback trick still works.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// RecipeRepo defines the persistence operations for Recipes.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type RecipeRepo interface {
	// Create inserts a new recipe with its ingredients and steps in one
	// transaction and returns the persisted record (with DB-generated id,
	// created_at, and updated_at populated).
	Create(ctx context.Context, recipe domain.Recipe) (domain.Recipe, error)

	// GetByID retrieves a single recipe, ingredients and steps included.
	// Returns domain.ErrNotFound if no recipe with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Recipe, error)

	// ListPaged returns one page of recipes ordered by name, plus the total
	// recipe count for pagination metadata.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Recipe, int64, error)

	// List returns all recipes ordered by name. Used by the export.
	List(ctx context.Context) ([]domain.Recipe, error)

	// Update overwrites the recipe row and replaces its ingredients and steps
	// in one transaction. Returns domain.ErrNotFound if the recipe does not exist.
	Update(ctx context.Context, recipe domain.Recipe) (domain.Recipe, error)

	// Delete removes a recipe by ID; children go with it via ON DELETE CASCADE.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgRecipeRepo is the Postgres implementation of RecipeRepo.
// It holds the measure registry because units are stored as canonical text
// and must be resolved back into measure.Unit values when scanning.
type pgRecipeRepo struct {
	db    db
	units *measure.Registry
}

// NewRecipeRepo constructs a RecipeRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewRecipeRepo(db db, units *measure.Registry) RecipeRepo {
	return &pgRecipeRepo{db: db, units: units}
}

// Create inserts the recipe row and its children inside one transaction.
func (r *pgRecipeRepo) Create(ctx context.Context, recipe domain.Recipe) (domain.Recipe, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("repo.RecipeRepo.Create: begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	const q = `
		INSERT INTO recipes (name, description, prep_time_minutes, cook_time_minutes)
		VALUES (@name, @description, @prep_time_minutes, @cook_time_minutes)
		RETURNING id, name, description, prep_time_minutes, cook_time_minutes, created_at, updated_at`

	row := tx.QueryRow(ctx, q, pgx.NamedArgs{
		"name":              recipe.Name,
		"description":       recipe.Description,
		"prep_time_minutes": recipe.PrepTimeMinutes, // nil becomes NULL
		"cook_time_minutes": recipe.CookTimeMinutes,
	})
	created, err := scanRecipe(row)
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("repo.RecipeRepo.Create: %w", err)
	}

	if err := insertChildren(ctx, tx, created.ID, recipe.Ingredients, recipe.Steps); err != nil {
		return domain.Recipe{}, fmt.Errorf("repo.RecipeRepo.Create: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.Recipe{}, fmt.Errorf("repo.RecipeRepo.Create: commit: %w", err)
	}

	created.Ingredients = append([]domain.Ingredient{}, recipe.Ingredients...)
	created.Steps = append([]domain.Step{}, recipe.Steps...)
	return created, nil
}

// GetByID retrieves a recipe and rehydrates its ingredients and steps.
func (r *pgRecipeRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Recipe, error) {
	const q = `
		SELECT id, name, description, prep_time_minutes, cook_time_minutes, created_at, updated_at
		FROM recipes
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	recipe, err := scanRecipe(row)
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("repo.RecipeRepo.GetByID: %w", err)
	}

	if err := r.loadChildren(ctx, []domain.Recipe{recipe}); err != nil {
		return domain.Recipe{}, fmt.Errorf("repo.RecipeRepo.GetByID: %w", err)
	}
	return recipe, nil
}

// ListPaged returns one page of recipes (children included) plus the total count.
func (r *pgRecipeRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Recipe, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM recipes`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.RecipeRepo.ListPaged: count: %w", err)
	}

	const q = `
		SELECT id, name, description, prep_time_minutes, cook_time_minutes, created_at, updated_at
		FROM recipes
		ORDER BY name, id
		LIMIT @limit OFFSET @offset`

	recipes, err := r.queryRecipes(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.RecipeRepo.ListPaged: %w", err)
	}
	return recipes, total, nil
}

// List returns all recipes, children included, ordered by name.
func (r *pgRecipeRepo) List(ctx context.Context) ([]domain.Recipe, error) {
	const q = `
		SELECT id, name, description, prep_time_minutes, cook_time_minutes, created_at, updated_at
		FROM recipes
		ORDER BY name, id`

	recipes, err := r.queryRecipes(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.RecipeRepo.List: %w", err)
	}
	return recipes, nil
}

// Update overwrites the recipe row and replaces all children.
func (r *pgRecipeRepo) Update(ctx context.Context, recipe domain.Recipe) (domain.Recipe, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("repo.RecipeRepo.Update: begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const q = `
		UPDATE recipes
		SET name              = @name,
		    description       = @description,
		    prep_time_minutes = @prep_time_minutes,
		    cook_time_minutes = @cook_time_minutes,
		    updated_at        = now()
		WHERE id = @id
		RETURNING id, name, description, prep_time_minutes, cook_time_minutes, created_at, updated_at`

	row := tx.QueryRow(ctx, q, pgx.NamedArgs{
		"id":                recipe.ID,
		"name":              recipe.Name,
		"description":       recipe.Description,
		"prep_time_minutes": recipe.PrepTimeMinutes,
		"cook_time_minutes": recipe.CookTimeMinutes,
	})
	updated, err := scanRecipe(row)
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("repo.RecipeRepo.Update: %w", err)
	}

	for _, table := range []string{"recipe_ingredients", "recipe_steps"} {
		if _, err := tx.Exec(ctx, `DELETE FROM `+table+` WHERE recipe_id = @id`, pgx.NamedArgs{"id": recipe.ID}); err != nil {
			return domain.Recipe{}, fmt.Errorf("repo.RecipeRepo.Update: clear %s: %w", table, err)
		}
	}
	if err := insertChildren(ctx, tx, updated.ID, recipe.Ingredients, recipe.Steps); err != nil {
		return domain.Recipe{}, fmt.Errorf("repo.RecipeRepo.Update: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.Recipe{}, fmt.Errorf("repo.RecipeRepo.Update: commit: %w", err)
	}

	updated.Ingredients = append([]domain.Ingredient{}, recipe.Ingredients...)
	updated.Steps = append([]domain.Step{}, recipe.Steps...)
	return updated, nil
}

// Delete removes a recipe by primary key.
func (r *pgRecipeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM recipes WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.RecipeRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.RecipeRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// --- helpers ----------------------------------------------------------------

// queryRecipes runs a multi-row recipe query and loads children for the result.
func (r *pgRecipeRepo) queryRecipes(ctx context.Context, q string, args ...any) ([]domain.Recipe, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []domain.Recipe
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	if err := r.loadChildren(ctx, recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// loadChildren fills Ingredients and Steps for the given recipes in place.
// Two queries total, regardless of how many recipes are loaded.
func (r *pgRecipeRepo) loadChildren(ctx context.Context, recipes []domain.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}
	index := make(map[uuid.UUID]*domain.Recipe, len(recipes))
	ids := make([]uuid.UUID, len(recipes))
	for i := range recipes {
		recipes[i].Ingredients = []domain.Ingredient{}
		recipes[i].Steps = []domain.Step{}
		index[recipes[i].ID] = &recipes[i]
		ids[i] = recipes[i].ID
	}

	const ingQ = `
		SELECT recipe_id, name, quantity, unit
		FROM recipe_ingredients
		WHERE recipe_id = ANY(@ids)
		ORDER BY recipe_id, position`

	rows, err := r.db.Query(ctx, ingQ, pgx.NamedArgs{"ids": ids})
	if err != nil {
		return fmt.Errorf("ingredients: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			recipeID pgtype.UUID
			name     string
			quantity float64
			unitText string
		)
		if err := rows.Scan(&recipeID, &name, &quantity, &unitText); err != nil {
			return fmt.Errorf("ingredients: scan: %w", err)
		}
		ing, err := r.rehydrateIngredient(name, quantity, unitText)
		if err != nil {
			return fmt.Errorf("ingredients: %w", err)
		}
		if rec, ok := index[uuid.UUID(recipeID.Bytes)]; ok {
			rec.Ingredients = append(rec.Ingredients, ing)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("ingredients: rows: %w", err)
	}

	const stepQ = `
		SELECT recipe_id, step_order, description
		FROM recipe_steps
		WHERE recipe_id = ANY(@ids)
		ORDER BY recipe_id, position`

	srows, err := r.db.Query(ctx, stepQ, pgx.NamedArgs{"ids": ids})
	if err != nil {
		return fmt.Errorf("steps: %w", err)
	}
	defer srows.Close()
	for srows.Next() {
		var (
			recipeID pgtype.UUID
			order    int
			desc     string
		)
		if err := srows.Scan(&recipeID, &order, &desc); err != nil {
			return fmt.Errorf("steps: scan: %w", err)
		}
		step, err := domain.NewStep(order, desc)
		if err != nil {
			return fmt.Errorf("steps: %w", err)
		}
		if rec, ok := index[uuid.UUID(recipeID.Bytes)]; ok {
			rec.Steps = append(rec.Steps, step)
		}
	}
	return srows.Err()
}

// rehydrateIngredient rebuilds a domain.Ingredient from its stored columns,
// resolving the unit text back through the registry. Stored rows pass the
// same constructor as fresh input, so a corrupted row surfaces as an error
// instead of an invalid value escaping the repo.
func (r *pgRecipeRepo) rehydrateIngredient(name string, quantity float64, unitText string) (domain.Ingredient, error) {
	unit, err := r.units.Resolve(unitText)
	if err != nil {
		return domain.Ingredient{}, fmt.Errorf("stored unit %q: %w", unitText, err)
	}
	return domain.NewIngredient(name, quantity, unit)
}

// insertChildren writes the ingredient and step rows for a recipe.
func insertChildren(ctx context.Context, tx pgx.Tx, recipeID uuid.UUID, ingredients []domain.Ingredient, steps []domain.Step) error {
	const ingQ = `
		INSERT INTO recipe_ingredients (recipe_id, position, name, quantity, unit)
		VALUES (@recipe_id, @position, @name, @quantity, @unit)`
	for i, ing := range ingredients {
		_, err := tx.Exec(ctx, ingQ, pgx.NamedArgs{
			"recipe_id": recipeID,
			"position":  i,
			"name":      ing.Name,
			"quantity":  ing.Quantity,
			"unit":      ing.Unit.Name(),
		})
		if err != nil {
			return fmt.Errorf("insert ingredient %d: %w", i, err)
		}
	}

	const stepQ = `
		INSERT INTO recipe_steps (recipe_id, position, step_order, description)
		VALUES (@recipe_id, @position, @step_order, @description)`
	for i, st := range steps {
		_, err := tx.Exec(ctx, stepQ, pgx.NamedArgs{
			"recipe_id":   recipeID,
			"position":    i,
			"step_order":  st.Order,
			"description": st.Description,
		})
		if err != nil {
			return fmt.Errorf("insert step %d: %w", i, err)
		}
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanRecipe to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanRecipe maps a single recipes row into a domain.Recipe (without children).
// It handles the UUID and nullable minute-column conversions.
func scanRecipe(s scanner) (domain.Recipe, error) {
	var (
		rec  domain.Recipe
		id   pgtype.UUID
		prep pgtype.Int4
		cook pgtype.Int4
	)

	err := s.Scan(&id, &rec.Name, &rec.Description, &prep, &cook, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Recipe{}, domain.ErrNotFound
		}
		return domain.Recipe{}, err
	}

	rec.ID = uuid.UUID(id.Bytes)
	if prep.Valid {
		v := int(prep.Int32)
		rec.PrepTimeMinutes = &v
	}
	if cook.Valid {
		v := int(cook.Int32)
		rec.CookTimeMinutes = &v
	}
	return rec, nil
}
