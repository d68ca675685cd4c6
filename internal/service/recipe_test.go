package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrylog/pantrylog/internal/domain"
	"github.com/pantrylog/pantrylog/internal/measure"
	"github.com/pantrylog/pantrylog/internal/repo"
	"github.com/pantrylog/pantrylog/internal/service"
)

// Shared registry for all service tests; immutable after construction.
var reg = measure.NewRegistry()

// ---- mock repos ------------------------------------------------------------

// mockRecipeRepo is a hand-written test double for repo.RecipeRepo.
// Set only the method fields your test needs.
type mockRecipeRepo struct {
	create    func(ctx context.Context, recipe domain.Recipe) (domain.Recipe, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Recipe, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Recipe, int64, error)
	list      func(ctx context.Context) ([]domain.Recipe, error)
	update    func(ctx context.Context, recipe domain.Recipe) (domain.Recipe, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockRecipeRepo) Create(ctx context.Context, r domain.Recipe) (domain.Recipe, error) {
	return m.create(ctx, r)
}
func (m *mockRecipeRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Recipe, error) {
	return m.getByID(ctx, id)
}
func (m *mockRecipeRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Recipe, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockRecipeRepo) List(ctx context.Context) ([]domain.Recipe, error) {
	return m.list(ctx)
}
func (m *mockRecipeRepo) Update(ctx context.Context, r domain.Recipe) (domain.Recipe, error) {
	return m.update(ctx, r)
}
func (m *mockRecipeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// compile-time check: mockRecipeRepo must satisfy repo.RecipeRepo.
var _ repo.RecipeRepo = (*mockRecipeRepo)(nil)

// ---- helpers ---------------------------------------------------------------

// validRecipe returns a recipe that passes all aggregate invariants.
func validRecipe(t *testing.T) domain.Recipe {
	t.Helper()
	ing, err := domain.NewIngredient("Flour", 500, reg.MustResolve("gram"))
	require.NoError(t, err)
	step, err := domain.NewStep(1, "Mix and bake")
	require.NoError(t, err)

	prep := 15
	r, err := domain.NewRecipe("Bread", "A simple loaf", []domain.Ingredient{ing}, []domain.Step{step}, &prep, nil)
	require.NoError(t, err)
	return r
}

// ---- Create ----------------------------------------------------------------

func TestRecipeService_Create_OK(t *testing.T) {
	input := validRecipe(t)
	stored := input
	stored.ID = uuid.New()

	svc := service.NewRecipeService(&mockRecipeRepo{
		create: func(_ context.Context, r domain.Recipe) (domain.Recipe, error) {
			return stored, nil
		},
	})

	got, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
}

func TestRecipeService_Create_InvalidAggregate(t *testing.T) {
	repoCalled := false
	svc := service.NewRecipeService(&mockRecipeRepo{
		create: func(_ context.Context, r domain.Recipe) (domain.Recipe, error) {
			repoCalled = true
			return r, nil
		},
	})

	bad := validRecipe(t)
	bad.Name = "   "

	_, err := svc.Create(context.Background(), bad)

	assert.ErrorIs(t, err, domain.ErrName)
	assert.False(t, repoCalled, "invalid input must never reach the repo")
}

func TestRecipeService_Create_InvalidIngredient(t *testing.T) {
	bad := validRecipe(t)
	bad.Ingredients[0].Quantity = 0

	svc := service.NewRecipeService(&mockRecipeRepo{})
	_, err := svc.Create(context.Background(), bad)

	assert.ErrorIs(t, err, domain.ErrQuantity)
}

func TestRecipeService_Create_RepoError(t *testing.T) {
	boom := errors.New("connection refused")
	svc := service.NewRecipeService(&mockRecipeRepo{
		create: func(_ context.Context, _ domain.Recipe) (domain.Recipe, error) {
			return domain.Recipe{}, boom
		},
	})

	_, err := svc.Create(context.Background(), validRecipe(t))

	assert.ErrorIs(t, err, boom)
}

// ---- GetByID ---------------------------------------------------------------

func TestRecipeService_GetByID_NotFound(t *testing.T) {
	svc := service.NewRecipeService(&mockRecipeRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Recipe, error) {
			return domain.Recipe{}, domain.ErrNotFound
		},
	})

	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- ListPaged -------------------------------------------------------------

func TestRecipeService_ListPaged_NormalizesNil(t *testing.T) {
	svc := service.NewRecipeService(&mockRecipeRepo{
		listPaged: func(_ context.Context, _ domain.PaginationParams) ([]domain.Recipe, int64, error) {
			return nil, 0, nil
		},
	})

	got, total, err := svc.ListPaged(context.Background(), domain.NewPaginationParams(nil, nil))

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Zero(t, total)
}

// ---- Update ----------------------------------------------------------------

func TestRecipeService_Update_OK(t *testing.T) {
	input := validRecipe(t)
	input.ID = uuid.New()

	svc := service.NewRecipeService(&mockRecipeRepo{
		update: func(_ context.Context, r domain.Recipe) (domain.Recipe, error) {
			return r, nil
		},
	})

	got, err := svc.Update(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, input.ID, got.ID)
}

func TestRecipeService_Update_NegativePrepTime(t *testing.T) {
	bad := validRecipe(t)
	neg := -10
	bad.PrepTimeMinutes = &neg

	svc := service.NewRecipeService(&mockRecipeRepo{})
	_, err := svc.Update(context.Background(), bad)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- Delete ----------------------------------------------------------------

func TestRecipeService_Delete_NotFound(t *testing.T) {
	svc := service.NewRecipeService(&mockRecipeRepo{
		delete: func(_ context.Context, _ uuid.UUID) error {
			return domain.ErrNotFound
		},
	})

	err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
