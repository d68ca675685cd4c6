package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrylog/pantrylog/internal/domain"
	"github.com/pantrylog/pantrylog/internal/handler"
)

// mockInventoryServicer is a test double for handler.InventoryServicer.
type mockInventoryServicer struct {
	create    func(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.InventoryItem, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.InventoryItem, int64, error)
	update    func(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockInventoryServicer) Create(ctx context.Context, i domain.InventoryItem) (domain.InventoryItem, error) {
	return m.create(ctx, i)
}
func (m *mockInventoryServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.InventoryItem, error) {
	return m.getByID(ctx, id)
}
func (m *mockInventoryServicer) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.InventoryItem, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockInventoryServicer) Update(ctx context.Context, i domain.InventoryItem) (domain.InventoryItem, error) {
	return m.update(ctx, i)
}
func (m *mockInventoryServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.InventoryServicer = (*mockInventoryServicer)(nil)

func newInventoryHandler(svc handler.InventoryServicer) http.Handler {
	return handler.NewServer(nil, svc, nil, units).Routes()
}

func itemFixture(t *testing.T) domain.InventoryItem {
	t.Helper()
	item, err := domain.NewInventoryItem("Rice", 2, units.MustResolve("kg"), "pantry shelf")
	require.NoError(t, err)
	item.ID = uuid.New()
	item.CreatedAt = time.Now().UTC()
	item.UpdatedAt = time.Now().UTC()
	return item
}

// ---- POST /inventory -------------------------------------------------------

func TestCreateInventoryItem_201(t *testing.T) {
	fixture := itemFixture(t)
	svc := &mockInventoryServicer{
		create: func(_ context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
			assert.Equal(t, "Rice", item.Name)
			assert.Equal(t, "kilogram", item.Unit.Name(), "unit resolved before the service sees it")
			return fixture, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"name":             "Rice",
		"quantity":         2,
		"unit":             "kg",
		"storage_location": "pantry shelf",
	})

	req := httptest.NewRequest(http.MethodPost, "/inventory", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newInventoryHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeJSON(t, rec)
	assert.Equal(t, fixture.ID.String(), resp["id"])
	assert.Equal(t, "2.0 kilogram of Rice", resp["display"])
	assert.Equal(t, "pantry shelf", resp["storage_location"])
}

func TestCreateInventoryItem_201_Dimensionless(t *testing.T) {
	item, err := domain.NewInventoryItem("Eggs", 12, units.MustResolve("count"), "fridge")
	require.NoError(t, err)
	item.ID = uuid.New()

	svc := &mockInventoryServicer{
		create: func(_ context.Context, _ domain.InventoryItem) (domain.InventoryItem, error) {
			return item, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"name":     "Eggs",
		"quantity": 12,
		"unit":     "count",
	})

	req := httptest.NewRequest(http.MethodPost, "/inventory", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newInventoryHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeJSON(t, rec)
	assert.Equal(t, "12.0 Eggs", resp["display"], "dimensionless render omits the unit token")
	_, hasUnit := resp["unit"]
	assert.False(t, hasUnit, "unit field omitted for dimensionless counts")
}

func TestCreateInventoryItem_422_MissingQuantity(t *testing.T) {
	svc := &mockInventoryServicer{}

	body := jsonBody(t, map[string]any{
		"name": "Rice",
		"unit": "kg",
	})

	req := httptest.NewRequest(http.MethodPost, "/inventory", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newInventoryHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing field: quantity")
}

// ---- GET /inventory --------------------------------------------------------

func TestListInventoryItems_200(t *testing.T) {
	svc := &mockInventoryServicer{
		listPaged: func(_ context.Context, _ domain.PaginationParams) ([]domain.InventoryItem, int64, error) {
			return []domain.InventoryItem{itemFixture(t), itemFixture(t)}, 2, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/inventory", nil)
	rec := httptest.NewRecorder()

	newInventoryHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeJSON(t, rec)["data"], 2)
}

// ---- GET /inventory/{id} ---------------------------------------------------

func TestGetInventoryItem_200(t *testing.T) {
	fixture := itemFixture(t)
	svc := &mockInventoryServicer{
		getByID: func(_ context.Context, id uuid.UUID) (domain.InventoryItem, error) {
			assert.Equal(t, fixture.ID, id)
			return fixture, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/inventory/"+fixture.ID.String(), nil)
	rec := httptest.NewRecorder()

	newInventoryHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, fixture.ID.String(), decodeJSON(t, rec)["id"])
}

func TestGetInventoryItem_404(t *testing.T) {
	svc := &mockInventoryServicer{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.InventoryItem, error) {
			return domain.InventoryItem{}, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/inventory/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()

	newInventoryHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- PUT /inventory/{id} ---------------------------------------------------

func TestUpdateInventoryItem_200(t *testing.T) {
	fixture := itemFixture(t)
	svc := &mockInventoryServicer{
		update: func(_ context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
			assert.Equal(t, fixture.ID, item.ID)
			return fixture, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"name":     "Rice",
		"quantity": 1.5,
		"unit":     "kg",
	})

	req := httptest.NewRequest(http.MethodPut, "/inventory/"+fixture.ID.String(), body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newInventoryHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateInventoryItem_404(t *testing.T) {
	svc := &mockInventoryServicer{
		update: func(_ context.Context, _ domain.InventoryItem) (domain.InventoryItem, error) {
			return domain.InventoryItem{}, domain.ErrNotFound
		},
	}

	body := jsonBody(t, map[string]any{
		"name":     "Rice",
		"quantity": 1,
		"unit":     "kg",
	})

	req := httptest.NewRequest(http.MethodPut, "/inventory/"+uuid.New().String(), body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newInventoryHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- DELETE /inventory/{id} ------------------------------------------------

func TestDeleteInventoryItem_204(t *testing.T) {
	svc := &mockInventoryServicer{
		delete: func(_ context.Context, _ uuid.UUID) error { return nil },
	}

	req := httptest.NewRequest(http.MethodDelete, "/inventory/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()

	newInventoryHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteInventoryItem_404(t *testing.T) {
	svc := &mockInventoryServicer{
		delete: func(_ context.Context, _ uuid.UUID) error { return domain.ErrNotFound },
	}

	req := httptest.NewRequest(http.MethodDelete, "/inventory/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()

	newInventoryHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
