// Package handler implements the HTTP handlers for the Pantry API.
// All handlers are methods on Server, split into resource-specific files
// (health.go, recipe.go, inventory.go, units.go, export.go) but sharing the
// same Server struct so they can access its dependencies.
//
// The handler layer owns two jobs the inner layers refuse to do: decoding
// JSON bodies into domain values, and resolving unit identifiers through the
// measure registry. Resolution happens here, explicitly, before any domain
// constructor runs — a raw unit string never reaches the domain.
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pantrylog/pantrylog/internal/domain"
	"github.com/pantrylog/pantrylog/internal/measure"
	"github.com/pantrylog/pantrylog/spec"
)

// RecipeServicer defines the business operations the recipe handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type RecipeServicer interface {
	Create(ctx context.Context, recipe domain.Recipe) (domain.Recipe, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Recipe, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Recipe, int64, error)
	Update(ctx context.Context, recipe domain.Recipe) (domain.Recipe, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// InventoryServicer defines the business operations the inventory handlers depend on.
type InventoryServicer interface {
	Create(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.InventoryItem, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.InventoryItem, int64, error)
	Update(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ExportServicer defines the export operation the export handler depends on.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server holds the dependencies for all API endpoints.
// Wire it in main.go via Routes().
type Server struct {
	recipes   RecipeServicer
	inventory InventoryServicer
	export    ExportServicer
	units     *measure.Registry
}

// NewServer constructs the Server with all its dependencies.
func NewServer(recipes RecipeServicer, inventory InventoryServicer, export ExportServicer, units *measure.Registry) *Server {
	return &Server{recipes: recipes, inventory: inventory, export: export, units: units}
}

// Routes returns a chi router with every API endpoint mounted.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/recipes", func(r chi.Router) {
		r.Post("/", s.CreateRecipe)
		r.Get("/", s.ListRecipes)
		r.Get("/{id}", s.GetRecipe)
		r.Put("/{id}", s.UpdateRecipe)
		r.Delete("/{id}", s.DeleteRecipe)
	})

	r.Route("/inventory", func(r chi.Router) {
		r.Post("/", s.CreateInventoryItem)
		r.Get("/", s.ListInventoryItems)
		r.Get("/{id}", s.GetInventoryItem)
		r.Put("/{id}", s.UpdateInventoryItem)
		r.Delete("/{id}", s.DeleteInventoryItem)
	})

	r.Get("/units", s.ListUnits)
	r.Get("/units/convert", s.ConvertUnits)
	r.Get("/export", s.GetExport)

	return r
}

// GetOpenAPI serves the embedded OpenAPI document.
func (s *Server) GetOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}

// respondJSON writes v as a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// pathID extracts and parses the {id} URL parameter.
func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// queryInt parses an optional integer query parameter, returning nil when the
// parameter is absent or malformed (malformed values fall back to defaults
// rather than erroring, matching the forgiving pagination contract).
func queryInt(r *http.Request, key string) *int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}
