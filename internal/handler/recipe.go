package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/pantrylog/pantrylog/internal/domain"
)

// --- wire types -------------------------------------------------------------

// ingredientRequest carries one ingredient in a recipe or inventory body.
// Required fields are pointers so "absent" is distinguishable from "zero":
// an omitted field is a missing_field error, not a generic validation one.
// Unit travels as an identifier string and is resolved through the measure
// registry before any domain constructor runs.
type ingredientRequest struct {
	Name     *string  `json:"name"`
	Quantity *float64 `json:"quantity"`
	Unit     *string  `json:"unit"`
}

type stepRequest struct {
	Order       *int    `json:"order"`
	Description *string `json:"description"`
}

type recipeRequest struct {
	Name            *string             `json:"name"`
	Description     *string             `json:"description"`
	Ingredients     []ingredientRequest `json:"ingredients"`
	Steps           []stepRequest       `json:"steps"`
	PrepTimeMinutes *int                `json:"prep_time_minutes"`
	CookTimeMinutes *int                `json:"cook_time_minutes"`
}

type ingredientResponse struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit,omitempty"` // omitted for dimensionless counts
	Display  string  `json:"display"`
}

type stepResponse struct {
	Order       int    `json:"order"`
	Description string `json:"description"`
	Display     string `json:"display"`
}

type recipeResponse struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	Description      string               `json:"description,omitempty"`
	Ingredients      []ingredientResponse `json:"ingredients"`
	Steps            []stepResponse       `json:"steps"`
	PrepTimeMinutes  *int                 `json:"prep_time_minutes,omitempty"`
	CookTimeMinutes  *int                 `json:"cook_time_minutes,omitempty"`
	TotalTimeMinutes int                  `json:"total_time_minutes"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

// paginationResponse echoes the effective paging parameters on list endpoints.
type paginationResponse struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

type recipeListResponse struct {
	Data       []recipeResponse   `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// --- handlers ---------------------------------------------------------------

// CreateRecipe handles POST /recipes.
func (s *Server) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	var body recipeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	recipe, err := s.requestToRecipe(body)
	if err != nil {
		writeValidation(w, err)
		return
	}

	created, err := s.recipes.Create(r.Context(), recipe)
	if err != nil {
		if isUnprocessable(err) {
			writeValidation(w, err)
			return
		}
		writeServerError(w)
		return
	}

	respondJSON(w, http.StatusCreated, recipeToResponse(created))
}

// ListRecipes handles GET /recipes.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListRecipes(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))

	recipes, total, err := s.recipes.ListPaged(r.Context(), params)
	if err != nil {
		writeServerError(w)
		return
	}

	data := make([]recipeResponse, len(recipes))
	for i, rec := range recipes {
		data[i] = recipeToResponse(rec)
	}
	respondJSON(w, http.StatusOK, recipeListResponse{
		Data:       data,
		Pagination: paginationResponse{Page: params.Page, Limit: params.Limit, Total: int(total)},
	})
}

// GetRecipe handles GET /recipes/{id}.
func (s *Server) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeNotFound(w, "recipe not found")
		return
	}

	recipe, err := s.recipes.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "recipe not found")
			return
		}
		writeServerError(w)
		return
	}

	respondJSON(w, http.StatusOK, recipeToResponse(recipe))
}

// UpdateRecipe handles PUT /recipes/{id}.
func (s *Server) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeNotFound(w, "recipe not found")
		return
	}

	var body recipeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	recipe, err := s.requestToRecipe(body)
	if err != nil {
		writeValidation(w, err)
		return
	}
	recipe.ID = id

	updated, err := s.recipes.Update(r.Context(), recipe)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeNotFound(w, "recipe not found")
		case isUnprocessable(err):
			writeValidation(w, err)
		default:
			writeServerError(w)
		}
		return
	}

	respondJSON(w, http.StatusOK, recipeToResponse(updated))
}

// DeleteRecipe handles DELETE /recipes/{id}.
func (s *Server) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeNotFound(w, "recipe not found")
		return
	}

	if err := s.recipes.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "recipe not found")
			return
		}
		writeServerError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

// requestToRecipe converts a recipeRequest into a domain.Recipe, resolving
// unit identifiers and running every domain constructor. All returned errors
// carry a domain or measure sentinel, so callers can map them to 422.
func (s *Server) requestToRecipe(body recipeRequest) (domain.Recipe, error) {
	if body.Name == nil {
		return domain.Recipe{}, fmt.Errorf("%w: name", domain.ErrMissingField)
	}

	ingredients := make([]domain.Ingredient, 0, len(body.Ingredients))
	for i, ing := range body.Ingredients {
		built, err := s.requestToIngredient(ing)
		if err != nil {
			return domain.Recipe{}, fmt.Errorf("ingredient %d: %w", i, err)
		}
		ingredients = append(ingredients, built)
	}

	steps := make([]domain.Step, 0, len(body.Steps))
	for i, st := range body.Steps {
		if st.Order == nil {
			return domain.Recipe{}, fmt.Errorf("step %d: %w: order", i, domain.ErrMissingField)
		}
		if st.Description == nil {
			return domain.Recipe{}, fmt.Errorf("step %d: %w: description", i, domain.ErrMissingField)
		}
		built, err := domain.NewStep(*st.Order, *st.Description)
		if err != nil {
			return domain.Recipe{}, fmt.Errorf("step %d: %w", i, err)
		}
		steps = append(steps, built)
	}

	description := ""
	if body.Description != nil {
		description = *body.Description
	}
	return domain.NewRecipe(*body.Name, description, ingredients, steps, body.PrepTimeMinutes, body.CookTimeMinutes)
}

// requestToIngredient validates presence of all required fields, resolves the
// unit identifier, and constructs the domain value.
func (s *Server) requestToIngredient(ing ingredientRequest) (domain.Ingredient, error) {
	if ing.Name == nil {
		return domain.Ingredient{}, fmt.Errorf("%w: name", domain.ErrMissingField)
	}
	if ing.Quantity == nil {
		return domain.Ingredient{}, fmt.Errorf("%w: quantity", domain.ErrMissingField)
	}
	if ing.Unit == nil {
		return domain.Ingredient{}, fmt.Errorf("%w: unit", domain.ErrMissingField)
	}
	unit, err := s.units.Resolve(*ing.Unit)
	if err != nil {
		return domain.Ingredient{}, err
	}
	return domain.NewIngredient(*ing.Name, *ing.Quantity, unit)
}

// recipeToResponse converts a domain.Recipe into its wire representation.
func recipeToResponse(rec domain.Recipe) recipeResponse {
	resp := recipeResponse{
		ID:               rec.ID.String(),
		Name:             rec.Name,
		Description:      rec.Description,
		Ingredients:      make([]ingredientResponse, len(rec.Ingredients)),
		Steps:            make([]stepResponse, len(rec.Steps)),
		PrepTimeMinutes:  rec.PrepTimeMinutes,
		CookTimeMinutes:  rec.CookTimeMinutes,
		TotalTimeMinutes: rec.TotalTimeMinutes(),
		CreatedAt:        rec.CreatedAt,
		UpdatedAt:        rec.UpdatedAt,
	}
	for i, ing := range rec.Ingredients {
		resp.Ingredients[i] = ingredientToResponse(ing.Substance)
	}
	for i, st := range rec.Steps {
		resp.Steps[i] = stepResponse{Order: st.Order, Description: st.Description, Display: st.Render()}
	}
	return resp
}

// ingredientToResponse renders a measured substance for the wire, omitting
// the unit token for dimensionless counts just as Render does.
func ingredientToResponse(sub domain.Substance) ingredientResponse {
	resp := ingredientResponse{
		Name:     sub.Name,
		Quantity: sub.Quantity,
		Display:  sub.Render(),
	}
	if !sub.Unit.Dimensionless() {
		resp.Unit = sub.Unit.Name()
	}
	return resp
}
