package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/pantrylog/pantrylog/internal/domain"
)

// inventoryItemRequest is the wire shape for creating or updating stock.
// It is an ingredientRequest plus optional storage provenance.
type inventoryItemRequest struct {
	Name            *string  `json:"name"`
	Quantity        *float64 `json:"quantity"`
	Unit            *string  `json:"unit"`
	StorageLocation *string  `json:"storage_location"`
}

type inventoryItemResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Quantity        float64   `json:"quantity"`
	Unit            string    `json:"unit,omitempty"`
	Display         string    `json:"display"`
	StorageLocation string    `json:"storage_location,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type inventoryListResponse struct {
	Data       []inventoryItemResponse `json:"data"`
	Pagination paginationResponse      `json:"pagination"`
}

// CreateInventoryItem handles POST /inventory.
func (s *Server) CreateInventoryItem(w http.ResponseWriter, r *http.Request) {
	var body inventoryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	item, err := s.requestToInventoryItem(body)
	if err != nil {
		writeValidation(w, err)
		return
	}

	created, err := s.inventory.Create(r.Context(), item)
	if err != nil {
		if isUnprocessable(err) {
			writeValidation(w, err)
			return
		}
		writeServerError(w)
		return
	}

	respondJSON(w, http.StatusCreated, inventoryItemToResponse(created))
}

// ListInventoryItems handles GET /inventory.
func (s *Server) ListInventoryItems(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))

	items, total, err := s.inventory.ListPaged(r.Context(), params)
	if err != nil {
		writeServerError(w)
		return
	}

	data := make([]inventoryItemResponse, len(items))
	for i, item := range items {
		data[i] = inventoryItemToResponse(item)
	}
	respondJSON(w, http.StatusOK, inventoryListResponse{
		Data:       data,
		Pagination: paginationResponse{Page: params.Page, Limit: params.Limit, Total: int(total)},
	})
}

// GetInventoryItem handles GET /inventory/{id}.
func (s *Server) GetInventoryItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeNotFound(w, "inventory item not found")
		return
	}

	item, err := s.inventory.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "inventory item not found")
			return
		}
		writeServerError(w)
		return
	}

	respondJSON(w, http.StatusOK, inventoryItemToResponse(item))
}

// UpdateInventoryItem handles PUT /inventory/{id}.
func (s *Server) UpdateInventoryItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeNotFound(w, "inventory item not found")
		return
	}

	var body inventoryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	item, err := s.requestToInventoryItem(body)
	if err != nil {
		writeValidation(w, err)
		return
	}
	item.ID = id

	updated, err := s.inventory.Update(r.Context(), item)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeNotFound(w, "inventory item not found")
		case isUnprocessable(err):
			writeValidation(w, err)
		default:
			writeServerError(w)
		}
		return
	}

	respondJSON(w, http.StatusOK, inventoryItemToResponse(updated))
}

// DeleteInventoryItem handles DELETE /inventory/{id}.
func (s *Server) DeleteInventoryItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeNotFound(w, "inventory item not found")
		return
	}

	if err := s.inventory.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "inventory item not found")
			return
		}
		writeServerError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// requestToInventoryItem mirrors requestToIngredient for stock records:
// presence checks, explicit unit resolution, then the domain constructor.
func (s *Server) requestToInventoryItem(body inventoryItemRequest) (domain.InventoryItem, error) {
	if body.Name == nil {
		return domain.InventoryItem{}, fmt.Errorf("%w: name", domain.ErrMissingField)
	}
	if body.Quantity == nil {
		return domain.InventoryItem{}, fmt.Errorf("%w: quantity", domain.ErrMissingField)
	}
	if body.Unit == nil {
		return domain.InventoryItem{}, fmt.Errorf("%w: unit", domain.ErrMissingField)
	}
	unit, err := s.units.Resolve(*body.Unit)
	if err != nil {
		return domain.InventoryItem{}, err
	}
	location := ""
	if body.StorageLocation != nil {
		location = *body.StorageLocation
	}
	return domain.NewInventoryItem(*body.Name, *body.Quantity, unit, location)
}

func inventoryItemToResponse(item domain.InventoryItem) inventoryItemResponse {
	resp := inventoryItemResponse{
		ID:              item.ID.String(),
		Name:            item.Name,
		Quantity:        item.Quantity,
		Display:         item.Render(),
		StorageLocation: item.StorageLocation,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
	if !item.Unit.Dimensionless() {
		resp.Unit = item.Unit.Name()
	}
	return resp
}
