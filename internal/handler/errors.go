package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/pantrylog/pantrylog/internal/domain"
	"github.com/pantrylog/pantrylog/internal/measure"
)

// ErrorResponse is the JSON error envelope every non-2xx response uses.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeNotFound responds 404 with a resource-specific message.
// The caller supplies the message (e.g. "recipe not found") because the
// handler is the layer that knows what was being looked up.
func writeNotFound(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusNotFound, ErrorResponse{
		Error: ErrorDetail{Code: "not_found", Message: message},
	})
}

// writeValidation responds 422 with the message extracted from a wrapped
// domain validation error.
func writeValidation(w http.ResponseWriter, err error) {
	respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error: ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)},
	})
}

// writeBadRequest responds 422 for a request rejected before reaching the
// service layer (e.g. missing or malformed body).
func writeBadRequest(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error: ErrorDetail{Code: "validation_error", Message: message},
	})
}

// writeServerError responds 500 without leaking internals to the client.
func writeServerError(w http.ResponseWriter) {
	respondJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{Code: "internal_error", Message: "internal server error"},
	})
}

// isUnprocessable reports whether err should surface as HTTP 422: any domain
// validation failure, plus the measure package's resolution and cross-family
// conversion errors (which arrive from the registry before a domain value exists).
func isUnprocessable(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, measure.ErrUnknownUnit) ||
		errors.Is(err, measure.ErrUnitMismatch)
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.RecipeService.Create: validation error: invalid quantity: must
// be greater than 0, got -1.0" → "invalid quantity: must be greater than 0, got -1.0".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, prefix := range []string{
		"service.RecipeService.Create: ",
		"service.RecipeService.Update: ",
		"service.InventoryService.Create: ",
		"service.InventoryService.Update: ",
	} {
		msg = strings.TrimPrefix(msg, prefix)
	}
	return strings.TrimPrefix(msg, "validation error: ")
}
