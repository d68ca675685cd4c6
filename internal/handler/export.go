package handler

import (
	"net/http"
)

type exportRowResponse struct {
	RecipeID         string `json:"recipe_id"`
	RecipeName       string `json:"recipe_name"`
	TotalTimeMinutes int    `json:"total_time_minutes"`
	StepCount        int    `json:"step_count"`
	IngredientName   string `json:"ingredient_name,omitempty"`
	Quantity         string `json:"quantity,omitempty"`
	Unit             string `json:"unit,omitempty"`
}

type exportResponse struct {
	Data []exportRowResponse `json:"data"`
}

// GetExport handles GET /export.
// It returns the flat, denormalized recipe/ingredient rows assembled by the
// export service: one row per ingredient, recipe fields repeated.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	rows, err := s.export.Export(r.Context())
	if err != nil {
		writeServerError(w)
		return
	}

	data := make([]exportRowResponse, len(rows))
	for i, row := range rows {
		data[i] = exportRowResponse(row)
	}
	respondJSON(w, http.StatusOK, exportResponse{Data: data})
}
