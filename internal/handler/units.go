package handler

import (
	"net/http"
	"strconv"

	"github.com/pantrylog/pantrylog/internal/measure"
)

type unitResponse struct {
	Name   string `json:"name"`
	Family string `json:"family"`
}

type unitListResponse struct {
	Data []unitResponse `json:"data"`
}

type conversionResponse struct {
	Amount  float64 `json:"amount"`
	Unit    string  `json:"unit"`
	Display string  `json:"display"`
}

// ListUnits handles GET /units.
// It returns the catalog of canonical units, grouped by family in the sort order.
func (s *Server) ListUnits(w http.ResponseWriter, _ *http.Request) {
	units := s.units.Units()
	data := make([]unitResponse, len(units))
	for i, u := range units {
		data[i] = unitResponse{Name: u.Name(), Family: u.Family().String()}
	}
	respondJSON(w, http.StatusOK, unitListResponse{Data: data})
}

// ConvertUnits handles GET /units/convert?amount=&from=&to=.
// Unknown units and cross-family conversions respond 422.
func (s *Server) ConvertUnits(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	amount, err := strconv.ParseFloat(q.Get("amount"), 64)
	if err != nil {
		writeBadRequest(w, "amount must be a number")
		return
	}

	from, err := s.units.Resolve(q.Get("from"))
	if err != nil {
		writeValidation(w, err)
		return
	}
	to, err := s.units.Resolve(q.Get("to"))
	if err != nil {
		writeValidation(w, err)
		return
	}

	converted, err := measure.New(amount, from).ConvertTo(to)
	if err != nil {
		writeValidation(w, err)
		return
	}

	respondJSON(w, http.StatusOK, conversionResponse{
		Amount:  converted.Magnitude,
		Unit:    converted.Unit.Name(),
		Display: converted.String(),
	})
}
