package chi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/hearthapi/hearth/internal/db"
	domlisting "github.com/hearthapi/hearth/internal/domain/listing"
	"github.com/hearthapi/hearth/internal/domain/query"
	"github.com/hearthapi/hearth/internal/metrics"
)

type idResponse struct {
	ID string `json:"id"`
}

type propertiesResponse struct {
	Items []db.Document `json:"items"`
	Total int64         `json:"total"`
}

func (s *Server) createProperty(w http.ResponseWriter, r *http.Request) {
	var p domlisting.Property
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	id, err := s.listings.Create(r.Context(), &p)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/properties/%s", id))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, idResponse{ID: id})
}

func (s *Server) listProperties(w http.ResponseWriter, r *http.Request) {
	params, err := bindSearchParams(r)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	metrics.PropertySearchTotal.WithLabelValues(query.ParseSort(params.Sort).String()).Inc()

	res, err := s.listings.Search(r.Context(), params)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	items := res.Items
	if items == nil {
		items = []db.Document{}
	}
	render.JSON(w, r, propertiesResponse{Items: items, Total: res.Total})
}

func (s *Server) getProperty(w http.ResponseWriter, r *http.Request) {
	doc, err := s.listings.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	render.JSON(w, r, doc)
}
