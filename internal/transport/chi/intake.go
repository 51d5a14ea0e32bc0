package chi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/render"

	domlisting "github.com/hearthapi/hearth/internal/domain/listing"
)

func (s *Server) createInquiry(w http.ResponseWriter, r *http.Request) {
	var in domlisting.Inquiry
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	id, err := s.intake.SubmitInquiry(r.Context(), &in)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, idResponse{ID: id})
}

func (s *Server) createLead(w http.ResponseWriter, r *http.Request) {
	var l domlisting.Lead
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	id, err := s.intake.SubmitLead(r.Context(), &l)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, idResponse{ID: id})
}
