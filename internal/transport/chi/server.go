// Package chi exposes the listing, intake and health services over HTTP.
package chi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/hearthapi/hearth/internal/domain"
	healthuc "github.com/hearthapi/hearth/internal/usecase/health"
	intakeuc "github.com/hearthapi/hearth/internal/usecase/intake"
	listinguc "github.com/hearthapi/hearth/internal/usecase/listing"
	"github.com/hearthapi/hearth/internal/version"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, r *http.Request, err error) bool

// Server routes API requests to the use case services.
type Server struct {
	listings      *listinguc.Service
	intake        *intakeuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	listings *listinguc.Service,
	intake *intakeuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		listings: listings,
		intake:   intake,
		health:   health,
		logger:   logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrPropertyNotFound, http.StatusNotFound),
		sentinelHandler(domain.ErrValidation, http.StatusBadRequest),
	}
	return s
}

// Routes registers all API routes on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/", s.root)
	r.Route("/api", func(r chi.Router) {
		r.Post("/properties", s.createProperty)
		r.Get("/properties", s.listProperties)
		r.Get("/properties/{id}", s.getProperty)
		r.Post("/inquiries", s.createInquiry)
		r.Post("/leads", s.createLead)
	})
	r.Get("/test", s.healthReport)
}

type rootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

func (s *Server) root(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, rootResponse{
		Message: "Real Estate Backend Running",
		Version: version.Version,
	})
}

func (s *Server) healthReport(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.health.Check(r.Context()))
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: message})
}

// sentinelHandler returns an errorHandler that matches a single sentinel
// error. The wrapped message is safe to expose: it names the field or id the
// request got wrong, never store internals.
func sentinelHandler(sentinel error, status int) errorHandler {
	return func(w http.ResponseWriter, r *http.Request, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, r, status, err.Error())
		return true
	}
}

// handleDomainError maps an error to a response. Unmatched errors are store
// or encoding failures and surface as 500 with the message attached for
// diagnostics.
func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	for _, h := range s.errorHandlers {
		if h(w, r, err) {
			s.logger.Warn("request rejected", zap.Error(err))
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, r, http.StatusInternalServerError, err.Error())
}
