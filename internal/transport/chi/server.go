// Package chi exposes the HTTP API over a chi router.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/toolscout/toolscout/internal/domain"
	healthuc "github.com/toolscout/toolscout/internal/usecase/health"
	retrievaluc "github.com/toolscout/toolscout/internal/usecase/retrieval"
)

// Error codes returned in the JSON error envelope.
const (
	codeBadRequest    = "bad_request"
	codeInvalidQuery  = "invalid_query"
	codeInternalError = "internal_error"
)

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Server handles the HTTP API.
type Server struct {
	retrieval  *retrievaluc.Service
	health     *healthuc.Service
	maxResults int
	logger     *zap.Logger
}

// NewServer creates an HTTP API server. maxResults caps the per-request
// result count and serves as the default when the client omits a limit.
func NewServer(
	retrieval *retrievaluc.Service,
	health *healthuc.Service,
	maxResults int,
	logger *zap.Logger,
) *Server {
	return &Server{
		retrieval:  retrieval,
		health:     health,
		maxResults: maxResults,
		logger:     logger,
	}
}

// RegisterRoutes mounts all API routes on the router.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Post("/api/v1/retrieve", s.Retrieve)
	r.Post("/api/v1/analyze", s.Analyze)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

type retrieveRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

type documentItem struct {
	Title    string  `json:"title"`
	URL      string  `json:"url"`
	Body     string  `json:"body"`
	Source   string  `json:"source"`
	Position int     `json:"position"`
	Score    float64 `json:"score"`
}

type retrieveResponse struct {
	Query string         `json:"query"`
	Items []documentItem `json:"items"`
	Total int            `json:"total"`
}

// Retrieve handles POST /api/v1/retrieve.
func (s *Server) Retrieve(w http.ResponseWriter, r *http.Request) {
	var req retrieveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	limit := req.Limit
	if limit <= 0 || limit > s.maxResults {
		limit = s.maxResults
	}

	docs, err := s.retrieval.Retrieve(r.Context(), req.Query, limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]documentItem, len(docs))
	for i := range docs {
		h := docs[i].Hit()
		items[i] = documentItem{
			Title:    h.Title(),
			URL:      h.URL(),
			Body:     h.Body(),
			Source:   string(h.Source()),
			Position: h.Position(),
			Score:    docs[i].Score(),
		}
	}

	writeJSON(w, http.StatusOK, retrieveResponse{
		Query: req.Query,
		Items: items,
		Total: len(items),
	})
}

type analyzeRequest struct {
	Query string `json:"query"`
}

type analyzeResponse struct {
	Query              string   `json:"query"`
	Intent             string   `json:"intent"`
	Category           string   `json:"category"`
	Subject            string   `json:"subject,omitempty"`
	ComparisonSubjects []string `json:"comparison_subjects,omitempty"`
	SearchQuery        string   `json:"search_query"`
	ArticleQuery       string   `json:"article_query"`
	Valid              bool     `json:"valid"`
}

// Analyze handles POST /api/v1/analyze. It never fails on invalid text;
// validity is reported in the body so clients can inspect any input.
func (s *Server) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	a := s.retrieval.Analyze(req.Query)

	writeJSON(w, http.StatusOK, analyzeResponse{
		Query:              a.Query,
		Intent:             string(a.Intent),
		Category:           string(a.Category),
		Subject:            a.Subject,
		ComparisonSubjects: a.ComparisonSubjects,
		SearchQuery:        a.SearchQuery,
		ArticleQuery:       a.ArticleQuery,
		Valid:              a.Valid,
	})
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string)
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidQuery,
		domain.ErrSourceUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	if errors.Is(err, domain.ErrInvalidQuery) {
		writeError(w, http.StatusBadRequest, codeInvalidQuery, msg)
		return
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
