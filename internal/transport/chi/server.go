package chi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/aiconsole/internal/domain/catalog"
	"github.com/kailas-cloud/aiconsole/internal/domain/search/filter"
	logpkg "github.com/kailas-cloud/aiconsole/internal/logger"
	healthuc "github.com/kailas-cloud/aiconsole/internal/usecase/health"
)

const maxRequestBody = 64 << 10

// SearchRequest is the body of POST /v1/search.
type SearchRequest struct {
	Query string `json:"query"`
}

// ProductsResponse is returned by both search endpoints.
type ProductsResponse struct {
	Query    string            `json:"query,omitempty"`
	Criteria filter.Criteria   `json:"criteria"`
	Count    int               `json:"count"`
	Products []catalog.Product `json:"products"`
}

// Server serves the product search API.
type Server struct {
	search ProductSearcher
	health HealthChecker
	logger *zap.Logger
}

// NewServer creates an HTTP API server. health can be nil.
func NewServer(search ProductSearcher, health HealthChecker, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{search: search, health: health, logger: logger}
}

// SearchProducts handles POST /v1/search.
func (s *Server) SearchProducts(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	res, err := s.search.Search(r.Context(), req.Query)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ProductsResponse{
		Query:    res.Query,
		Criteria: res.Criteria,
		Count:    len(res.Products),
		Products: res.Products,
	})
}

// ListProducts handles GET /v1/products. Query parameters map straight to
// filter criteria; malformed values are ignored.
func (s *Server) ListProducts(w http.ResponseWriter, r *http.Request) {
	criteria := criteriaFromQuery(r)
	products := s.search.Filter(criteria)

	writeJSON(w, http.StatusOK, ProductsResponse{
		Criteria: criteria,
		Count:    len(products),
		Products: products,
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if s.health == nil {
		writeJSON(w, http.StatusOK, healthuc.Report{Status: healthuc.Healthy, Checks: map[string]healthuc.CheckResult{}})
		return
	}

	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	writeJSON(w, httpStatus, report)
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func criteriaFromQuery(r *http.Request) filter.Criteria {
	q := r.URL.Query()
	args := make(map[string]any, len(q))
	for key, values := range q {
		if len(values) > 0 {
			args[strings.ToLower(key)] = values[0]
		}
	}
	return filter.FromArguments(args)
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logpkg.FromContext(r.Context())
	for _, h := range errorHandlers {
		if h(w, err) {
			log.Warn("domain error", zap.Error(err))
			return
		}
	}
	if ctxErr := r.Context().Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		log.Info("request canceled", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, CodeInternalError, "request canceled")
		return
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
