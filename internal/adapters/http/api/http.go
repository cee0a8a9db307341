// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okian/champions/internal/adapters/repository"
	service "github.com/okian/champions/internal/app"
	"github.com/okian/champions/internal/domain/analytics"
	"github.com/okian/champions/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	HealthDependencies
	PlayersDependencies
	PredictionDependencies
	CompareDependencies
	InsightsDependencies
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	playersHandler  *PlayersHandler
	predictHandler  *PredictHandler
	compareHandler  *CompareHandler
	insightsHandler *InsightsHandler
	metricsHandler  http.Handler
	logger          logger.Logger
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, log logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	return &Server{
		healthHandler:   NewHealthHandler(deps),
		statsHandler:    NewStatsHandler(statsProvider),
		playersHandler:  NewPlayersHandler(deps),
		predictHandler:  NewPredictHandler(deps),
		compareHandler:  NewCompareHandler(deps),
		insightsHandler: NewInsightsHandler(deps),
		metricsHandler:  NewMetricsHandler(),
		logger:          log,
	}
}

// Register attaches all HTTP routes to r.
func (s *Server) Register(ctx context.Context, r chi.Router) {
	r.NotFound(handleNotFound)
	r.MethodNotAllowed(handleMethodNotAllowed)

	r.Handle("/metrics", s.metricsHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", MetricsMiddleware(s.healthHandler.HandleHealth, "health"))
		r.Get("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

		r.Get("/players", MetricsMiddleware(s.playersHandler.HandleList, "players"))
		r.Get("/players/{id}", MetricsMiddleware(s.playersHandler.HandleGet, "player"))

		r.Route("/predict", func(r chi.Router) {
			r.Get("/injury/{id}", MetricsMiddleware(s.predictHandler.HandleInjury, "predict_injury"))
			r.Get("/development/{id}", MetricsMiddleware(s.predictHandler.HandleDevelopment, "predict_development"))
			r.Get("/value/{id}", MetricsMiddleware(s.predictHandler.HandleValue, "predict_value"))
		})
		r.Get("/explain/{id}", MetricsMiddleware(s.predictHandler.HandleExplain, "explain"))
		r.Get("/compare", MetricsMiddleware(s.compareHandler.HandleCompare, "compare"))

		r.Get("/training/recommendations/{id}", MetricsMiddleware(s.insightsHandler.HandleTraining, "training"))
		r.Get("/analytics/performance", MetricsMiddleware(s.insightsHandler.HandlePerformance, "performance"))
		r.Get("/governance/status", MetricsMiddleware(s.insightsHandler.HandleGovernance, "governance"))
		r.Get("/strategy/squad", MetricsMiddleware(s.insightsHandler.HandleSquad, "squad"))
	})

	s.logger.Info(ctx, "api routes registered")
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err onto a status, a stable code and a client message.
func writeError(w http.ResponseWriter, err error) {
	status, code, msg := classify(err)
	writeJSON(w, status, errorResponse{Error: msg, Code: code})
}

func classify(err error) (int, string, string) {
	switch {
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "not_found", "Player not found"
	case errors.Is(err, analytics.ErrInsufficientPlayers):
		return http.StatusBadRequest, "insufficient_players", "At least 2 players required for comparison"
	case errors.Is(err, service.ErrTooManyPlayers):
		return http.StatusBadRequest, "too_many_players", err.Error()
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, "bad_request", err.Error()
	case errors.Is(err, service.ErrNotStarted):
		return http.StatusServiceUnavailable, "unavailable", "Service unavailable"
	default:
		return http.StatusInternalServerError, "internal_error", "Internal server error"
	}
}

func handleNotFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{Error: "Endpoint not found"})
}

func handleMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
}
