package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okian/champions/internal/domain/model"
)

// InsightsDependencies defines the interface for the report generators.
type InsightsDependencies interface {
	TrainingPlan(ctx context.Context, id string) (model.TrainingPlan, error)
	Performance(ctx context.Context, timeframe, playerID string) (model.PerformanceAnalytics, error)
	Governance(ctx context.Context) model.GovernanceStatus
	SquadStrategy(ctx context.Context) model.SquadStrategy
}

// InsightsHandler serves training, analytics, governance and strategy reports.
type InsightsHandler struct {
	deps InsightsDependencies
}

// NewInsightsHandler creates a new insights handler.
func NewInsightsHandler(deps InsightsDependencies) *InsightsHandler {
	return &InsightsHandler{deps: deps}
}

// HandleTraining handles GET /api/training/recommendations/{id} requests.
func (h *InsightsHandler) HandleTraining(w http.ResponseWriter, r *http.Request) {
	plan, err := h.deps.TrainingPlan(r.Context(), chi.URLParam(r, "id"))
	respond(w, "training plan", plan, err)
}

// HandlePerformance handles GET /api/analytics/performance requests.
func (h *InsightsHandler) HandlePerformance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	perf, err := h.deps.Performance(r.Context(), q.Get("timeframe"), q.Get("player_id"))
	respond(w, "performance", perf, err)
}

// HandleGovernance handles GET /api/governance/status requests.
func (h *InsightsHandler) HandleGovernance(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Governance(r.Context()))
}

// HandleSquad handles GET /api/strategy/squad requests.
func (h *InsightsHandler) HandleSquad(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.SquadStrategy(r.Context()))
}
