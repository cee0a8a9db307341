package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okian/champions/internal/domain/analytics"
	"github.com/okian/champions/internal/domain/model"
)

// PredictionDependencies defines the interface for per-player models.
type PredictionDependencies interface {
	PredictInjury(ctx context.Context, id string) (model.Forecast[model.RiskPrediction], error)
	PredictDevelopment(ctx context.Context, id string) (model.Forecast[model.DevelopmentPrediction], error)
	PredictValue(ctx context.Context, id string) (model.Forecast[model.ValuePrediction], error)
	Explain(ctx context.Context, id, category string) (model.ExplanationReport, error)
}

// PredictHandler serves model predictions and explanations.
type PredictHandler struct {
	deps PredictionDependencies
}

// NewPredictHandler creates a new prediction handler.
func NewPredictHandler(deps PredictionDependencies) *PredictHandler {
	return &PredictHandler{deps: deps}
}

// respond writes v, or the mapped error when err is set.
func respond[T any](w http.ResponseWriter, op string, v T, err error) {
	if err != nil {
		writeError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// HandleInjury handles GET /api/predict/injury/{id} requests.
func (h *PredictHandler) HandleInjury(w http.ResponseWriter, r *http.Request) {
	f, err := h.deps.PredictInjury(r.Context(), chi.URLParam(r, "id"))
	respond(w, "predict injury", f, err)
}

// HandleDevelopment handles GET /api/predict/development/{id} requests.
func (h *PredictHandler) HandleDevelopment(w http.ResponseWriter, r *http.Request) {
	f, err := h.deps.PredictDevelopment(r.Context(), chi.URLParam(r, "id"))
	respond(w, "predict development", f, err)
}

// HandleValue handles GET /api/predict/value/{id} requests.
func (h *PredictHandler) HandleValue(w http.ResponseWriter, r *http.Request) {
	f, err := h.deps.PredictValue(r.Context(), chi.URLParam(r, "id"))
	respond(w, "predict value", f, err)
}

// HandleExplain handles GET /api/explain/{id}?type= requests.
// An absent type means recruitment; a present but empty one is passed through.
func (h *PredictHandler) HandleExplain(w http.ResponseWriter, r *http.Request) {
	category := analytics.Recruitment
	if v, ok := r.URL.Query()["type"]; ok && len(v) > 0 {
		category = v[0]
	}
	report, err := h.deps.Explain(r.Context(), chi.URLParam(r, "id"), category)
	respond(w, "explain", report, err)
}
