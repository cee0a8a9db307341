package api

import (
	"net/http"
)

// StatsProvider reports the analytics service's runtime snapshot: lifecycle
// state, version, comparison limit, per-model served counts and, once
// started, registry size and uptime.
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// StatsHandler serves the service snapshot as JSON.
type StatsHandler struct {
	provider StatsProvider
}

// NewStatsHandler wraps provider.
func NewStatsHandler(provider StatsProvider) *StatsHandler {
	return &StatsHandler{provider: provider}
}

// HandleStats handles GET /api/stats. The payload keys are version,
// started, maxComparePlayers and predictionsServed, plus registryPlayers,
// startedAt and uptimeSeconds after Start.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.provider.GetStats())
}
