package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/okian/champions/internal/domain/model"
)

// CompareDependencies defines the interface for player comparison.
type CompareDependencies interface {
	Compare(ctx context.Context, ids []string) (model.Comparison, error)
}

// CompareHandler handles comparison requests.
type CompareHandler struct {
	deps CompareDependencies
}

// NewCompareHandler creates a new comparison handler.
func NewCompareHandler(deps CompareDependencies) *CompareHandler {
	return &CompareHandler{deps: deps}
}

// HandleCompare handles GET /api/compare?players= requests.
// Repeated parameters and comma-separated values are both accepted.
func (h *CompareHandler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	cmp, err := h.deps.Compare(r.Context(), playerIDs(r.URL.Query()["players"]))
	respond(w, "compare", cmp, err)
}

func playerIDs(values []string) []string {
	ids := make([]string, 0, len(values))
	for _, v := range values {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}
