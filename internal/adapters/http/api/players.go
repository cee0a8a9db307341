package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/okian/champions/internal/domain/filter"
	"github.com/okian/champions/internal/domain/model"
)

// PlayersDependencies defines the interface for registry queries.
type PlayersDependencies interface {
	ListPlayers(ctx context.Context, c filter.Criteria) ([]model.Player, error)
	Player(ctx context.Context, id string) (model.Player, error)
}

// PlayersHandler handles player listing and lookup.
type PlayersHandler struct {
	deps PlayersDependencies
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps PlayersDependencies) *PlayersHandler {
	return &PlayersHandler{deps: deps}
}

type playersResponse struct {
	Players        []model.Player `json:"players"`
	Count          int            `json:"count"`
	FiltersApplied filtersApplied `json:"filters_applied"`
}

// filtersApplied echoes the parsed query; absent parameters encode as null.
type filtersApplied struct {
	Position *string `json:"position"`
	League   *string `json:"league"`
	AgeRange *string `json:"age_range"`
	MaxValue *int64  `json:"max_value"`
}

// HandleList handles GET /api/players requests.
func (h *PlayersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	minAge := queryInt(q, "min_age")
	maxAge := queryInt(q, "max_age")
	maxValue := queryInt(q, "max_value")

	c := filter.Criteria{
		Position: q.Get("position"),
		League:   q.Get("league"),
		MinAge:   int(deref(minAge)),
		MaxAge:   int(deref(maxAge)),
		MaxValue: deref(maxValue),
	}

	players, err := h.deps.ListPlayers(r.Context(), c)
	if err != nil {
		writeError(w, Wrap("list players", err))
		return
	}

	applied := filtersApplied{
		Position: queryString(q, "position"),
		League:   queryString(q, "league"),
		MaxValue: maxValue,
	}
	if c.MinAge != 0 && c.MaxAge != 0 {
		ageRange := fmt.Sprintf("%d-%d", c.MinAge, c.MaxAge)
		applied.AgeRange = &ageRange
	}

	writeJSON(w, http.StatusOK, playersResponse{
		Players:        players,
		Count:          len(players),
		FiltersApplied: applied,
	})
}

// HandleGet handles GET /api/players/{id} requests.
func (h *PlayersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.deps.Player(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, Wrap("get player", err))
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// queryString returns the raw value when the key is present.
func queryString(q url.Values, key string) *string {
	if !q.Has(key) {
		return nil
	}
	v := q.Get(key)
	return &v
}

// queryInt parses an integer parameter. Absent or malformed values are nil.
func queryInt(q url.Values, key string) *int64 {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

func deref(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
