// Package filter selects players from a listing by optional criteria.
package filter

import (
	"math"
	"strings"

	"github.com/okian/champions/internal/domain/model"
)

// Sentinels that clients send to mean "no restriction".
const (
	AllPositions = "All Positions"
	AllLeagues   = "All Leagues"

	// valueUnit converts the max-value criterion (millions) to stored units.
	valueUnit = 1_000_000
)

// Criteria are optional, AND-combined restrictions on a listing.
//
// Zero numeric fields mean "not supplied"; a client cannot ask for
// min_age=0 or max_value=0 as a literal bound.
type Criteria struct {
	// Position matches case-insensitively as a substring of the position label.
	Position string
	// League matches exactly.
	League string
	MinAge int
	MaxAge int
	// MaxValue is expressed in millions.
	MaxValue int64
}

// IsEmpty reports whether c restricts nothing.
func (c Criteria) IsEmpty() bool {
	return !c.positionActive() && !c.leagueActive() && c.MinAge == 0 && c.MaxAge == 0 && c.MaxValue == 0
}

func (c Criteria) positionActive() bool { return !isAll(c.Position, AllPositions) }
func (c Criteria) leagueActive() bool   { return !isAll(c.League, AllLeagues) }

func isAll(v, sentinel string) bool {
	return v == "" || strings.EqualFold(v, sentinel) || strings.EqualFold(v, "all")
}

// maxValueBound converts MaxValue to stored units, saturating instead of
// wrapping. A bound beyond the int64 range restricts nothing.
func (c Criteria) maxValueBound() (int64, bool) {
	switch {
	case c.MaxValue == 0, c.MaxValue > math.MaxInt64/valueUnit:
		return 0, false
	case c.MaxValue < math.MinInt64/valueUnit:
		return math.MinInt64, true
	default:
		return c.MaxValue * valueUnit, true
	}
}

// Match reports whether p satisfies every supplied criterion.
func (c Criteria) Match(p model.Player) bool {
	if c.positionActive() && !strings.Contains(strings.ToLower(string(p.Position)), strings.ToLower(c.Position)) {
		return false
	}
	if c.leagueActive() && p.League != c.League {
		return false
	}
	if c.MinAge != 0 && p.Age < c.MinAge {
		return false
	}
	if c.MaxAge != 0 && p.Age > c.MaxAge {
		return false
	}
	if bound, ok := c.maxValueBound(); ok && p.CurrentValue > bound {
		return false
	}
	return true
}

// Apply returns the players matching c, preserving input order.
// The input slice is never modified.
func Apply(players []model.Player, c Criteria) []model.Player {
	out := make([]model.Player, 0, len(players))
	if c.IsEmpty() {
		return append(out, players...)
	}
	for _, p := range players {
		if c.Match(p) {
			out = append(out, p)
		}
	}
	return out
}
