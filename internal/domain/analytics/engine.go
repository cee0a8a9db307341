// Package analytics holds the synthetic prediction models.
//
// Every model is a closed-form formula over a player's attributes with
// bounded random perturbation. Outputs are reproducible in shape (ranges,
// sign conventions) while individual draws vary with the random Source.
package analytics

import (
	"errors"

	"github.com/okian/champions/internal/domain/random"
)

// ErrInsufficientPlayers is returned when a comparison has fewer than two players.
var ErrInsufficientPlayers = errors.New("at least 2 players required for comparison")

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithSource sets the random source all models draw from.
func WithSource(src random.Source) Option {
	return func(e *Engine) {
		if src != nil {
			e.src = src
		}
	}
}

// Engine computes predictions. It holds no per-call state; the only shared
// dependency is the random Source, which must be safe for the caller's
// concurrency model.
type Engine struct {
	src random.Source
}

// New creates an Engine. Without WithSource it draws from a clock-seeded source.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.src == nil {
		e.src = random.New(0)
	}
	return e
}

func (e *Engine) uniform(lo, hi float64) float64 { return random.Uniform(e.src, lo, hi) }

func (e *Engine) intBetween(lo, hi int) int { return random.IntBetween(e.src, lo, hi) }
