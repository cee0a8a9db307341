// Package random provides the seedable randomness used by the analytics
// models. Models never touch a global generator; they draw from a Source
// handed to them at construction time.
package random

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Source yields pseudo-random numbers in [0, 1).
//
// *rand.Rand satisfies Source directly, which is handy in single-goroutine tests.
type Source interface {
	Float64() float64
}

// lockedSource guards a *rand.Rand so one Source can serve concurrent requests.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a goroutine-safe Source. A zero seed derives one from the clock.
func New(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedSource{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // not used for security
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// sequence replays a fixed list of draws, wrapping around at the end.
type sequence struct {
	mu   sync.Mutex
	vals []float64
	next int
}

// Sequence returns a Source that cycles through vals. Values outside [0, 1)
// are clamped into range. An empty list always yields 0.
func Sequence(vals ...float64) Source {
	cp := make([]float64, len(vals))
	for i, v := range vals {
		cp[i] = clampUnit(v)
	}
	return &sequence{vals: cp}
}

func (s *sequence) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[s.next%len(s.vals)]
	s.next++
	return v
}

func clampUnit(v float64) float64 {
	const justBelowOne = 1 - 1e-12
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v >= 1:
		return justBelowOne
	}
	return v
}

// Uniform draws a float in [lo, hi).
func Uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}

// IntBetween draws an integer in [lo, hi], both ends inclusive.
func IntBetween(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	n := lo + int(src.Float64()*float64(hi-lo+1))
	if n > hi {
		n = hi
	}
	return n
}

// Choice picks one element of items uniformly. items must not be empty.
func Choice[T any](src Source, items []T) T {
	return items[IntBetween(src, 0, len(items)-1)]
}

// Round1 rounds x to one decimal place.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}
