// Package repository holds the player registry: an insertion-ordered,
// read-only, in-memory store built once at startup.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/champions/internal/domain/model"
	"github.com/okian/champions/pkg/metrics"
)

// Store provides read access to the registry.
type Store interface {
	// Get returns the player with the exact id.
	// Returns ErrNotFound if the id is unknown.
	Get(ctx context.Context, id string) (model.Player, error)

	// List returns every player in insertion order.
	List(ctx context.Context) []model.Player

	// Count returns the number of players held.
	Count(ctx context.Context) int
}

// MemoryStore implements Store over a map plus an ordering slice.
// It is never mutated after construction, so concurrent reads need no locking.
type MemoryStore struct {
	order []model.Player
	byID  map[string]int
}

// NewMemoryStore validates players and builds a store preserving their order.
func NewMemoryStore(_ context.Context, players []model.Player) (*MemoryStore, error) {
	s := &MemoryStore{
		order: make([]model.Player, 0, len(players)),
		byID:  make(map[string]int, len(players)),
	}
	for _, p := range players {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := s.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
		}
		s.byID[p.ID] = len(s.order)
		s.order = append(s.order, p)
	}

	metrics.UpdateRegistryPlayers(len(s.order))
	return s, nil
}

// Get returns the player with the exact id.
func (s *MemoryStore) Get(_ context.Context, id string) (model.Player, error) {
	start := time.Now()
	defer func() {
		metrics.RecordRegistryQueryLatency(float64(time.Since(start).Microseconds()) / 1000)
	}()

	i, ok := s.byID[id]
	if !ok {
		metrics.RecordLookupMiss()
		return model.Player{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.order[i], nil
}

// List returns a copy of every player in insertion order.
func (s *MemoryStore) List(_ context.Context) []model.Player {
	return append([]model.Player(nil), s.order...)
}

// Count returns the number of players held.
func (s *MemoryStore) Count(_ context.Context) int {
	return len(s.order)
}
