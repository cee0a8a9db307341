// Package model contains domain models passed between layers.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// Position is the on-pitch role of a player. The set is closed.
type Position string

// Known positions.
const (
	Goalkeeper Position = "Goalkeeper"
	Defender   Position = "Defender"
	Midfielder Position = "Midfielder"
	Forward    Position = "Forward"
)

// Positions lists the closed set of positions in canonical order.
var Positions = []Position{Goalkeeper, Defender, Midfielder, Forward} //nolint:gochecknoglobals // immutable enumeration

// Valid reports whether p belongs to the closed position set.
func (p Position) Valid() bool {
	switch p {
	case Goalkeeper, Defender, Midfielder, Forward:
		return true
	}
	return false
}

// ErrInvalidPlayer marks a player record that violates registry invariants.
var ErrInvalidPlayer = errors.New("invalid player")

// Stats holds the per-90 performance summary of a player.
type Stats struct {
	Overall      int     `json:"overall" yaml:"overall"`
	Goals90      float64 `json:"goals_90" yaml:"goals_90"`
	Assists90    float64 `json:"assists_90" yaml:"assists_90"`
	PassAccuracy float64 `json:"pass_accuracy" yaml:"pass_accuracy"`
	Tackles90    float64 `json:"tackles_90" yaml:"tackles_90"`
	Dribbles90   float64 `json:"dribbles_90" yaml:"dribbles_90"`
}

// Player is a profile record held in the registry.
type Player struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Position     Position `json:"position" yaml:"position"`
	Club         string   `json:"club" yaml:"club"`
	League       string   `json:"league" yaml:"league"`
	Age          int      `json:"age" yaml:"age"`
	Nationality  string   `json:"nationality" yaml:"nationality"`
	CurrentValue int64    `json:"current_value" yaml:"current_value"`
	Stats        Stats    `json:"stats" yaml:"stats"`
}

// Validate checks the invariants every registry entry must satisfy.
func (p Player) Validate() error {
	switch {
	case strings.TrimSpace(p.ID) == "":
		return fmt.Errorf("%w: missing id", ErrInvalidPlayer)
	case !p.Position.Valid():
		return fmt.Errorf("%w: %s: unknown position %q", ErrInvalidPlayer, p.ID, p.Position)
	case p.Age <= 0:
		return fmt.Errorf("%w: %s: age must be positive", ErrInvalidPlayer, p.ID)
	case p.CurrentValue < 0:
		return fmt.Errorf("%w: %s: negative current_value", ErrInvalidPlayer, p.ID)
	}
	s := p.Stats
	if s.Overall < 0 || s.Overall > 100 {
		return fmt.Errorf("%w: %s: overall must be within 0-100", ErrInvalidPlayer, p.ID)
	}
	if s.Goals90 < 0 || s.Assists90 < 0 || s.PassAccuracy < 0 || s.Tackles90 < 0 || s.Dribbles90 < 0 {
		return fmt.Errorf("%w: %s: negative statistic", ErrInvalidPlayer, p.ID)
	}
	return nil
}
