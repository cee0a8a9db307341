package repository

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/okian/champions/internal/domain/model"
)

// seedDocument is the on-disk layout of a seed file.
type seedDocument struct {
	Players []model.Player `yaml:"players"`
}

// DefaultSeed returns the built-in seed set.
func DefaultSeed() []model.Player {
	return []model.Player{
		{
			ID:           "bellingham",
			Name:         "Jude Bellingham",
			Position:     model.Midfielder,
			Club:         "Real Madrid",
			League:       "La Liga",
			Age:          21,
			Nationality:  "England",
			CurrentValue: 180_000_000,
			Stats: model.Stats{
				Overall:      94,
				Goals90:      2.1,
				Assists90:    1.8,
				PassAccuracy: 85,
				Tackles90:    2.3,
				Dribbles90:   3.2,
			},
		},
		{
			ID:           "pedri",
			Name:         "Pedri González",
			Position:     model.Midfielder,
			Club:         "FC Barcelona",
			League:       "La Liga",
			Age:          22,
			Nationality:  "Spain",
			CurrentValue: 120_000_000,
			Stats: model.Stats{
				Overall:      91,
				Goals90:      0.8,
				Assists90:    2.1,
				PassAccuracy: 91,
				Tackles90:    1.8,
				Dribbles90:   4.1,
			},
		},
		{
			ID:           "mbappe",
			Name:         "Kylian Mbappé",
			Position:     model.Forward,
			Club:         "Real Madrid",
			League:       "La Liga",
			Age:          26,
			Nationality:  "France",
			CurrentValue: 200_000_000,
			Stats: model.Stats{
				Overall:      96,
				Goals90:      2.8,
				Assists90:    1.9,
				PassAccuracy: 78,
				Tackles90:    0.8,
				Dribbles90:   4.2,
			},
		},
	}
}

// LoadSeedFile reads a YAML document of the form `players: [...]`.
// Records are returned in file order; validation happens in NewMemoryStore.
func LoadSeedFile(path string) ([]model.Player, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSeedFile, err)
	}
	var doc seedDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSeedFile, path, err)
	}
	if len(doc.Players) == 0 {
		return nil, fmt.Errorf("%w: %s: no players", ErrSeedFile, path)
	}
	return doc.Players, nil
}
