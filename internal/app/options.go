package service

import (
	"time"

	"github.com/okian/champions/internal/adapters/repository"
	"github.com/okian/champions/internal/domain/random"
	"github.com/okian/champions/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithRegistry sets the player registry every lookup resolves against.
func WithRegistry(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.registry = store
		}
	}
}

// WithSource sets the random source shared by the models and generators.
func WithSource(src random.Source) Option {
	return func(s *Service) {
		if src != nil {
			s.src = src
		}
	}
}

// WithClock overrides the time source used to stamp results.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides how prediction ids are minted.
func WithIDGenerator(gen func() string) Option {
	return func(s *Service) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithVersion sets the version reported by the health query.
func WithVersion(version string) Option {
	return func(s *Service) {
		if version != "" {
			s.version = version
		}
	}
}

// WithMaxComparePlayers caps how many identifiers a comparison accepts.
func WithMaxComparePlayers(n int) Option {
	return func(s *Service) {
		if n >= 2 {
			s.maxCompare = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
