// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/okian/champions/internal/adapters/repository"
	"github.com/okian/champions/internal/domain/analytics"
	"github.com/okian/champions/internal/domain/filter"
	"github.com/okian/champions/internal/domain/insights"
	"github.com/okian/champions/internal/domain/model"
	"github.com/okian/champions/internal/domain/random"
	"github.com/okian/champions/pkg/logger"
	"github.com/okian/champions/pkg/metrics"
)

// Model names used for metrics labels and served counters.
const (
	ModelInjury      = "injury"
	ModelDevelopment = "development"
	ModelValue       = "value"
	ModelExplain     = "explain"
)

// Comparison outcomes used for metrics labels.
const (
	outcomeOK           = "ok"
	outcomeInsufficient = "insufficient_players"
	outcomeTooMany      = "too_many_players"
)

const defaultMaxComparePlayers = 10

// Service implements the API dependencies for the analytics engine.
type Service struct {
	mu sync.RWMutex

	// Core components
	registry repository.Store
	engine   *analytics.Engine
	src      random.Source

	// Configuration
	now        func() time.Time
	newID      func() string
	version    string
	maxCompare int

	// State
	started   bool
	startedAt time.Time
	served    map[string]*atomic.Int64

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		now:        time.Now,
		newID:      uuid.NewString,
		version:    "1.0.0",
		maxCompare: defaultMaxComparePlayers,
		served: map[string]*atomic.Int64{
			ModelInjury:      {},
			ModelDevelopment: {},
			ModelValue:       {},
			ModelExplain:     {},
		},
		logger: nil, // Will be replaced when service starts
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.src == nil {
		s.src = random.New(0)
	}
	s.engine = analytics.New(analytics.WithSource(s.src))

	return s
}

// Start validates the wiring and marks the service ready to serve.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.registry == nil {
		return ErrNoRegistry
	}

	count := s.registry.Count(ctx)
	metrics.UpdateRegistryPlayers(count)

	s.started = true
	s.startedAt = s.now()
	s.logger.Info(ctx, "analytics service started",
		logger.Int("players", count),
		logger.String("version", s.version),
		logger.Int("maxComparePlayers", s.maxCompare),
	)

	return nil
}

// Stop marks the service as stopped.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "analytics service stopped")
}

// ready returns ErrNotStarted until Start succeeds.
func (s *Service) ready() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return ErrNotStarted
	}
	return nil
}

// Health reports static liveness metadata.
func (s *Service) Health(_ context.Context) model.Health {
	return model.Health{
		Status:    "healthy",
		Timestamp: s.now(),
		Version:   s.version,
		Services: map[string]string{
			"ai_engine": "operational",
			"database":  "connected",
			"analytics": "running",
		},
	}
}

// ListPlayers returns registry players matching c, in registry order.
func (s *Service) ListPlayers(ctx context.Context, c filter.Criteria) ([]model.Player, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	out := filter.Apply(s.registry.List(ctx), c)
	metrics.RecordFilterResults(len(out))
	return out, nil
}

// Player resolves a single player by exact id.
func (s *Service) Player(ctx context.Context, id string) (model.Player, error) {
	if err := s.ready(); err != nil {
		return model.Player{}, err
	}
	p, err := s.registry.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn(ctx, "player lookup miss", logger.String("player_id", id))
		}
		return model.Player{}, err
	}
	return p, nil
}

// forecast resolves id, runs predict and stamps the result envelope.
func forecast[T any](ctx context.Context, s *Service, id, name string, predict func(model.Player) T, confidence func(T) float64) (model.Forecast[T], error) {
	p, err := s.Player(ctx, id)
	if err != nil {
		return model.Forecast[T]{}, err
	}

	start := time.Now()
	result := predict(p)
	conf := confidence(result)
	metrics.RecordPredictionLatency(name, float64(time.Since(start).Microseconds())/1000)
	s.recordServed(name, conf)

	s.logger.Debug(ctx, "prediction computed",
		logger.String("model", name),
		logger.String("player_id", p.ID),
		logger.Float64("confidence", conf),
	)

	return model.Forecast[T]{
		PlayerID:     p.ID,
		PlayerName:   p.Name,
		Prediction:   result,
		Timestamp:    s.now(),
		PredictionID: s.newID(),
	}, nil
}

func (s *Service) recordServed(name string, confidence float64) {
	if c, ok := s.served[name]; ok {
		c.Add(1)
	}
	metrics.RecordPrediction(name, confidence)
}

// PredictInjury returns the injury-risk forecast for a player.
func (s *Service) PredictInjury(ctx context.Context, id string) (model.Forecast[model.RiskPrediction], error) {
	return forecast(ctx, s, id, ModelInjury, s.engine.PredictInjuryRisk,
		func(r model.RiskPrediction) float64 { return r.Confidence })
}

// PredictDevelopment returns the development forecast for a player.
func (s *Service) PredictDevelopment(ctx context.Context, id string) (model.Forecast[model.DevelopmentPrediction], error) {
	return forecast(ctx, s, id, ModelDevelopment, s.engine.PredictDevelopment,
		func(r model.DevelopmentPrediction) float64 { return r.Confidence })
}

// PredictValue returns the market-value trajectory for a player.
func (s *Service) PredictValue(ctx context.Context, id string) (model.Forecast[model.ValuePrediction], error) {
	return forecast(ctx, s, id, ModelValue, s.engine.PredictMarketValue,
		func(r model.ValuePrediction) float64 { return r.Confidence })
}

// Explain returns the factor explanation of the given category for a player.
// The category is echoed as given; unknown or empty ones use recruitment factors.
func (s *Service) Explain(ctx context.Context, id, category string) (model.ExplanationReport, error) {
	f, err := forecast(ctx, s, id, ModelExplain,
		func(p model.Player) model.Explanation { return s.engine.Explain(p, category) },
		func(r model.Explanation) float64 { return r.Confidence })
	if err != nil {
		return model.ExplanationReport{}, err
	}
	return model.ExplanationReport{
		PlayerID:     f.PlayerID,
		PlayerName:   f.PlayerName,
		Explanation:  f.Prediction,
		Timestamp:    f.Timestamp,
		PredictionID: f.PredictionID,
	}, nil
}

// Compare resolves ids and compares the players that exist.
// Unknown ids are skipped; fewer than two supplied or resolved ids fail with
// analytics.ErrInsufficientPlayers.
func (s *Service) Compare(ctx context.Context, ids []string) (model.Comparison, error) {
	if err := s.ready(); err != nil {
		return model.Comparison{}, err
	}
	if len(ids) < 2 {
		metrics.RecordComparison(outcomeInsufficient)
		return model.Comparison{}, analytics.ErrInsufficientPlayers
	}
	if len(ids) > s.maxCompare {
		metrics.RecordComparison(outcomeTooMany)
		s.logger.Warn(ctx, "comparison rejected",
			logger.Int("requested", len(ids)),
			logger.Int("max", s.maxCompare),
		)
		return model.Comparison{}, fmt.Errorf("%w: %d > %d", ErrTooManyPlayers, len(ids), s.maxCompare)
	}

	players := make([]model.Player, 0, len(ids))
	for _, id := range ids {
		p, err := s.registry.Get(ctx, id)
		if err != nil {
			s.logger.Debug(ctx, "skipping unknown comparison id", logger.String("player_id", id))
			continue
		}
		players = append(players, p)
	}

	cmp, err := s.engine.Compare(players)
	if err != nil {
		metrics.RecordComparison(outcomeInsufficient)
		s.logger.Warn(ctx, "comparison rejected",
			logger.Int("requested", len(ids)),
			logger.Int("resolved", len(players)),
		)
		return model.Comparison{}, err
	}
	metrics.RecordComparison(outcomeOK)
	return cmp, nil
}

// TrainingPlan returns training recommendations for a player.
func (s *Service) TrainingPlan(ctx context.Context, id string) (model.TrainingPlan, error) {
	p, err := s.Player(ctx, id)
	if err != nil {
		return model.TrainingPlan{}, err
	}
	return model.TrainingPlan{
		PlayerID:        p.ID,
		PlayerName:      p.Name,
		Recommendations: insights.Training(s.src),
		GeneratedAt:     s.now(),
	}, nil
}

// Performance returns performance analytics for the timeframe.
// A playerID that resolves adds the player's name; an unknown one is ignored.
func (s *Service) Performance(ctx context.Context, timeframe, playerID string) (model.PerformanceAnalytics, error) {
	if err := s.ready(); err != nil {
		return model.PerformanceAnalytics{}, err
	}
	out := insights.Performance(s.src, timeframe)
	if playerID != "" {
		if p, err := s.registry.Get(ctx, playerID); err == nil {
			out.Player = p.Name
		}
	}
	return out, nil
}

// Governance returns the data-governance status report.
func (s *Service) Governance(_ context.Context) model.GovernanceStatus {
	return insights.Governance(s.src, s.now())
}

// SquadStrategy returns squad fatigue and rotation guidance.
func (s *Service) SquadStrategy(_ context.Context) model.SquadStrategy {
	return insights.Squad(s.src)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	served := make(map[string]int64, len(s.served))
	for name, c := range s.served {
		served[name] = c.Load()
	}

	stats := map[string]interface{}{
		"started":           s.started,
		"version":           s.version,
		"maxComparePlayers": s.maxCompare,
		"predictionsServed": served,
	}

	if s.started {
		players := s.registry.Count(context.Background())
		stats["registryPlayers"] = players
		stats["startedAt"] = s.startedAt
		stats["uptimeSeconds"] = int64(s.now().Sub(s.startedAt).Seconds())
		metrics.UpdateRegistryPlayers(players)
	}

	return stats
}
