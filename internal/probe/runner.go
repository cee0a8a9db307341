package probe

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/champions/internal/domain/analytics"
	"github.com/okian/champions/internal/domain/insights"
	"github.com/okian/champions/internal/domain/model"
	"github.com/okian/champions/pkg/logger"
)

// Default configuration constants.
const (
	DefaultRounds  = 3
	DefaultWorkers = 8
	DefaultTimeout = 10 * time.Second
)

// job is a single request and the check applied to its response.
type job struct {
	path   string
	status int
	check  Check
}

type playerList struct {
	Players []model.Player `json:"players"`
	Count   int            `json:"count"`
}

// Run probes every endpoint for every listed player and reports the run.
// A non-nil error is returned when the service is unreachable or any
// response broke a check.
func Run(ctx context.Context, config *Config) (*Stats, error) {
	cfg := withDefaults(config)
	log := logger.Get().Named("probe")
	stats := &Stats{StartTime: time.Now()}

	log.Info(ctx, "starting champions probe",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("rounds", cfg.Rounds),
		logger.Int("workers", cfg.Workers),
		logger.Duration("timeout", cfg.Timeout),
		logger.Bool("verbose", cfg.Verbose))

	client := newHTTPClient(strings.TrimRight(cfg.BaseURL, "/"), cfg.Timeout)

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, client); err != nil {
		return stats, fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}

	// Step 2: Discover the registry
	players, err := listPlayers(ctx, client)
	if err != nil {
		return stats, err
	}
	stats.Players = len(players)

	// Step 3: Probe concurrently
	jobs := planJobs(players, cfg.Rounds)
	execute(ctx, cfg, client, jobs, stats, log)

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, log, stats)

	if len(stats.Violations) > 0 {
		return stats, fmt.Errorf("%w: %d of %d requests", ErrViolations, stats.Failed, stats.Requests)
	}

	log.Info(ctx, "probe completed successfully")
	return stats, nil
}

func withDefaults(config *Config) Config {
	cfg := Config{}
	if config != nil {
		cfg = *config
	}
	if cfg.Rounds <= 0 {
		cfg.Rounds = DefaultRounds
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return cfg
}

// checkServiceHealth verifies the service reports itself healthy.
func checkServiceHealth(ctx context.Context, client *HTTPClient) error {
	var h model.Health
	if err := client.GetJSON(ctx, "/api/health", &h); err != nil {
		return err
	}
	if h.Status != "healthy" {
		return fmt.Errorf("status %q", h.Status)
	}
	return nil
}

// listPlayers fetches the unfiltered registry.
func listPlayers(ctx context.Context, client *HTTPClient) ([]model.Player, error) {
	var list playerList
	if err := client.GetJSON(ctx, "/api/players", &list); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	if len(list.Players) == 0 {
		return nil, ErrNoPlayers
	}
	if list.Count != len(list.Players) {
		return nil, fmt.Errorf("list players: count %d for %d players", list.Count, len(list.Players))
	}
	return list.Players, nil
}

// planJobs builds the request set for the given number of rounds.
func planJobs(players []model.Player, rounds int) []job {
	var jobs []job
	for r := 0; r < rounds; r++ {
		for _, p := range players {
			id := url.PathEscape(p.ID)
			jobs = append(jobs,
				job{path: "/api/players/" + id, status: StatusOK, check: CheckPlayer(p)},
				job{path: "/api/predict/injury/" + id, status: StatusOK, check: CheckInjury(p)},
				job{path: "/api/predict/development/" + id, status: StatusOK, check: CheckDevelopment(p)},
				job{path: "/api/predict/value/" + id, status: StatusOK, check: CheckValue(p)},
				job{path: "/api/explain/" + id + "?type=" + analytics.Recruitment, status: StatusOK, check: CheckExplain(p, analytics.Recruitment)},
				job{path: "/api/explain/" + id + "?type=" + analytics.Development, status: StatusOK, check: CheckExplain(p, analytics.Development)},
				job{path: "/api/training/recommendations/" + id, status: StatusOK, check: CheckTraining(p)},
			)
		}

		for i := 0; i+1 < len(players); i++ {
			pair := players[i : i+2]
			jobs = append(jobs,
				job{path: comparePath(pair[0].ID, pair[1].ID), status: StatusOK, check: CheckComparison(pair)},
				job{path: comparePath(pair[0].ID, missingPlayerID, pair[1].ID), status: StatusOK, check: CheckComparison(pair)},
			)
		}

		jobs = append(jobs,
			job{path: comparePath(players[0].ID), status: StatusBadRequest, check: CheckError("insufficient_players")},
			job{path: "/api/players/" + missingPlayerID, status: StatusNotFound, check: CheckError("not_found")},
			job{path: "/api/predict/value/" + missingPlayerID, status: StatusNotFound, check: CheckError("not_found")},
			job{path: "/api/analytics/performance?timeframe=" + insights.Timeframe12Weeks, status: StatusOK, check: CheckPerformance(insights.Timeframe12Weeks)},
			job{path: "/api/analytics/performance?timeframe=" + insights.Timeframe24Weeks, status: StatusOK, check: CheckPerformance(insights.Timeframe24Weeks)},
			job{path: "/api/governance/status", status: StatusOK, check: CheckDecodes[model.GovernanceStatus]()},
			job{path: "/api/strategy/squad", status: StatusOK, check: CheckDecodes[model.SquadStrategy]()},
			job{path: "/api/stats", status: StatusOK, check: CheckDecodes[map[string]any]()},
		)
	}
	return jobs
}

func comparePath(ids ...string) string {
	q := url.Values{}
	for _, id := range ids {
		q.Add("players", id)
	}
	return "/api/compare?" + q.Encode()
}

// execute runs jobs on a worker pool and folds results into stats.
func execute(ctx context.Context, cfg Config, client *HTTPClient, jobs []job, stats *Stats, log logger.Logger) {
	var (
		requests  int64
		succeeded int64
		mu        sync.Mutex
	)

	jobChan := make(chan job, cfg.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobChan {
				if ctx.Err() != nil {
					continue
				}
				atomic.AddInt64(&requests, 1)
				if err := runJob(ctx, client, j); err != nil {
					msg := "GET " + j.path + ": " + err.Error()
					if cfg.Verbose {
						log.Warn(ctx, "check failed", logger.String("path", j.path), logger.Error(err))
					}
					mu.Lock()
					stats.Violations = append(stats.Violations, msg)
					mu.Unlock()
					continue
				}
				atomic.AddInt64(&succeeded, 1)
			}
		}()
	}

	go func() {
		defer close(jobChan)
		for _, j := range jobs {
			select {
			case <-ctx.Done():
				return
			case jobChan <- j:
			}
		}
	}()

	wg.Wait()

	stats.Requests = int(atomic.LoadInt64(&requests))
	stats.Succeeded = int(atomic.LoadInt64(&succeeded))
	stats.Failed = stats.Requests - stats.Succeeded
}

func runJob(ctx context.Context, client *HTTPClient, j job) error {
	status, body, err := client.Get(ctx, j.path)
	if err != nil {
		return err
	}
	if status != j.status {
		return fmt.Errorf("status %d, want %d", status, j.status)
	}
	return j.check(body)
}

// displayFinalStats logs the run summary and the first violations.
func displayFinalStats(ctx context.Context, log logger.Logger, stats *Stats) {
	var successRate, requestsPerSecond float64

	if stats.Requests > 0 {
		successRate = float64(stats.Succeeded) / float64(stats.Requests) * PercentageMultiplier
	}

	if stats.Duration > 0 {
		requestsPerSecond = float64(stats.Requests) / stats.Duration.Seconds()
	}

	log.Info(ctx, "final statistics",
		logger.Int("players", stats.Players),
		logger.Int("requests", stats.Requests),
		logger.Int("succeeded", stats.Succeeded),
		logger.Int("failed", stats.Failed),
		logger.Duration("duration", stats.Duration),
		logger.Float64("successRate", successRate),
		logger.Float64("requestsPerSecond", requestsPerSecond))

	for i, v := range stats.Violations {
		if i == maxReportedViolations {
			log.Error(ctx, "further violations omitted", logger.Int("omitted", len(stats.Violations)-i))
			break
		}
		log.Error(ctx, "violation", logger.String("detail", v))
	}
}
