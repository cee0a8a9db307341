package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/okian/champions/internal/config"
	"github.com/okian/champions/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

const seedYAML = `players:
  - id: saka
    name: Bukayo Saka
    position: Forward
    club: Arsenal
    league: Premier League
    age: 23
    nationality: England
    current_value: 140000000
    stats:
      overall: 89
      goals_90: 0.6
      assists_90: 0.5
      pass_accuracy: 82
      tackles_90: 1.1
      dribbles_90: 2.9
  - id: rice
    name: Declan Rice
    position: Midfielder
    club: Arsenal
    league: Premier League
    age: 26
    nationality: England
    current_value: 110000000
    stats:
      overall: 88
      goals_90: 0.2
      assists_90: 0.2
      pass_accuracy: 90
      tackles_90: 2.6
      dribbles_90: 0.9
`

func writeSeed(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "players.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	return path
}

func TestLoadPlayers(t *testing.T) {
	convey.Convey("Given a configuration", t, func() {
		cfg := config.New(context.Background())

		convey.Convey("When no seed file is configured", func() {
			players, err := loadPlayers(cfg)

			convey.Convey("Then the built-in set is used", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(players), convey.ShouldEqual, 3)
				convey.So(players[0].ID, convey.ShouldEqual, "bellingham")
			})
		})

		convey.Convey("When a seed file is configured", func() {
			cfg.SeedFile = writeSeed(t, seedYAML)
			players, err := loadPlayers(cfg)

			convey.Convey("Then its players are loaded in order", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(players), convey.ShouldEqual, 2)
				convey.So(players[0].ID, convey.ShouldEqual, "saka")
				convey.So(players[1].ID, convey.ShouldEqual, "rice")
			})
		})

		convey.Convey("When the seed file does not exist", func() {
			cfg.SeedFile = filepath.Join(t.TempDir(), "missing.yaml")
			_, err := loadPlayers(cfg)

			convey.Convey("Then an error is returned", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestNewService(t *testing.T) {
	convey.Convey("Given a configuration with a fixed seed", t, func() {
		ctx := context.Background()
		cfg := config.New(ctx)
		cfg.RandomSeed = 42
		cfg.ServiceVersion = "2.1.0"
		cfg.MaxComparePlayers = 4

		convey.Convey("When the service is built and started", func() {
			svc, err := newService(ctx, cfg, logger.Nop())
			convey.So(err, convey.ShouldBeNil)
			convey.So(svc.Start(ctx), convey.ShouldBeNil)
			defer svc.Stop()

			convey.Convey("Then the configured values are reported", func() {
				stats := svc.GetStats()
				convey.So(stats["started"], convey.ShouldBeTrue)
				convey.So(stats["version"], convey.ShouldEqual, "2.1.0")
				convey.So(stats["maxComparePlayers"], convey.ShouldEqual, 4)
				convey.So(stats["registryPlayers"], convey.ShouldEqual, 3)
			})
		})

		convey.Convey("When the seed file has duplicate ids", func() {
			cfg.SeedFile = writeSeed(t, seedYAML+`  - id: saka
    name: Again
    position: Forward
    club: Arsenal
    league: Premier League
    age: 23
    nationality: England
    current_value: 1
    stats:
      overall: 50
`)
			_, err := newService(ctx, cfg, logger.Nop())

			convey.Convey("Then building the service fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestNewHandler(t *testing.T) {
	convey.Convey("Given the assembled handler", t, func() {
		ctx := context.Background()
		cfg := config.New(ctx)
		cfg.RandomSeed = 7
		svc, err := newService(ctx, cfg, logger.Nop())
		convey.So(err, convey.ShouldBeNil)
		convey.So(svc.Start(ctx), convey.ShouldBeNil)
		defer svc.Stop()

		h := newHandler(ctx, cfg, svc, logger.Nop())

		get := func(path string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			return w
		}

		convey.Convey("Then the health endpoint reports healthy", func() {
			w := get("/api/health")
			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)

			var body map[string]any
			convey.So(json.Unmarshal(w.Body.Bytes(), &body), convey.ShouldBeNil)
			convey.So(body["status"], convey.ShouldEqual, "healthy")
			convey.So(body["version"], convey.ShouldEqual, "1.0.0")
		})

		convey.Convey("And the players endpoint lists the registry", func() {
			w := get("/api/players")
			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)

			var body struct {
				Count int `json:"count"`
			}
			convey.So(json.Unmarshal(w.Body.Bytes(), &body), convey.ShouldBeNil)
			convey.So(body.Count, convey.ShouldEqual, 3)
		})

		convey.Convey("And the docs, landing page and metrics are mounted", func() {
			convey.So(get("/api-docs").Code, convey.ShouldEqual, http.StatusOK)
			convey.So(get("/openapi.yaml").Code, convey.ShouldEqual, http.StatusOK)
			convey.So(get("/").Code, convey.ShouldEqual, http.StatusOK)
			convey.So(get("/metrics").Code, convey.ShouldEqual, http.StatusOK)
		})

		convey.Convey("And responses carry a request id", func() {
			w := get("/api/stats")
			convey.So(w.Header().Get("X-Request-Id"), convey.ShouldNotBeEmpty)
		})

		convey.Convey("And unknown routes return a JSON 404", func() {
			w := get("/api/unknown")
			convey.So(w.Code, convey.ShouldEqual, http.StatusNotFound)
			convey.So(w.Body.String(), convey.ShouldContainSubstring, "Endpoint not found")
		})
	})
}

func TestMetricsUpdaters(t *testing.T) {
	convey.Convey("Given the metrics updaters", t, func() {
		ctx := context.Background()
		cfg := config.New(ctx)
		svc, err := newService(ctx, cfg, logger.Nop())
		convey.So(err, convey.ShouldBeNil)

		convey.Convey("Then a single update does not panic", func() {
			convey.So(updateSystemMetrics, convey.ShouldNotPanic)
			convey.So(func() { updateServiceMetrics(svc) }, convey.ShouldNotPanic)
		})

		convey.Convey("And the loops stop when the context is cancelled", func() {
			convey.So(svc.Start(ctx), convey.ShouldBeNil)
			defer svc.Stop()

			loopCtx, cancel := context.WithCancel(ctx)
			done := make(chan struct{}, 2)
			go func() {
				startSystemMetricsUpdater(loopCtx, time.Millisecond)
				done <- struct{}{}
			}()
			go func() {
				startServiceMetricsUpdater(loopCtx, svc)
				done <- struct{}{}
			}()

			time.Sleep(10 * time.Millisecond)
			cancel()

			for i := 0; i < 2; i++ {
				select {
				case <-done:
				case <-time.After(time.Second):
					t.Fatal("updater did not stop")
				}
			}
		})
	})
}
