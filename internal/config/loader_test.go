package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/champions/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":5000")
				convey.So(cfg.MaxComparePlayers, convey.ShouldEqual, 10)
				convey.So(cfg.CORSAllowedOrigins, convey.ShouldResemble, []string{"*"})
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("CHAMPIONS_ADDR", ":8080")
			_ = os.Setenv("CHAMPIONS_LOG_FORMAT", "json")
			_ = os.Setenv("CHAMPIONS_RANDOM_SEED", "42")
			_ = os.Setenv("CHAMPIONS_MAX_COMPARE_PLAYERS", "4")
			_ = os.Setenv("CHAMPIONS_CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
			_ = os.Setenv("CHAMPIONS_METRICS_ENABLED", "false")
			_ = os.Setenv("CHAMPIONS_METRICS_REFRESH_MS", "2500")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.LogFormat, convey.ShouldEqual, "json")
				convey.So(cfg.RandomSeed, convey.ShouldEqual, int64(42))
				convey.So(cfg.MaxComparePlayers, convey.ShouldEqual, 4)
				convey.So(cfg.CORSAllowedOrigins, convey.ShouldResemble, []string{"https://a.example", "https://b.example"})
				convey.So(cfg.MetricsEnabled, convey.ShouldBeFalse)
				convey.So(cfg.MetricsRefreshMS, convey.ShouldEqual, 2500)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
# seeded run
addr: ":9090"
log_level: debug
seed_file: /etc/champions/players.yaml
service_version: "2.1.0"
request_timeout_ms: 5000
cors_allowed_origins:
  - https://scouting.example
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("CHAMPIONS_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file and keep other defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.SeedFile, convey.ShouldEqual, "/etc/champions/players.yaml")
				convey.So(cfg.ServiceVersion, convey.ShouldEqual, "2.1.0")
				convey.So(cfg.RequestTimeoutMS, convey.ShouldEqual, 5000)
				convey.So(cfg.CORSAllowedOrigins, convey.ShouldResemble, []string{"https://scouting.example"})
				convey.So(cfg.MaxComparePlayers, convey.ShouldEqual, 10)
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":9090"
max_compare_players: 6
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("CHAMPIONS_CONFIG", tmpFile)
			_ = os.Setenv("CHAMPIONS_ADDR", ":8080")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")        // Overridden by env
				convey.So(cfg.MaxComparePlayers, convey.ShouldEqual, 6) // From file
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempConfigFile(`invalid: yaml: content: [`)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("CHAMPIONS_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the config file does not exist", func() {
			_ = os.Setenv("CHAMPIONS_CONFIG", "/nonexistent/champions.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			convey.So(cfg, convey.ShouldBeNil)
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("CHAMPIONS_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("CHAMPIONS_MAX_COMPARE_PLAYERS", "not_a_number")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When a numeric value violates validation", func() {
			_ = os.Setenv("CHAMPIONS_MAX_COMPARE_PLAYERS", "1")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			convey.So(cfg, convey.ShouldBeNil)
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"CHAMPIONS_CONFIG",
		"CHAMPIONS_ADDR",
		"CHAMPIONS_LOG_FORMAT",
		"CHAMPIONS_RANDOM_SEED",
		"CHAMPIONS_MAX_COMPARE_PLAYERS",
		"CHAMPIONS_CORS_ALLOWED_ORIGINS",
		"CHAMPIONS_METRICS_ENABLED",
		"CHAMPIONS_METRICS_REFRESH_MS",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "champions-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
