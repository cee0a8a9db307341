package config_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/okian/champions/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New(context.Background())

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.LogFormat, convey.ShouldEqual, config.LogFormatText)
			convey.So(cfg.Addr, convey.ShouldEqual, ":5000")
			convey.So(cfg.SeedFile, convey.ShouldEqual, "")
			convey.So(cfg.RandomSeed, convey.ShouldEqual, int64(0))
			convey.So(cfg.ServiceVersion, convey.ShouldEqual, "1.0.0")
			convey.So(cfg.CORSAllowedOrigins, convey.ShouldResemble, []string{"*"})
			convey.So(cfg.MaxComparePlayers, convey.ShouldEqual, 10)
			convey.So(cfg.RequestTimeout(), convey.ShouldEqual, 30*time.Second)
			convey.So(cfg.MetricsEnabled, convey.ShouldBeTrue)
			convey.So(cfg.MetricsRefreshInterval(), convey.ShouldEqual, 10*time.Second)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given configs violating constraints", t, func() {
		convey.Convey("When the log format is unknown", func() {
			cfg := config.New(context.Background())
			cfg.LogFormat = "xml"
			err := cfg.Validate()

			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			convey.So(err.Error(), convey.ShouldContainSubstring, "log_format")
		})

		convey.Convey("When several fields are wrong", func() {
			cfg := config.New(context.Background())
			cfg.Addr = " "
			cfg.MaxComparePlayers = 1
			cfg.RequestTimeoutMS = 0
			cfg.MetricsRefreshMS = -1
			err := cfg.Validate()

			convey.Convey("Then every problem should be reported", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(err.Error(), convey.ShouldContainSubstring, "max_compare_players")
				convey.So(err.Error(), convey.ShouldContainSubstring, "request_timeout_ms")
				convey.So(err.Error(), convey.ShouldContainSubstring, "metrics_refresh_ms")
			})
		})

		convey.Convey("When the json format is upper case", func() {
			cfg := config.New(context.Background())
			cfg.LogFormat = "JSON"
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}
