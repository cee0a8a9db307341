package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

// gathered returns the metric families of a registry keyed by name.
func gathered(reg *prometheus.Registry) map[string]float64 {
	out := make(map[string]float64)
	families, err := reg.Gather()
	So(err, ShouldBeNil)
	for _, mf := range families {
		var total float64
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				total += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				total += m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				total += float64(m.GetHistogram().GetSampleCount())
			}
		}
		out[mf.GetName()] = total
	}
	return out
}

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating a manager with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test_namespace"),
				WithSubsystem("test_subsystem"),
				WithMetricPrefix("pfx"),
				WithLatencyBuckets([]float64{0.1, 0.5, 1.0}),
				WithConfidenceBuckets([]float64{80, 90}),
				WithFilterBuckets([]float64{1, 10}),
				WithMetricsEnabled(false),
				WithRefreshInterval(5*time.Second),
				WithCustomLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then the options should be applied", func() {
				So(manager.namespace, ShouldEqual, "test_namespace")
				So(manager.subsystem, ShouldEqual, "test_subsystem")
				So(manager.latencyBuckets, ShouldResemble, []float64{0.1, 0.5, 1.0})
				So(manager.confidenceBuckets, ShouldResemble, []float64{80, 90})
				So(manager.filterBuckets, ShouldResemble, []float64{1, 10})
				So(manager.Enabled(), ShouldBeFalse)
				So(manager.RefreshInterval(), ShouldEqual, 5*time.Second)
				So(manager.customLabels["env"], ShouldEqual, "test")
			})

			Convey("And metric names should carry namespace, subsystem and prefix", func() {
				manager.registryPlayers.Set(3)
				values := gathered(registry)
				So(values, ShouldContainKey, "test_namespace_test_subsystem_pfx_registry_players")
				So(values["test_namespace_test_subsystem_pfx_registry_players"], ShouldEqual, 3.0)
			})
		})

		Convey("When zero-valued options are passed", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace(""),
				WithSubsystem(""),
				WithMetricPrefix(""),
				WithLatencyBuckets(nil),
				WithConfidenceBuckets(nil),
				WithFilterBuckets(nil),
				WithRefreshInterval(0),
				WithCustomLabels(nil),
				WithPrometheusRegistry(registry),
			)

			Convey("Then the defaults should be kept", func() {
				So(manager.namespace, ShouldEqual, "champions")
				So(manager.subsystem, ShouldEqual, "analytics")
				So(manager.latencyBuckets, ShouldResemble, prometheus.DefBuckets)
				So(manager.confidenceBuckets, ShouldResemble, defaultConfidenceBuckets)
				So(manager.filterBuckets, ShouldResemble, defaultFilterBuckets)
				So(manager.RefreshInterval(), ShouldEqual, defaultRefreshInterval)
				So(manager.customLabels, ShouldNotBeNil)
				So(manager.Enabled(), ShouldBeTrue)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		before := gathered(GetRegistry())

		Convey("When recording model metrics", func() {
			RecordPrediction("injury", 91.5)
			RecordPrediction("injury", 88.0)
			RecordPrediction("value", 80.0)
			RecordPredictionLatency("injury", 0.2)
			RecordComparison("ok")
			RecordComparison("insufficient_players")

			Convey("Then counters should advance", func() {
				after := gathered(GetRegistry())
				So(after["champions_analytics_predictions_total"]-before["champions_analytics_predictions_total"], ShouldEqual, 3.0)
				So(after["champions_analytics_prediction_confidence"]-before["champions_analytics_prediction_confidence"], ShouldEqual, 3.0)
				So(after["champions_analytics_comparisons_total"]-before["champions_analytics_comparisons_total"], ShouldEqual, 2.0)
				So(after, ShouldContainKey, "champions_analytics_prediction_latency_milliseconds")
			})
		})

		Convey("When recording registry metrics", func() {
			UpdateRegistryPlayers(3)
			RecordLookupMiss()
			RecordRegistryQueryLatency(0.01)
			RecordFilterResults(2)

			Convey("Then the registry series should reflect them", func() {
				after := gathered(GetRegistry())
				So(after["champions_analytics_registry_players"], ShouldEqual, 3.0)
				So(after["champions_analytics_lookup_misses_total"]-before["champions_analytics_lookup_misses_total"], ShouldEqual, 1.0)
				So(after["champions_analytics_filter_results"]-before["champions_analytics_filter_results"], ShouldEqual, 1.0)
			})
		})

		Convey("When recording HTTP and error metrics", func() {
			RecordHTTPRequest("/api/health", "GET", "200")
			RecordHTTPRequestDuration("/api/health", "GET", "200", 1.5)
			RecordErrorByComponent("api", "not_found")
			RecordErrorByEndpoint("/api/players/{id}", "GET", "not_found")

			Convey("Then each series should advance by one", func() {
				after := gathered(GetRegistry())
				So(after["champions_analytics_http_requests_total"]-before["champions_analytics_http_requests_total"], ShouldEqual, 1.0)
				So(after["champions_analytics_http_request_duration_milliseconds"]-before["champions_analytics_http_request_duration_milliseconds"], ShouldEqual, 1.0)
				So(after["champions_analytics_errors_by_component_total"]-before["champions_analytics_errors_by_component_total"], ShouldEqual, 1.0)
				So(after["champions_analytics_errors_by_endpoint_total"]-before["champions_analytics_errors_by_endpoint_total"], ShouldEqual, 1.0)
			})
		})

		Convey("When recording system metrics", func() {
			So(func() {
				UpdateSystemMemoryUsage(1024 * 1024)
				UpdateSystemGoroutineCount(12)
				RecordSystemGCPauseTime(0.4)
			}, ShouldNotPanic)

			Convey("Then the gauges should hold the last value", func() {
				after := gathered(GetRegistry())
				So(after["champions_analytics_system_goroutine_count"], ShouldEqual, 12.0)
				So(after["champions_analytics_system_memory_usage_bytes"], ShouldEqual, 1048576.0)
			})
		})
	})
}

func TestMetricsDisabled(t *testing.T) {
	Convey("Given a disabled global manager", t, func() {
		saved := globalManager
		registry := prometheus.NewRegistry()
		globalManager = NewManager(WithPrometheusRegistry(registry), WithMetricsEnabled(false))
		Reset(func() { globalManager = saved })

		Convey("When recording business metrics", func() {
			RecordPrediction("injury", 90)
			RecordLookupMiss()

			Convey("Then nothing should be observed", func() {
				after := gathered(registry)
				So(after["champions_analytics_lookup_misses_total"], ShouldEqual, 0.0)
				So(after, ShouldNotContainKey, "champions_analytics_predictions_total")
			})
		})
	})
}

func TestMetricsConcurrency(t *testing.T) {
	Convey("Given metrics recorded from many goroutines", t, func() {
		registry := prometheus.NewRegistry()
		saved := globalManager
		globalManager = NewManager(WithPrometheusRegistry(registry))
		Reset(func() { globalManager = saved })

		const goroutines = 16
		const perGoroutine = 50
		var wg sync.WaitGroup
		for i := 0; i < goroutines; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < perGoroutine; j++ {
					RecordPrediction("development", 85)
					RecordLookupMiss()
				}
			}()
		}
		wg.Wait()

		Convey("Then every observation should be counted", func() {
			after := gathered(registry)
			So(after["champions_analytics_predictions_total"], ShouldEqual, float64(goroutines*perGoroutine))
			So(after["champions_analytics_lookup_misses_total"], ShouldEqual, float64(goroutines*perGoroutine))
		})
	})
}

func TestConfigure(t *testing.T) {
	Convey("Given a configured global manager", t, func() {
		savedManager, savedRegistry := globalManager, customRegistry
		Reset(func() { globalManager, customRegistry = savedManager, savedRegistry })

		Configure(WithMetricsEnabled(false), WithRefreshInterval(time.Minute))

		Convey("Then a fresh registry backs the package functions", func() {
			So(GetRegistry(), ShouldNotEqual, savedRegistry)
			So(RefreshInterval(), ShouldEqual, time.Minute)

			RecordLookupMiss()
			UpdateSystemGoroutineCount(7)
			after := gathered(GetRegistry())
			So(after["champions_analytics_lookup_misses_total"], ShouldEqual, 0.0)
			So(after["champions_analytics_system_goroutine_count"], ShouldEqual, 7.0)
		})
	})
}
