// Package probe drives a running analytics service over HTTP and checks
// that every response keeps the documented ranges and shapes.
package probe

import (
	"errors"
	"time"
)

// Error constants
var (
	ErrUnhealthy  = errors.New("service health check failed")
	ErrNoPlayers  = errors.New("registry returned no players")
	ErrViolations = errors.New("probe found violations")
)

// Config holds configuration for a probe run.
type Config struct {
	BaseURL string        // Base URL of the service
	Rounds  int           // Passes over every player
	Workers int           // Number of concurrent workers
	Timeout time.Duration // HTTP request timeout
	Verbose bool          // Log every violation as it is found
}

// Stats holds run statistics.
type Stats struct {
	Players    int
	Requests   int
	Succeeded  int
	Failed     int
	Violations []string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}

// HTTP status code constants.
const (
	StatusOK         = 200
	StatusBadRequest = 400
	StatusNotFound   = 404
)

// Worker configuration constants.
const (
	WorkerChannelMultiplier = 2
	PercentageMultiplier    = 100
	maxReportedViolations   = 20
)

// missingPlayerID is assumed absent from every registry.
const missingPlayerID = "__probe_missing__"
