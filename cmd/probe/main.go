package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/okian/champions/internal/probe"
	"github.com/okian/champions/pkg/logger"
)

// Default configuration constants.
const (
	defaultWorkers  = 2 // multiplier for runtime.NumCPU()
	defaultDeadline = 5 * time.Minute
)

func main() {
	var (
		baseURL   = flag.String("url", "http://localhost:5000", "Base URL of the service")
		rounds    = flag.Int("rounds", probe.DefaultRounds, "Passes over every player")
		workers   = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout   = flag.Duration("timeout", probe.DefaultTimeout, "HTTP request timeout")
		logFormat = flag.String("log-format", logger.FormatText, "Log format: text or json")
		verbose   = flag.Bool("verbose", false, "Log every failed check as it happens")
	)
	flag.Parse()

	if err := logger.InitWithFormat(*logFormat); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultDeadline)
	defer cancel()

	_, err := probe.Run(ctx, &probe.Config{
		BaseURL: *baseURL,
		Rounds:  *rounds,
		Workers: *workers,
		Timeout: *timeout,
		Verbose: *verbose,
	})
	if err != nil {
		os.Stderr.WriteString("probe failed: " + err.Error() + "\n")
		cancel()
		os.Exit(1)
	}
}
