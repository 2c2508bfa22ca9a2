package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

// Module provides the process configuration to fx graphs.
var Module = fx.Provide(Load)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress           string        `env:"RUN_ADDRESS"`
	DatabaseURI          string        `env:"DATABASE_URI"`
	CardProcessorAddress string        `env:"CARD_PROCESSOR_ADDRESS"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT"`
	JournalWorkers       int           `env:"JOURNAL_WORKERS"`
	JournalBuffer        int           `env:"JOURNAL_BUFFER"`
	LogLevel             slog.Level    `env:"LOG_LEVEL"`
}

const (
	defaultRunAddress      = ":8080"
	defaultShutdownTimeout = 10 * time.Second
	defaultJournalWorkers  = 2
	defaultJournalBuffer   = 64
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], env.ToMap(os.Environ()))
}

func load(args []string, environ map[string]string) (*Config, error) {
	cfg := &Config{
		RunAddress:      defaultRunAddress,
		ShutdownTimeout: defaultShutdownTimeout,
		JournalWorkers:  defaultJournalWorkers,
		JournalBuffer:   defaultJournalBuffer,
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("minivenmo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN for the payment journal")
	fs.StringVar(&cfg.CardProcessorAddress, "c", cfg.CardProcessorAddress, "Card processor base URL")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.JournalWorkers, "journal-workers", cfg.JournalWorkers, "Number of payment journal workers")
	fs.IntVar(&cfg.JournalBuffer, "journal-buffer", cfg.JournalBuffer, "Payment journal queue size")
	fs.TextVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Minimum log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.RunAddress == "" {
		cfg.RunAddress = defaultRunAddress
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.JournalWorkers <= 0 {
		cfg.JournalWorkers = defaultJournalWorkers
	}

	if cfg.JournalBuffer <= 0 {
		cfg.JournalBuffer = defaultJournalBuffer
	}

	return cfg, nil
}
