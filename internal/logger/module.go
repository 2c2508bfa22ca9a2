package logger

import (
	"log/slog"
	"os"

	"go.uber.org/fx"

	"github.com/polkiloo/minivenmo/internal/config"
)

// Module wires slog logger for dependency injection.
var Module = fx.Provide(func(cfg *config.Config) *slog.Logger {
	return New(os.Stdout, cfg.LogLevel)
})
