package logger

import (
	"io"
	"log/slog"
)

// ServiceName tags every record written by the service.
const ServiceName = "minivenmo"

// New creates a JSON slog.Logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("service", ServiceName))
}
