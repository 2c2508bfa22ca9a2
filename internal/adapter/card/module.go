package card

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/minivenmo/internal/config"
)

// Module exposes the card processor implementation to fx graph.
var Module = fx.Provide(newProcessor)

type processorParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newProcessor(p processorParams) (Processor, error) {
	if p.Config.CardProcessorAddress == "" {
		return NopProcessor{}, nil
	}
	return NewHTTPProcessor(p.Config.CardProcessorAddress, p.Logger)
}
