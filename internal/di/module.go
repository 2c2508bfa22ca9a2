package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/minivenmo/internal/adapter/card"
	"github.com/polkiloo/minivenmo/internal/app"
	"github.com/polkiloo/minivenmo/internal/config"
	"github.com/polkiloo/minivenmo/internal/logger"
	"github.com/polkiloo/minivenmo/internal/server/http/router"
	"github.com/polkiloo/minivenmo/internal/storage"
	"github.com/polkiloo/minivenmo/internal/usecase"
	"github.com/polkiloo/minivenmo/internal/worker"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		storage.Module,
		card.Module,
		usecase.Module,
		fx.Provide(func(p card.Processor) usecase.CardProcessor { return p }),
		fx.Provide(func(w *worker.JournalWriter) usecase.PaymentRecorder { return w }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
