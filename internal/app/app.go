package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/minivenmo/internal/config"
	"github.com/polkiloo/minivenmo/internal/domain/repository"
	"github.com/polkiloo/minivenmo/internal/worker"
)

const readHeaderTimeout = 5 * time.Second

// Module wires the ledger facade, the HTTP server and the payment journal.
//
// Hooks are registered journal first so that on stop the server drains
// in-flight requests before the journal queue is flushed.
var Module = fx.Options(
	fx.Provide(
		NewLedgerFacade,
		newHTTPServer,
		newJournalWriter,
	),
	fx.Invoke(registerJournal, registerServer),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:              p.Config.RunAddress,
		Handler:           p.Router,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

type workerParams struct {
	fx.In

	Payments repository.PaymentRepository
	Config   *config.Config
	Logger   *slog.Logger
}

func newJournalWriter(p workerParams) *worker.JournalWriter {
	return worker.NewJournalWriter(
		p.Payments,
		p.Config.JournalWorkers,
		p.Config.JournalBuffer,
		p.Logger,
	)
}

func registerJournal(lc fx.Lifecycle, w *worker.JournalWriter) {
	lc.Append(fx.StartStopHook(w.Start, w.Stop))
}

type serverLifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Config     *config.Config
}

func registerServer(p serverLifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			p.Logger.Info("ledger listening", slog.String("addr", p.Server.Addr))
			go serve(p.Server, p.Logger, p.Shutdowner)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := shutdownContext(ctx, p.Config.ShutdownTimeout)
			defer cancel()

			if err := p.Server.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("ledger stopped")
			return nil
		},
	})
}

func serve(server *http.Server, logger *slog.Logger, shutdowner fx.Shutdowner) {
	err := server.ListenAndServe()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return
	}
	logger.Error("http server terminated", slog.String("error", err.Error()))
	_ = shutdowner.Shutdown()
}

// shutdownContext bounds ctx by timeout unless the caller already set a deadline.
func shutdownContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
