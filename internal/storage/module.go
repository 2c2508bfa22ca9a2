package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/minivenmo/internal/config"
	"github.com/polkiloo/minivenmo/internal/domain/repository"
	"github.com/polkiloo/minivenmo/internal/storage/memory"
	"github.com/polkiloo/minivenmo/internal/storage/postgres"
)

// Module wires the user registry and the payment journal backend.
var Module = fx.Options(
	fx.Provide(memory.New),
	fx.Provide(func(s *memory.Storage) repository.UserRepository { return s.Users() }),
	fx.Provide(newPaymentRepository),
)

type paymentParams struct {
	fx.In

	Ctx       context.Context
	Config    *config.Config
	Logger    *slog.Logger
	Lifecycle fx.Lifecycle
	Memory    *memory.Storage
}

var openPostgres = postgres.New

func newPaymentRepository(p paymentParams) (repository.PaymentRepository, error) {
	if p.Config.DatabaseURI == "" {
		p.Logger.Info("payment journal ready", slog.String("backend", "memory"))
		return p.Memory.Payments(), nil
	}

	storage, err := openPostgres(p.Ctx, p.Config.DatabaseURI, p.Logger)
	if err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})

	return storage.Payments(), nil
}
