package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/minivenmo/internal/adapter/card"
	domainErrors "github.com/polkiloo/minivenmo/internal/domain/errors"
	"github.com/polkiloo/minivenmo/internal/domain/model"
	"github.com/polkiloo/minivenmo/internal/logger"
	"github.com/polkiloo/minivenmo/internal/storage/memory"
	"github.com/polkiloo/minivenmo/internal/usecase"
	"github.com/polkiloo/minivenmo/internal/worker"
)

func main() {
	if err := run(context.Background(), os.Stdout, logger.New(os.Stderr, slog.LevelWarn)); err != nil {
		fmt.Fprintf(os.Stderr, "demo failed: %v\n", err)
		os.Exit(1)
	}
}

// run replays the scripted scenario and writes feeds to out.
func run(ctx context.Context, out io.Writer, log *slog.Logger) error {
	store := memory.New()
	journal := worker.NewJournalWriter(store.Payments(), 1, 1, log)
	accounts := usecase.NewAccountUseCase(store.Users())
	payments := usecase.NewPaymentUseCase(card.NopProcessor{}, journal, store.Payments())

	bobby, err := accounts.CreateUser(ctx, "Bobby", decimal.RequireFromString("5.00"), "4111111111111111")
	if err != nil {
		return err
	}
	carol, err := accounts.CreateUser(ctx, "Carol", decimal.RequireFromString("10.00"), "4242424242424242")
	if err != nil {
		return err
	}

	steps := []struct {
		payer, target *model.User
		amount        decimal.Decimal
		note          string
	}{
		{payer: bobby, target: carol, amount: decimal.RequireFromString("5.00"), note: "Coffee"},
		{payer: carol, target: bobby, amount: decimal.RequireFromString("15.00"), note: "Lunch"},
	}
	for _, step := range steps {
		if _, err := payments.Pay(ctx, step.payer, step.target, step.amount, step.note); err != nil {
			if !errors.Is(err, domainErrors.ErrPayment) {
				return err
			}
			fmt.Fprintln(out, err)
			break
		}
	}

	if err := usecase.RenderFeed(out, bobby.Feed()); err != nil {
		return err
	}

	if err := accounts.AddFriend(ctx, bobby.Username, carol.Username); err != nil {
		return err
	}
	fmt.Fprintln(out)
	return usecase.RenderFeed(out, bobby.Feed())
}
