package handlers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/minivenmo/internal/domain/model"
)

// AccountFacade describes account operations exposed via HTTP.
type AccountFacade interface {
	CreateUser(ctx context.Context, username string, balance decimal.Decimal, creditCard string) (*model.AccountSummary, error)
	User(ctx context.Context, username string) (*model.AccountSummary, error)
	Users(ctx context.Context) ([]model.AccountSummary, error)
	AddToBalance(ctx context.Context, username string, amount decimal.Decimal) (*model.AccountSummary, error)
	AddFriend(ctx context.Context, username, friend string) error
	Feed(ctx context.Context, username string) ([]string, error)
}

// PaymentFacade provides transfer operations.
type PaymentFacade interface {
	Pay(ctx context.Context, from, to string, amount decimal.Decimal, note string) (*model.Payment, error)
	Payments(ctx context.Context, username string) ([]model.Payment, error)
}

// LedgerFacade aggregates the full set of operations used across handlers.
type LedgerFacade interface {
	AccountFacade
	PaymentFacade
}
