package test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/polkiloo/minivenmo/internal/domain/model"
)

// AccountFacadeStub provides controllable behaviour for account endpoints.
type AccountFacadeStub struct {
	CreateFn    func(context.Context, string, decimal.Decimal, string) (*model.AccountSummary, error)
	UserFn      func(context.Context, string) (*model.AccountSummary, error)
	UsersFn     func(context.Context) ([]model.AccountSummary, error)
	DepositFn   func(context.Context, string, decimal.Decimal) (*model.AccountSummary, error)
	AddFriendFn func(context.Context, string, string) error
	FeedFn      func(context.Context, string) ([]string, error)
}

// CreateUser delegates to provided function or echoes the input back.
func (s AccountFacadeStub) CreateUser(ctx context.Context, username string, balance decimal.Decimal, creditCard string) (*model.AccountSummary, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, username, balance, creditCard)
	}
	return &model.AccountSummary{Username: username, Balance: balance, CreditCardNumber: creditCard, CreatedAt: time.Unix(0, 0)}, nil
}

// User returns a default account for any username.
func (s AccountFacadeStub) User(ctx context.Context, username string) (*model.AccountSummary, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, username)
	}
	return &model.AccountSummary{Username: username, Balance: decimal.NewFromInt(10), CreditCardNumber: "4111111111111111"}, nil
}

// Users returns predefined accounts.
func (s AccountFacadeStub) Users(ctx context.Context) ([]model.AccountSummary, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return []model.AccountSummary{{Username: "Bobby"}, {Username: "Carol"}}, nil
}

// AddToBalance returns account funded with amount.
func (s AccountFacadeStub) AddToBalance(ctx context.Context, username string, amount decimal.Decimal) (*model.AccountSummary, error) {
	if s.DepositFn != nil {
		return s.DepositFn(ctx, username, amount)
	}
	return &model.AccountSummary{Username: username, Balance: amount}, nil
}

// AddFriend executes configured handler.
func (s AccountFacadeStub) AddFriend(ctx context.Context, username, friend string) error {
	if s.AddFriendFn != nil {
		return s.AddFriendFn(ctx, username, friend)
	}
	return nil
}

// Feed returns preconfigured feed.
func (s AccountFacadeStub) Feed(ctx context.Context, username string) ([]string, error) {
	if s.FeedFn != nil {
		return s.FeedFn(ctx, username)
	}
	return []string{username + " paid Carol $5 for Coffee"}, nil
}

// PaymentFacadeStub simulates payment operations.
type PaymentFacadeStub struct {
	PayFn      func(context.Context, string, string, decimal.Decimal, string) (*model.Payment, error)
	PaymentsFn func(context.Context, string) ([]model.Payment, error)
}

// Pay delegates to override or settles from balance.
func (s PaymentFacadeStub) Pay(ctx context.Context, from, to string, amount decimal.Decimal, note string) (*model.Payment, error) {
	if s.PayFn != nil {
		return s.PayFn(ctx, from, to, amount, note)
	}
	return nil, nil
}

// Payments returns preconfigured journal entries.
func (s PaymentFacadeStub) Payments(ctx context.Context, username string) ([]model.Payment, error) {
	if s.PaymentsFn != nil {
		return s.PaymentsFn(ctx, username)
	}
	return []model.Payment{{ID: uuid.Nil, Actor: username, Target: "Carol", Amount: decimal.NewFromInt(15), Note: "Lunch", CreatedAt: time.Unix(0, 0)}}, nil
}

// LedgerFacadeStub aggregates facade dependencies for HTTP layer tests.
type LedgerFacadeStub struct {
	AccountFacadeStub
	PaymentFacadeStub
}
