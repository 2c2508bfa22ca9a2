package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/minivenmo/internal/domain/model"
	"github.com/polkiloo/minivenmo/internal/usecase"
)

// LedgerFacade runs one ledger operation at a time and returns detached snapshots.
type LedgerFacade struct {
	accounts *usecase.AccountUseCase
	payments *usecase.PaymentUseCase
	logger   *slog.Logger

	mu sync.Mutex
}

func NewLedgerFacade(accounts *usecase.AccountUseCase, payments *usecase.PaymentUseCase, logger *slog.Logger) *LedgerFacade {
	return &LedgerFacade{accounts: accounts, payments: payments, logger: logger}
}

func (f *LedgerFacade) CreateUser(ctx context.Context, username string, balance decimal.Decimal, creditCard string) (*model.AccountSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	usr, err := f.accounts.CreateUser(ctx, username, balance, creditCard)
	if err != nil {
		f.logger.Warn("create user rejected", slog.String("username", username), slog.String("error", err.Error()))
		return nil, err
	}
	f.logger.Info("user created", slog.String("username", username))
	summary := usr.Summary()
	return &summary, nil
}

func (f *LedgerFacade) User(ctx context.Context, username string) (*model.AccountSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	usr, err := f.accounts.User(ctx, username)
	if err != nil {
		return nil, err
	}
	summary := usr.Summary()
	return &summary, nil
}

func (f *LedgerFacade) Users(ctx context.Context) ([]model.AccountSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	users, err := f.accounts.Users(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]model.AccountSummary, 0, len(users))
	for _, usr := range users {
		result = append(result, usr.Summary())
	}
	return result, nil
}

func (f *LedgerFacade) AddToBalance(ctx context.Context, username string, amount decimal.Decimal) (*model.AccountSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	usr, err := f.accounts.AddToBalance(ctx, username, amount)
	if err != nil {
		return nil, err
	}
	summary := usr.Summary()
	return &summary, nil
}

func (f *LedgerFacade) AddFriend(ctx context.Context, username, friend string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.accounts.AddFriend(ctx, username, friend)
}

func (f *LedgerFacade) Feed(ctx context.Context, username string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.accounts.Feed(ctx, username)
}

// Pay transfers amount between two registered users. The returned payment is
// nil when the payer's balance covered the transfer.
//
// The card charge runs without holding the ledger lock. Only the target's
// balance and the payer's feed change after it, and those are applied under
// the lock once the charge succeeds.
func (f *LedgerFacade) Pay(ctx context.Context, from, to string, amount decimal.Decimal, note string) (*model.Payment, error) {
	f.mu.Lock()
	payer, target, err := f.participants(ctx, from, to)
	if err != nil {
		f.mu.Unlock()
		return nil, err
	}
	if usecase.CoveredByBalance(payer, amount) {
		f.payments.PayWithBalance(payer, target, amount, note)
		f.mu.Unlock()
		f.logSettled(from, to, amount, model.FundingBalance)
		return nil, nil
	}
	number, err := usecase.AuthorizeCard(payer, target, amount)
	f.mu.Unlock()
	if err != nil {
		f.logRejected(from, to, amount, err)
		return nil, err
	}

	if err := f.payments.ChargeCard(ctx, number, amount); err != nil {
		f.logRejected(from, to, amount, err)
		return nil, err
	}

	f.mu.Lock()
	payment := f.payments.SettleCard(ctx, payer, target, amount, note)
	f.mu.Unlock()

	f.logSettled(from, to, amount, model.FundingCard)
	return payment, nil
}

func (f *LedgerFacade) participants(ctx context.Context, from, to string) (*model.User, *model.User, error) {
	payer, err := f.accounts.User(ctx, from)
	if err != nil {
		return nil, nil, err
	}
	target, err := f.accounts.User(ctx, to)
	if err != nil {
		return nil, nil, err
	}
	return payer, target, nil
}

func (f *LedgerFacade) logSettled(from, to string, amount decimal.Decimal, funding model.Funding) {
	f.logger.Info("payment settled",
		slog.String("actor", from),
		slog.String("target", to),
		slog.String("amount", amount.String()),
		slog.String("funding", string(funding)))
}

func (f *LedgerFacade) logRejected(from, to string, amount decimal.Decimal, err error) {
	f.logger.Warn("payment rejected",
		slog.String("actor", from),
		slog.String("target", to),
		slog.String("amount", amount.String()),
		slog.String("error", err.Error()))
}

func (f *LedgerFacade) Payments(ctx context.Context, username string) ([]model.Payment, error) {
	f.mu.Lock()
	if _, err := f.accounts.User(ctx, username); err != nil {
		f.mu.Unlock()
		return nil, err
	}
	f.mu.Unlock()

	return f.payments.History(ctx, username)
}
