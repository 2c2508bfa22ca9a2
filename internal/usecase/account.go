package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/minivenmo/internal/domain/errors"
	"github.com/polkiloo/minivenmo/internal/domain/model"
	"github.com/polkiloo/minivenmo/internal/domain/repository"
)

// AccountUseCase handles the user registry and per-account state.
type AccountUseCase struct {
	users repository.UserRepository
}

// NewAccountUseCase constructs AccountUseCase.
func NewAccountUseCase(users repository.UserRepository) *AccountUseCase {
	return &AccountUseCase{users: users}
}

// CreateUser registers a funded account with a credit card and returns it.
// Nothing is registered when any step fails.
func (u *AccountUseCase) CreateUser(ctx context.Context, username string, balance decimal.Decimal, creditCard string) (*model.User, error) {
	exists, err := u.users.Exists(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domainErrors.ErrUsernameAlreadyExists
	}
	if !ValidateUsername(username) {
		return nil, domainErrors.ErrUsernameInvalid
	}

	usr := model.NewUser(username)
	usr.AddToBalance(balance)
	if err := u.AddCreditCard(usr, creditCard); err != nil {
		return nil, err
	}

	if err := u.users.Add(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}

// AddCreditCard attaches a validated card to the user.
func (u *AccountUseCase) AddCreditCard(usr *model.User, number string) error {
	if usr.HasCreditCard() {
		return domainErrors.ErrCreditCardAlreadySet
	}
	if !ValidateCreditCard(number) {
		return domainErrors.ErrCreditCardInvalid
	}
	return usr.AttachCreditCard(number)
}

// User looks an account up by username.
func (u *AccountUseCase) User(ctx context.Context, username string) (*model.User, error) {
	return u.users.GetByUsername(ctx, username)
}

// Users returns all accounts in registration order.
func (u *AccountUseCase) Users(ctx context.Context) ([]*model.User, error) {
	return u.users.List(ctx)
}

// AddToBalance funds an existing account with a positive or zero amount.
func (u *AccountUseCase) AddToBalance(ctx context.Context, username string, amount decimal.Decimal) (*model.User, error) {
	if amount.IsNegative() {
		return nil, domainErrors.ErrBalanceAmount
	}
	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	usr.AddToBalance(amount)
	return usr, nil
}

// AddFriend links two registered accounts.
func (u *AccountUseCase) AddFriend(ctx context.Context, username, friend string) error {
	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	other, err := u.users.GetByUsername(ctx, friend)
	if err != nil {
		return err
	}
	usr.AddFriend(other)
	return nil
}

// Feed returns the account's activity feed.
func (u *AccountUseCase) Feed(ctx context.Context, username string) ([]string, error) {
	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return usr.Feed(), nil
}
