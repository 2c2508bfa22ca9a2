package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/minivenmo/internal/domain/errors"
	"github.com/polkiloo/minivenmo/internal/domain/model"
	"github.com/polkiloo/minivenmo/internal/domain/repository"
)

// CardProcessor charges a credit card through the card network.
type CardProcessor interface {
	Charge(ctx context.Context, number string, amount decimal.Decimal) error
}

// PaymentRecorder receives every payment record produced by a card-funded transfer.
type PaymentRecorder interface {
	Record(ctx context.Context, payment *model.Payment)
}

// PaymentUseCase settles transfers between accounts.
type PaymentUseCase struct {
	cards    CardProcessor
	recorder PaymentRecorder
	payments repository.PaymentRepository
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(cards CardProcessor, recorder PaymentRecorder, payments repository.PaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{cards: cards, recorder: recorder, payments: payments}
}

// Pay moves amount from payer to target. The payer's balance is used when it
// covers the whole amount, otherwise the payer's credit card is charged.
// Only card-funded transfers produce a Payment; the result is nil otherwise.
//
// The balance path performs no validation: paying yourself or paying a
// non-positive amount that the balance covers goes through unchecked.
func (u *PaymentUseCase) Pay(ctx context.Context, payer, target *model.User, amount decimal.Decimal, note string) (*model.Payment, error) {
	if CoveredByBalance(payer, amount) {
		u.PayWithBalance(payer, target, amount, note)
		return nil, nil
	}

	number, err := AuthorizeCard(payer, target, amount)
	if err != nil {
		return nil, err
	}
	if err := u.ChargeCard(ctx, number, amount); err != nil {
		return nil, err
	}
	return u.SettleCard(ctx, payer, target, amount, note), nil
}

// History lists journaled card payments made by actor.
func (u *PaymentUseCase) History(ctx context.Context, actor string) ([]model.Payment, error) {
	return u.payments.ListByActor(ctx, actor)
}

// CoveredByBalance reports whether the payer's balance funds the whole amount.
func CoveredByBalance(payer *model.User, amount decimal.Decimal) bool {
	return payer.Balance.GreaterThanOrEqual(amount)
}

// PayWithBalance moves amount between balances and records the payer's feed entry.
func (u *PaymentUseCase) PayWithBalance(payer, target *model.User, amount decimal.Decimal, note string) {
	payer.SubtractFromBalance(amount)
	target.AddToBalance(amount)
	payer.RecordPayment(target.Username, amount, note)
}

// AuthorizeCard checks a card-funded transfer and returns the card to charge.
func AuthorizeCard(payer, target *model.User, amount decimal.Decimal) (string, error) {
	switch {
	case payer.Username == target.Username:
		return "", domainErrors.ErrPaymentToSelf
	case !amount.IsPositive():
		return "", domainErrors.ErrPaymentAmount
	case !payer.HasCreditCard():
		return "", domainErrors.ErrPaymentMissingCard
	}
	return payer.CreditCardNumber, nil
}

// ChargeCard charges the card. Payment-family errors such as a decline are
// returned as is, transport failures are wrapped.
func (u *PaymentUseCase) ChargeCard(ctx context.Context, number string, amount decimal.Decimal) error {
	if err := u.cards.Charge(ctx, number, amount); err != nil {
		if errors.Is(err, domainErrors.ErrPayment) {
			return err
		}
		return fmt.Errorf("charge credit card: %w", err)
	}
	return nil
}

// SettleCard credits target after a successful charge, records the payer's
// feed entry and hands the payment to the recorder.
func (u *PaymentUseCase) SettleCard(ctx context.Context, payer, target *model.User, amount decimal.Decimal, note string) *model.Payment {
	payment := model.NewPayment(amount, payer.Username, target.Username, note)
	target.AddToBalance(amount)
	payer.RecordPayment(target.Username, amount, note)
	u.recorder.Record(ctx, payment)
	return payment
}
