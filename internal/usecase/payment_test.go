package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/minivenmo/internal/domain/errors"
	"github.com/polkiloo/minivenmo/internal/domain/model"
	testhelpers "github.com/polkiloo/minivenmo/internal/test"
)

type paymentFixture struct {
	uc       *PaymentUseCase
	cards    *testhelpers.CardProcessorStub
	recorder *testhelpers.PaymentRecorderStub
	journal  *testhelpers.PaymentRepositoryStub
	payer    *model.User
	payee    *model.User
}

func newPaymentFixture(t *testing.T, payerBalance, payeeBalance int64) *paymentFixture {
	t.Helper()
	accounts := NewAccountUseCase(testhelpers.NewUserRepositoryStub())
	ctx := context.Background()
	payer, err := accounts.CreateUser(ctx, "Bobby", decimal.NewFromInt(payerBalance), "4111111111111111")
	if err != nil {
		t.Fatalf("create payer: %v", err)
	}
	payee, err := accounts.CreateUser(ctx, "Bobby2", decimal.NewFromInt(payeeBalance), "4242424242424242")
	if err != nil {
		t.Fatalf("create payee: %v", err)
	}

	f := &paymentFixture{
		cards:    &testhelpers.CardProcessorStub{},
		recorder: &testhelpers.PaymentRecorderStub{},
		journal:  &testhelpers.PaymentRepositoryStub{},
		payer:    payer,
		payee:    payee,
	}
	f.uc = NewPaymentUseCase(f.cards, f.recorder, f.journal)
	return f
}

func TestPaymentUseCasePayWithBalance(t *testing.T) {
	f := newPaymentFixture(t, 34, 100)

	payment, err := f.uc.Pay(context.Background(), f.payer, f.payee, decimal.NewFromInt(30), "The stuff")
	if err != nil {
		t.Fatalf("pay returned error: %v", err)
	}
	if payment != nil {
		t.Fatalf("balance-funded payment must not produce a record, got %+v", payment)
	}
	if !f.payer.Balance.Equal(decimal.NewFromInt(4)) {
		t.Fatalf("expected payer balance 4, got %s", f.payer.Balance)
	}
	if !f.payee.Balance.Equal(decimal.NewFromInt(130)) {
		t.Fatalf("expected payee balance 130, got %s", f.payee.Balance)
	}
	if len(f.cards.Charges) != 0 {
		t.Fatalf("card must not be charged, got %v", f.cards.Charges)
	}
	if len(f.recorder.Payments) != 0 {
		t.Fatal("nothing should be journaled")
	}
	if feed := f.payer.Feed(); len(feed) != 1 || feed[0] != "Bobby paid Bobby2 $30 for The stuff" {
		t.Fatalf("unexpected payer feed: %v", feed)
	}
	if feed := f.payee.Feed(); len(feed) != 0 {
		t.Fatalf("payee feed must stay empty, got %v", feed)
	}
}

func TestPaymentUseCasePayWithExactBalance(t *testing.T) {
	f := newPaymentFixture(t, 30, 0)

	if _, err := f.uc.Pay(context.Background(), f.payer, f.payee, decimal.NewFromInt(30), "All in"); err != nil {
		t.Fatalf("pay returned error: %v", err)
	}
	if !f.payer.Balance.IsZero() {
		t.Fatalf("expected zero balance, got %s", f.payer.Balance)
	}
	if len(f.cards.Charges) != 0 {
		t.Fatal("covering balance must be used before the card")
	}
}

func TestPaymentUseCasePayWithCard(t *testing.T) {
	f := newPaymentFixture(t, 34, 100)

	payment, err := f.uc.Pay(context.Background(), f.payer, f.payee, decimal.NewFromInt(100), "Books")
	if err != nil {
		t.Fatalf("pay returned error: %v", err)
	}
	if payment == nil {
		t.Fatal("expected payment record for card-funded transfer")
	}
	if payment.Actor != "Bobby" || payment.Target != "Bobby2" || payment.Note != "Books" || !payment.Amount.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("unexpected payment: %+v", payment)
	}
	if !f.payer.Balance.Equal(decimal.NewFromInt(34)) {
		t.Fatalf("expected payer balance unchanged at 34, got %s", f.payer.Balance)
	}
	if !f.payee.Balance.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expected payee balance 200, got %s", f.payee.Balance)
	}
	if len(f.cards.Charges) != 1 || f.cards.Charges[0].Number != "4111111111111111" {
		t.Fatalf("expected one charge on payer card, got %v", f.cards.Charges)
	}
	if len(f.recorder.Payments) != 1 || f.recorder.Payments[0] != payment {
		t.Fatalf("expected payment to be recorded, got %v", f.recorder.Payments)
	}

	feed := f.payer.Feed()
	if len(feed) != 1 || feed[0] != "Bobby paid Bobby2 $100 for Books" {
		t.Fatalf("unexpected payer feed: %v", feed)
	}
	if len(f.payee.Feed()) != 0 {
		t.Fatalf("payee feed must stay empty, got %v", f.payee.Feed())
	}
}

func TestPaymentUseCaseCardValidation(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		self   bool
		noCard bool
		err    error
	}{
		{name: "pay self", amount: decimal.NewFromInt(100), self: true, err: domainErrors.ErrPaymentToSelf},
		{name: "negative amount", amount: decimal.NewFromInt(-100), err: domainErrors.ErrPaymentAmount},
		{name: "missing card", amount: decimal.NewFromInt(100), noCard: true, err: domainErrors.ErrPaymentMissingCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPaymentFixture(t, 34, 100)
			payer := f.payer
			if tt.noCard {
				payer = model.NewUser("NoCard")
			}
			if tt.amount.IsNegative() {
				// A negative amount only reaches the card path when the balance is lower still.
				payer.SubtractFromBalance(decimal.NewFromInt(200))
			}
			before := payer.Balance
			target := f.payee
			if tt.self {
				target = payer
			}
			targetBefore := target.Balance

			_, err := f.uc.Pay(context.Background(), payer, target, tt.amount, "x")
			if err != tt.err {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
			if !errors.Is(err, domainErrors.ErrPayment) {
				t.Fatalf("expected payment family error, got %v", err)
			}
			if !payer.Balance.Equal(before) || !target.Balance.Equal(targetBefore) {
				t.Fatal("failed payment must not change balances")
			}
			if len(payer.Feed()) != 0 {
				t.Fatalf("failed payment must not be recorded, got %v", payer.Feed())
			}
			if len(f.cards.Charges) != 0 {
				t.Fatal("card must not be charged when validation fails")
			}
		})
	}
}

func TestPaymentUseCaseZeroAmountWithEmptyBalanceUsesBalancePath(t *testing.T) {
	f := newPaymentFixture(t, 0, 0)
	payment, err := f.uc.Pay(context.Background(), f.payer, f.payee, decimal.Zero, "Nothing")
	if err != nil {
		t.Fatalf("zero amount covered by a zero balance should settle from balance, got %v", err)
	}
	if payment != nil {
		t.Fatal("expected no payment record")
	}
}

// Known gap: the balance path does not validate the payment.
func TestPaymentUseCaseBalancePathSkipsValidation(t *testing.T) {
	t.Run("self payment", func(t *testing.T) {
		f := newPaymentFixture(t, 34, 100)
		if _, err := f.uc.Pay(context.Background(), f.payer, f.payer, decimal.NewFromInt(10), "Me"); err != nil {
			t.Fatalf("expected self payment from balance to pass unchecked, got %v", err)
		}
		if !f.payer.Balance.Equal(decimal.NewFromInt(34)) {
			t.Fatalf("expected unchanged balance, got %s", f.payer.Balance)
		}
		if feed := f.payer.Feed(); len(feed) != 1 || feed[0] != "Bobby paid Bobby $10 for Me" {
			t.Fatalf("unexpected feed: %v", feed)
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		f := newPaymentFixture(t, 34, 100)
		if _, err := f.uc.Pay(context.Background(), f.payer, f.payee, decimal.NewFromInt(-6), "Refund"); err != nil {
			t.Fatalf("expected negative amount from balance to pass unchecked, got %v", err)
		}
		if !f.payer.Balance.Equal(decimal.NewFromInt(40)) || !f.payee.Balance.Equal(decimal.NewFromInt(94)) {
			t.Fatalf("unexpected balances: %s %s", f.payer.Balance, f.payee.Balance)
		}
	})
}

func TestPaymentUseCaseChargeFailures(t *testing.T) {
	t.Run("decline", func(t *testing.T) {
		f := newPaymentFixture(t, 0, 0)
		f.cards.ChargeFn = func(context.Context, string, decimal.Decimal) error {
			return domainErrors.ErrPaymentCardDeclined
		}
		_, err := f.uc.Pay(context.Background(), f.payer, f.payee, decimal.NewFromInt(5), "x")
		if err != domainErrors.ErrPaymentCardDeclined {
			t.Fatalf("expected decline, got %v", err)
		}
		if !f.payee.Balance.IsZero() || len(f.payer.Feed()) != 0 || len(f.recorder.Payments) != 0 {
			t.Fatal("declined payment must leave no trace")
		}
	})

	t.Run("network error", func(t *testing.T) {
		f := newPaymentFixture(t, 0, 0)
		boom := fmt.Errorf("connection refused")
		f.cards.ChargeFn = func(context.Context, string, decimal.Decimal) error { return boom }
		_, err := f.uc.Pay(context.Background(), f.payer, f.payee, decimal.NewFromInt(5), "x")
		if !errors.Is(err, boom) {
			t.Fatalf("expected wrapped network error, got %v", err)
		}
		if errors.Is(err, domainErrors.ErrPayment) {
			t.Fatal("infrastructure error must not look like a payment validation error")
		}
	})
}

func TestPaymentUseCaseHistory(t *testing.T) {
	f := newPaymentFixture(t, 0, 0)
	_ = f.journal.Save(context.Background(), model.NewPayment(decimal.NewFromInt(5), "Bobby", "Bobby2", "x"))
	_ = f.journal.Save(context.Background(), model.NewPayment(decimal.NewFromInt(7), "Bobby2", "Bobby", "y"))

	history, err := f.uc.History(context.Background(), "Bobby")
	if err != nil {
		t.Fatalf("history returned error: %v", err)
	}
	if len(history) != 1 || history[0].Note != "x" {
		t.Fatalf("unexpected history: %+v", history)
	}
}

func TestPaymentUseCaseRandomTransfersConserveMoney(t *testing.T) {
	f := newPaymentFixture(t, 20, 20)
	ctx := context.Background()
	charged := decimal.Zero

	for i := 0; i < 200; i++ {
		payer, payee := f.payer, f.payee
		if i%2 == 1 {
			payer, payee = f.payee, f.payer
		}
		before := payer.Balance.Add(payee.Balance)
		amount := testhelpers.RandomAmount(3000)

		payment, err := f.uc.Pay(ctx, payer, payee, amount, "round")
		if err != nil {
			t.Fatalf("pay %s returned error: %v", amount, err)
		}
		after := payer.Balance.Add(payee.Balance)
		if payment != nil {
			charged = charged.Add(amount)
			if !after.Equal(before.Add(amount)) {
				t.Fatalf("card transfer must add exactly the charged amount: before %s after %s amount %s", before, after, amount)
			}
		} else if !after.Equal(before) {
			t.Fatalf("balance transfer must conserve money: before %s after %s", before, after)
		}
		if payer.Balance.IsNegative() {
			t.Fatalf("balance went negative: %s", payer.Balance)
		}
	}

	total := f.payer.Balance.Add(f.payee.Balance)
	if !total.Equal(decimal.NewFromInt(40).Add(charged)) {
		t.Fatalf("expected total %s, got %s", decimal.NewFromInt(40).Add(charged), total)
	}
}

func TestAuthorizeCard(t *testing.T) {
	f := newPaymentFixture(t, 0, 0)

	number, err := AuthorizeCard(f.payer, f.payee, decimal.NewFromInt(5))
	if err != nil || number != f.payer.CreditCardNumber {
		t.Fatalf("expected payer card, got %q %v", number, err)
	}
	if _, err := AuthorizeCard(f.payer, f.payer, decimal.NewFromInt(5)); err != domainErrors.ErrPaymentToSelf {
		t.Fatalf("expected ErrPaymentToSelf, got %v", err)
	}
	if _, err := AuthorizeCard(f.payer, f.payee, decimal.Zero); err != domainErrors.ErrPaymentAmount {
		t.Fatalf("expected ErrPaymentAmount, got %v", err)
	}
	if _, err := AuthorizeCard(model.NewUser("NoCard"), f.payee, decimal.NewFromInt(5)); err != domainErrors.ErrPaymentMissingCard {
		t.Fatalf("expected ErrPaymentMissingCard, got %v", err)
	}
	if len(f.cards.Charges) != 0 {
		t.Fatal("authorization must not charge the card")
	}
}

func TestCoveredByBalance(t *testing.T) {
	f := newPaymentFixture(t, 34, 0)
	if !CoveredByBalance(f.payer, decimal.NewFromInt(34)) {
		t.Fatal("expected exact balance to cover the amount")
	}
	if CoveredByBalance(f.payer, decimal.RequireFromString("34.01")) {
		t.Fatal("expected larger amount to need the card")
	}
}
