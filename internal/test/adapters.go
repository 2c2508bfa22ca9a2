package test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/minivenmo/internal/domain/model"
)

// ChargeCall stores information about Charge invocations.
type ChargeCall struct {
	Number string
	Amount decimal.Decimal
}

// CardProcessorStub records charges and optionally fails them.
type CardProcessorStub struct {
	ChargeFn func(context.Context, string, decimal.Decimal) error
	Charges  []ChargeCall
	mu       sync.Mutex
}

// Charge delegates to override or approves the charge.
func (s *CardProcessorStub) Charge(ctx context.Context, number string, amount decimal.Decimal) error {
	s.mu.Lock()
	s.Charges = append(s.Charges, ChargeCall{Number: number, Amount: amount})
	s.mu.Unlock()
	if s.ChargeFn != nil {
		return s.ChargeFn(ctx, number, amount)
	}
	return nil
}

// PaymentRecorderStub collects recorded payments.
type PaymentRecorderStub struct {
	Payments []*model.Payment
	mu       sync.Mutex
}

// Record stores the payment.
func (s *PaymentRecorderStub) Record(ctx context.Context, payment *model.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Payments = append(s.Payments, payment)
}
