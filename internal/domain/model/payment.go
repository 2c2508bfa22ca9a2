package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Funding describes how a payment was settled.
type Funding string

const (
	FundingBalance Funding = "balance"
	FundingCard    Funding = "card"
)

// Payment is an immutable record of a card-funded transfer.
type Payment struct {
	ID        uuid.UUID
	Amount    decimal.Decimal
	Actor     string
	Target    string
	Note      string
	CreatedAt time.Time
}

// NewPayment builds a payment record with a fresh identifier.
func NewPayment(amount decimal.Decimal, actor, target, note string) *Payment {
	return &Payment{
		ID:        uuid.New(),
		Amount:    amount,
		Actor:     actor,
		Target:    target,
		Note:      note,
		CreatedAt: time.Now().UTC(),
	}
}
