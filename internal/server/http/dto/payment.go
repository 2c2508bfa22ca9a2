package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRequest describes a transfer payload.
type PaymentRequest struct {
	Target string          `json:"target" binding:"required"`
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note"`
}

// PaymentResult reports how a transfer was funded.
type PaymentResult struct {
	Funding   string `json:"funding"`
	PaymentID string `json:"payment_id,omitempty"`
}

// PaymentResponse describes a journaled card payment.
type PaymentResponse struct {
	ID        string          `json:"id"`
	Actor     string          `json:"actor"`
	Target    string          `json:"target"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note"`
	CreatedAt time.Time       `json:"created_at"`
}
