package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateUserRequest describes account registration payload.
type CreateUserRequest struct {
	Username         string          `json:"username" binding:"required"`
	Balance          decimal.Decimal `json:"balance"`
	CreditCardNumber string          `json:"credit_card_number" binding:"required"`
}

// AmountRequest describes balance top-up payload.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// FriendRequest names the account to befriend.
type FriendRequest struct {
	Friend string `json:"friend" binding:"required"`
}

// UserResponse represents an account snapshot. The card number is masked.
type UserResponse struct {
	Username   string          `json:"username"`
	Balance    decimal.Decimal `json:"balance"`
	CreditCard string          `json:"credit_card,omitempty"`
	Friends    []string        `json:"friends"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ErrorResponse carries a domain error message.
type ErrorResponse struct {
	Error string `json:"error"`
}
