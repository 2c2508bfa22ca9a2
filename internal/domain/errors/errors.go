package errors

import "errors"

// Families group related failures so callers can match a whole class with errors.Is.
var (
	ErrUsername   = errors.New("username error")
	ErrCreditCard = errors.New("credit card error")
	ErrPayment    = errors.New("payment error")
)

var (
	ErrNotFound      = errors.New("not found")
	ErrBalanceAmount = errors.New("deposit amount must be positive or zero")

	ErrUsernameInvalid       = newFamilyError(ErrUsername, "username not valid")
	ErrUsernameAlreadyExists = newFamilyError(ErrUsername, "username already exists")

	ErrCreditCardInvalid    = newFamilyError(ErrCreditCard, "invalid credit card number")
	ErrCreditCardAlreadySet = newFamilyError(ErrCreditCard, "only one credit card per user")

	ErrPaymentToSelf       = newFamilyError(ErrPayment, "user cannot pay themselves")
	ErrPaymentAmount       = newFamilyError(ErrPayment, "amount must be a non-negative number")
	ErrPaymentMissingCard  = newFamilyError(ErrPayment, "must have a credit card to make a payment")
	ErrPaymentCardDeclined = newFamilyError(ErrPayment, "credit card declined")
)

type familyError struct {
	family error
	msg    string
}

func newFamilyError(family error, msg string) error {
	return &familyError{family: family, msg: msg}
}

func (e *familyError) Error() string { return e.msg }

func (e *familyError) Unwrap() error { return e.family }
