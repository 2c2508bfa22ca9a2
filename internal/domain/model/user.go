package model

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/minivenmo/internal/domain/errors"
)

// User represents a ledger account with its own balance, card and activity feed.
type User struct {
	Username         string
	Balance          decimal.Decimal
	CreditCardNumber string
	CreatedAt        time.Time

	friends map[string]struct{}
	feed    []string
}

// AccountSummary is a detached copy of account state safe to hand out.
type AccountSummary struct {
	Username         string
	Balance          decimal.Decimal
	CreditCardNumber string
	Friends          []string
	CreatedAt        time.Time
}

// NewUser creates an empty account. Username format is checked by the caller.
func NewUser(username string) *User {
	return &User{
		Username:  username,
		Balance:   decimal.Zero,
		CreatedAt: time.Now().UTC(),
		friends:   make(map[string]struct{}),
	}
}

// AddToBalance increases balance by amount.
func (u *User) AddToBalance(amount decimal.Decimal) {
	u.Balance = u.Balance.Add(amount)
}

// SubtractFromBalance decreases balance by amount without any checks.
func (u *User) SubtractFromBalance(amount decimal.Decimal) {
	u.Balance = u.Balance.Sub(amount)
}

// HasCreditCard reports whether a card is on file.
func (u *User) HasCreditCard() bool {
	return u.CreditCardNumber != ""
}

// AttachCreditCard stores the card number. A card can be set only once.
func (u *User) AttachCreditCard(number string) error {
	if u.HasCreditCard() {
		return domainErrors.ErrCreditCardAlreadySet
	}
	u.CreditCardNumber = number
	return nil
}

// AddFriend links both users and records the friendship on each feed.
// Repeated calls are no-ops.
func (u *User) AddFriend(other *User) {
	if u.IsFriend(other.Username) {
		return
	}
	if u.friends == nil {
		u.friends = make(map[string]struct{})
	}
	u.friends[other.Username] = struct{}{}
	// The mirrored call terminates because the link above is already visible to it.
	other.AddFriend(u)
	u.recordFriendship(other.Username)
}

// IsFriend reports whether username is in the friend set.
func (u *User) IsFriend(username string) bool {
	_, ok := u.friends[username]
	return ok
}

// Friends returns friend usernames in lexical order.
func (u *User) Friends() []string {
	names := make([]string, 0, len(u.friends))
	for name := range u.friends {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Feed returns a copy of the activity feed in insertion order.
func (u *User) Feed() []string {
	return slices.Clone(u.feed)
}

// RecordPayment appends a payment entry to this user's feed only.
func (u *User) RecordPayment(target string, amount decimal.Decimal, note string) {
	u.feed = append(u.feed, PaymentFeedEntry(u.Username, target, amount, note))
}

func (u *User) recordFriendship(friend string) {
	u.feed = append(u.feed, FriendshipFeedEntry(u.Username, friend))
}

// Summary copies the current account state.
func (u *User) Summary() AccountSummary {
	return AccountSummary{
		Username:         u.Username,
		Balance:          u.Balance,
		CreditCardNumber: u.CreditCardNumber,
		Friends:          u.Friends(),
		CreatedAt:        u.CreatedAt,
	}
}

// PaymentFeedEntry formats a payment feed line.
func PaymentFeedEntry(actor, target string, amount decimal.Decimal, note string) string {
	return fmt.Sprintf("%s paid %s $%s for %s", actor, target, FormatAmount(amount), note)
}

// FormatAmount renders whole-scale amounts as integers and fractional-scale
// amounts with at least one fractional digit: 100 is "100", 5.00 is "5.0",
// 15.50 is "15.5".
func FormatAmount(amount decimal.Decimal) string {
	if amount.Exponent() >= 0 {
		return amount.String()
	}
	s := strings.TrimRight(amount.StringFixed(-amount.Exponent()), "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}

// FriendshipFeedEntry formats a friendship feed line.
func FriendshipFeedEntry(user, friend string) string {
	return fmt.Sprintf("%s adds %s as a friend", user, friend)
}
