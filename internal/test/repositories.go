package test

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/minivenmo/internal/domain/errors"
	"github.com/polkiloo/minivenmo/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	Order []string
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized map.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{Users: make(map[string]*model.User)}
}

// Add registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Add(ctx context.Context, user *model.User) error {
	if s.Err != nil {
		return s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if _, exists := s.Users[user.Username]; exists {
		return domainErrors.ErrUsernameAlreadyExists
	}
	s.Users[user.Username] = user
	s.Order = append(s.Order, user.Username)
	return nil
}

// GetByUsername fetches user by username or returns not found.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[username]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Exists reports whether username is registered.
func (s *UserRepositoryStub) Exists(ctx context.Context, username string) (bool, error) {
	if s.Err != nil {
		return false, s.Err
	}
	_, ok := s.Users[username]
	return ok, nil
}

// List returns users in registration order.
func (s *UserRepositoryStub) List(ctx context.Context) ([]*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	users := make([]*model.User, 0, len(s.Order))
	for _, name := range s.Order {
		users = append(users, s.Users[name])
	}
	return users, nil
}

// PaymentRepositoryStub keeps saved payments in memory.
type PaymentRepositoryStub struct {
	SaveFn func(context.Context, *model.Payment) error
	ListFn func(context.Context, string) ([]model.Payment, error)
	Saved  []model.Payment

	mu sync.Mutex
}

// Save records the payment or delegates to override.
func (s *PaymentRepositoryStub) Save(ctx context.Context, payment *model.Payment) error {
	if s.SaveFn != nil {
		return s.SaveFn(ctx, payment)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Saved = append(s.Saved, *payment)
	return nil
}

// ListByActor returns saved payments of actor.
func (s *PaymentRepositoryStub) ListByActor(ctx context.Context, actor string) ([]model.Payment, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, actor)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Payment
	for _, p := range s.Saved {
		if p.Actor == actor {
			result = append(result, p)
		}
	}
	return result, nil
}

// Count returns the number of saved payments.
func (s *PaymentRepositoryStub) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Saved)
}
