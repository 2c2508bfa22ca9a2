package memory

import (
	"context"
	"slices"
	"sync"

	domainErrors "github.com/polkiloo/minivenmo/internal/domain/errors"
	"github.com/polkiloo/minivenmo/internal/domain/model"
	"github.com/polkiloo/minivenmo/internal/domain/repository"
)

// Storage keeps the user registry and payment journal in process memory.
type Storage struct {
	mu       sync.RWMutex
	users    map[string]*model.User
	order    []string
	payments []model.Payment
}

type userRepository struct {
	storage *Storage
}

type paymentRepository struct {
	storage *Storage
}

var _ repository.Factory = (*Storage)(nil)

// New creates empty storage.
func New() *Storage {
	return &Storage{users: make(map[string]*model.User)}
}

// Users returns the registry repository.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

// Payments returns the journal repository.
func (s *Storage) Payments() repository.PaymentRepository {
	return &paymentRepository{storage: s}
}

func (r *userRepository) Add(_ context.Context, user *model.User) error {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Username]; exists {
		return domainErrors.ErrUsernameAlreadyExists
	}
	s.users[user.Username] = user
	s.order = append(s.order, user.Username)
	return nil
}

func (r *userRepository) GetByUsername(_ context.Context, username string) (*model.User, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[username]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return user, nil
}

func (r *userRepository) Exists(_ context.Context, username string) (bool, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.users[username]
	return ok, nil
}

func (r *userRepository) List(_ context.Context) ([]*model.User, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*model.User, 0, len(s.order))
	for _, name := range s.order {
		users = append(users, s.users[name])
	}
	return users, nil
}

func (r *paymentRepository) Save(_ context.Context, payment *model.Payment) error {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	s.payments = append(s.payments, *payment)
	return nil
}

// ListByActor returns newest payments first, matching the postgres journal.
func (r *paymentRepository) ListByActor(_ context.Context, actor string) ([]model.Payment, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []model.Payment
	for _, p := range s.payments {
		if p.Actor == actor {
			result = append(result, p)
		}
	}
	slices.Reverse(result)
	return result, nil
}
