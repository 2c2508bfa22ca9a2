package repository

import (
	"context"

	"github.com/polkiloo/minivenmo/internal/domain/model"
)

// UserRepository is the registry lookup table for accounts.
type UserRepository interface {
	Add(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Exists(ctx context.Context, username string) (bool, error)
	List(ctx context.Context) ([]*model.User, error)
}
