package repository

import (
	"context"

	"github.com/polkiloo/minivenmo/internal/domain/model"
)

// PaymentRepository journals card-funded payments.
type PaymentRepository interface {
	Save(ctx context.Context, payment *model.Payment) error
	ListByActor(ctx context.Context, actor string) ([]model.Payment, error)
}
