package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/minivenmo/internal/domain/errors"
	"github.com/polkiloo/minivenmo/internal/domain/model"
)

func TestUserRepository(t *testing.T) {
	storage := New()
	repo := storage.Users()
	ctx := context.Background()

	bobby := model.NewUser("Bobby")
	if err := repo.Add(ctx, bobby); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Add(ctx, model.NewUser("Bobby")); err != domainErrors.ErrUsernameAlreadyExists {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}

	got, err := repo.GetByUsername(ctx, "Bobby")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != bobby {
		t.Fatal("expected the registered instance")
	}
	if _, err := repo.GetByUsername(ctx, "Carol"); err != domainErrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	exists, err := repo.Exists(ctx, "Bobby")
	if err != nil || !exists {
		t.Fatalf("expected Bobby to exist, got %v %v", exists, err)
	}
	exists, _ = repo.Exists(ctx, "Carol")
	if exists {
		t.Fatal("did not expect Carol to exist")
	}
}

func TestUserRepositoryListKeepsInsertionOrder(t *testing.T) {
	repo := New().Users()
	ctx := context.Background()
	names := []string{"Zed_1", "Alice", "Mallory"}
	for _, name := range names {
		if err := repo.Add(ctx, model.NewUser(name)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != len(names) {
		t.Fatalf("expected %d users, got %d", len(names), len(users))
	}
	for i, u := range users {
		if u.Username != names[i] {
			t.Fatalf("position %d: expected %s, got %s", i, names[i], u.Username)
		}
	}
}

func TestPaymentRepository(t *testing.T) {
	repo := New().Payments()
	ctx := context.Background()

	first := model.NewPayment(decimal.NewFromInt(15), "Carol", "Bobby", "Lunch")
	second := model.NewPayment(decimal.NewFromInt(3), "Carol", "Bobby", "Tea")
	other := model.NewPayment(decimal.NewFromInt(1), "Bobby", "Carol", "Gum")
	for _, p := range []*model.Payment{first, other, second} {
		if err := repo.Save(ctx, p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	payments, err := repo.ListByActor(ctx, "Carol")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payments) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(payments))
	}
	if payments[0].ID != second.ID || payments[1].ID != first.ID {
		t.Fatalf("expected newest first, got %+v", payments)
	}

	none, _ := repo.ListByActor(ctx, "Nobody")
	if len(none) != 0 {
		t.Fatalf("expected no payments, got %v", none)
	}
}

func TestPaymentRepositoryConcurrentSave(t *testing.T) {
	repo := New().Payments()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Save(ctx, model.NewPayment(decimal.NewFromInt(1), "Carol", "Bobby", "x"))
		}()
	}
	wg.Wait()

	payments, _ := repo.ListByActor(ctx, "Carol")
	if len(payments) != 50 {
		t.Fatalf("expected 50 payments, got %d", len(payments))
	}
}
