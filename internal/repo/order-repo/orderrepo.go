package orderrepo

import (
	"context"
	"time"

	"github.com/aturgenev/minimart/internal/domain"
	"github.com/aturgenev/minimart/internal/memstore"
)

type Repository struct {
	store *memstore.Store[domain.Order]
}

func New() *Repository {
	return &Repository{
		store: memstore.New(func(o *domain.Order) *int { return &o.ID }),
	}
}

func (r *Repository) Save(_ context.Context, order *domain.Order) error {
	*order = r.store.Insert(*order)
	return nil
}

func (r *Repository) FindByID(_ context.Context, id int) (*domain.Order, error) {
	order, ok := r.store.FindByID(id)
	if !ok {
		return nil, nil
	}
	return &order, nil
}

func (r *Repository) FindByUserID(_ context.Context, userID int) ([]domain.Order, error) {
	return r.store.FindAll(func(o domain.Order) bool { return o.UserID == userID }), nil
}

func (r *Repository) UpdateStatus(_ context.Context, id int, status string) (*domain.Order, error) {
	now := time.Now()
	order, ok := r.store.Update(id, func(o *domain.Order) {
		o.Status = status
		o.UpdatedAt = &now
	})
	if !ok {
		return nil, nil
	}
	return &order, nil
}

// Len reports the number of stored orders.
func (r *Repository) Len() int {
	return r.store.Len()
}
