package notificationrepo

import (
	"context"

	"github.com/aturgenev/minimart/internal/domain"
	"github.com/aturgenev/minimart/internal/memstore"
)

type Repository struct {
	store *memstore.Store[domain.Notification]
}

func New() *Repository {
	return &Repository{
		store: memstore.New(func(n *domain.Notification) *int { return &n.ID }),
	}
}

func (r *Repository) Save(_ context.Context, notification *domain.Notification) error {
	*notification = r.store.Insert(*notification)
	return nil
}

func (r *Repository) FindByUserID(_ context.Context, userID int) ([]domain.Notification, error) {
	return r.store.FindAll(func(n domain.Notification) bool { return n.UserID == userID }), nil
}

func (r *Repository) MarkRead(_ context.Context, id int) (*domain.Notification, error) {
	notification, ok := r.store.Update(id, func(n *domain.Notification) {
		n.Read = true
	})
	if !ok {
		return nil, nil
	}
	return &notification, nil
}
