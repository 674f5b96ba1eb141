package userrepo

import (
	"context"

	"github.com/aturgenev/minimart/internal/domain"
	"github.com/aturgenev/minimart/internal/memstore"
)

type Repository struct {
	store *memstore.Store[domain.User]
}

func New() *Repository {
	return &Repository{
		store: memstore.New(func(u *domain.User) *int { return &u.ID }),
	}
}

func (r *Repository) Save(_ context.Context, user *domain.User) error {
	*user = r.store.Insert(*user)
	return nil
}

func (r *Repository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	users := r.store.FindAll(func(u domain.User) bool { return u.Email == email })
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (r *Repository) FindByID(_ context.Context, id int) (*domain.User, error) {
	user, ok := r.store.FindByID(id)
	if !ok {
		return nil, nil
	}
	return &user, nil
}
