package productrepo

import (
	"context"

	"github.com/aturgenev/minimart/internal/domain"
	"github.com/aturgenev/minimart/internal/memstore"
)

// catalog is the demo inventory the service ships with.
var catalog = []domain.Product{
	{Name: "Laptop", Price: 999.99, Category: "Electronics", Stock: 50},
	{Name: "Smartphone", Price: 699.99, Category: "Electronics", Stock: 100},
	{Name: "Headphones", Price: 199.99, Category: "Electronics", Stock: 75},
	{Name: "Book", Price: 19.99, Category: "Books", Stock: 200},
}

type Repository struct {
	store *memstore.Store[domain.Product]
}

func New() *Repository {
	return &Repository{
		store: memstore.New(func(p *domain.Product) *int { return &p.ID }),
	}
}

// Seed loads the demo catalog. Products get ids 1 through 4.
func (r *Repository) Seed() {
	for _, p := range catalog {
		r.store.Insert(p)
	}
}

func (r *Repository) Save(_ context.Context, product *domain.Product) error {
	*product = r.store.Insert(*product)
	return nil
}

func (r *Repository) FindByID(_ context.Context, id int) (*domain.Product, error) {
	product, ok := r.store.FindByID(id)
	if !ok {
		return nil, nil
	}
	return &product, nil
}

func (r *Repository) FindAll(_ context.Context) ([]domain.Product, error) {
	return r.store.FindAll(nil), nil
}
