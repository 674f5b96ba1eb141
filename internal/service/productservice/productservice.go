package productservice

import (
	"context"
	"errors"
	"strings"

	"github.com/aturgenev/minimart/internal/domain"
	"github.com/aturgenev/minimart/internal/dto"
	"go.uber.org/zap"
)

type Repo interface {
	Save(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
}

var ErrProductNotFound = errors.New("product not found")

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// List applies the optional category (case-insensitive) and price range
// filters. The result is never nil.
func (s *Service) List(ctx context.Context, filter dto.ProductFilterDTO) ([]domain.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("can't list products", zap.Error(err))
		return nil, err
	}

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if filter.Category != "" && !strings.EqualFold(p.Category, filter.Category) {
			continue
		}
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find product", zap.Error(err))
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *Service) Create(ctx context.Context, req dto.CreateProductRequestDTO) (*domain.Product, error) {
	product := &domain.Product{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Stock:    req.Stock,
	}

	if err := s.repo.Save(ctx, product); err != nil {
		zap.L().Error("can't save product", zap.Error(err))
		return nil, err
	}
	return product, nil
}
