package orderservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/aturgenev/minimart/internal/domain"
	"github.com/aturgenev/minimart/internal/dto"
	"go.uber.org/zap"
)

type Repo interface {
	Save(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int, status string) (*domain.Order, error)
}

type ProductGateway interface {
	GetProduct(ctx context.Context, id int) (*domain.Product, error)
}

type Dispatcher interface {
	Dispatch(notification dto.CreateNotificationRequestDTO)
}

// PendingStatus is the status every new order starts in. Later transitions
// are caller-supplied strings; there is no transition table.
const PendingStatus = "pending"

var ErrOrderNotFound = errors.New("order not found")

// ProductNotFoundError aborts order creation. It covers both a genuine 404
// and an unreachable product service.
type ProductNotFoundError struct {
	ProductID int
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

type Service struct {
	repo       Repo
	products   ProductGateway
	dispatcher Dispatcher
}

func New(repo Repo, products ProductGateway, dispatcher Dispatcher) *Service {
	return &Service{
		repo:       repo,
		products:   products,
		dispatcher: dispatcher,
	}
}

// Create prices every item against the product service, persists the order
// and queues an order_created notification. Pricing is sequential and
// fail-fast: the first item that cannot be resolved aborts the whole
// operation before anything is stored. Once the order is saved the result is
// final; a lost notification never changes it.
func (s *Service) Create(ctx context.Context, userID int, items []dto.OrderItemDTO) (*domain.Order, error) {
	var total float64
	for _, item := range items {
		product, err := s.products.GetProduct(ctx, item.ProductID)
		if err != nil {
			zap.L().Info("order rejected, product unresolved",
				zap.Int("productID", item.ProductID), zap.Error(err))
			return nil, &ProductNotFoundError{ProductID: item.ProductID}
		}
		total += product.Price * float64(item.Quantity)
	}

	orderItems := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order := &domain.Order{
		UserID:      userID,
		Items:       orderItems,
		TotalAmount: round2(total),
		Status:      PendingStatus,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Save(ctx, order); err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return nil, err
	}

	s.dispatcher.Dispatch(dto.CreateNotificationRequestDTO{
		UserID:  userID,
		Type:    "order_created",
		Message: fmt.Sprintf("Order #%d has been created", order.ID),
		OrderID: order.ID,
	})

	return order, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *Service) ListByUser(ctx context.Context, userID int) ([]domain.Order, error) {
	orders, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	if orders == nil {
		orders = make([]domain.Order, 0)
	}
	return orders, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int, status string) (*domain.Order, error) {
	order, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		zap.L().Error("failed to update order status", zap.Error(err))
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// round2 keeps two fractional digits, rounding halves away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
