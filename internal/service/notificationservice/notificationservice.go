package notificationservice

import (
	"context"
	"errors"
	"time"

	"github.com/aturgenev/minimart/internal/domain"
	"github.com/aturgenev/minimart/internal/dto"
	"go.uber.org/zap"
)

type Repo interface {
	Save(ctx context.Context, notification *domain.Notification) error
	FindByUserID(ctx context.Context, userID int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id int) (*domain.Notification, error)
}

var ErrNotificationNotFound = errors.New("notification not found")

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) Create(ctx context.Context, req dto.CreateNotificationRequestDTO) (*domain.Notification, error) {
	notification := &domain.Notification{
		UserID:    req.UserID,
		Type:      req.Type,
		Message:   req.Message,
		OrderID:   req.OrderID,
		Read:      false,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Save(ctx, notification); err != nil {
		zap.L().Error("can't save notification", zap.Error(err))
		return nil, err
	}

	// Stands in for a real email/push/SMS delivery.
	zap.L().Info("notification sent",
		zap.Int("userID", notification.UserID),
		zap.String("message", notification.Message),
	)

	return notification, nil
}

func (s *Service) ListByUser(ctx context.Context, userID int) ([]domain.Notification, error) {
	notifications, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get notifications", zap.Error(err))
		return nil, err
	}
	if notifications == nil {
		notifications = make([]domain.Notification, 0)
	}
	return notifications, nil
}

func (s *Service) MarkRead(ctx context.Context, id int) (*domain.Notification, error) {
	notification, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		zap.L().Error("failed to mark notification read", zap.Error(err))
		return nil, err
	}
	if notification == nil {
		return nil, ErrNotificationNotFound
	}
	return notification, nil
}
