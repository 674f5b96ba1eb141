package dispatch

import (
	"context"
	"fmt"

	"github.com/aturgenev/minimart/internal/dto"
	"go.uber.org/zap"
)

const queueSize = 10

type NotificationGateway interface {
	CreateNotification(ctx context.Context, notification dto.CreateNotificationRequestDTO) error
}

// Dispatcher delivers notifications as detached tasks. Callers only enqueue;
// delivery outcome never reaches them.
type Dispatcher struct {
	gateway NotificationGateway
	pool    WorkerPoolI
}

func NewDispatcher(gateway NotificationGateway) *Dispatcher {
	return &Dispatcher{
		gateway: gateway,
		pool:    NewWorkerPool(queueSize),
	}
}

// Dispatch queues a notification without waiting for delivery. When the
// queue is full the notification is dropped with a log entry; losing
// notifications is tolerated.
func (d *Dispatcher) Dispatch(notification dto.CreateNotificationRequestDTO) {
	ok := d.pool.TryAddTask(func() error {
		if err := d.gateway.CreateNotification(context.Background(), notification); err != nil {
			return fmt.Errorf("failed to send notification to user %d: %w", notification.UserID, err)
		}
		zap.L().Info("notification dispatched",
			zap.Int("userID", notification.UserID),
			zap.Int("orderID", notification.OrderID),
		)
		return nil
	})
	if !ok {
		zap.L().Warn("notification queue full, dropping",
			zap.Int("userID", notification.UserID),
			zap.Int("orderID", notification.OrderID),
		)
	}
}

func (d *Dispatcher) Close() {
	d.pool.Close()
}
