package clients

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/aturgenev/minimart/internal/dto"
	pkgclients "github.com/aturgenev/minimart/pkg/clients"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestCreateNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	httpClient := pkgclients.NewMockHTTPClientI(ctrl)
	client := NewNotificationClient("http://notification-service:3004", httpClient)

	notification := dto.CreateNotificationRequestDTO{
		UserID:  7,
		Type:    "order_created",
		Message: "Order #1 has been created",
		OrderID: 1,
	}

	t.Run("Created", func(t *testing.T) {
		httpClient.EXPECT().
			PostJSON("http://notification-service:3004/api/notifications", notification).
			Return(http.StatusCreated, []byte(`{"id":1}`), nil)

		err := client.CreateNotification(context.Background(), notification)
		require.NoError(t, err)
	})

	t.Run("Transport failure", func(t *testing.T) {
		httpClient.EXPECT().
			PostJSON("http://notification-service:3004/api/notifications", notification).
			Return(0, nil, errors.New("connection refused"))

		err := client.CreateNotification(context.Background(), notification)
		assert.ErrorContains(t, err, "notification service request failed")
	})

	t.Run("Unexpected status", func(t *testing.T) {
		httpClient.EXPECT().
			PostJSON("http://notification-service:3004/api/notifications", notification).
			Return(http.StatusInternalServerError, []byte(`{"error":"Internal server error"}`), nil)

		err := client.CreateNotification(context.Background(), notification)
		assert.ErrorContains(t, err, "unexpected status code 500")
	})

	t.Run("Context cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := client.CreateNotification(ctx, notification)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
