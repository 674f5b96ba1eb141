package clients

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aturgenev/minimart/internal/dto"
	"github.com/aturgenev/minimart/pkg/clients"
)

type NotificationClient struct {
	url    string
	client clients.HTTPClientI
}

func NewNotificationClient(url string, client clients.HTTPClientI) *NotificationClient {
	return &NotificationClient{
		url:    url,
		client: client,
	}
}

func (c *NotificationClient) CreateNotification(ctx context.Context, notification dto.CreateNotificationRequestDTO) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	statusCode, _, err := c.client.PostJSON(c.url+"/api/notifications", notification)
	if err != nil {
		return fmt.Errorf("notification service request failed: %w", err)
	}
	if statusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status code %d from notification service", statusCode)
	}
	return nil
}
