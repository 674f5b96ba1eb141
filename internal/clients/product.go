package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aturgenev/minimart/internal/domain"
	"github.com/aturgenev/minimart/pkg/clients"
	"go.uber.org/zap"
)

// ErrProductNotFound reports a 404 from the product service, as opposed to
// the service being unreachable. Callers currently treat both the same way.
var ErrProductNotFound = errors.New("product not found")

type ProductClient struct {
	url    string
	client clients.HTTPClientI
}

func NewProductClient(url string, client clients.HTTPClientI) *ProductClient {
	return &ProductClient{
		url:    url,
		client: client,
	}
}

func (c *ProductClient) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/api/products/%d", c.url, id)
	statusCode, respBody, _, err := c.client.Get(url, nil)
	if err != nil {
		zap.L().Error("product service unreachable", zap.Int("productID", id), zap.Error(err))
		return nil, fmt.Errorf("product service request failed: %w", err)
	}

	switch statusCode {
	case http.StatusOK:
		var product domain.Product
		if err := json.Unmarshal(respBody, &product); err != nil {
			return nil, fmt.Errorf("failed to parse product response: %w", err)
		}
		return &product, nil
	case http.StatusNotFound:
		return nil, ErrProductNotFound
	default:
		zap.L().Error("unexpected status from product service", zap.Int("status", statusCode), zap.Int("productID", id))
		return nil, fmt.Errorf("unexpected status code %d from product service", statusCode)
	}
}
