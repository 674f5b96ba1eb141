package clients

import (
	"context"
	"errors"
	"net/http"
	"testing"

	pkgclients "github.com/aturgenev/minimart/pkg/clients"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestGetProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	httpClient := pkgclients.NewMockHTTPClientI(ctrl)
	client := NewProductClient("http://product-service:3002", httpClient)

	tests := []struct {
		name        string
		prepareMock func()
		wantErr     error
		wantName    string
	}{
		{
			name: "Product resolved",
			prepareMock: func() {
				httpClient.EXPECT().
					Get("http://product-service:3002/api/products/1", nil).
					Return(http.StatusOK, []byte(`{"id":1,"name":"Laptop","price":999.99}`), nil, nil)
			},
			wantName: "Laptop",
		},
		{
			name: "Product not found",
			prepareMock: func() {
				httpClient.EXPECT().
					Get("http://product-service:3002/api/products/1", nil).
					Return(http.StatusNotFound, []byte(`{"error":"Product 1 not found"}`), nil, nil)
			},
			wantErr: ErrProductNotFound,
		},
		{
			name: "Service unreachable",
			prepareMock: func() {
				httpClient.EXPECT().
					Get("http://product-service:3002/api/products/1", nil).
					Return(0, nil, nil, errors.New("connection refused"))
			},
			wantErr: errors.New("product service request failed: connection refused"),
		},
		{
			name: "Unexpected status",
			prepareMock: func() {
				httpClient.EXPECT().
					Get("http://product-service:3002/api/products/1", nil).
					Return(http.StatusInternalServerError, []byte(`{"error":"Internal server error"}`), nil, nil)
			},
			wantErr: errors.New("unexpected status code 500 from product service"),
		},
		{
			name: "Malformed body",
			prepareMock: func() {
				httpClient.EXPECT().
					Get("http://product-service:3002/api/products/1", nil).
					Return(http.StatusOK, []byte("{not json"), nil, nil)
			},
			wantErr: errors.New("failed to parse product response"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			product, err := client.GetProduct(context.Background(), 1)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				assert.Nil(t, product)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, product.Name)
		})
	}
}

func TestGetProductContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	httpClient := pkgclients.NewMockHTTPClientI(ctrl)
	client := NewProductClient("http://product-service:3002", httpClient)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetProduct(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
