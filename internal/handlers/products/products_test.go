package products

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aturgenev/minimart/internal/domain"
	"github.com/aturgenev/minimart/internal/dto"
	productservice "github.com/aturgenev/minimart/internal/service/productservice"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*ProductHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestListProductsHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Filters forwarded to the service", func(t *testing.T) {
		service.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter dto.ProductFilterDTO) ([]domain.Product, error) {
				assert.Equal(t, "Electronics", filter.Category)
				assert.NotNil(t, filter.MinPrice)
				assert.Equal(t, 100.0, *filter.MinPrice)
				assert.Nil(t, filter.MaxPrice)
				return []domain.Product{{ID: 1, Name: "Laptop", Price: 999.99}}, nil
			})

		r := httptest.NewRequest(http.MethodGet, "/api/products?category=Electronics&minPrice=100", nil)
		w := httptest.NewRecorder()

		handler.ListProducts(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Laptop")
	})

	t.Run("Empty catalog serializes as an array", func(t *testing.T) {
		service.EXPECT().List(gomock.Any(), dto.ProductFilterDTO{}).Return([]domain.Product{}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		w := httptest.NewRecorder()

		handler.ListProducts(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("Invalid price filter", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/products?minPrice=cheap", nil)
		w := httptest.NewRecorder()

		handler.ListProducts(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid price filter")
	})
}

func TestGetProductHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		id            string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Product found",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().GetByID(gomock.Any(), 1).
					Return(&domain.Product{ID: 1, Name: "Laptop", Price: 999.99}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Product not found",
			id:   "99",
			prepareMock: func() {
				service.EXPECT().GetByID(gomock.Any(), 99).
					Return(nil, productservice.ErrProductNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Product not found",
		},
		{
			name:          "Non-numeric id",
			id:            "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusNotFound,
			expectedError: "Product not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := withURLParam(httptest.NewRequest(http.MethodGet, "/api/products/"+tt.id, nil), "id", tt.id)
			w := httptest.NewRecorder()

			handler.GetProduct(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestCreateProductHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Product created", func(t *testing.T) {
		service.EXPECT().
			Create(gomock.Any(), dto.CreateProductRequestDTO{Name: "Monitor", Price: 249.99, Category: "Electronics", Stock: 30}).
			Return(&domain.Product{ID: 5, Name: "Monitor", Price: 249.99, Category: "Electronics", Stock: 30}, nil)

		r := httptest.NewRequest(http.MethodPost, "/api/products",
			bytes.NewBufferString(`{"name":"Monitor","price":249.99,"category":"Electronics","stock":30}`))
		w := httptest.NewRecorder()

		handler.CreateProduct(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Monitor")
	})

	t.Run("Invalid request body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewBufferString("{not json"))
		w := httptest.NewRecorder()

		handler.CreateProduct(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Internal server error", func(t *testing.T) {
		service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("store broken"))

		r := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewBufferString(`{"name":"Monitor"}`))
		w := httptest.NewRecorder()

		handler.CreateProduct(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
