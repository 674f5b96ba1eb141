package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	svcclients "github.com/aturgenev/minimart/internal/clients"
	"github.com/aturgenev/minimart/internal/dispatch"
	"github.com/aturgenev/minimart/internal/domain"
	"github.com/aturgenev/minimart/internal/handlers"
	"github.com/aturgenev/minimart/internal/handlers/notifications"
	"github.com/aturgenev/minimart/internal/handlers/orders"
	"github.com/aturgenev/minimart/internal/handlers/products"
	"github.com/aturgenev/minimart/internal/handlers/users"
	notificationrepo "github.com/aturgenev/minimart/internal/repo/notification-repo"
	orderrepo "github.com/aturgenev/minimart/internal/repo/order-repo"
	productrepo "github.com/aturgenev/minimart/internal/repo/product-repo"
	userrepo "github.com/aturgenev/minimart/internal/repo/user-repo"
	"github.com/aturgenev/minimart/internal/service/notificationservice"
	"github.com/aturgenev/minimart/internal/service/orderservice"
	"github.com/aturgenev/minimart/internal/service/productservice"
	"github.com/aturgenev/minimart/internal/service/userservice"
	"github.com/aturgenev/minimart/pkg/auth"
	"github.com/aturgenev/minimart/pkg/clients"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOrderFlow drives the whole demo over real HTTP: register and log in a
// user, create an order priced by the product service and confirm the
// notification service recorded the order_created event.
func TestOrderFlow(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	userRouter := handlers.NewRouter("user-service")
	users.New(userservice.New(userrepo.New(), &auth.HashService{}, jwtService)).
		RegisterRoutes(userRouter, auth.AuthMiddleware(jwtService))
	userSrv := httptest.NewServer(userRouter)
	defer userSrv.Close()

	productRepo := productrepo.New()
	productRepo.Seed()
	productRouter := handlers.NewRouter("product-service")
	products.New(productservice.New(productRepo)).RegisterRoutes(productRouter)
	productSrv := httptest.NewServer(productRouter)
	defer productSrv.Close()

	notificationRouter := handlers.NewRouter("notification-service")
	notifications.New(notificationservice.New(notificationrepo.New())).RegisterRoutes(notificationRouter)
	notificationSrv := httptest.NewServer(notificationRouter)
	defer notificationSrv.Close()

	httpClient := clients.NewHTTPClient()
	dispatcher := dispatch.NewDispatcher(svcclients.NewNotificationClient(notificationSrv.URL, httpClient))
	defer dispatcher.Close()
	orderRouter := handlers.NewRouter("order-service")
	orders.New(orderservice.New(
		orderrepo.New(),
		svcclients.NewProductClient(productSrv.URL, httpClient),
		dispatcher,
	)).RegisterRoutes(orderRouter)
	orderSrv := httptest.NewServer(orderRouter)
	defer orderSrv.Close()

	postJSON := func(url, body string) *http.Response {
		resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
		require.NoError(t, err)
		return resp
	}

	// Register and log in.
	resp := postJSON(userSrv.URL+"/api/users/register",
		`{"username":"alice","email":"alice@example.com","password":"password123"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var registered domain.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&registered))
	resp.Body.Close()

	resp = postJSON(userSrv.URL+"/api/users/login",
		`{"email":"alice@example.com","password":"password123"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))
	resp.Body.Close()
	require.NotEmpty(t, login.Token)

	// The token opens the profile route.
	req, err := http.NewRequest(http.MethodGet, userSrv.URL+"/api/users/profile", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Create an order: 2 laptops and a book from the seeded catalog.
	body := fmt.Sprintf(`{"userId":%d,"items":[{"productId":1,"quantity":2},{"productId":4,"quantity":1}]}`, registered.ID)
	resp = postJSON(orderSrv.URL+"/api/orders", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var order domain.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&order))
	resp.Body.Close()
	assert.Equal(t, 1, order.ID)
	assert.Equal(t, 2019.97, order.TotalAmount)
	assert.Equal(t, "pending", order.Status)

	// An unknown product rejects the order without storing anything.
	resp = postJSON(orderSrv.URL+"/api/orders",
		fmt.Sprintf(`{"userId":%d,"items":[{"productId":99,"quantity":1}]}`, registered.ID))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// The notification is delivered asynchronously; poll until it lands.
	deadline := time.Now().Add(2 * time.Second)
	var notificationList []domain.Notification
	for time.Now().Before(deadline) {
		listResp, err := http.Get(fmt.Sprintf("%s/api/notifications/user/%d", notificationSrv.URL, registered.ID))
		require.NoError(t, err)
		require.NoError(t, json.NewDecoder(listResp.Body).Decode(&notificationList))
		listResp.Body.Close()
		if len(notificationList) > 0 {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	require.Len(t, notificationList, 1)
	assert.Equal(t, "order_created", notificationList[0].Type)
	assert.Equal(t, "Order #1 has been created", notificationList[0].Message)
	assert.Equal(t, order.ID, notificationList[0].OrderID)
}
