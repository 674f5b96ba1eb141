package app

import (
	"net/http"

	svcclients "github.com/aturgenev/minimart/internal/clients"
	"github.com/aturgenev/minimart/internal/config"
	"github.com/aturgenev/minimart/internal/dispatch"
	"github.com/aturgenev/minimart/internal/handlers"
	"github.com/aturgenev/minimart/internal/handlers/orders"
	orderrepo "github.com/aturgenev/minimart/internal/repo/order-repo"
	"github.com/aturgenev/minimart/internal/service/orderservice"
	"github.com/aturgenev/minimart/pkg/clients"
)

func NewOrder() *Application {
	return newApplication("order-service",
		func(cfg *config.Config) string { return cfg.OrderAddress },
		func(cfg *config.Config) (http.Handler, error) {
			httpClient := clients.NewHTTPClient()
			productClient := svcclients.NewProductClient(cfg.ProductServiceURL, httpClient)
			notificationClient := svcclients.NewNotificationClient(cfg.NotificationServiceURL, httpClient)
			dispatcher := dispatch.NewDispatcher(notificationClient)

			service := orderservice.New(orderrepo.New(), productClient, dispatcher)
			handler := orders.New(service)

			router := handlers.NewRouter("order-service")
			handler.RegisterRoutes(router)
			return router, nil
		})
}
