package app

import (
	"net/http"

	"github.com/aturgenev/minimart/internal/config"
	"github.com/aturgenev/minimart/internal/handlers"
	"github.com/aturgenev/minimart/internal/handlers/notifications"
	notificationrepo "github.com/aturgenev/minimart/internal/repo/notification-repo"
	"github.com/aturgenev/minimart/internal/service/notificationservice"
)

func NewNotification() *Application {
	return newApplication("notification-service",
		func(cfg *config.Config) string { return cfg.NotificationAddress },
		func(cfg *config.Config) (http.Handler, error) {
			service := notificationservice.New(notificationrepo.New())
			handler := notifications.New(service)

			router := handlers.NewRouter("notification-service")
			handler.RegisterRoutes(router)
			return router, nil
		})
}
