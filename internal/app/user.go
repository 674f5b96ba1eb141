package app

import (
	"net/http"

	"github.com/aturgenev/minimart/internal/config"
	"github.com/aturgenev/minimart/internal/handlers"
	"github.com/aturgenev/minimart/internal/handlers/users"
	userrepo "github.com/aturgenev/minimart/internal/repo/user-repo"
	"github.com/aturgenev/minimart/internal/service/userservice"
	"github.com/aturgenev/minimart/pkg/auth"
)

func NewUser() *Application {
	return newApplication("user-service",
		func(cfg *config.Config) string { return cfg.UserAddress },
		func(cfg *config.Config) (http.Handler, error) {
			jwtService := auth.NewJWTService(cfg.JWTSecret)
			service := userservice.New(userrepo.New(), &auth.HashService{}, jwtService)
			handler := users.New(service)

			router := handlers.NewRouter("user-service")
			handler.RegisterRoutes(router, auth.AuthMiddleware(jwtService))
			return router, nil
		})
}
