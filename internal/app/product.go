package app

import (
	"net/http"

	"github.com/aturgenev/minimart/internal/config"
	"github.com/aturgenev/minimart/internal/handlers"
	"github.com/aturgenev/minimart/internal/handlers/products"
	productrepo "github.com/aturgenev/minimart/internal/repo/product-repo"
	"github.com/aturgenev/minimart/internal/service/productservice"
)

func NewProduct() *Application {
	return newApplication("product-service",
		func(cfg *config.Config) string { return cfg.ProductAddress },
		func(cfg *config.Config) (http.Handler, error) {
			repo := productrepo.New()
			repo.Seed()
			service := productservice.New(repo)
			handler := products.New(service)

			router := handlers.NewRouter("product-service")
			handler.RegisterRoutes(router)
			return router, nil
		})
}
