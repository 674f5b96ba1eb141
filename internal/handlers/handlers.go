package handlers

import (
	"net/http"
	"time"

	_ "github.com/aturgenev/minimart/docs"
	"github.com/aturgenev/minimart/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type HealthResponse struct {
	Service   string `json:"service"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewRouter builds the base router every service shares: common middleware,
// the health probe and the swagger mount.
func NewRouter(service string) chi.Router {
	r := chi.NewRouter()
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/health", Health(service))
	return r
}

func Health(service string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondWithJSON(w, http.StatusOK, HealthResponse{
			Service:   service,
			Status:    "healthy",
			Timestamp: time.Now().Format(time.RFC3339),
		})
	}
}
