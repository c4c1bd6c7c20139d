package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rogerio-castellano/kitchen-inventory/internal/http/handlers"
	rl "github.com/rogerio-castellano/kitchen-inventory/internal/http/rate_limiter"
	"github.com/rs/zerolog"
)

// NewRouter mounts the product routes and the health check. limiter may be nil.
func NewRouter(srv *handlers.Server, logger zerolog.Logger, limiter *rl.Limiter) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	if limiter != nil {
		r.Use(limiter.Middleware)
	}

	r.Get("/health", srv.HealthHandler)

	r.Route(handlers.ProductsPath, func(r chi.Router) {
		r.Get("/", srv.GetProductsHandler)
		r.Post("/", srv.CreateProductHandler)
		r.Get("/{id}", srv.GetProductByIDHandler)
		r.Put("/{id}", srv.UpdateProductHandler)
		r.Delete("/{id}", srv.DeleteProductHandler)
	})

	return r
}
