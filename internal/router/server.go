package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/wellywell/giftbroker/internal/config"
	"github.com/wellywell/giftbroker/internal/handlers"
)

const (
	compressLevel = 5
	readTimeout   = 10 * time.Second
	writeTimeout  = 30 * time.Second
)

type Middleware interface {
	Handle(h http.Handler) http.Handler
}

type Router struct {
	server *http.Server
	router *chi.Mux
}

func NewRouter(conf *config.ServerConfig, h *handlers.HandlerSet, metrics http.Handler, middlewares ...Middleware) *Router {

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{conf.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Encoding"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	for _, m := range middlewares {
		r.Use(m.Handle)
	}
	r.Use(middleware.Compress(compressLevel))

	r.Get("/health", h.HandleHealth)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", h.HandleGetProducts)
		r.Get("/dashboard", h.HandleGetDashboard)
		r.Post("/orders", h.HandleCreateOrder)
		r.Get("/orders/{orderNo}", h.HandleGetOrderStatus)

		r.Post("/webhooks/order-status", h.HandleOrderStatusWebhook)
		r.Post("/webhooks/product-update", h.HandleProductUpdateWebhook)
	})

	return &Router{
		router: r,
		server: &http.Server{
			Addr:         conf.RunAddress,
			Handler:      r,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
	}
}

func (r *Router) Handler() http.Handler {
	return r.router
}

// ListenAndServe blocks until the server stops. A graceful Shutdown is not reported as an error.
func (r *Router) ListenAndServe() error {
	err := r.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (r *Router) Shutdown(ctx context.Context) error {
	return r.server.Shutdown(ctx)
}
