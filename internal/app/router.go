package app

import (
	"net/http"
	"time"

	"github.com/avc-dev/snipit/internal/config"
	"github.com/avc-dev/snipit/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(deps *dependencies, logger *zap.Logger, cfg *config.Config) *chi.Mux {
	h := deps.handler
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5, "application/json", "text/plain"))
	r.Use(middleware.Decompress(logger))

	authMiddleware := middleware.NewAuthMiddleware(deps.authService, logger)

	createLimit := func(next http.Handler) http.Handler { return next }
	if deps.limiter != nil {
		createLimit = middleware.RateLimit(deps.limiter, logger)
	}

	// Routes
	r.Get("/ping", h.Ping)
	r.Get("/{code}", h.Redirect)

	// Создание ссылок: анонимный владелец выпускается при необходимости
	r.With(authMiddleware.Authenticate, createLimit).Post("/", h.CreateLink)

	r.Route("/api", func(r chi.Router) {
		r.Use(chimw.Timeout(cfg.Store.Timeout + time.Second))

		r.With(authMiddleware.Authenticate, createLimit).Post("/links", h.CreateLinkJSON)
		r.Get("/links/{code}/qr", h.GetQRCode)
		r.Get("/analytics", h.GetTotals)

		// Только для владельца с действительным токеном
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireAuth)
			r.Get("/user/links", h.GetUserLinks)
			r.Get("/user/links/summary", h.GetUserSummary)
			r.Get("/links/{code}/clicks", h.GetLinkClicks)
		})
	})

	return r
}
