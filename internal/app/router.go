package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Kingcxp/auth-service/internal/http/handler"
	"github.com/Kingcxp/auth-service/internal/http/middleware"
	"github.com/Kingcxp/auth-service/internal/http/response"
	"github.com/Kingcxp/auth-service/internal/service"
)

func NewRouter(authHandler *handler.AuthHandler, sessions *service.SessionService, limiter *middleware.RateLimiter) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		response.Empty(w, http.StatusOK)
	})

	r.Group(func(r chi.Router) {
		r.Use(limiter.Middleware())
		r.Use(middleware.SessionLoader(sessions))
		authHandler.Routes(r)
	})

	return r
}
