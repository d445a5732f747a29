package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/antoniocesar16/addon-api-mkauth/docs" // swagger docs
)

// NewServer mounts the API router under the outer mux. Health and swagger are
// served by the mux itself, every other path goes through rt.
func NewServer(h *Handler, rt *Router, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Get("/health", h.HealthHandler)
	mux.Get("/swagger/*", httpSwagger.Handler())

	mux.Handle("/*", rt)
	mux.MethodNotAllowed(rt.ServeHTTP)

	return mux
}
