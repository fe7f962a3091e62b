package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter собирает HTTP-маршруты сервиса.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.log))
	r.Use(middleware.Recoverer)

	r.Get("/ping", PingHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/detections", h.CreateDetection)
		r.Get("/detections", h.ListDetections)
		r.Get("/detections/{id}", h.GetDetection)
		r.Get("/metrics", h.Metrics)
	})

	return r
}
