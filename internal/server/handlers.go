package server

import (
	"captive-portal/internal/handlers"
	"captive-portal/internal/middlewares"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func setupRouter(ctx *middlewares.AppContext) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.MetricsMiddleware)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(middlewares.AppContextMiddleware(ctx))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: ctx.Config.CORS.AllowedOrigins,
		AllowedMethods: ctx.Config.CORS.AllowedMethods,
		AllowedHeaders: ctx.Config.CORS.AllowedHeaders,
		MaxAge:         ctx.Config.CORS.MaxAgeSeconds,
	}))

	r.Post("/submit", ctx.HandlerFunc(handlers.POSTSubmitHandler))

	r.Route("/api", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Get("/health", ctx.HandlerFunc(handlers.HandlerHealth))
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Compress(5))

		static := http.FileServer(http.Dir(ctx.Config.Server.PublicDir))
		r.Get("/*", static.ServeHTTP)
		r.Head("/*", static.ServeHTTP)
	})

	return r
}

func setupDebugRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/debug", middleware.Profiler())

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
