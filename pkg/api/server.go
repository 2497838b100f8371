// Package api exposes a read-only HTTP inspection surface over one
// substances table: header stats, active substance names, health, and
// Prometheus metrics. The server never writes to the table; updates happen
// through the CLI, which owns the file exclusively while it runs.
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerConfig holds configuration for the inspection server
type ServerConfig struct {
	Bind         string
	Port         int
	DatabasePath string
}

// Router builds the chi router with all routes configured
func Router(server *Server) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.HandlerFor(server.metrics.registry, promhttp.HandlerOpts{}))

	r.Get("/healthz", server.metrics.InstrumentHandler("GET", "/healthz", server.handleHealth))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/table", server.metrics.InstrumentHandler("GET", "/v1/table", server.handleTable))
		r.Get("/substances", server.metrics.InstrumentHandler("GET", "/v1/substances", server.handleSubstances))
	})

	return r
}

// StartServer starts the HTTP server and blocks until it fails
func StartServer(config ServerConfig) error {
	server := NewServer(config, NewMetrics())

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	fmt.Printf("Starting fertbase inspection server on %s\n", addr)
	fmt.Printf("Metrics available at: http://%s/metrics\n", addr)

	return http.ListenAndServe(addr, Router(server))
}
