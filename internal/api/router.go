package api

import (
	"net/http"

	"relief-route-service/internal/api/handlers"
	"relief-route-service/internal/events"
	"relief-route-service/internal/metrics"
	"relief-route-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters).
func NewRouter(
	msgRepo ports.MessageRepository,
	routeRepo ports.RouteRepository,
	pub events.Publisher,
	defaults handlers.RouteDefaults,
) http.Handler {
	mux := http.NewServeMux()

	healthHandler := &handlers.HealthHandler{Repo: msgRepo}
	msgHandler := &handlers.MessageHandler{Repo: msgRepo}
	nodeHandler := &handlers.NodeHandler{Repo: msgRepo}
	routeHandler := &handlers.RouteHandler{
		Messages:  msgRepo,
		Routes:    routeRepo,
		Publisher: pub,
		Defaults:  defaults,
	}

	mux.HandleFunc("/", handlers.Root)
	mux.HandleFunc("/health", healthHandler.Check)
	mux.HandleFunc("/messages", msgHandler.List)
	mux.HandleFunc("/messages/urgent", msgHandler.ListUrgent)
	mux.HandleFunc("/nodes", nodeHandler.List)
	mux.HandleFunc("/routes", routeHandler.List)
	mux.HandleFunc("/routes/generate", routeHandler.Generate)
	mux.Handle("/metrics", metrics.Handler())

	metrics.RegisterDefault()

	return instrumentMiddleware(mux)
}
