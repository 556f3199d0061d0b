package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry is the dedicated Prometheus registry for the API.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// RoutePlansGenerated counts stored route plans by strategy.
	RoutePlansGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "route_plans_generated_total", Help: "Route plans generated by mode."},
		[]string{"mode"},
	)
	// DemandPointsRouted tracks how many demand points each generation served.
	DemandPointsRouted = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "demand_points_routed", Help: "Demand points per route generation.", Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 200}},
	)
)

var regOnce sync.Once

// RegisterDefault registers all collectors on the registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(RoutePlansGenerated)
		Registry.MustRegister(DemandPointsRouted)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// Handler serves the registry in Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
