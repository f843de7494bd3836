package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	Requests     *prometheus.CounterVec
	LatencyMS    *prometheus.HistogramVec
	OrdersPlaced prometheus.Counter
}

// New registers the storefront metrics on reg; nil means the default
// registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "storefront",
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})
	placed := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Name:      "orders_placed_total",
		Help:      "Total number of successfully placed orders.",
	})

	reg.MustRegister(requests, latency, placed)
	return &Metrics{Requests: requests, LatencyMS: latency, OrdersPlaced: placed}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
