// Package metrics expone métricas Prometheus del carrito y del servidor HTTP.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/rocketshoes-cart/internal/application/cart"
)

var _ cart.OutcomeObserver = (*Metrics)(nil)

// Metrics colección de métricas con registro propio.
type Metrics struct {
	registry *prometheus.Registry

	// Operaciones del carrito por operación y resultado
	CartOperations *prometheus.CounterVec
	// Peticiones HTTP por método, ruta y status
	HTTPRequests *prometheus.CounterVec
	// Duración de peticiones HTTP
	HTTPRequestDuration *prometheus.HistogramVec
}

// New crea y registra las métricas. service se usa como subsystem.
func New(service string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		CartOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rocketshoes",
			Subsystem: service,
			Name:      "cart_operations_total",
			Help:      "Total cart operations by operation and outcome",
		}, []string{"op", "outcome"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rocketshoes",
			Subsystem: service,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "rocketshoes",
			Subsystem: service,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.CartOperations,
		m.HTTPRequests,
		m.HTTPRequestDuration,
	)
	return m
}

// Registry registro donde viven las métricas.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveOutcome cuenta una operación del carrito.
func (m *Metrics) ObserveOutcome(out cart.Outcome) {
	m.CartOperations.WithLabelValues(string(out.Op), out.Kind.String()).Inc()
}

// Middleware mide cada petición. La ruta es el patrón registrado (ej. /api/cart/items/:id).
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		m.HTTPRequests.WithLabelValues(c.Method(), route, strconv.Itoa(c.Response().StatusCode())).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler expone /metrics en formato Prometheus.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
