package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command failures by operation.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lostlink_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// ReportsCreated counts report creations by report kind.
	ReportsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lostlink_reports_created_total",
		Help: "Total number of missing reports created by kind",
	}, []string{"kind"})

	// SightingsCreated counts sighting creations by report kind.
	SightingsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lostlink_sightings_created_total",
		Help: "Total number of sightings created by kind",
	}, []string{"kind"})
)

var (
	promOnce sync.Once
	promInst *fiberprometheus.FiberPrometheus
)

// InitMetrics creates the Prometheus middleware for the given service name.
// The instance is shared: the default registry rejects duplicate collectors,
// so repeated construction (tests build several servers) reuses the first.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promInst = fiberprometheus.New(serviceName)
	})
	return promInst
}

// MetricsMiddleware returns the Fiber handler recording per-request metrics.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
