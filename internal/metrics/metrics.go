// Package metrics expone los contadores Prometheus del servicio.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector agrupa las métricas del API. Se registra una sola vez en el
// registry que se le pase (el default en producción, uno propio en tests).
type Collector struct {
	httpStatus      *prometheus.CounterVec
	requestDuration prometheus.Histogram
	recordsCreated  *prometheus.CounterVec
	timelineQueries prometheus.Counter
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "petcompanion_http_status_total",
			Help: "Respuestas HTTP por código de estado",
		}, []string{"status_code"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "petcompanion_request_duration_seconds",
			Help:    "Duración de requests HTTP en segundos",
			Buckets: prometheus.DefBuckets,
		}),
		recordsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "petcompanion_records_created_total",
			Help: "Registros creados por tipo (vaccination, treatment, visit, weight, activity, memory, event)",
		}, []string{"kind"}),
		timelineQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "petcompanion_timeline_queries_total",
			Help: "Consultas al timeline agregado",
		}),
	}

	reg.MustRegister(
		c.httpStatus,
		c.requestDuration,
		c.recordsCreated,
		c.timelineQueries,
	)

	return c
}

func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

func (c *Collector) RecordRequestDuration(d time.Duration) {
	c.requestDuration.Observe(d.Seconds())
}

func (c *Collector) RecordCreated(kind string) {
	c.recordsCreated.WithLabelValues(kind).Inc()
}

func (c *Collector) RecordTimelineQuery() {
	c.timelineQueries.Inc()
}

// Handler devuelve el endpoint de scrape de Prometheus.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
