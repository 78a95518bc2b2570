package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-companion/internal/metrics"
)

// statusWriter captura el código de estado escrito por el handler.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// creationKinds mapea el último segmento fijo de la ruta a la etiqueta de la
// métrica de registros creados.
var creationKinds = map[string]string{
	"vaccinations": "vaccination",
	"treatments":   "treatment",
	"visits":       "visit",
	"weights":      "weight",
	"activities":   "activity",
	"memories":     "memory",
	"events":       "event",
	"pets":         "pet",
}

// Metrics registra código de estado y duración de cada request, creaciones
// exitosas por tipo de registro y consultas al timeline.
func Metrics(c *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(sw, r)

			c.RecordHTTPStatus(sw.status)
			c.RecordRequestDuration(time.Since(start))

			pattern := chi.RouteContext(r.Context()).RoutePattern()

			if r.Method == http.MethodPost && sw.status == http.StatusCreated {
				if kind, ok := creationKinds[lastFixedSegment(pattern)]; ok {
					c.RecordCreated(kind)
				}
			}
			if r.Method == http.MethodGet && strings.HasSuffix(pattern, "/timeline") {
				c.RecordTimelineQuery()
			}
		})
	}
}

func lastFixedSegment(pattern string) string {
	parts := strings.Split(strings.Trim(pattern, "/"), "/")
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}
