package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_cockpit_http_requests_total",
			Help: "Total de requisições HTTP por método, caminho e status",
		},
		[]string{"method", "path", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sales_cockpit_http_request_duration_seconds",
			Help:    "Duração das requisições HTTP em segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// Rotas conhecidas da API. Qualquer outro caminho, inclusive os atendidos
// pelo servidor de arquivos estáticos, é agrupado sob um rótulo único para
// manter a cardinalidade das métricas limitada: caminhos arbitrários de
// clientes não podem criar séries novas.
var knownPaths = map[string]bool{
	"/healthcheck":  true,
	"/v1/dashboard": true,
	"/v1/deals":     true,
}

const otherPathLabel = "other"

// normalizePathLabel reduz um caminho de requisição ao rótulo usado nas métricas
func normalizePathLabel(path string) string {
	if knownPaths[path] {
		return path
	}
	return otherPathLabel
}

// MetricsMiddleware registra contagem e duração de cada requisição HTTP
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// O endpoint de métricas não mede a si mesmo
			if r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			mrw := &metricsResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			startTime := time.Now()

			next.ServeHTTP(mrw, r)

			pathLabel := normalizePathLabel(r.URL.Path)
			requestsTotal.WithLabelValues(r.Method, pathLabel, strconv.Itoa(mrw.statusCode)).Inc()
			requestDuration.WithLabelValues(r.Method, pathLabel).Observe(time.Since(startTime).Seconds())
		})
	}
}

// metricsResponseWriter captura o status code da resposta
type metricsResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (mrw *metricsResponseWriter) WriteHeader(code int) {
	mrw.statusCode = code
	mrw.ResponseWriter.WriteHeader(code)
}
