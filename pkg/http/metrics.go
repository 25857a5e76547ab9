package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/klwxsrx/farm-expense-tracker/pkg/metric"
)

const metricsPath = "/metrics"

func WithMetrics(metrics metric.Metrics) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			handler.ServeHTTP(w, r)
			meta := getHandlerMetadata(r.Context())

			if meta.Panic != nil {
				metrics.With(metric.Labels{
					"route": meta.RouteName,
				}).Increment("http_api_request_panics_total")
			}

			metrics.With(metric.Labels{
				"route": meta.RouteName,
				"code":  strconv.Itoa(meta.Code),
			}).Duration("http_api_request_duration_seconds", time.Since(started))
		})
	})
}

// WithMetricsHandler exposes handler at GET /metrics.
func WithMetricsHandler(handler http.Handler) ServerOption {
	return func(s *server) {
		routeName := getRouteName(http.MethodGet, metricsPath)
		s.router.
			Path(metricsPath).
			Name(routeName).
			Methods(http.MethodGet).
			Handler(namedRoute(routeName, handler))
	}
}

func namedRoute(routeName string, handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		meta := getHandlerMetadata(r.Context())
		meta.RouteName = routeName
		meta.Code = http.StatusOK
		handler.ServeHTTP(w, r)
	})
}
