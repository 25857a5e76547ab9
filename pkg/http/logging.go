package http

import (
	"net/http"

	"github.com/klwxsrx/farm-expense-tracker/pkg/log"
)

// WithLogging logs every handled request, skipping excludedPaths and the health check.
func WithLogging(logger log.Logger, excludedPaths ...string) ServerOption {
	excluded := make(map[string]struct{}, len(excludedPaths)+1)
	excluded[healthPath] = struct{}{}
	for _, path := range excludedPaths {
		excluded[path] = struct{}{}
	}

	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler.ServeHTTP(w, r)
			if _, ok := excluded[r.URL.Path]; ok {
				return
			}

			meta := getHandlerMetadata(r.Context())
			requestLogger := logger.With(log.Fields{
				"routeName":    meta.RouteName,
				"method":       r.Method,
				"uri":          r.RequestURI,
				"responseCode": meta.Code,
			})
			if meta.Username != "" {
				requestLogger = requestLogger.WithField("username", meta.Username)
			}

			switch {
			case meta.Panic != nil:
				requestLogger.
					WithField("panic", meta.Panic.Message).
					WithField("stacktrace", string(meta.Panic.Stacktrace)).
					Error(r.Context(), "request handled with panic")
			case meta.Code >= http.StatusInternalServerError:
				requestLogger.WithError(meta.Error).Error(r.Context(), "request handled with error")
			case meta.Error != nil:
				requestLogger.WithError(meta.Error).Debug(r.Context(), "request rejected")
				requestLogger.Info(r.Context(), "request handled")
			default:
				requestLogger.Info(r.Context(), "request handled")
			}
		})
	})
}
