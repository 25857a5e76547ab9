package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/klwxsrx/farm-expense-tracker/pkg/observability"
)

const RequestIDHeader = "X-Request-ID"

type RequestIDExtractor func(*http.Request) string

// WithObservability puts the request id taken from the first extractor returning a value into the request context.
// Handlers registered with WithAuth also get the authenticated username put there.
func WithObservability(observer observability.Observer, extractors ...RequestIDExtractor) ServerOption {
	mw := WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, extractor := range extractors {
				if requestID := extractor(r); requestID != "" {
					r = r.WithContext(observer.WithRequestID(r.Context(), requestID))
					w.Header().Set(RequestIDHeader, requestID)
					break
				}
			}

			handler.ServeHTTP(w, r)
		})
	})

	return func(s *server) {
		s.observer = observer
		mw(s)
	}
}

func RequestIDHeaderExtractor(header string) RequestIDExtractor {
	return func(r *http.Request) string {
		return r.Header.Get(header)
	}
}

func RequestIDRandomUUIDExtractor() RequestIDExtractor {
	return func(*http.Request) string {
		return uuid.New().String()
	}
}
