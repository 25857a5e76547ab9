package http

import (
	"net/http"
	"strings"
)

// WithCORS answers preflight requests of the handler with 204 and adds CORS headers to its responses.
// The request origin is echoed back, defaultOrigin is used when the request carries none.
func WithCORS(defaultOrigin string, allowedHeaders ...string) HandlerOption {
	if len(allowedHeaders) == 0 {
		allowedHeaders = []string{"Content-Type"}
	}

	return func(route *handlerRoute) {
		route.methods = append(route.methods, http.MethodOptions)
		allowedMethods := strings.Join(route.methods, ", ")

		WithHandlerMW(func(handler http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				origin := r.Header.Get("Origin")
				if origin == "" {
					origin = defaultOrigin
				}
				if origin != "" {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Add("Vary", "Origin")
				}
				w.Header().Set("Access-Control-Allow-Credentials", "true")

				if r.Method != http.MethodOptions {
					handler.ServeHTTP(w, r)
					return
				}

				w.Header().Set("Access-Control-Allow-Headers", strings.Join(allowedHeaders, ", "))
				w.Header().Set("Access-Control-Allow-Methods", allowedMethods)

				meta := getHandlerMetadata(r.Context())
				meta.RouteName = getRouteName(http.MethodOptions, r.URL.Path)
				meta.Code = http.StatusNoContent
				w.WriteHeader(http.StatusNoContent)
			})
		})(route)
	}
}
