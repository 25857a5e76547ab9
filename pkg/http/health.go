package http

import (
	"net/http"
)

const healthPath = "/healthz"

type healthStatus struct {
	Status string `json:"status"`
}

// WithHealthCheck serves GET /healthz, customHandler replaces the default OK response when set.
func WithHealthCheck(customHandler HandlerFunc) ServerOption {
	handler := func(w ResponseWriter, _ *http.Request) error {
		w.SetJSONBody(healthStatus{Status: "OK"})
		return nil
	}
	if customHandler != nil {
		handler = customHandler
	}

	return func(s *server) {
		routeName := getRouteName(http.MethodGet, healthPath)
		s.router.
			Path(healthPath).
			Name(routeName).
			Methods(http.MethodGet).
			Handler(httpHandlerWrapper(routeName, handler, nil))
	}
}
