package http

import (
	"github.com/gorilla/mux"

	"github.com/klwxsrx/farm-expense-tracker/pkg/observability"
)

type (
	HandlerOption func(*handlerRoute)

	handlerRoute struct {
		router   *mux.Router
		methods  []string
		observer observability.Observer
	}
)

// WithHandlerMW applies mw to the registered handler only.
func WithHandlerMW(mw Middleware) HandlerOption {
	return func(route *handlerRoute) {
		route.router.Use(mux.MiddlewareFunc(mw))
	}
}
