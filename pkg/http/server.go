package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/klwxsrx/farm-expense-tracker/pkg/observability"
)

const (
	DefaultServerAddress = ":8080"

	defaultReadTimeout       = 10 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
)

type (
	ServerOption func(*server)
	Middleware   func(http.Handler) http.Handler
)

type HandlerRegistry interface {
	Register(handler Handler, opts ...HandlerOption)
}

type Server interface {
	HandlerRegistry
	Listener(context.Context) error
	Handler() http.Handler
}

type errorMapping struct {
	code int
	errs []error
}

type server struct {
	srv           *http.Server
	router        *mux.Router
	middlewares   []Middleware
	errorMappings []errorMapping
	observer      observability.Observer
}

// NewServer creates a server with JSON 404 and 405 responses.
// Server middlewares wrap the whole router in the given order, the first one being the outermost.
func NewServer(opts ...ServerOption) Server {
	router := mux.NewRouter()
	router.NotFoundHandler = routerErrorHandler(routeNameNotFound, http.StatusNotFound)
	router.MethodNotAllowedHandler = routerErrorHandler(routeNameMethodNotAllowed, http.StatusMethodNotAllowed)

	s := &server{
		srv: &http.Server{
			Addr:              DefaultServerAddress,
			ReadTimeout:       defaultReadTimeout,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
		},
		router: router,
	}
	for _, opt := range opts {
		opt(s)
	}

	var handler http.Handler = router
	for i := len(s.middlewares) - 1; i >= 0; i-- {
		handler = s.middlewares[i](handler)
	}
	s.srv.Handler = withHandlerMetadata(handler)

	return s
}

func (s *server) Listener(ctx context.Context) error {
	shutdown := func() error {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultShutdownTimeout)
		defer cancel()

		err := s.srv.Shutdown(shutdownCtx)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}

	serverDoneChan := make(chan error, 1)
	go func() {
		err := s.srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		serverDoneChan <- err
	}()

	var err error
	select {
	case err = <-serverDoneChan:
	case <-ctx.Done():
		err = shutdown()
	}
	if err != nil {
		return fmt.Errorf("http listener %s: %w", s.srv.Addr, err)
	}

	return nil
}

func (s *server) Handler() http.Handler {
	return s.srv.Handler
}

// Register mounts handler on a subrouter matched by its path only,
// so an unmatched method on a known path is answered with 405 regardless of the registration order.
func (s *server) Register(handler Handler, opts ...HandlerOption) {
	route := &handlerRoute{
		router:   s.router.Path(handler.Path()).Subrouter(),
		methods:  []string{handler.Method()},
		observer: s.observer,
	}
	for _, opt := range opts {
		opt(route)
	}

	routeName := getRouteName(handler.Method(), handler.Path())
	route.router.NewRoute().
		Name(routeName).
		Methods(route.methods...).
		Handler(httpHandlerWrapper(routeName, handler.Handle, s.errorMappings))
}

func WithServerAddress(address string) ServerOption {
	return func(s *server) {
		if address != "" {
			s.srv.Addr = address
		}
	}
}

func WithMW(mw Middleware) ServerOption {
	return func(s *server) {
		s.middlewares = append(s.middlewares, mw)
	}
}

// WithErrorMapping responds with code to handler errors matching any of errs.
// Mappings are checked in the order they were added.
func WithErrorMapping(code int, errs ...error) ServerOption {
	return func(s *server) {
		s.errorMappings = append(s.errorMappings, errorMapping{code: code, errs: errs})
	}
}

func routerErrorHandler(routeName string, code int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		meta := getHandlerMetadata(r.Context())
		meta.RouteName = routeName
		meta.Code = code

		writeErrorResponse(w, code)
	})
}
