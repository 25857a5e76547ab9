package http

import (
	"net/http"

	"github.com/klwxsrx/farm-expense-tracker/pkg/auth"
)

type Authenticator func(*http.Request) (auth.Identity, error)

// WithAuth rejects requests the authenticator fails on with 401, otherwise the identity is put into the request context.
func WithAuth(authenticator Authenticator) HandlerOption {
	return func(route *handlerRoute) {
		observer := route.observer
		WithHandlerMW(func(handler http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				meta := getHandlerMetadata(r.Context())
				identity, err := authenticator(r)
				if err != nil {
					meta.Code = http.StatusUnauthorized
					meta.Error = err
					writeErrorResponse(w, http.StatusUnauthorized)
					return
				}

				meta.Username = identity.Username
				ctx := auth.WithIdentity(r.Context(), identity)
				if observer != nil {
					ctx = observer.WithUsername(ctx, identity.Username)
				}
				handler.ServeHTTP(w, r.WithContext(ctx))
			})
		})(route)
	}
}
