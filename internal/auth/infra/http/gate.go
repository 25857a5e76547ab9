package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/klwxsrx/farm-expense-tracker/internal/auth/app/service"
	"github.com/klwxsrx/farm-expense-tracker/internal/auth/app/session"
	"github.com/klwxsrx/farm-expense-tracker/pkg/auth"
	pkghttp "github.com/klwxsrx/farm-expense-tracker/pkg/http"
)

// Gate authenticates requests to protected routes by the session cookie.
// Every failure ends up in the same 401 response, the reason is only logged.
type Gate struct {
	authService service.Authentication
}

func NewGate(authService service.Authentication) Gate {
	return Gate{authService: authService}
}

func (g Gate) Option() pkghttp.HandlerOption {
	return pkghttp.WithAuth(g.Authenticate)
}

func (g Gate) Authenticate(r *http.Request) (auth.Identity, error) {
	cookies := r.Header.Values("Cookie")
	if len(cookies) == 0 {
		return auth.Identity{}, fmt.Errorf("%w: no cookie header", auth.ErrUnauthenticated)
	}

	token, ok := ExtractToken(strings.Join(cookies, "; "), true)
	if !ok {
		return auth.Identity{}, fmt.Errorf("%w: no session token cookie", auth.ErrUnauthenticated)
	}

	return g.authService.VerifyAuthentication(r.Context(), session.EncodedToken(token))
}
