package http

import (
	"net/http"

	pkghttp "github.com/klwxsrx/farm-expense-tracker/pkg/http"
)

// LogoutHandler only expires the cookie on the client, the token itself stays valid until its expiry.
type LogoutHandler struct {
	cookies SessionCookies
}

func NewLogoutHandler(cookies SessionCookies) LogoutHandler {
	return LogoutHandler{cookies: cookies}
}

func (h LogoutHandler) Method() string {
	return http.MethodPost
}

func (h LogoutHandler) Path() string {
	return "/logout"
}

func (h LogoutHandler) Handle(w pkghttp.ResponseWriter, _ *http.Request) error {
	w.SetCookieHeader(h.cookies.BuildExpiredCookie())
	w.SetJSONBody(successOut{Success: true})
	return nil
}
