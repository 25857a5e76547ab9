package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/farm-expense-tracker/internal/auth/app/service"
	pkghttp "github.com/klwxsrx/farm-expense-tracker/pkg/http"
)

type LoginHandler struct {
	authService service.Authentication
	cookies     SessionCookies
}

func NewLoginHandler(authService service.Authentication, cookies SessionCookies) LoginHandler {
	return LoginHandler{authService: authService, cookies: cookies}
}

func (h LoginHandler) Method() string {
	return http.MethodPost
}

func (h LoginHandler) Path() string {
	return "/login"
}

func (h LoginHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.ValidatedJSONBody[loginIn](), err)
	if err != nil {
		return err
	}

	token, err := h.authService.Authenticate(r.Context(), in.Username, in.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		w.SetStatusCode(http.StatusUnauthorized)
		return err
	}
	if err != nil {
		return err
	}

	w.SetCookieHeader(h.cookies.BuildSessionCookie(string(token.EncodedToken)))
	w.SetJSONBody(successOut{Success: true})
	return nil
}

type (
	loginIn struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	successOut struct {
		Success bool `json:"success"`
	}
)
