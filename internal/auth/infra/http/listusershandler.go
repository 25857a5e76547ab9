package http

import (
	"net/http"

	"github.com/klwxsrx/farm-expense-tracker/internal/auth/app/service"
	pkghttp "github.com/klwxsrx/farm-expense-tracker/pkg/http"
)

type ListUsersHandler struct {
	userService service.User
}

func NewListUsersHandler(userService service.User) ListUsersHandler {
	return ListUsersHandler{userService: userService}
}

func (h ListUsersHandler) Method() string {
	return http.MethodGet
}

func (h ListUsersHandler) Path() string {
	return "/users"
}

func (h ListUsersHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	usernames, err := h.userService.ListUsernames(r.Context())
	if err != nil {
		return err
	}

	w.SetJSONBody(usernames)
	return nil
}
