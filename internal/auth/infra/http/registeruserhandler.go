package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/klwxsrx/farm-expense-tracker/internal/auth/app/service"
	pkghttp "github.com/klwxsrx/farm-expense-tracker/pkg/http"
)

type RegisterUserHandler struct {
	userService service.User
}

func NewRegisterUserHandler(userService service.User) RegisterUserHandler {
	return RegisterUserHandler{userService: userService}
}

func (h RegisterUserHandler) Method() string {
	return http.MethodPost
}

func (h RegisterUserHandler) Path() string {
	return "/users"
}

func (h RegisterUserHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.ValidatedJSONBody[registerUserIn](), err)
	if err != nil {
		return err
	}

	user, err := h.userService.Register(r.Context(), service.UserCredentials{
		Username: in.Username,
		Password: in.Password,
	})
	if errors.Is(err, service.ErrInvalidUserCredentials) || errors.Is(err, service.ErrUserAlreadyExists) {
		w.SetStatusCode(http.StatusBadRequest)
		return err
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(registerUserOut{ID: user.ID.UUID, Username: user.Username})
	return nil
}

type (
	registerUserIn struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required,max=72"`
	}

	registerUserOut struct {
		ID       uuid.UUID `json:"id"`
		Username string    `json:"username"`
	}
)
