package auth

import (
	"context"

	authapi "github.com/klwxsrx/farm-expense-tracker/internal/auth/api"
	"github.com/klwxsrx/farm-expense-tracker/internal/expense/app/external"
)

type userDirectory struct {
	userService authapi.UserService
}

func NewUserDirectory(userService authapi.UserService) external.UserDirectory {
	return userDirectory{userService: userService}
}

func (d userDirectory) UserExists(ctx context.Context, username string) (bool, error) {
	return d.userService.Exists(ctx, username)
}
