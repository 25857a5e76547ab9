package api

import (
	"context"
)

type UserService interface {
	Exists(ctx context.Context, username string) (bool, error)
}
