//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "UserDirectory=UserDirectory"
package external

import (
	"context"
)

type UserDirectory interface {
	UserExists(ctx context.Context, username string) (bool, error)
}
