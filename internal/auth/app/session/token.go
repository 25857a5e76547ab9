//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "TokenCodec=TokenCodec"
package session

import (
	"context"
	"errors"
	"time"

	"github.com/klwxsrx/farm-expense-tracker/pkg/auth"
)

var ErrInvalidToken = errors.New("token is invalid or expired")

type (
	TokenCodec interface {
		Sign(ctx context.Context, identity auth.Identity, ttl time.Duration) (TokenData, error)
		Verify(ctx context.Context, token EncodedToken) (TokenData, error)
	}

	TokenData struct {
		EncodedToken EncodedToken
		Identity     auth.Identity
		IssuedAt     time.Time
		ExpiresAt    time.Time
	}

	EncodedToken string
)
