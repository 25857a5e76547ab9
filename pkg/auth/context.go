package auth

import (
	"context"
)

const identityContextKey contextKey = iota

type contextKey int

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

func GetIdentity(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(Identity)
	if !ok || identity.IsZero() {
		return Identity{}, false
	}

	return identity, true
}

func MustGetIdentity(ctx context.Context) (Identity, error) {
	identity, ok := GetIdentity(ctx)
	if !ok {
		return Identity{}, ErrUnauthenticated
	}

	return identity, nil
}
