package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/klwxsrx/farm-expense-tracker/internal/auth/app/session"
	"github.com/klwxsrx/farm-expense-tracker/pkg/auth"
	pkgtime "github.com/klwxsrx/farm-expense-tracker/pkg/time"
)

var errEmptySecret = errors.New("jwt secret is empty")

type claims struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// jwtCodec signs HS256 tokens and accepts any HMAC algorithm on verification.
type jwtCodec struct {
	secret []byte
	clock  pkgtime.Clock
}

func NewJWTCodec(secret string, clock pkgtime.Clock) (session.TokenCodec, error) {
	if secret == "" {
		return nil, errEmptySecret
	}

	return jwtCodec{secret: []byte(secret), clock: clock}, nil
}

func (c jwtCodec) Sign(ctx context.Context, identity auth.Identity, ttl time.Duration) (session.TokenData, error) {
	issuedAt := jwt.NewNumericDate(c.clock.Now(ctx))
	expiresAt := jwt.NewNumericDate(issuedAt.Add(ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		ID:       identity.SubjectID,
		Username: identity.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  issuedAt,
			ExpiresAt: expiresAt,
		},
	})

	encoded, err := token.SignedString(c.secret)
	if err != nil {
		return session.TokenData{}, fmt.Errorf("sign token: %w", err)
	}

	return session.TokenData{
		EncodedToken: session.EncodedToken(encoded),
		Identity:     identity,
		IssuedAt:     issuedAt.Time,
		ExpiresAt:    expiresAt.Time,
	}, nil
}

func (c jwtCodec) Verify(ctx context.Context, token session.EncodedToken) (session.TokenData, error) {
	var parsed claims
	_, err := jwt.ParseWithClaims(
		string(token),
		&parsed,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return c.secret, nil
		},
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return c.clock.Now(ctx) }),
	)
	if err != nil {
		return session.TokenData{}, fmt.Errorf("%w: %w", session.ErrInvalidToken, err)
	}
	if parsed.ID == "" || parsed.Username == "" {
		return session.TokenData{}, fmt.Errorf("%w: identity claims are missing", session.ErrInvalidToken)
	}

	result := session.TokenData{
		EncodedToken: token,
		Identity:     auth.Identity{SubjectID: parsed.ID, Username: parsed.Username},
		ExpiresAt:    parsed.ExpiresAt.Time,
	}
	if parsed.IssuedAt != nil {
		result.IssuedAt = parsed.IssuedAt.Time
	}

	return result, nil
}
