package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/farm-expense-tracker/internal/auth/app/session"
	authinfrasession "github.com/klwxsrx/farm-expense-tracker/internal/auth/infra/session"
	"github.com/klwxsrx/farm-expense-tracker/pkg/auth"
	pkgtime "github.com/klwxsrx/farm-expense-tracker/pkg/time"
)

const testSecret = "test-secret"

var (
	testIdentity = auth.Identity{SubjectID: "5c2e1d7e-4f0e-4d3a-9a54-0d9b1bb1a001", Username: "alice"}
	testNow      = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
)

func newCodec(t *testing.T, secret string) session.TokenCodec {
	t.Helper()

	codec, err := authinfrasession.NewJWTCodec(secret, pkgtime.NewClock())
	require.NoError(t, err)
	return codec
}

func TestJWTCodec_SignVerify(t *testing.T) {
	t.Parallel()
	codec := newCodec(t, testSecret)
	ctx := pkgtime.WithTime(context.Background(), testNow)

	signed, err := codec.Sign(ctx, testIdentity, 120*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, testNow, signed.IssuedAt.UTC())
	assert.Equal(t, testNow.Add(120*time.Minute), signed.ExpiresAt.UTC())

	verified, err := codec.Verify(ctx, signed.EncodedToken)
	require.NoError(t, err)
	assert.Equal(t, testIdentity, verified.Identity)
	assert.Equal(t, signed.ExpiresAt.Unix(), verified.ExpiresAt.Unix())
}

func TestJWTCodec_ExpiryBoundary(t *testing.T) {
	t.Parallel()
	codec := newCodec(t, testSecret)

	signed, err := codec.Sign(pkgtime.WithTime(context.Background(), testNow), testIdentity, time.Hour)
	require.NoError(t, err)
	exp := testNow.Add(time.Hour)

	_, err = codec.Verify(pkgtime.WithTime(context.Background(), exp.Add(-time.Second)), signed.EncodedToken)
	assert.NoError(t, err)

	_, err = codec.Verify(pkgtime.WithTime(context.Background(), exp), signed.EncodedToken)
	assert.ErrorIs(t, err, session.ErrInvalidToken)

	_, err = codec.Verify(pkgtime.WithTime(context.Background(), exp.Add(time.Second)), signed.EncodedToken)
	assert.ErrorIs(t, err, session.ErrInvalidToken)
}

func TestJWTCodec_RejectsForeignTokens(t *testing.T) {
	t.Parallel()
	codec := newCodec(t, testSecret)
	ctx := pkgtime.WithTime(context.Background(), testNow)

	validClaims := jwt.MapClaims{
		"id":       testIdentity.SubjectID,
		"username": testIdentity.Username,
		"iat":      testNow.Unix(),
		"exp":      testNow.Add(time.Hour).Unix(),
	}
	sign := func(method jwt.SigningMethod, key any, claims jwt.MapClaims) session.EncodedToken {
		token, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return session.EncodedToken(token)
	}

	tests := []struct {
		name  string
		token session.EncodedToken
	}{
		{
			name:  "other_secret",
			token: sign(jwt.SigningMethodHS256, []byte("other-secret"), validClaims),
		},
		{
			name:  "none_algorithm",
			token: sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, validClaims),
		},
		{
			name:  "malformed",
			token: "not.a.token",
		},
		{
			name:  "garbage",
			token: "%%%",
		},
		{
			name:  "empty",
			token: "",
		},
		{
			name: "missing_exp",
			token: sign(jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
				"id":       testIdentity.SubjectID,
				"username": testIdentity.Username,
			}),
		},
		{
			name: "missing_identity",
			token: sign(jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
				"exp": testNow.Add(time.Hour).Unix(),
			}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.NotPanics(t, func() {
				_, err := codec.Verify(ctx, tt.token)
				assert.ErrorIs(t, err, session.ErrInvalidToken)
			})
		})
	}
}

func TestJWTCodec_AcceptsOtherHMACAlgorithms(t *testing.T) {
	t.Parallel()
	codec := newCodec(t, testSecret)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"id":       testIdentity.SubjectID,
		"username": testIdentity.Username,
		"exp":      testNow.Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	verified, err := codec.Verify(pkgtime.WithTime(context.Background(), testNow), session.EncodedToken(token))
	require.NoError(t, err)
	assert.Equal(t, testIdentity, verified.Identity)
}

func TestNewJWTCodec_RequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := authinfrasession.NewJWTCodec("", pkgtime.NewClock())
	assert.Error(t, err)
}
