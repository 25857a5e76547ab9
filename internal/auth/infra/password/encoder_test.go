package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/klwxsrx/farm-expense-tracker/internal/auth/app/encoding"
	"github.com/klwxsrx/farm-expense-tracker/internal/auth/infra/password"
)

func TestEncoder(t *testing.T) {
	t.Parallel()
	encoder := password.NewEncoderWithCost(bcrypt.MinCost)

	hash, err := encoder.HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	assert.True(t, encoder.CompareHash(hash, "secret"))
	assert.False(t, encoder.CompareHash(hash, "Secret"))
	assert.False(t, encoder.CompareHash("not-a-hash", "secret"))
}

func TestEncoder_DefaultCost(t *testing.T) {
	t.Parallel()

	hash, err := password.NewEncoder().HashPassword("secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestEncoder_PasswordLimit(t *testing.T) {
	t.Parallel()
	encoder := password.NewEncoderWithCost(bcrypt.MinCost)

	_, err := encoder.HashPassword(strings.Repeat("a", 72))
	assert.NoError(t, err)

	_, err = encoder.HashPassword(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, encoding.ErrPasswordTooLong)

	_, err = encoder.HashPassword(strings.Repeat("é", 37))
	assert.ErrorIs(t, err, encoding.ErrPasswordTooLong)
}
