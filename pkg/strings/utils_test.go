package strings_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgstrings "github.com/klwxsrx/farm-expense-tracker/pkg/strings"
)

func TestParseTypedValue_ParsesSupportedTypes(t *testing.T) {
	b, err := pkgstrings.ParseTypedValue[bool]("true")
	require.NoError(t, err)
	assert.True(t, b)

	i, err := pkgstrings.ParseTypedValue[int]("42")
	require.NoError(t, err)
	assert.Equal(t, 42, i)

	d, err := pkgstrings.ParseTypedValue[time.Duration]("120m")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, d)

	id := uuid.New()
	parsedID, err := pkgstrings.ParseTypedValue[uuid.UUID](id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsedID)

	ts, err := pkgstrings.ParseTypedValue[time.Time]("2024-03-01T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), ts)

	unix, err := pkgstrings.ParseTypedValue[time.Time]("1700000000")
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), unix.Unix())
}

func TestParseTypedValue_ReturnsErrorOnInvalidValue(t *testing.T) {
	_, err := pkgstrings.ParseTypedValue[int]("forty")
	assert.Error(t, err)

	_, err = pkgstrings.ParseTypedValue[uuid.UUID]("not-an-id")
	assert.Error(t, err)

	_, err = pkgstrings.ParseTypedValue[time.Time]("-5")
	assert.Error(t, err)
}

func TestToScreamingSnakeCase(t *testing.T) {
	assert.Equal(t, "SQL_ADDRESS", pkgstrings.ToScreamingSnakeCase("sqlAddress"))
	assert.Equal(t, "get_expenses", pkgstrings.ToSnakeCase("GetExpenses"))
}
