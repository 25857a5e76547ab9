package time_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	pkgtime "github.com/klwxsrx/farm-expense-tracker/pkg/time"
)

func TestClock(t *testing.T) {
	t.Parallel()
	clock := pkgtime.NewClock()

	now := clock.Now(context.Background())
	assert.WithinDuration(t, time.Now(), now, time.Second)
	assert.Equal(t, time.UTC, now.Location())
}

func TestClock_PinnedTime(t *testing.T) {
	t.Parallel()
	clock := pkgtime.NewClock()
	pinned := time.Date(2025, 5, 1, 15, 0, 0, 0, time.FixedZone("UTC+3", 3*60*60))

	ctx := pkgtime.WithTime(context.Background(), pinned)
	assert.Equal(t, time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC), clock.Now(ctx))

	child, cancel := context.WithCancel(ctx)
	defer cancel()
	assert.True(t, pinned.Equal(clock.Now(child)))
}
