package time

import (
	"context"
	"time"
)

const pinnedTimeContextKey contextKey = iota

type (
	Clock interface {
		Now(context.Context) time.Time
	}

	utcClock   struct{}
	contextKey int
)

// NewClock reports the current time in UTC, session tokens are issued and checked against it.
func NewClock() Clock {
	return utcClock{}
}

// Now returns the time pinned to ctx by WithTime, the wall clock otherwise.
func (utcClock) Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(pinnedTimeContextKey).(time.Time); ok {
		return t.UTC()
	}

	return time.Now().UTC()
}

// WithTime pins the time a Clock reports for ctx and everything derived from it.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, pinnedTimeContextKey, t)
}
