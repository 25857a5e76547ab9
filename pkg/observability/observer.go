package observability

import (
	"context"

	"github.com/klwxsrx/farm-expense-tracker/pkg/log"
)

type (
	LogField string

	contextKey int
)

const (
	LogFieldRequestID LogField = "requestID"
	LogFieldUsername  LogField = "username"
)

const (
	requestIDContextKey contextKey = iota
	usernameContextKey
)

type (
	// Observer carries the request id and the authenticated username through a request context.
	Observer interface {
		RequestID(context.Context) (string, bool)
		WithRequestID(context.Context, string) context.Context
		Username(context.Context) (string, bool)
		WithUsername(context.Context, string) context.Context
	}

	ObserverOption func(*observer)
)

type observer struct {
	logger        log.Logger
	loggingFields map[LogField]struct{}
}

func New(opts ...ObserverOption) Observer {
	o := observer{}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o observer) RequestID(ctx context.Context) (string, bool) {
	return stringValue(ctx, requestIDContextKey)
}

func (o observer) WithRequestID(ctx context.Context, id string) context.Context {
	return o.withValue(ctx, requestIDContextKey, LogFieldRequestID, id)
}

func (o observer) Username(ctx context.Context) (string, bool) {
	return stringValue(ctx, usernameContextKey)
}

func (o observer) WithUsername(ctx context.Context, username string) context.Context {
	return o.withValue(ctx, usernameContextKey, LogFieldUsername, username)
}

// withValue stores value in ctx and adds it to the context logging fields when field is enabled.
func (o observer) withValue(ctx context.Context, key contextKey, field LogField, value string) context.Context {
	ctx = context.WithValue(ctx, key, value)
	if _, ok := o.loggingFields[field]; !ok || o.logger == nil {
		return ctx
	}

	return o.logger.WithContext(ctx, log.Fields{string(field): value})
}

func stringValue(ctx context.Context, key contextKey) (string, bool) {
	value, ok := ctx.Value(key).(string)
	if !ok || value == "" {
		return "", false
	}

	return value, true
}

func WithFieldsLogging(logger log.Logger, fields ...LogField) ObserverOption {
	return func(o *observer) {
		o.logger = logger

		o.loggingFields = make(map[LogField]struct{}, len(fields))
		for _, field := range fields {
			o.loggingFields[field] = struct{}{}
		}
	}
}
