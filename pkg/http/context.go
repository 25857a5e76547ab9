package http

import (
	"context"
	"net/http"
)

type contextKey int

const handlerMetaContextKey contextKey = iota

type Panic struct {
	Message    string
	Stacktrace []byte
}

type handlerMetadata struct {
	RouteName string
	Code      int
	Username  string
	Panic     *Panic
	Error     error
}

func withHandlerMetadata(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), handlerMetaContextKey, &handlerMetadata{})
		handler.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getHandlerMetadata(ctx context.Context) *handlerMetadata {
	meta, ok := ctx.Value(handlerMetaContextKey).(*handlerMetadata)
	if ok {
		return meta
	}
	return &handlerMetadata{}
}
