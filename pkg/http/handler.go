package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
)

type HandlerFunc func(w ResponseWriter, r *http.Request) error

type Handler interface {
	Method() string
	Path() string
	Handle(w ResponseWriter, r *http.Request) error
}

type ResponseWriter interface {
	SetCookieHeader(value string) ResponseWriter
	SetStatusCode(httpCode int) ResponseWriter
	SetJSONBody(data any) ResponseWriter
}

type errorResponse struct {
	Error string `json:"error"`
}

type responseWriter struct {
	impl     http.ResponseWriter
	httpCode int
	body     any
	hasBody  bool
}

func (w *responseWriter) SetCookieHeader(value string) ResponseWriter {
	w.impl.Header().Add("Set-Cookie", value)
	return w
}

func (w *responseWriter) SetStatusCode(httpCode int) ResponseWriter {
	w.httpCode = httpCode
	return w
}

func (w *responseWriter) SetJSONBody(data any) ResponseWriter {
	w.body = data
	w.hasBody = true
	return w
}

func (w *responseWriter) write(meta *handlerMetadata, err error, mappings []errorMapping) {
	if err != nil {
		meta.Error = err
		meta.Code = getErrorStatusCode(err, w.httpCode, mappings)
		writeErrorResponse(w.impl, meta.Code)
		return
	}

	if !w.hasBody {
		meta.Code = w.httpCode
		if meta.Code == 0 {
			meta.Code = http.StatusNoContent
		}
		w.impl.WriteHeader(meta.Code)
		return
	}

	encoded, err := json.Marshal(w.body)
	if err != nil {
		meta.Error = fmt.Errorf("encode body: %w", err)
		meta.Code = http.StatusInternalServerError
		writeErrorResponse(w.impl, meta.Code)
		return
	}

	meta.Code = w.httpCode
	if meta.Code == 0 {
		meta.Code = http.StatusOK
	}
	w.impl.Header().Set("Content-Type", "application/json")
	w.impl.WriteHeader(meta.Code)
	_, _ = w.impl.Write(encoded)
}

func getErrorStatusCode(err error, explicitCode int, mappings []errorMapping) int {
	if errors.Is(err, ErrParsingError) {
		return http.StatusBadRequest
	}
	for _, mapping := range mappings {
		for _, expected := range mapping.errs {
			if errors.Is(err, expected) {
				return mapping.code
			}
		}
	}
	if explicitCode >= http.StatusBadRequest {
		return explicitCode
	}
	return http.StatusInternalServerError
}

func writeErrorResponse(w http.ResponseWriter, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: http.StatusText(code)})
}

func httpHandlerWrapper(routeName string, handler HandlerFunc, mappings []errorMapping) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		meta := getHandlerMetadata(r.Context())
		meta.RouteName = routeName

		defer func() {
			msg := recover()
			if msg == nil {
				return
			}

			meta.Code = http.StatusInternalServerError
			meta.Panic = &Panic{
				Message:    fmt.Sprintf("%v", msg),
				Stacktrace: debug.Stack(),
			}
			writeErrorResponse(w, meta.Code)
		}()

		respWriter := &responseWriter{impl: w}
		err := handler(respWriter, r)
		respWriter.write(meta, err, mappings)
	}
}
