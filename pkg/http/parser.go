package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/klwxsrx/farm-expense-tracker/pkg/strings"
)

type (
	DataExtractor[T any] func(dataProvider) (T, error)

	supportedParsingTypes interface {
		strings.SupportedValueParsingTypes
	}

	dataProvider interface {
		PathParameters() map[string]string
		Body() io.ReadCloser
	}

	requestDataProvider struct {
		*http.Request
	}
)

var ErrParsingError = errors.New("parsing error")

var validate = validator.New(validator.WithRequiredStructEnabled())

func ParseRequest[T any](r *http.Request, extractor DataExtractor[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}

	return extractor(requestDataProvider{r})
}

func PathParameter[T supportedParsingTypes](param string) DataExtractor[T] {
	return func(p dataProvider) (T, error) {
		paramValue, ok := p.PathParameters()[param]
		if !ok {
			var result T
			return result, fmt.Errorf("%w: path parameter %s not found", ErrParsingError, param)
		}

		return parseTypedValueImpl[T](paramValue)
	}
}

// ValidatedJSONBody decodes a JSON body rejecting unknown fields and checks it against the validate struct tags.
func ValidatedJSONBody[T any]() DataExtractor[T] {
	return func(p dataProvider) (T, error) {
		var result T
		decoder := json.NewDecoder(p.Body())
		decoder.DisallowUnknownFields()
		err := decoder.Decode(&result)
		if err != nil {
			return result, fmt.Errorf("%w: decode json body: %w", ErrParsingError, err)
		}

		err = validate.Struct(result)
		if err != nil {
			return result, fmt.Errorf("%w: validate json body: %w", ErrParsingError, err)
		}

		return result, nil
	}
}

func (p requestDataProvider) PathParameters() map[string]string {
	return mux.Vars(p.Request)
}

func (p requestDataProvider) Body() io.ReadCloser {
	return p.Request.Body
}

func parseTypedValueImpl[T supportedParsingTypes](value string) (T, error) {
	v, err := strings.ParseTypedValue[T](value)
	if err == nil {
		return v, nil
	}

	return v, fmt.Errorf("%w: %w", ErrParsingError, err)
}
