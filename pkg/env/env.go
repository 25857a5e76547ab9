package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	pkgstrings "github.com/klwxsrx/farm-expense-tracker/pkg/strings"
)

var ErrNotFound = errors.New("env not found")

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("parse environment: %w", err))
	}
	return val
}

// LoadDotEnv populates the environment from the given files, .env by default.
// Variables that are already set are left untouched, missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		err := godotenv.Load(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}

	return nil
}

func Parse[T pkgstrings.SupportedValueParsingTypes](key string) (T, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		var blank T
		return blank, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	v, err := pkgstrings.ParseTypedValue[T](str)
	if err != nil {
		return v, fmt.Errorf("env %s has invalid value: %w", key, err)
	}

	return v, nil
}

func ParseOptional[T pkgstrings.SupportedValueParsingTypes](key string) (*T, error) {
	v, err := Parse[T](key)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func ParseWithDefault[T pkgstrings.SupportedValueParsingTypes](key string, defaultValue T) (T, error) {
	v, err := ParseOptional[T](key)
	if err != nil {
		return defaultValue, err
	}
	if v == nil {
		return defaultValue, nil
	}

	return *v, nil
}

func ParseList[T pkgstrings.SupportedValueParsingTypes](key string, delimiter string) ([]T, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	strList := strings.Split(str, delimiter)
	result := make([]T, 0, len(strList))
	for _, item := range strList {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		v, err := pkgstrings.ParseTypedValue[T](item)
		if err != nil {
			return nil, fmt.Errorf("env %s has invalid list value: %w", key, err)
		}
		result = append(result, v)
	}

	return result, nil
}
