package lazy

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
)

// Loader builds a dependency on first use and hands out the same instance afterwards.
type Loader[T any] interface {
	MustLoad() T
	Load() (T, error)
	IfLoaded(func(T))
}

type loader[T any] struct {
	load   func() (T, error)
	loaded atomic.Bool
}

// New wraps provider so it runs at most once. A provider panic is turned into the load error.
func New[T any](provider func() (T, error)) Loader[T] {
	l := &loader[T]{}
	l.load = sync.OnceValues(func() (value T, err error) {
		defer func() {
			msg := recover()
			if msg == nil {
				return
			}

			var empty T
			value = empty
			if recovered, ok := msg.(error); ok {
				err = fmt.Errorf("load %v: %w", reflect.TypeFor[T](), recovered)
				return
			}
			err = fmt.Errorf("load %v: %v", reflect.TypeFor[T](), msg)
		}()

		value, err = provider()
		if err != nil {
			var empty T
			return empty, fmt.Errorf("load %v: %w", reflect.TypeFor[T](), err)
		}

		l.loaded.Store(true)
		return value, nil
	})

	return l
}

// Value wraps an already constructed dependency.
func Value[T any](value T) Loader[T] {
	return New(func() (T, error) { return value, nil })
}

func (l *loader[T]) MustLoad() T {
	value, err := l.load()
	if err != nil {
		panic(err)
	}

	return value
}

func (l *loader[T]) Load() (T, error) {
	return l.load()
}

// IfLoaded calls f only when the dependency has already been built, e.g. to close it on shutdown.
func (l *loader[T]) IfLoaded(f func(T)) {
	if !l.loaded.Load() {
		return
	}

	value, _ := l.load()
	f(value)
}
