// Package loader memoizes one-shot loads of named resources.
//
// A key is loaded at most once per process: callers asking for a loaded
// key get the stored value straight away, callers arriving while a load is
// in flight wait for that same load, and everyone else starts it. Failed
// loads are not remembered, so the next caller tries again.
package loader

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/singleflight"
)

type LoadFunc[T any] func(ctx context.Context, key string) (T, error)

type Loader[T any] struct {
	load   LoadFunc[T]
	group  singleflight.Group
	mutex  sync.RWMutex
	loaded map[string]T
}

func New[T any](load LoadFunc[T]) *Loader[T] {
	return &Loader[T]{
		load:   load,
		loaded: map[string]T{},
	}
}

func (l *Loader[T]) Loaded(key string) (T, bool) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	val, ok := l.loaded[key]
	return val, ok
}

// Load returns the value for key, loading it if nobody has yet.
// Cancelling ctx stops the wait, not the shared load
func (l *Loader[T]) Load(ctx context.Context, key string) (T, error) {
	if val, ok := l.Loaded(key); ok {
		return val, nil
	}

	resultChan := l.group.DoChan(key, func() (any, error) {
		if val, ok := l.Loaded(key); ok {
			return val, nil
		}

		val, err := l.load(context.WithoutCancel(ctx), key)
		if err != nil {
			return nil, errors.Wrapf(err, "Failed to load %s", key)
		}

		l.mutex.Lock()
		l.loaded[key] = val
		l.mutex.Unlock()

		return val, nil
	})

	select {
	case <-ctx.Done():
		var zero T
		return zero, errors.Wrapf(ctx.Err(), "Stopped waiting for %s", key)

	case result := <-resultChan:
		if result.Err != nil {
			var zero T
			return zero, result.Err
		}

		return result.Val.(T), nil
	}
}
