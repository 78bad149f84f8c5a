// SPDX-License-Identifier: MIT
// Package: initwith/fill
//
// options.go — functional options shared by every constructor and by Builder.

package fill

// Option configures a construction run via functional arguments.
// Options apply identically to Slice, SliceIndexed, Map, FromSeq, and
// NewBuilder.
type Option[T any] func(*config[T])

// config holds resolved construction settings.
type config[T any] struct {
	// release, if non-nil, is called once per already-constructed element
	// when a construction unwinds.
	release func(T)
}

// defaultConfig returns the zero configuration: no release hook, meaning
// an unwinding construction simply abandons its prefix to the garbage
// collector.
func defaultConfig[T any]() config[T] {
	return config[T]{release: nil}
}

// WithRelease registers fn to release elements of the constructed prefix
// when a construction fails partway. During unwinding, fn receives each
// already-constructed element exactly once, in reverse construction
// order; slots never filled are never passed to fn. fn must not panic.
//
// Elements of a fully successful construction are never released — they
// belong to the caller.
func WithRelease[T any](fn func(T)) Option[T] {
	return func(c *config[T]) {
		if fn != nil {
			c.release = fn
		}
	}
}
