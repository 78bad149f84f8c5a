// SPDX-License-Identifier: MIT
// Package: initwith/fill
//
// derive.go — constructors derived from the core loop: Repeat, Map, FromSeq.
// Each funnels through run, so the construction-order and failure-safety
// contracts of Slice hold verbatim.

package fill

import "iter"

// Repeat builds a sequence of n copies of v.
// Returns ErrCountRange if n is negative; cannot fail otherwise.
//
// Note that all n slots share v as-is: for pointer or slice elements
// that must not alias, produce fresh values with Slice instead.
func Repeat[T any](n int, v T) ([]T, error) {
	return run(n, nil, func(int) (T, error) { return v, nil })
}

// Map builds a sequence of exactly len(src) elements, where element i is
// f(i, src[i]). src is read only, never modified.
//
// On a failed call k, the k-1 outputs already produced are released (see
// WithRelease) and f's error is returned unwrapped; src elements are
// untouched by the release hook, which only ever sees values f returned.
//
// Errors:
//   - ErrNilProducer — f is nil.
//   - any non-nil error returned by f, untranslated.
func Map[S, T any](src []S, f func(i int, v S) (T, error), opts ...Option[T]) ([]T, error) {
	if f == nil {
		return nil, ErrNilProducer
	}

	return run(len(src), opts, func(i int) (T, error) { return f(i, src[i]) })
}

// FromSeq builds a sequence of exactly n elements pulled from src.
// Pulling is lazy and bounded: exactly n values are requested on
// success, fewer if src runs dry first. A source yielding more than n
// values is fine — the excess is never pulled.
//
// If src yields fewer than n values, the constructed prefix is released
// (see WithRelease) and ErrSeqShort is returned.
//
// Errors:
//   - ErrCountRange  — n < 0.
//   - ErrNilProducer — src is nil.
//   - ErrSeqShort    — src exhausted before n values.
func FromSeq[T any](n int, src iter.Seq[T], opts ...Option[T]) ([]T, error) {
	if src == nil {
		return nil, ErrNilProducer
	}
	if n < 0 {
		return nil, ErrCountRange
	}
	next, stop := iter.Pull(src)
	defer stop()

	return run(n, opts, func(int) (T, error) {
		v, ok := next()
		if !ok {
			var zero T
			return zero, ErrSeqShort
		}
		return v, nil
	})
}
