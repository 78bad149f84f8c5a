// SPDX-License-Identifier: MIT
// Package: initwith/fill
//
// builder.go — the staging area every constructor in this package runs on.

package fill

// Builder is a staging area for constructing a fixed-count sequence one
// element at a time. It tracks a single boundary: slots below Len() hold
// committed elements, slots from Len() up to Cap() are unfilled and are
// never read or released.
//
// A Builder moves through exactly one of two terminal states:
//   - Finish — every slot filled; ownership of the storage transfers to
//     the caller and the builder closes without releasing anything.
//   - Discard — the committed prefix is released (exactly once per
//     element, reverse order) and the builder closes.
//
// After either, further use reports ErrClosed. A Builder is not safe for
// concurrent use.
type Builder[T any] struct {
	buf     []T // len(buf) = committed count, cap(buf) = slot count
	release func(T)
	closed  bool
}

// NewBuilder returns a Builder with n unfilled slots.
// Returns ErrCountRange if n is negative.
//
// The element storage is allocated once, here; Append never grows it.
func NewBuilder[T any](n int, opts ...Option[T]) (*Builder[T], error) {
	if n < 0 {
		return nil, ErrCountRange
	}
	cfg := defaultConfig[T]()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Builder[T]{buf: make([]T, 0, n), release: cfg.release}, nil
}

// Append commits v into the lowest unfilled slot, advancing the
// committed boundary by one.
// Returns ErrClosed after Finish/Discard, ErrIndexRange when all slots
// are already filled.
func (b *Builder[T]) Append(v T) error {
	if b.closed {
		return ErrClosed
	}
	if len(b.buf) == cap(b.buf) {
		return ErrIndexRange
	}
	b.buf = append(b.buf, v)

	return nil
}

// Len reports how many elements have been committed so far.
func (b *Builder[T]) Len() int { return len(b.buf) }

// Cap reports the total slot count the builder was created with.
func (b *Builder[T]) Cap() int { return cap(b.buf) }

// Finish hands the fully constructed sequence to the caller and closes
// the builder. The result has len == cap == Cap() and is owned by the
// caller; the release hook no longer applies to its elements.
// Returns ErrClosed after Finish/Discard, ErrIncomplete while unfilled
// slots remain (the builder stays open and usable in that case).
func (b *Builder[T]) Finish() ([]T, error) {
	if b.closed {
		return nil, ErrClosed
	}
	if len(b.buf) != cap(b.buf) {
		return nil, ErrIncomplete
	}
	out := b.buf
	b.buf = nil
	b.closed = true

	return out, nil
}

// Discard releases every committed element exactly once, in reverse
// construction order, and closes the builder. Unfilled slots are never
// touched. Calling Discard on a closed builder is a no-op, so elements
// handed out by Finish are never released here.
func (b *Builder[T]) Discard() {
	if b.closed {
		return
	}
	b.closed = true
	if b.release != nil {
		// teardown mirrors construction: last committed, first released
		for i := len(b.buf) - 1; i >= 0; i-- {
			b.release(b.buf[i])
		}
	}
	b.buf = nil
}
