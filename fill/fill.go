package fill

// Slice — fixed-count construction from an index-oblivious producer.
//
// Description:
//
//	Slice builds a sequence of exactly n elements by calling next once
//	per slot, in strictly increasing slot order 0..n-1. Element i is the
//	i-th value next returned. Because calls never overlap and order is
//	fixed, next may close over mutable caller state (counters, seeds,
//	accumulators) and behave deterministically.
//
// Failure contract:
//
//	If next returns a non-nil error on its k-th call, construction stops
//	without committing a k-th element, the k-1 already-constructed
//	elements are released (see WithRelease), and that same error value is
//	returned unwrapped. If next panics instead, the prefix is released
//	the same way and the original panic value is re-raised. Either way
//	next was called exactly k times.
//
// Complexity:
//
//	Time = O(n) producer calls, Memory = one allocation of n elements.
//
// Errors:
//   - ErrCountRange  — n < 0.
//   - ErrNilProducer — next is nil.
//   - any non-nil error returned by next, untranslated.
func Slice[T any](n int, next func() (T, error), opts ...Option[T]) ([]T, error) {
	if next == nil {
		return nil, ErrNilProducer
	}

	return run(n, opts, func(int) (T, error) { return next() })
}

// SliceIndexed — fixed-count construction from an index-aware producer.
//
// Identical to Slice in construction order and failure contract; the
// only difference is that the i-th call receives i (0-indexed), so
// elements can be a pure function of position with no external state:
//
//	squares, err := fill.SliceIndexed(5, func(i int) (int, error) {
//		return i * i, nil
//	})
//
// Errors: as Slice.
func SliceIndexed[T any](n int, next func(i int) (T, error), opts ...Option[T]) ([]T, error) {
	if next == nil {
		return nil, ErrNilProducer
	}

	return run(n, opts, next)
}

// run is the single construction loop behind every public constructor.
// It stages elements on a Builder so the committed boundary, release
// bookkeeping, and ownership transfer live in exactly one place.
func run[T any](n int, opts []Option[T], step func(i int) (T, error)) ([]T, error) {
	b, err := NewBuilder[T](n, opts...)
	if err != nil {
		return nil, err
	}
	// A panic inside step must release the committed prefix before it
	// propagates; the original panic value is re-raised untouched.
	defer func() {
		if r := recover(); r != nil {
			b.Discard()
			panic(r)
		}
	}()

	var v T
	for i := 0; i < n; i++ {
		if v, err = step(i); err != nil {
			b.Discard()
			return nil, err
		}
		if err = b.Append(v); err != nil {
			b.Discard()
			return nil, err
		}
	}

	return b.Finish()
}
