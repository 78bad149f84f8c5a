// Package fill constructs sequences of an exact element count from a
// caller-supplied producer, with an all-or-nothing failure contract.
//
// 🚀 What is fill?
//
//	The standard way to build n elements in Go is make + a loop, which
//	forces every slot through the type's zero value first and, when a
//	step fails partway, leaves the caller holding a half-built slice of
//	live resources.  fill removes both problems: the producer alone
//	supplies every element, and a failed construction releases each
//	already-built element exactly once before the failure reaches the
//	caller.
//
// ✨ Key guarantees:
//   - the producer is invoked exactly once per index, in order 0..n-1
//   - on success the result has len == cap == n and is owned by the caller
//   - on a producer error, the error is returned unchanged (never wrapped)
//   - on a producer panic, the original panic value is re-raised unchanged
//   - either way, the constructed prefix is released exactly once per
//     element (WithRelease), and unfilled slots are never touched
//   - n == 0 succeeds immediately with zero producer calls
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/initwith/fill"
//
//	conns, err := fill.Slice(poolSize,
//		func() (*Conn, error) { return dial(addr) },
//		fill.WithRelease(func(c *Conn) { c.Close() }),
//	)
//	// err != nil ⇒ no connection leaked, conns == nil
//
// Beyond Slice and SliceIndexed, the package exports the staged Builder
// the loop runs on (for hand-driven construction) and derived
// constructors Repeat, Map, and FromSeq that inherit the same contract.
//
// Complexity: O(n) producer calls, O(n) memory, single allocation for
// the element storage.
//
// Concurrency: construction is strictly sequential and single-goroutine;
// producer calls never overlap, so closures over caller state behave
// deterministically.
package fill
