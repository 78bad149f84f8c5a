// Package initwith turns "call this function once per slot" into safe,
// exact-length Go sequences — no zero-value placeholders, no leaked
// half-built state when a producer fails midway.
//
// 🚀 What is initwith?
//
//	A small, generic library for constructing a sequence of exactly n
//	elements from a caller-supplied producer:
//		• Slice / SliceIndexed: one producer call per slot, in index order
//		• Builder: hand-driven staged construction with the same guarantees
//		• Repeat / Map / FromSeq: derived constructors over the same loop
//
// ✨ Why choose initwith?
//
//   - All-or-nothing results – callers never observe a partially built sequence
//   - Failure-safe – on an error or panic mid-construction, every
//     already-built element is released exactly once (WithRelease hook)
//   - Pure Go – generics only, no cgo, no hidden deps
//   - Exact calls – the producer runs once per slot, never more
//
// Everything lives in one subpackage:
//
//	fill/ — the fixed-count initializer, its Builder, and derived constructors
//
// Quick example:
//
//	squares, err := fill.SliceIndexed(5, func(i int) (int, error) {
//		return i * i, nil
//	})
//	// squares == []int{0, 1, 4, 9, 16}
//
// Dive into fill's package documentation for the construction-order and
// failure-safety contracts in full.
//
//	go get github.com/katalvlaran/initwith/fill
package initwith
