// SPDX-License-Identifier: MIT
// Package: initwith/fill
//
// errors.go — sentinel errors for the fill package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Producer failures are NEVER translated into these sentinels: an error
//     returned by a producer reaches the caller as the very same value, and
//     a producer panic is re-raised with the original panic value.

package fill

import "errors"

// ErrCountRange indicates a requested element count below zero.
// Usage: if errors.Is(err, ErrCountRange) { /* fix n */ }.
var ErrCountRange = errors.New("fill: element count must be non-negative")

// ErrNilProducer indicates a nil producer or transform callable.
// Checked fail-fast, before any slot is considered (even for n == 0).
// Usage: if errors.Is(err, ErrNilProducer) { /* supply a callable */ }.
var ErrNilProducer = errors.New("fill: producer must be non-nil")

// ErrIndexRange indicates an Append on a Builder whose every slot is
// already filled.
// Usage: if errors.Is(err, ErrIndexRange) { /* stop appending, Finish */ }.
var ErrIndexRange = errors.New("fill: all slots already filled")

// ErrIncomplete indicates a Finish on a Builder with unfilled slots.
// The builder remains usable; keep appending or Discard it.
// Usage: if errors.Is(err, ErrIncomplete) { /* append the rest */ }.
var ErrIncomplete = errors.New("fill: unfilled slots remain")

// ErrClosed indicates use of a Builder after Finish or Discard.
// Usage: if errors.Is(err, ErrClosed) { /* builder is spent, make a new one */ }.
var ErrClosed = errors.New("fill: builder is closed")

// ErrSeqShort indicates a FromSeq source exhausted before yielding the
// requested count. The constructed prefix has already been released.
// Usage: if errors.Is(err, ErrSeqShort) { /* source too short for n */ }.
var ErrSeqShort = errors.New("fill: sequence exhausted before count")
