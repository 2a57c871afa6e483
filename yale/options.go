// SPDX-License-Identifier: MIT
// Package yale: functional configuration for Create.
//
// Follows the functional-options + gatherOptions pattern used elsewhere
// in this style of Go codebase: options are validated eagerly (panic on
// a nonsensical value, since that is a programmer error caught at
// construction time, never on data the caller merely stored) and folded
// into an internal, unexported settings struct.

package yale

import (
	"io"
	"log"
)

// DefaultGrowthFactor is the multiplier applied to capacity when an
// insertion needs more room than is currently allocated.
const DefaultGrowthFactor = 1.5

// DefaultInitialCapacity is used when Create is called without
// WithInitialCapacity; it is clamped to [minCapacity, maxCapacity] the
// same way an explicit request would be.
const DefaultInitialCapacity = 0

// AllocGate is the embedder-provided allocation failure model: no
// particular failure model is assumed beyond "allocation may fail, and
// failure must be reported by a distinguishable error." Before growing a
// descriptor's buffers to newCapacity, insert consults the gate; a
// non-nil error short-circuits the resize before any allocation happens,
// so the descriptor is never left partially resized. A nil gate always
// succeeds.
type AllocGate func(newCapacity int) error

type settings struct {
	growthFactor    float64
	initialCapacity int
	trace           *log.Logger
	allocGate       AllocGate
}

func defaultSettings() settings {
	return settings{
		growthFactor:    DefaultGrowthFactor,
		initialCapacity: DefaultInitialCapacity,
		trace:           log.New(io.Discard, "", 0),
		allocGate:       nil,
	}
}

// Option configures a Matrix at Create time.
type Option func(*settings)

// WithGrowthFactor overrides GROWTH_CONSTANT for one descriptor. Panics
// if f <= 1.0, since a non-expanding growth factor would make every
// insertion past capacity fail permanently.
func WithGrowthFactor(f float64) Option {
	if f <= 1.0 {
		panic("yale: growth factor must be > 1.0")
	}

	return func(s *settings) { s.growthFactor = f }
}

// WithInitialCapacity requests an initial buffer capacity; Create clamps
// it to [minCapacity, maxCapacity].
func WithInitialCapacity(n int) Option {
	return func(s *settings) { s.initialCapacity = n }
}

// WithTraceLogger attaches a sink that Multiply's symbolic phase writes
// one line to per call, reporting rows processed and the resulting
// off-diagonal fill-in count. Silent (io.Discard) unless set explicitly.
func WithTraceLogger(l *log.Logger) Option {
	return func(s *settings) { s.trace = l }
}

// WithAllocGate installs a custom allocation failure model (see AllocGate).
func WithAllocGate(g AllocGate) Option {
	return func(s *settings) { s.allocGate = g }
}

func gatherOptions(opts []Option) settings {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// noopLogger returns a silent logger, used as the trace sink for
// descriptors built by FromOldYale, which has no source descriptor to
// inherit one from. The other internal constructors (structCopy,
// CastCopy, Transpose, Merge, Multiply) carry over their source
// descriptor's logger.
func noopLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
