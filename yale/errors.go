// SPDX-License-Identifier: MIT
// Package yale: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// yale package. Every fallible operation returns one of these, matchable
// with errors.Is (FromOldYale additionally wraps
// oldyale.ErrMalformedTriplet); no user-triggered condition panics.
// Programmer errors (PreconditionViolated) are still reported as errors,
// not panics: out-of-range indices passed to Ref, Get, Set or Row, and an
// insert position inside the header, both come back as
// ErrPreconditionViolated.

package yale

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExceeded is returned when an insertion would grow a
	// descriptor's buffers past max_capacity (rows*cols + 1, plus rows-cols
	// for a matrix with more rows than columns; see maxCapacity). The
	// descriptor is left unchanged.
	ErrCapacityExceeded = errors.New("yale: capacity exceeded")

	// ErrAllocationFailed is returned when the configured AllocGate
	// reports failure. The descriptor is left unchanged: no pointer swap
	// occurs until both replacement buffers are ready.
	ErrAllocationFailed = errors.New("yale: allocation failed")

	// ErrShapeUnsupported is returned at Create time when rank != 2, i.e.
	// rows <= 0 or cols <= 0. No descriptor is created.
	ErrShapeUnsupported = errors.New("yale: shape unsupported")

	// ErrPreconditionViolated is returned when insert is called with
	// pos < R+1, or another internal precondition is violated by a
	// caller. This is a programmer error.
	ErrPreconditionViolated = errors.New("yale: precondition violated")

	// ErrUnimplemented is the sentinel for general multi-cell slicing.
	// The package has no slicing surface, so no function returns it.
	ErrUnimplemented = errors.New("yale: unimplemented")

	// ErrDimensionMismatch is returned when two operands cannot be
	// combined because of incompatible shapes (Multiply, Merge).
	ErrDimensionMismatch = errors.New("yale: dimension mismatch")

	// ErrNilDescriptor is returned when a nil *Matrix is passed where a
	// live descriptor is required.
	ErrNilDescriptor = errors.New("yale: nil descriptor")
)

// wrapf adds call-site context to a sentinel without losing errors.Is
// matchability: it wraps with %w so errors.Is(err, ErrX) still succeeds.
func wrapf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
