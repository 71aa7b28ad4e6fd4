// Package disks defines colors, sentinel errors, results and hook options
// for the alternating disks algorithms.
package disks

import (
	"errors"
)

// Sentinel errors for disks operations.
//
// ErrContractViolation and everything wrapping it are PANIC values: they
// signal a programmer error and are never returned. Match a recovered
// value with errors.Is(r.(error), ErrContractViolation).
var (
	// ErrContractViolation is the root of every precondition failure.
	ErrContractViolation = errors.New("disks: contract violation")

	// ErrBadLightCount indicates NewRow was called with lightCount <= 0.
	ErrBadLightCount = errors.New("disks: light count must be > 0")

	// ErrIndexOutOfRange indicates Get or Swap touched a position outside the row.
	ErrIndexOutOfRange = errors.New("disks: index out of range")

	// ErrUnknownAlgorithm is returned (not panicked) for an unrecognized algorithm.
	ErrUnknownAlgorithm = errors.New("disks: unknown algorithm")
)

// Color is the color of a single disk.
//
// Light orders before Dark, so an adjacent pair (i, i+1) is out of order
// exactly when a Dark disk sits left of a Light one.
type Color uint8

const (
	// Light disks end up in the left (low-index) half.
	Light Color = iota

	// Dark disks end up in the right (high-index) half.
	Dark
)

// String returns the single-letter code of c: "L" or "D".
func (c Color) String() string {
	if c == Light {
		return "L"
	}

	return "D"
}

// Direction is the sweep direction of a single pass.
type Direction int

const (
	// LeftToRight scans pairs from low to high indices.
	LeftToRight Direction = iota

	// RightToLeft scans pairs from high to low indices.
	RightToLeft
)

// String returns a short human label for d.
func (d Direction) String() string {
	if d == RightToLeft {
		return "right-to-left"
	}

	return "left-to-right"
}

// Result is the outcome of a sorting algorithm: the final row and the
// number of adjacent swaps actually performed.
type Result struct {
	after     Row
	swapCount int
}

// After returns a copy of the final row.
func (r Result) After() Row {
	return r.after.Clone()
}

// SwapCount returns the number of swaps performed (always ≥ 0).
func (r Result) SwapCount() int {
	return r.swapCount
}

// Option configures a sort via functional arguments.
type Option func(*SortOptions)

// SortOptions holds the optional tracing hooks of a sort.
// Hooks observe progress only; they never change the Result.
type SortOptions struct {
	// OnSwap is called after every swap with the left index of the pair
	// and the running swap count.
	OnSwap func(index, swapCount int)

	// OnPass is called after every directional pass. pass counts from 0
	// across the whole run; row is a copy of the current state.
	OnPass func(pass int, dir Direction, row Row)
}

// DefaultOptions returns SortOptions with no-op hooks.
func DefaultOptions() SortOptions {
	return SortOptions{
		OnSwap: func(int, int) {},
		OnPass: nil,
	}
}

// WithOnSwap registers a callback to run after each swap.
func WithOnSwap(fn func(index, swapCount int)) Option {
	return func(o *SortOptions) {
		if fn != nil {
			o.OnSwap = fn
		}
	}
}

// WithOnPass registers a callback to run after each directional pass.
func WithOnPass(fn func(pass int, dir Direction, row Row)) Option {
	return func(o *SortOptions) {
		if fn != nil {
			o.OnPass = fn
		}
	}
}

// buildOptions applies opts over DefaultOptions.
func buildOptions(opts []Option) SortOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
