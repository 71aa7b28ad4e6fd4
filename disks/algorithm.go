package disks

import (
	"fmt"
	"strings"
)

// Algorithm selects one of the sorting algorithms.
type Algorithm int

const (
	// Lawnmower runs ⌈n/2⌉ round trips of left→right and right→left passes.
	Lawnmower Algorithm = iota

	// Alternate runs n+1 left→right passes starting at offsets 0, 1, 0, 1, …
	Alternate
)

// String returns the lowercase name of a, as accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case Lawnmower:
		return "lawnmower"
	case Alternate:
		return "alternate"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Algorithms returns every known algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Lawnmower, Alternate}
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
// Returns ErrUnknownAlgorithm for any other name.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, a := range Algorithms() {
		if a.String() == key {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Sort runs alg on a private copy of before.
// Returns ErrUnknownAlgorithm if alg is not a declared Algorithm.
func Sort(alg Algorithm, before Row, opts ...Option) (Result, error) {
	switch alg {
	case Lawnmower:
		return SortLawnmower(before, opts...), nil
	case Alternate:
		return SortAlternate(before, opts...), nil
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
}

// sorter encapsulates the mutable state of one sorting run.
type sorter struct {
	row   Row
	swaps int
	pass  int
	opts  SortOptions
}

// newSorter clones before so the caller's row is never touched.
func newSorter(before Row, opts []Option) *sorter {
	return &sorter{
		row:  before.Clone(),
		opts: buildOptions(opts),
	}
}

// swapIfOutOfOrder swaps (i, i+1) when a Dark disk precedes a Light one.
func (s *sorter) swapIfOutOfOrder(i int) {
	if !s.row.outOfOrder(i) {
		return
	}
	s.row.Swap(i)
	s.swaps++
	s.opts.OnSwap(i, s.swaps)
}

// endPass reports a finished pass to the OnPass hook, if any.
func (s *sorter) endPass(dir Direction) {
	if s.opts.OnPass != nil {
		s.opts.OnPass(s.pass, dir, s.row.Clone())
	}
	s.pass++
}

// result freezes the run into a Result.
func (s *sorter) result() Result {
	return Result{after: s.row, swapCount: s.swaps}
}
