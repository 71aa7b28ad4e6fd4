package disks

import (
	"fmt"
	"strings"
)

// Row is a fixed-length row of 2·n disks, n of each color.
//
// A Row is only valid when built by NewRow (or copied from one via Clone).
// Assigning a Row to another variable shares its storage; use Clone when an
// independent copy is needed. All access is bounds-checked.
type Row struct {
	colors []Color
}

// NewRow builds the canonical alternating row for lightCount pairs:
// Dark at every even index, Light at every odd index.
//
// Panics with an error wrapping ErrContractViolation and ErrBadLightCount
// if lightCount <= 0.
// Complexity: O(n) time, O(n) memory.
func NewRow(lightCount int) Row {
	if lightCount <= 0 {
		violate(ErrBadLightCount, "NewRow(%d)", lightCount)
	}
	colors := make([]Color, 2*lightCount)
	for i := range colors {
		if i%2 == 0 {
			colors[i] = Dark
		} else {
			colors[i] = Light
		}
	}

	return Row{colors: colors}
}

// TotalCount returns the number of disks in the row.
func (r Row) TotalCount() int {
	return len(r.colors)
}

// LightCount returns the number of light disks (always TotalCount()/2).
func (r Row) LightCount() int {
	return r.TotalCount() / 2
}

// DarkCount returns the number of dark disks (always equal to LightCount()).
func (r Row) DarkCount() int {
	return r.LightCount()
}

// IsIndex reports whether i is a valid position: 0 ≤ i < TotalCount().
func (r Row) IsIndex(i int) bool {
	return i >= 0 && i < r.TotalCount()
}

// Get returns the color at position i.
// Panics with ErrIndexOutOfRange if !IsIndex(i).
func (r Row) Get(i int) Color {
	if !r.IsIndex(i) {
		violate(ErrIndexOutOfRange, "Get(%d) on row of %d", i, r.TotalCount())
	}

	return r.colors[i]
}

// Swap exchanges the disks at left and left+1.
// Panics with ErrIndexOutOfRange unless both positions are valid.
// Complexity: O(1).
func (r *Row) Swap(left int) {
	right := left + 1
	if !r.IsIndex(left) || !r.IsIndex(right) {
		violate(ErrIndexOutOfRange, "Swap(%d) on row of %d", left, r.TotalCount())
	}
	r.colors[left], r.colors[right] = r.colors[right], r.colors[left]
}

// Clone returns an independent copy of r.
func (r Row) Clone() Row {
	colors := make([]Color, len(r.colors))
	copy(colors, r.colors)

	return Row{colors: colors}
}

// Colors returns a copy of the colors from left to right.
func (r Row) Colors() []Color {
	return r.Clone().colors
}

// Count returns how many disks of color c the row holds.
func (r Row) Count(c Color) int {
	n := 0
	for _, got := range r.colors {
		if got == c {
			n++
		}
	}

	return n
}

// Equal reports whether r and other hold the same colors position by position.
func (r Row) Equal(other Row) bool {
	if len(r.colors) != len(other.colors) {
		return false
	}
	for i := range r.colors {
		if r.colors[i] != other.colors[i] {
			return false
		}
	}

	return true
}

// String renders the row as space-separated color codes, e.g. "D L D L".
func (r Row) String() string {
	var sb strings.Builder
	for i, c := range r.colors {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}

	return sb.String()
}

// IsInitialized reports whether r is in the canonical alternating
// arrangement: Dark at even indices, Light at odd indices.
func (r Row) IsInitialized() bool {
	for i := 0; i < r.TotalCount(); i++ {
		want := Light
		if i%2 == 0 {
			want = Dark
		}
		if r.Get(i) != want {
			return false
		}
	}

	return true
}

// IsSorted reports whether every position of the left half holds Light.
// Colors are conserved by swaps, so the right half is then all Dark.
func (r Row) IsSorted() bool {
	for i := 0; i < r.LightCount(); i++ {
		if r.Get(i) != Light {
			return false
		}
	}

	return true
}

// outOfOrder reports whether the pair (i, i+1) must be swapped.
func (r Row) outOfOrder(i int) bool {
	return r.Get(i) > r.Get(i+1)
}

// violate panics with an error wrapping ErrContractViolation and kind.
func violate(kind error, format string, args ...any) {
	panic(fmt.Errorf("%w: %w: %s", ErrContractViolation, kind, fmt.Sprintf(format, args...)))
}
