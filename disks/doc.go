// Package disks solves the alternating disks puzzle with adjacent swaps.
//
// 🚀 What is the alternating disks puzzle?
//
//	A row of 2n disks alternates between two colors, starting with dark:
//
//	  D L D L D L D L
//
//	Using only swaps of two neighboring disks, move every light disk to
//	the left half and every dark disk to the right half:
//
//	  L L L L D D D D
//
//	and count how many swaps were performed along the way.
//
// ✨ Key features:
//   - Row: fixed-length, bounds-checked sequence of Dark/Light disks
//   - SortLawnmower: ⌈n/2⌉ round trips of left→right + right→left passes
//   - SortAlternate: n+1 passes alternating the starting offset 0 / 1
//   - Sort + ParseAlgorithm: pick an algorithm by name or enum value
//   - WithOnSwap / WithOnPass hooks for tracing without changing results
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvdisks/disks"
//
//	row := disks.NewRow(4)          // D L D L D L D L
//	res := disks.SortLawnmower(row) // row itself is left untouched
//	fmt.Println(res.After())        // L L L L D D D D
//	fmt.Println(res.SwapCount())    // 10
//
// Contract violations:
//
//	A non-positive light count, or an index outside the row, is a
//	programmer error. Such calls panic with an error wrapping
//	ErrContractViolation; they are never turned into a Result.
//	Recoverable input (an unknown algorithm name) yields ErrUnknownAlgorithm.
//
// Performance:
//
//   - Time:   O(n²) comparisons for both algorithms, no early exit
//   - Memory: O(n), one private copy of the row per sort
package disks
