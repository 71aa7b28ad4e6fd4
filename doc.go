// Package lvdisks is a small playground for the alternating disks puzzle:
// a row of 2n disks alternating dark and light is sorted, using only swaps
// of neighboring disks, so that every light disk ends up on the left.
//
// 🚀 What is inside?
//
//	disks/     — Row (bounds-checked disk row), SortLawnmower, SortAlternate,
//	             algorithm selection and tracing hooks
//	cmd/disks/ — command-line driver (cobra flags, zap logging)
//
// Quick ASCII example (n = 4):
//
//	before: D L D L D L D L
//	after:  L L L L D D D D   (10 adjacent swaps)
//
// Both algorithms are pure: they sort a private copy of the row and return
// the final arrangement together with the number of swaps performed.
//
//	go get github.com/katalvlaran/lvdisks/disks
package lvdisks
