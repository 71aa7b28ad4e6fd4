package disks

// SortLawnmower — bidirectional "lawnmower" sort.
//
// Description:
//
//	Sweeps the row back and forth like a lawnmower: every round trip is a
//	left→right pass pushing Dark disks right, then a right→left pass
//	pulling Light disks left.
//
// Algorithm Outline:
//  1. Copy before; let n = LightCount(), t = TotalCount().
//  2. Repeat ⌈n/2⌉ times:
//     a. for i = 0 .. t-2:  if (i, i+1) is out of order, swap and count.
//     b. for i = t-1 .. 1:  if (i-1, i) is out of order, swap and count.
//  3. Return the copy with the swap count.
//
// The round-trip count is fixed; passes run even after the row is sorted.
// before is expected to be IsInitialized() but is not re-validated.
//
// Complexity:
//
//	Time   = O(n²)
//	Memory = O(n)
func SortLawnmower(before Row, opts ...Option) Result {
	s := newSorter(before, opts)
	t := s.row.TotalCount()
	trips := (s.row.LightCount() + 1) / 2

	for trip := 0; trip < trips; trip++ {
		// Left to right: Dark disks drift to the end.
		for i := 0; i < t-1; i++ {
			s.swapIfOutOfOrder(i)
		}
		s.endPass(LeftToRight)

		// Right to left: Light disks drift to the front.
		for i := t - 1; i > 0; i-- {
			s.swapIfOutOfOrder(i - 1)
		}
		s.endPass(RightToLeft)
	}

	return s.result()
}
