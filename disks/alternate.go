package disks

// SortAlternate — unidirectional "alternate" sort.
//
// Description:
//
//	Runs n+1 left→right passes. Even-numbered passes start at index 0 and
//	inspect every adjacent pair; odd-numbered passes start at index 1 and
//	stop one pair short of the end, never inspecting the final pair.
//
// Algorithm Outline:
//  1. Copy before; let n = LightCount(), t = TotalCount().
//  2. For k = 0 .. n:
//     even k: for i = 0 .. t-2, swap (i, i+1) if out of order.
//     odd k:  for i = 1 .. t-3, swap (i, i+1) if out of order.
//  3. Return the copy with the swap count.
//
// Starting from the canonical alternating row the result is sorted after
// the last pass. before is not re-validated and the result is not checked.
//
// Complexity:
//
//	Time   = O(n²)
//	Memory = O(n)
func SortAlternate(before Row, opts ...Option) Result {
	s := newSorter(before, opts)
	t := s.row.TotalCount()
	passes := s.row.LightCount() + 1

	for k := 0; k < passes; k++ {
		start, end := 0, t-1
		if k%2 == 1 {
			start, end = 1, t-2
		}
		for i := start; i < end; i++ {
			s.swapIfOutOfOrder(i)
		}
		s.endPass(LeftToRight)
	}

	return s.result()
}
