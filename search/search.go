package search

// Closest scans items for the candidate with the smallest distance and
// returns it with its index. dist may decline to score a candidate by
// returning ok=false; declined candidates are invisible to the scan.
//
// A distance of zero or less means the target is contained by the candidate,
// and the scan stops there: when several candidates contain the target the
// first in slice order wins. ok is false when items is empty or every
// candidate declined.
func Closest[T any](items []T, dist func(T) (float64, bool)) (best T, idx int, ok bool) {
	idx = -1
	min := 0.0
	for i, item := range items {
		d, scored := dist(item)
		if !scored {
			continue
		}
		if d <= 0 {
			return item, i, true
		}
		if idx == -1 || d < min {
			best = item
			idx = i
			min = d
		}
	}
	return best, idx, idx != -1
}
