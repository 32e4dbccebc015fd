package compiler

import (
	"cmp"
	"slices"
)

// maxAnyOfMembers bounds the anyOf arity; the union has 2^n-1 arms.
const maxAnyOfMembers = 12

// powerset returns every non-empty subset of items, largest first. Subsets
// of equal size keep the order of their bitmasks, descending, and members
// keep their order in items. Equal subsets are not deduplicated.
func powerset[T any](items []T) [][]T {
	n := len(items)
	total := 1 << n
	subsets := make([][]T, 0, total-1)
	for mask := total - 1; mask > 0; mask-- {
		set := make([]T, 0, n)
		for i := range n {
			if mask&(1<<i) != 0 {
				set = append(set, items[i])
			}
		}
		subsets = append(subsets, set)
	}
	slices.SortStableFunc(subsets, func(a, b []T) int {
		return cmp.Compare(len(b), len(a))
	})
	return subsets
}
