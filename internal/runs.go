package internal

import "slices"

// Sorts a copy of items with the compare function and splits it into
// maximal runs of consecutive items that compare as equal.
//
// The sort is stable so items inside a run keep their input order.
// The input slice is not modified.
func SortedRuns[S ~[]E, E any](items S, compare func(a, b E) int) []S {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, compare)

	runs := make([]S, 0, len(sorted))
	for start := 0; start < len(sorted); {
		end := start + 1
		for end < len(sorted) && compare(sorted[start], sorted[end]) == 0 {
			end += 1
		}
		runs = append(runs, sorted[start:end:end])
		start = end
	}

	return runs
}
