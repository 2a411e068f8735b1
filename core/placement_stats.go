package core

import (
	"cmp"

	"github.com/ezBadminton/goskating/internal"
)

// A PlaceValue is either a judge's mark or an already
// computed (possibly shared) dance rank.
type PlaceValue interface {
	~int | ~float64
}

// The PlacementStats of a competitor at a threshold place
type PlacementStats struct {
	// How many places are at or better than the threshold
	Count int

	// The sum of those places
	PlaceSum float64
}

// Returns the minimum number of judges that need to agree on a
// place for a competitor to be given that place.
func Majority(judges int) int {
	return judges/2 + 1
}

// Counts the places in the row that are at or better than the
// threshold and sums them up.
func CountPlacements[P PlaceValue](row []P, threshold int) PlacementStats {
	stats := PlacementStats{}
	limit := float64(threshold)
	for _, place := range row {
		value := float64(place)
		if value <= limit {
			stats.Count += 1
			stats.PlaceSum += value
		}
	}
	return stats
}

// Orders stats by descending count and then ascending place sum
func compareStats(a, b PlacementStats) int {
	if c := cmp.Compare(b.Count, a.Count); c != 0 {
		return c
	}
	return cmp.Compare(a.PlaceSum, b.PlaceSum)
}

type competitorStats struct {
	index int
	stats PlacementStats
}

// Computes the PlacementStats of the competitors in indices at the
// threshold and returns them sorted into runs of equal stats.
// The first run has the best stats.
func sortedPlacementRuns[P PlaceValue](rows [][]P, indices []int, threshold int) [][]competitorStats {
	entries := make([]competitorStats, 0, len(indices))
	for _, index := range indices {
		entries = append(entries, competitorStats{
			index: index,
			stats: CountPlacements(rows[index], threshold),
		})
	}

	return internal.SortedRuns(entries, func(a, b competitorStats) int {
		return compareStats(a.stats, b.stats)
	})
}

func runIndices(run []competitorStats) []int {
	indices := make([]int, len(run))
	for i, e := range run {
		indices[i] = e.index
	}
	return indices
}

// A placeOffset is the place of a competitor relative
// to the first place that its tie group occupies
type placeOffset struct {
	index  int
	offset float64
}

func shiftOffsets(offsets []placeOffset, by float64) []placeOffset {
	for i := range offsets {
		offsets[i].offset += by
	}
	return offsets
}
