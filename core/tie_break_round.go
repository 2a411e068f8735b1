package core

// Orders a group of competitors who reached the majority for the same
// place in one dance.
//
// The competitors are compared by how many judges placed them at or
// better than checkPlace and then by the sum of those marks. Competitors
// with equal stats are compared again at the next place until maxPlace is
// exceeded. Then they are still tied and share their block of places
// evenly.
//
// The returned offsets are zero based places relative to the best place
// that the group occupies.
func distributeRoundPlaces(rows [][]int, indices []int, checkPlace, maxPlace int) []placeOffset {
	if checkPlace > maxPlace {
		shared := float64(len(indices)-1) * 0.5
		offsets := make([]placeOffset, 0, len(indices))
		for _, index := range indices {
			offsets = append(offsets, placeOffset{index: index, offset: shared})
		}
		return offsets
	}

	runs := sortedPlacementRuns(rows, indices, checkPlace)

	offsets := make([]placeOffset, 0, len(indices))
	assignedPlace := 0
	for _, run := range runs {
		if len(run) == 1 {
			offsets = append(offsets, placeOffset{index: run[0].index, offset: float64(assignedPlace)})
		} else {
			subOffsets := distributeRoundPlaces(rows, runIndices(run), checkPlace+1, maxPlace)
			offsets = append(offsets, shiftOffsets(subOffsets, float64(assignedPlace))...)
		}
		assignedPlace += len(run)
	}

	return offsets
}
