package core

// Orders a group of competitors who have an equal sum of dance ranks.
//
// The dance ranks are treated like marks: The group is compared by how
// many dances each competitor placed at or better than the place in
// question (checkPlace plus the places that were already handed out
// inside the group) and then by the sum of those dance ranks.
// The best competitor gets the next place and the others are
// compared again at the following place.
//
// When the best competitors are tied they are separated by
// breakAllDancesTie.
//
// The returned offsets are relative to the best place of the group.
func distributeFinalPlaces(
	scores [][]float64,
	indices []int,
	checkPlace int,
	allDances AllDancesMatrix,
) []placeOffset {
	offsets := make([]placeOffset, 0, len(indices))
	assignedPlace := 0
	remaining := indices

	for len(remaining) > 0 {
		if len(remaining) == 1 {
			offsets = append(offsets, placeOffset{index: remaining[0], offset: float64(assignedPlace)})
			break
		}

		runs := sortedPlacementRuns(scores, remaining, checkPlace+assignedPlace)
		leading := runIndices(runs[0])

		if len(leading) == 1 {
			offsets = append(offsets, placeOffset{index: leading[0], offset: float64(assignedPlace)})
		} else {
			tieOffsets := breakAllDancesTie(scores, leading, checkPlace+assignedPlace, allDances)
			offsets = append(offsets, shiftOffsets(tieOffsets, float64(assignedPlace))...)
		}
		assignedPlace += len(leading)

		remaining = make([]int, 0, len(remaining)-len(leading))
		for _, run := range runs[1:] {
			remaining = append(remaining, runIndices(run)...)
		}
	}

	return offsets
}

// Breaks a final tie by ranking the tied competitors on the marks of
// all dances combined, starting at checkPlace.
//
// The competitors with the best resulting rank get the first place of
// the tie. The others go back to distributeFinalPlaces for the
// following places.
//
// Without marks for all dances the tie can not be broken
// and all tied competitors get the first place of the tie.
func breakAllDancesTie(
	scores [][]float64,
	tie []int,
	checkPlace int,
	allDances AllDancesMatrix,
) []placeOffset {
	first, rest := bestOnAllDances(tie, checkPlace, allDances)

	offsets := make([]placeOffset, 0, len(tie))
	for _, index := range first {
		offsets = append(offsets, placeOffset{index: index, offset: 0})
	}

	if len(rest) == 0 {
		return offsets
	}

	restOffsets := distributeFinalPlaces(scores, rest, checkPlace+len(first), allDances)
	offsets = append(offsets, shiftOffsets(restOffsets, float64(len(first)))...)

	return offsets
}

// Splits the tie into the competitors who rank best on the combined
// marks of all dances and the rest.
func bestOnAllDances(tie []int, startingPlace int, allDances AllDancesMatrix) (first, rest []int) {
	rows, ok := allDances.combined(tie)
	if !ok {
		return tie, nil
	}

	ranks := rankRound(rows, startingPlace)

	best := Unresolved
	for _, r := range ranks {
		if r.Compare(best) < 0 {
			best = r
		}
	}
	if !best.Resolved() {
		return tie, nil
	}

	first = make([]int, 0, len(tie))
	rest = make([]int, 0, len(tie))
	for i, r := range ranks {
		if r == best {
			first = append(first, tie[i])
		} else {
			rest = append(rest, tie[i])
		}
	}

	return first, rest
}
