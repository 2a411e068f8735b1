package core

// Ranks the competitors of one dance from the judges' marks.
//
// The place columns from startingPlace to startingPlace+N-1 are scanned
// in order. At each place all competitors that are not yet ranked but
// have a majority of marks at or better than that place are given the
// next free places. When more than one competitor reaches the majority
// at once they are ordered by distributeRoundPlaces.
//
// The first place handed out is startingPlace. A competitor who never
// reaches a majority stays Unresolved.
func rankRound(rows [][]int, startingPlace int) RankVector {
	numCompetitors := len(rows)
	ranks := make(RankVector, numCompetitors)
	if numCompetitors == 0 {
		return ranks
	}

	majority := Majority(len(rows[0]))
	lastPlace := startingPlace + numCompetitors - 1

	currentPlace := startingPlace
	for place := startingPlace; place <= lastPlace; place++ {
		passedMajority := make([]int, 0, numCompetitors)
		for i, row := range rows {
			if ranks[i].Resolved() {
				continue
			}
			if CountPlacements(row, place).Count >= majority {
				passedMajority = append(passedMajority, i)
			}
		}

		if len(passedMajority) == 0 {
			continue
		}

		for _, o := range distributeRoundPlaces(rows, passedMajority, place, lastPlace) {
			ranks[o.index] = Placed(float64(currentPlace) + o.offset)
		}
		currentPlace += len(passedMajority)
	}

	return ranks
}
