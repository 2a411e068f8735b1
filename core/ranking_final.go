package core

import (
	"cmp"

	"github.com/ezBadminton/goskating/internal"
)

// Ranks the competitors of an event from their dance ranks.
//
// Competitors are ordered by their sum of dance ranks. Competitors
// with equal sums are ordered by distributeFinalPlaces.
// A competitor with an unresolved or missing dance rank in any of the
// dances does not take part in the ranking and stays Unresolved.
func rankFinal(dances []RankVector, allDances AllDancesMatrix) RankVector {
	numCompetitors := 0
	for _, d := range dances {
		numCompetitors = max(numCompetitors, len(d))
	}

	ranks := make(RankVector, numCompetitors)
	if len(dances) == 0 {
		return ranks
	}

	scores, ranked := danceScores(dances, numCompetitors)

	type placeSum struct {
		index int
		sum   float64
	}
	sums := make([]placeSum, 0, len(ranked))
	for _, index := range ranked {
		sum := 0.0
		for _, place := range scores[index] {
			sum += place
		}
		sums = append(sums, placeSum{index: index, sum: sum})
	}

	equalSums := internal.SortedRuns(sums, func(a, b placeSum) int {
		return cmp.Compare(a.sum, b.sum)
	})

	currentPlace := 1
	for _, group := range equalSums {
		indices := make([]int, len(group))
		for i, s := range group {
			indices[i] = s.index
		}

		for _, o := range distributeFinalPlaces(scores, indices, currentPlace, allDances) {
			ranks[o.index] = Placed(float64(currentPlace) + o.offset)
		}
		currentPlace += len(group)
	}

	return ranks
}

// Transposes the dance ranks into one row of places per competitor.
// Also returns the indices of all competitors who have a resolved
// rank in every dance. The rows of the other competitors are nil.
func danceScores(dances []RankVector, numCompetitors int) ([][]float64, []int) {
	scores := make([][]float64, numCompetitors)
	ranked := make([]int, 0, numCompetitors)

	for index := range numCompetitors {
		row := make([]float64, 0, len(dances))
		for _, d := range dances {
			if index >= len(d) || !d[index].Resolved() {
				row = nil
				break
			}
			place, _ := d[index].Place()
			row = append(row, place)
		}

		if row != nil {
			scores[index] = row
			ranked = append(ranked, index)
		}
	}

	return scores, ranked
}
