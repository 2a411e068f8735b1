package core

import "slices"

// The Result of one competitor in an event
type Result struct {
	Competitor Competitor

	// The final rank
	Rank Rank

	// The rank in each dance
	DanceRanks []Rank

	// The sum of DanceRanks or nil when one of
	// them is unresolved
	PlaceSum *float64
}

// Returns the results of all competitors ordered by their
// final rank. Competitors with equal ranks keep their entry order
// and unresolved competitors come last.
func (e *Event) Results() []*Result {
	competitors := e.Entries.Competitors
	final := e.FinalRanking

	results := make([]*Result, 0, len(competitors))
	for i, c := range competitors {
		danceRanks := make([]Rank, 0, len(e.Dances))
		for _, d := range e.Dances {
			danceRanks = append(danceRanks, d.At(i))
		}

		result := &Result{
			Competitor: c,
			Rank:       final.At(i),
			DanceRanks: danceRanks,
		}
		if sum, ok := final.PlaceSum(i); ok {
			result.PlaceSum = &sum
		}

		results = append(results, result)
	}

	slices.SortStableFunc(results, func(a, b *Result) int {
		return a.Rank.Compare(b.Rank)
	})

	return results
}
