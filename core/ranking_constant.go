package core

// The EntriesRanking ranks the competitors in the order
// in which they were entered into the event.
// It is the root of an event's RankingGraph.
type EntriesRanking struct {
	BaseRanking

	Competitors []Competitor
}

func (r *EntriesRanking) updateRanks() {
	// No implementation because the entries do not change
}

// Creates an *EntriesRanking from the given slice of competitors.
// The ith competitor gets rank i+1.
func NewEntriesRanking(competitors []Competitor) *EntriesRanking {
	ranks := make(RankVector, len(competitors))
	for i := range competitors {
		ranks[i] = Placed(float64(i + 1))
	}

	baseRanking := NewBaseRanking()
	baseRanking.ranks = ranks
	ranking := &EntriesRanking{BaseRanking: baseRanking, Competitors: competitors}

	return ranking
}

// A Competitor is a couple or a solo dancer
// who is taking part in an event.
type Competitor interface {
	// Returns an ID that is unique among the competitors of
	// an event
	Id() string
}
