package core

// The EventRanking is the overall result of an event.
//
// It combines the ranks of all dances once every dance
// has its marks. Until then all ranks are Unresolved.
type EventRanking struct {
	BaseRanking

	Dances []*DanceRanking

	numCompetitors int
}

func (r *EventRanking) updateRanks() {
	dances := make([]RankVector, 0, len(r.Dances))
	allDances := make(AllDancesMatrix, 0, len(r.Dances))
	for _, d := range r.Dances {
		if !d.Complete() {
			r.ranks = make(RankVector, r.numCompetitors)
			return
		}
		dances = append(dances, d.Ranks())
		allDances = append(allDances, d.marks)
	}

	r.ranks = RankEvent(dances, allDances)
}

// Returns true when all dances have their marks
func (r *EventRanking) Complete() bool {
	for _, d := range r.Dances {
		if !d.Complete() {
			return false
		}
	}
	return true
}

// Returns the sum of the ith competitor's dance ranks.
// The second value is false if one of the ranks is unresolved.
func (r *EventRanking) PlaceSum(i int) (float64, bool) {
	sum := 0.0
	for _, d := range r.Dances {
		place, ok := d.At(i).Place()
		if !ok {
			return 0, false
		}
		sum += place
	}
	return sum, true
}

// Creates a new EventRanking that depends on the given dances
func NewEventRanking(dances []*DanceRanking, numCompetitors int, rankingGraph *RankingGraph) *EventRanking {
	ranking := &EventRanking{
		BaseRanking:    NewBaseRanking(),
		Dances:         dances,
		numCompetitors: numCompetitors,
	}
	ranking.updateRanks()

	rankingGraph.AddVertex(ranking)
	for _, d := range dances {
		rankingGraph.AddEdge(d, ranking)
	}

	return ranking
}
