package core

import (
	"slices"

	"github.com/ezBadminton/goskating/internal"
)

// A Ranking assigns a Rank to each competitor of an event
// according to an implementation specific metric.
type Ranking interface {
	// Returns a copy of the current ranks indexed by competitor
	Ranks() RankVector

	// Returns the rank of the ith competitor.
	// Returns Unresolved if i is out of bounds.
	At(i int) Rank

	// Updates the return value of the Ranks() method.
	// Called by the event whenever a result that influences the
	// ranking becomes known.
	updateRanks()

	internal.GraphNode
}

type BaseRanking struct {
	ranks RankVector
	id    int
}

func (r *BaseRanking) Ranks() RankVector {
	return slices.Clone(r.ranks)
}

func (r *BaseRanking) At(i int) Rank {
	if i >= len(r.ranks) || i < 0 {
		return Unresolved
	}
	return r.ranks[i]
}

func (r *BaseRanking) Id() int {
	return r.id
}

func NewBaseRanking() BaseRanking {
	id := internal.NextNodeId()
	return BaseRanking{id: id}
}
