package core

import "github.com/ezBadminton/goskating/internal"

// A RankingGraph contains all rankings of an event as its
// nodes. The directed edges between the nodes model the dependencies
// between the rankings.
//
// The entries ranking is the root. Every dance ranking depends on the
// entries and the event ranking depends on all dance rankings.
//
// The graph is acyclic and forms a topological hierarchy which determines
// the order in which rankings have to be updated in order to properly
// propagate a change.
type RankingGraph struct {
	internal.DependencyGraph[Ranking]
}

func NewRankingGraph(root Ranking) *RankingGraph {
	rankingGraph := &RankingGraph{DependencyGraph: internal.NewDependencyGraph[Ranking]()}
	rankingGraph.AddVertex(root)
	return rankingGraph
}
