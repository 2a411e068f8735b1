// This file contains thin wrappers around the graph module
// for managing the dependencies between the rankings of an event.
package internal

import (
	"iter"

	"github.com/dominikbraun/graph"
)

var nodeId int = 0

func NextNodeId() int {
	id := nodeId
	nodeId += 1
	return id
}

type GraphNode interface {
	// A unique ID that is used as the node hash
	Id() int
}

func getNodeId[T GraphNode](node T) int {
	return node.Id()
}

type DependencyGraph[T GraphNode] struct {
	graph.Graph[int, T]
}

func (g *DependencyGraph[T]) AddEdge(source, target T) error {
	err := g.Graph.AddEdge(source.Id(), target.Id())
	return err
}

// Iterates over all nodes that are reachable from start in breadth
// first order. The second value is the length of the shortest path
// from start to the node, start itself has depth 0.
func (g *DependencyGraph[T]) BreadthSearchIter(start T) iter.Seq2[T, int] {
	iterator := func(yield func(v T, depth int) bool) {
		predecessors, err := g.PredecessorMap()
		if err != nil {
			return
		}

		depths := make(map[int]int)
		visitor := func(key int) bool {
			depths[key] = shortestDepth(key, start.Id(), predecessors, depths)
			v, _ := g.Vertex(key)
			return !yield(v, depths[key])
		}
		graph.BFS(g.Graph, start.Id(), visitor)
	}
	return iterator
}

// A node is first visited through its shallowest visited predecessor
func shortestDepth(key, start int, predecessors map[int]map[int]graph.Edge[int], depths map[int]int) int {
	if key == start {
		return 0
	}
	depth := -1
	for p := range predecessors[key] {
		if d, ok := depths[p]; ok && (depth < 0 || d+1 < depth) {
			depth = d + 1
		}
	}
	return depth
}

// Creates an empty directed and acyclic DependencyGraph
func NewDependencyGraph[T GraphNode]() DependencyGraph[T] {
	return DependencyGraph[T]{
		Graph: graph.New(getNodeId[T], graph.Directed(), graph.Acyclic(), graph.PreventCycles()),
	}
}
