package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testNode struct {
	id int
}

func (n *testNode) Id() int { return n.id }

func newTestNode() *testNode { return &testNode{id: NextNodeId()} }

func TestNextNodeIdIsUnique(t *testing.T) {
	a := NextNodeId()
	b := NextNodeId()
	assert.NotEqual(t, a, b)
	assert.Equal(t, a+1, b)
}

func TestBreadthSearchIter(t *testing.T) {
	g := NewDependencyGraph[*testNode]()
	root, mid1, mid2, leaf, other := newTestNode(), newTestNode(), newTestNode(), newTestNode(), newTestNode()
	for _, n := range []*testNode{root, mid1, mid2, leaf, other} {
		require.NoError(t, g.AddVertex(n))
	}
	require.NoError(t, g.AddEdge(root, mid1))
	require.NoError(t, g.AddEdge(root, mid2))
	require.NoError(t, g.AddEdge(mid1, leaf))
	require.NoError(t, g.AddEdge(mid2, leaf))

	depths := make(map[*testNode]int)
	order := make([]*testNode, 0)
	for n, depth := range g.BreadthSearchIter(root) {
		depths[n] = depth
		order = append(order, n)
	}

	assert.Len(t, order, 4, "the unconnected node or a duplicate was visited")
	assert.Equal(t, root, order[0])
	assert.Equal(t, leaf, order[3])
	assert.Equal(t, 0, depths[root])
	assert.Equal(t, 1, depths[mid1])
	assert.Equal(t, 1, depths[mid2])
	assert.Equal(t, 2, depths[leaf], "a node reached by two edges got a visit count as depth")

	visited := 0
	for n := range g.BreadthSearchIter(mid1) {
		visited += 1
		assert.NotEqual(t, root, n)
	}
	assert.Equal(t, 2, visited)
}

func TestBreadthSearchIterShortestDepth(t *testing.T) {
	g := NewDependencyGraph[*testNode]()
	root, a, b, leaf := newTestNode(), newTestNode(), newTestNode(), newTestNode()
	for _, n := range []*testNode{root, a, b, leaf} {
		require.NoError(t, g.AddVertex(n))
	}
	require.NoError(t, g.AddEdge(root, a))
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(b, leaf))
	require.NoError(t, g.AddEdge(root, leaf))

	depths := make(map[*testNode]int)
	for n, depth := range g.BreadthSearchIter(root) {
		depths[n] = depth
	}
	assert.Equal(t, map[*testNode]int{root: 0, a: 1, leaf: 1, b: 2}, depths)

	depths = make(map[*testNode]int)
	for n, depth := range g.BreadthSearchIter(a) {
		depths[n] = depth
	}
	assert.Equal(t, map[*testNode]int{a: 0, b: 1, leaf: 2}, depths)
}

func TestBreadthSearchIterStopsEarly(t *testing.T) {
	g := NewDependencyGraph[*testNode]()
	a, b, c := newTestNode(), newTestNode(), newTestNode()
	for _, n := range []*testNode{a, b, c} {
		require.NoError(t, g.AddVertex(n))
	}
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(b, c))

	visited := 0
	for range g.BreadthSearchIter(a) {
		visited += 1
		break
	}
	assert.Equal(t, 1, visited)
}

func TestDependencyGraphRejectsCycles(t *testing.T) {
	g := NewDependencyGraph[*testNode]()
	a, b := newTestNode(), newTestNode()
	require.NoError(t, g.AddVertex(a))
	require.NoError(t, g.AddVertex(b))
	require.NoError(t, g.AddEdge(a, b))

	assert.Error(t, g.AddEdge(b, a))
}
