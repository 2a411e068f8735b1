package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMajority(t *testing.T) {
	assert.Equal(t, 3, Majority(5))
	assert.Equal(t, 4, Majority(7))
	assert.Equal(t, 4, Majority(6))
	assert.Equal(t, 1, Majority(1))
	assert.Equal(t, 2, Majority(2))

	for judges := 1; judges < 50; judges++ {
		majority := Majority(judges)
		assert.Greater(t, 2*majority, judges, "majority of %d judges is not more than half", judges)
		assert.LessOrEqual(t, 2*(majority-1), judges, "majority of %d judges is not minimal", judges)
	}
}

func TestCountPlacements(t *testing.T) {
	row := []int{4, 3, 5, 3, 2}

	assert.Equal(t, PlacementStats{Count: 0, PlaceSum: 0}, CountPlacements(row, 1))
	assert.Equal(t, PlacementStats{Count: 1, PlaceSum: 2}, CountPlacements(row, 2))
	assert.Equal(t, PlacementStats{Count: 3, PlaceSum: 8}, CountPlacements(row, 3))
	assert.Equal(t, PlacementStats{Count: 5, PlaceSum: 17}, CountPlacements(row, 5))
	assert.Equal(t, PlacementStats{Count: 5, PlaceSum: 17}, CountPlacements(row, 99), "count is not capped at the row length")

	assert.Equal(t, PlacementStats{}, CountPlacements([]int{}, 3))
}

func TestCountPlacementsOfSharedRanks(t *testing.T) {
	row := []float64{5, 5.5, 2, 5}

	assert.Equal(t, PlacementStats{Count: 1, PlaceSum: 2}, CountPlacements(row, 4))
	assert.Equal(t, PlacementStats{Count: 3, PlaceSum: 12}, CountPlacements(row, 5))
	assert.Equal(t, PlacementStats{Count: 4, PlaceSum: 17.5}, CountPlacements(row, 6))
}

func TestCompareStats(t *testing.T) {
	more := PlacementStats{Count: 3, PlaceSum: 9}
	fewer := PlacementStats{Count: 2, PlaceSum: 3}
	lowerSum := PlacementStats{Count: 3, PlaceSum: 7}

	assert.Negative(t, compareStats(more, fewer), "higher count did not sort first")
	assert.Positive(t, compareStats(fewer, more))
	assert.Negative(t, compareStats(lowerSum, more), "lower sum did not sort first on equal counts")
	assert.Zero(t, compareStats(more, more))
}

func TestSortedPlacementRuns(t *testing.T) {
	rows := [][]int{
		{1, 2, 3},
		{3, 1, 2},
		{2, 3, 1},
		{1, 1, 4},
	}

	runs := sortedPlacementRuns(rows, []int{0, 1, 2, 3}, 2)

	if assert.Len(t, runs, 2) {
		assert.Equal(t, []int{3}, runIndices(runs[0]))
		assert.Equal(t, []int{0, 1, 2}, runIndices(runs[1]))
	}

	runs = sortedPlacementRuns(rows, []int{2, 0}, 1)
	if assert.Len(t, runs, 1) {
		assert.Equal(t, []int{2, 0}, runIndices(runs[0]), "tied competitors lost their order")
	}
}
