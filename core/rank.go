package core

import (
	"bytes"
	"encoding/json"
	"slices"
)

// A JudgeMatrix holds the marks of one dance.
//
// Each row belongs to one competitor (the row index is the competitor
// index) and each column to one judge. A mark is the place (1 = best)
// that the judge gave the competitor.
type JudgeMatrix [][]int

func (m JudgeMatrix) NumJudges() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

func (m JudgeMatrix) clone() JudgeMatrix {
	if m == nil {
		return nil
	}
	cloned := make(JudgeMatrix, len(m))
	for i, row := range m {
		cloned[i] = slices.Clone(row)
	}
	return cloned
}

// An AllDancesMatrix has one JudgeMatrix per dance of an event.
// The competitor indices are aligned across all dances.
type AllDancesMatrix []JudgeMatrix

// Returns the marks of every competitor in indices over all dances
// as if they were given by one big panel of judges.
//
// The row at position i belongs to indices[i]. Returns false if there
// are no dances or a dance has no row for one of the competitors.
func (m AllDancesMatrix) combined(indices []int) ([][]int, bool) {
	if len(m) == 0 {
		return nil, false
	}

	rows := make([][]int, 0, len(indices))
	for _, index := range indices {
		row := make([]int, 0, len(m)*m[0].NumJudges())
		for _, dance := range m {
			if index < 0 || index >= len(dance) {
				return nil, false
			}
			row = append(row, dance[index]...)
		}
		rows = append(rows, row)
	}

	return rows, true
}

// A Rank is the result place of a competitor.
//
// It is either a place value or unresolved. Place values are whole
// numbers unless competitors share a block of places in which case
// they all get the mean of the block (e.g. 3.5 for a shared 3rd and 4th).
//
// The zero value is unresolved.
type Rank struct {
	place    float64
	resolved bool
}

// The rank of a competitor for whom the marks did not yield a place
var Unresolved = Rank{}

// Creates a resolved Rank at the given place
func Placed(place float64) Rank {
	return Rank{place: place, resolved: true}
}

// Returns the place and whether the rank is resolved.
// The place is 0 for unresolved ranks.
func (r Rank) Place() (float64, bool) {
	return r.place, r.resolved
}

func (r Rank) Resolved() bool {
	return r.resolved
}

// Compares two ranks by place. Unresolved ranks compare
// as worse than every resolved rank.
func (r Rank) Compare(other Rank) int {
	switch {
	case r.resolved && other.resolved:
		if r.place < other.place {
			return -1
		}
		if r.place > other.place {
			return 1
		}
		return 0
	case r.resolved:
		return -1
	case other.resolved:
		return 1
	default:
		return 0
	}
}

// Unresolved ranks are marshalled as null
func (r Rank) MarshalJSON() ([]byte, error) {
	if !r.resolved {
		return []byte("null"), nil
	}
	return json.Marshal(r.place)
}

func (r *Rank) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*r = Unresolved
		return nil
	}

	var place float64
	if err := json.Unmarshal(data, &place); err != nil {
		return err
	}
	*r = Placed(place)
	return nil
}

// A RankVector maps every competitor index to its Rank.
type RankVector []Rank

// Returns the place values of the ranks with 0 for
// unresolved ranks
func (v RankVector) Places() []float64 {
	places := make([]float64, len(v))
	for i, r := range v {
		places[i] = r.place
	}
	return places
}

// Returns true when every competitor has a resolved rank
func (v RankVector) Complete() bool {
	for _, r := range v {
		if !r.resolved {
			return false
		}
	}
	return true
}

// Returns the indices of the competitors without a resolved rank
func (v RankVector) UnresolvedIndices() []int {
	indices := make([]int, 0)
	for i, r := range v {
		if !r.resolved {
			indices = append(indices, i)
		}
	}
	return indices
}

// Creates a RankVector with all the places resolved
func NewRankVector(places ...float64) RankVector {
	ranks := make(RankVector, len(places))
	for i, p := range places {
		ranks[i] = Placed(p)
	}
	return ranks
}
