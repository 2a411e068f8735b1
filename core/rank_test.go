package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	place, ok := Placed(3.5).Place()
	assert.True(t, ok)
	assert.Equal(t, 3.5, place)

	place, ok = Unresolved.Place()
	assert.False(t, ok)
	assert.Zero(t, place)

	var zero Rank
	assert.Equal(t, Unresolved, zero, "the zero value is not unresolved")
	assert.NotEqual(t, Placed(0), Unresolved)
}

func TestRankCompare(t *testing.T) {
	assert.Negative(t, Placed(1).Compare(Placed(2)))
	assert.Positive(t, Placed(2.5).Compare(Placed(2)))
	assert.Zero(t, Placed(4).Compare(Placed(4)))

	assert.Negative(t, Placed(100).Compare(Unresolved), "resolved ranks must precede unresolved ones")
	assert.Positive(t, Unresolved.Compare(Placed(1)))
	assert.Zero(t, Unresolved.Compare(Unresolved))
}

func TestRankVector(t *testing.T) {
	ranks := RankVector{Placed(2), Unresolved, Placed(1.5), Unresolved}

	assert.Equal(t, []float64{2, 0, 1.5, 0}, ranks.Places())
	assert.Equal(t, []int{1, 3}, ranks.UnresolvedIndices())
	assert.False(t, ranks.Complete())

	assert.True(t, NewRankVector(1, 2).Complete())
	assert.Empty(t, NewRankVector(1, 2).UnresolvedIndices())
}

func TestRankJSON(t *testing.T) {
	ranks := RankVector{Placed(1), Placed(3.5), Unresolved}

	data, err := json.Marshal(ranks)
	require.NoError(t, err)
	assert.JSONEq(t, `[1, 3.5, null]`, string(data))

	var decoded RankVector
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, ranks, decoded)

	var r Rank
	assert.Error(t, json.Unmarshal([]byte(`"first"`), &r))
}

func TestJudgeMatrixClone(t *testing.T) {
	marks := JudgeMatrix{{1, 2}, {2, 1}}
	cloned := marks.clone()
	cloned[0][0] = 9

	assert.Equal(t, 1, marks[0][0], "the clone shares rows with the original")
	assert.Equal(t, 2, marks.NumJudges())
	assert.Zero(t, JudgeMatrix(nil).NumJudges())
	assert.Nil(t, JudgeMatrix(nil).clone())
}
