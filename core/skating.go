// Package core implements the skating system that ranks the
// competitors of a judged dance event.
//
// Each judge places every competitor of a dance. [RankRound] turns
// those marks into one rank per competitor by majority. [RankEvent]
// combines the ranks of all dances into the final result.
//
// Both functions never fail. Marks that do not allow a decision show
// up in the result as Unresolved ranks (no majority) or as ranks that
// several competitors share.
package core

// Ranks the competitors of a single dance from the judges' marks.
//
// The returned vector has one Rank per row of the matrix.
// Competitors who can not be separated share the mean of their places.
func RankRound(marks JudgeMatrix) RankVector {
	return rankRound(marks, 1)
}

// Ranks the competitors of an event from the ranks of all its dances.
//
// allDances is optional. It is only used when competitors are tied on
// their sum of places as well as on how their dance ranks are
// distributed. Then the marks of all dances are evaluated together
// (rule 11). When allDances is nil such ties stay unbroken and the tied
// competitors all get the best place of the tie.
func RankEvent(dances []RankVector, allDances AllDancesMatrix) RankVector {
	return rankFinal(dances, allDances)
}
