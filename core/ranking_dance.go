package core

// A DanceRanking ranks the competitors of one dance
// from the judges' marks.
type DanceRanking struct {
	BaseRanking

	Name string

	numCompetitors int
	marks          JudgeMatrix
}

// Returns a copy of the marks or nil when
// they are not yet known
func (r *DanceRanking) Marks() JudgeMatrix {
	return r.marks.clone()
}

// Returns true when the marks of the dance are known
func (r *DanceRanking) Complete() bool {
	return r.marks != nil
}

func (r *DanceRanking) updateRanks() {
	if r.marks == nil {
		r.ranks = make(RankVector, r.numCompetitors)
		return
	}
	r.ranks = RankRound(r.marks)
}

func (r *DanceRanking) setMarks(marks JudgeMatrix) {
	r.marks = marks.clone()
}

// Creates a new DanceRanking without marks
// and adds it as a dependant of the entries.
func NewDanceRanking(name string, entries *EntriesRanking, rankingGraph *RankingGraph) *DanceRanking {
	ranking := &DanceRanking{
		BaseRanking:    NewBaseRanking(),
		Name:           name,
		numCompetitors: len(entries.Competitors),
	}
	ranking.updateRanks()

	rankingGraph.AddVertex(ranking)
	rankingGraph.AddEdge(entries, ranking)

	return ranking
}
