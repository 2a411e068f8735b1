package core

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

var (
	ErrTooFewEntries = errors.New("not enough entries for an event")
	ErrNoDances      = errors.New("an event needs at least one dance")
	ErrUnknownDance  = errors.New("unknown dance")
	ErrMarksShape    = errors.New("marks need one row per competitor and one column per judge")
)

// An Event is a set of dances that are all danced
// by the same competitors.
//
// Each dance is ranked from its marks as soon as they are set.
// The final EventRanking is available once all dances
// are ranked.
type Event struct {
	// The entries ranking which contains all competitors
	// in their entry order.
	Entries *EntriesRanking

	// One ranking per dance in the order of the
	// dance names passed to NewEvent
	Dances []*DanceRanking

	// The overall result of the event
	FinalRanking *EventRanking

	*RankingGraph

	logger *slog.Logger
}

type EventOption func(e *Event)

// Sets the logger of the event. A nil logger falls
// back to slog.Default().
func WithLogger(logger *slog.Logger) EventOption {
	return func(e *Event) {
		e.logger = logger
	}
}

// Creates an event with the competitors dancing the named dances.
// No marks are set initially.
func NewEvent(competitors []Competitor, danceNames []string, opts ...EventOption) (*Event, error) {
	if len(competitors) < 1 {
		return nil, ErrTooFewEntries
	}
	if len(danceNames) < 1 {
		return nil, ErrNoDances
	}

	entries := NewEntriesRanking(competitors)
	rankingGraph := NewRankingGraph(entries)

	dances := make([]*DanceRanking, 0, len(danceNames))
	for _, name := range danceNames {
		dances = append(dances, NewDanceRanking(name, entries, rankingGraph))
	}

	finalRanking := NewEventRanking(dances, len(competitors), rankingGraph)

	event := &Event{
		Entries:      entries,
		Dances:       dances,
		FinalRanking: finalRanking,
		RankingGraph: rankingGraph,
	}
	for _, opt := range opts {
		opt(event)
	}
	event.logger = resolveLogger(event.logger)

	return event, nil
}

// Sets the marks of the dance at index dance and updates
// all rankings that depend on it.
//
// The marks are copied. They need one row per competitor
// in entry order and the same number of judges in every row.
func (e *Event) SetMarks(dance int, marks JudgeMatrix) error {
	ranking, err := e.dance(dance)
	if err != nil {
		return err
	}

	if err := e.checkMarksShape(marks); err != nil {
		return fmt.Errorf("dance %q: %w", ranking.Name, err)
	}

	ranking.setMarks(marks)
	e.Update(ranking)

	return nil
}

// Removes the marks of the dance at index dance
// and updates all rankings that depend on it.
func (e *Event) ClearMarks(dance int) error {
	ranking, err := e.dance(dance)
	if err != nil {
		return err
	}

	ranking.marks = nil
	e.Update(ranking)

	return nil
}

// Updates all rankings going from the start Ranking
// in the dependency graph. A nil start updates
// every ranking of the event.
func (e *Event) Update(start Ranking) {
	if start == nil {
		start = e.Entries
	}

	for ranking := range e.BreadthSearchIter(start) {
		ranking.updateRanks()
		e.logUpdate(ranking)
	}
}

// Returns the dance ranking with the given name
// or nil if there is none.
func (e *Event) Dance(name string) *DanceRanking {
	i := slices.IndexFunc(e.Dances, func(d *DanceRanking) bool { return d.Name == name })
	if i < 0 {
		return nil
	}
	return e.Dances[i]
}

func (e *Event) dance(i int) (*DanceRanking, error) {
	if i < 0 || i >= len(e.Dances) {
		return nil, fmt.Errorf("%w: index %d of %d dances", ErrUnknownDance, i, len(e.Dances))
	}
	return e.Dances[i], nil
}

func (e *Event) checkMarksShape(marks JudgeMatrix) error {
	numCompetitors := len(e.Entries.Competitors)
	if len(marks) != numCompetitors {
		return fmt.Errorf("%w: got %d rows for %d competitors", ErrMarksShape, len(marks), numCompetitors)
	}

	numJudges := marks.NumJudges()
	if numJudges == 0 {
		return fmt.Errorf("%w: no judges", ErrMarksShape)
	}
	for i, row := range marks {
		if len(row) != numJudges {
			return fmt.Errorf("%w: row %d has %d marks, expected %d", ErrMarksShape, i, len(row), numJudges)
		}
	}

	return nil
}

func (e *Event) logUpdate(ranking Ranking) {
	switch r := ranking.(type) {
	case *DanceRanking:
		if !r.Complete() {
			e.logger.Debug("dance marks cleared", "dance", r.Name)
			return
		}
		e.logger.Debug("dance ranked", "dance", r.Name, "judges", r.marks.NumJudges())
		if unresolved := r.Ranks().UnresolvedIndices(); len(unresolved) > 0 {
			e.logger.Warn(
				"competitors did not reach a majority",
				"dance", r.Name,
				"competitors", e.competitorIds(unresolved),
			)
		}
	case *EventRanking:
		if !r.Complete() {
			return
		}
		e.logger.Debug("event ranked", "dances", len(r.Dances))
		if unresolved := r.Ranks().UnresolvedIndices(); len(unresolved) > 0 {
			e.logger.Warn("competitors without final rank", "competitors", e.competitorIds(unresolved))
		}
		if shared := sharedPlaces(r.Ranks()); len(shared) > 0 {
			e.logger.Info("final ranking has shared places", "places", shared)
		}
	}
}

func (e *Event) competitorIds(indices []int) []string {
	ids := make([]string, 0, len(indices))
	for _, i := range indices {
		ids = append(ids, e.Entries.Competitors[i].Id())
	}
	return ids
}

// Returns the resolved places that more than one competitor holds
func sharedPlaces(ranks RankVector) []float64 {
	counts := make(map[float64]int)
	for _, r := range ranks {
		if place, ok := r.Place(); ok {
			counts[place] += 1
		}
	}

	shared := make([]float64, 0)
	for place, count := range counts {
		if count > 1 {
			shared = append(shared, place)
		}
	}
	slices.Sort(shared)

	return shared
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
