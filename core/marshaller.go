package core

import (
	"encoding/json"
)

func marshalResult(result *Result) map[string]any {
	return map[string]any{
		"competitor": result.Competitor.Id(),
		"rank":       result.Rank,
		"danceRanks": result.DanceRanks,
		"placeSum":   result.PlaceSum,
	}
}

func marshalDance(dance *DanceRanking) map[string]any {
	var marks JudgeMatrix
	if dance.Complete() {
		marks = dance.marks
	}
	return map[string]any{
		"name":  dance.Name,
		"marks": marks,
		"ranks": dance.Ranks(),
	}
}

func marshalEvent(event *Event) map[string]any {
	competitors := make([]string, 0, len(event.Entries.Competitors))
	for _, c := range event.Entries.Competitors {
		competitors = append(competitors, c.Id())
	}

	dances := make([]map[string]any, 0, len(event.Dances))
	for _, d := range event.Dances {
		dances = append(dances, marshalDance(d))
	}

	results := make([]map[string]any, 0, len(competitors))
	for _, r := range event.Results() {
		results = append(results, marshalResult(r))
	}

	result := map[string]any{
		"competitors": competitors,
		"dances":      dances,
		"complete":    event.FinalRanking.Complete(),
		"results":     results,
	}

	return result
}

func (e *Event) MarshalJSON() ([]byte, error) {
	anymap := marshalEvent(e)
	return json.Marshal(anymap)
}
