package pipeline

import (
	"sort"
	"strings"

	"github.com/edusight/dropout-api/internal/encoding"
)

// Normalize converts raw actions into canonical records: stable-sorted by
// timestamp, annotated with inter-action deltas in seconds, with labels
// resolved through the encoders. Unknown labels degrade to code 0 and
// malformed per-action data degrades to the documented fallbacks, so this
// never fails for a whole request.
func Normalize(actions []Action, enc *encoding.Set) []Record {
	sorted := make([]Action, len(actions))
	copy(sorted, actions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	records := make([]Record, len(sorted))
	for i, a := range sorted {
		var delta float64
		if i > 0 {
			delta = float64(a.Timestamp-sorted[i-1].Timestamp) / 1000.0
		}

		kind := KindBundle
		if strings.HasPrefix(a.ItemID, questionPrefix) {
			kind = KindQuestion
		}

		records[i] = Record{
			ItemID:   a.ItemID,
			DeltaT:   delta,
			ActionID: enc.ActionTypes.Lookup(a.Type),
			TypeID:   enc.ItemKinds.Lookup(kind),
			Correct:  correctness(a, kind),
		}
	}

	return records
}

func correctness(a Action, kind string) int {
	if kind != KindQuestion || a.UserAnswer == nil || a.CorrectAnswer == nil {
		return CorrectNA
	}
	if strings.TrimSpace(*a.UserAnswer) == strings.TrimSpace(*a.CorrectAnswer) {
		return CorrectYes
	}
	return CorrectNo
}
