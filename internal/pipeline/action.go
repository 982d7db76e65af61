package pipeline

// Action is a single raw interaction event within a session, as received
// from the caller. Timestamps are epoch milliseconds. The answer pair is
// only present on question events.
type Action struct {
	Type          string
	ItemID        string
	Timestamp     int64
	UserAnswer    *string
	CorrectAnswer *string
}

// Correctness codes carried per record. -1 marks events that are not
// answerable questions.
const (
	CorrectYes = 1
	CorrectNo  = 0
	CorrectNA  = -1
)

// Item kinds derived from the item identifier prefix.
const (
	KindQuestion = "question"
	KindBundle   = "bundle"
)

// questionPrefix is the reserved item-id prefix marking question items.
const questionPrefix = "q"

// Record is the canonical per-action form: time-sorted, delta-annotated,
// with labels resolved to encoder codes. Computed fresh per request and
// discarded after feature synthesis.
type Record struct {
	ItemID   string
	DeltaT   float64
	ActionID int
	TypeID   int
	Correct  int
}
