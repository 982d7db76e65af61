package pipeline

import (
	"math"
	"testing"
)

const floatTol = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= floatTol
}

// sampleSessionRecords builds the five-action session used as the worked
// example throughout the synthesizer tests: enter, wrong answer, submit,
// enter, wrong answer, ten minutes apart each.
func sampleSessionRecords(t *testing.T) []Record {
	t.Helper()
	actions := []Action{
		{Type: "enter", ItemID: "b1", Timestamp: 0},
		{Type: "respond", ItemID: "q1", Timestamp: 600000, UserAnswer: strPtr("A"), CorrectAnswer: strPtr("B")},
		{Type: "submit", ItemID: "b1", Timestamp: 1200000},
		{Type: "enter", ItemID: "b2", Timestamp: 1800000},
		{Type: "respond", ItemID: "q2", Timestamp: 2400000, UserAnswer: strPtr("A"), CorrectAnswer: strPtr("B")},
	}
	return Normalize(actions, testEncoders())
}

func TestSynthesize_WorkedExample(t *testing.T) {
	records := sampleSessionRecords(t)

	wantCorrect := []int{-1, 0, -1, -1, 0}
	for i, r := range records {
		if r.Correct != wantCorrect[i] {
			t.Fatalf("record %d: expected correct %d, got %d", i, wantCorrect[i], r.Correct)
		}
	}

	steps := Synthesize(records, MaxActions)
	if steps == nil {
		t.Fatal("expected features, got nil")
	}

	// Two answerable events, both wrong.
	accuracy := steps[0][4]
	if !almostEqual(accuracy, 0.0) {
		t.Errorf("expected accuracy 0.0, got %v", accuracy)
	}

	// Exactly two answerable events, both wrong: persistence goes to 1.0.
	persistence := steps[0][8]
	if !almostEqual(persistence, 1.0) {
		t.Errorf("expected persistence 1.0, got %v", persistence)
	}

	// Only two answerable events, so no trend.
	trend := steps[0][6]
	if !almostEqual(trend, 0.0) {
		t.Errorf("expected perf_trend 0, got %v", trend)
	}

	// Four distinct items over five actions.
	diversity := steps[0][7]
	if !almostEqual(diversity, 4.0/5.0) {
		t.Errorf("expected diversity 0.8, got %v", diversity)
	}

	// All positive deltas are 600s, and speed is clamped at 600.
	speed := steps[0][5]
	if !almostEqual(speed, 600) {
		t.Errorf("expected response speed 600, got %v", speed)
	}
}

func TestSynthesize_Shape(t *testing.T) {
	steps := Synthesize(sampleSessionRecords(t), MaxActions)

	if len(steps) != MaxActions {
		t.Fatalf("expected %d steps, got %d", MaxActions, len(steps))
	}
	for i, step := range steps {
		if len(step) != StepWidth {
			t.Fatalf("step %d: expected width %d, got %d", i, StepWidth, len(step))
		}
	}
}

func TestSynthesize_PostPadding(t *testing.T) {
	steps := Synthesize(sampleSessionRecords(t), MaxActions)

	for i := 5; i < MaxActions; i++ {
		for j, v := range steps[i] {
			if v != 0 {
				t.Errorf("padded step %d element %d: expected 0, got %v", i, j, v)
			}
		}
	}
}

func TestSynthesize_PositionMarker(t *testing.T) {
	steps := Synthesize(sampleSessionRecords(t), MaxActions)

	for i := 0; i < 5; i++ {
		want := float64(i) / float64(MaxActions)
		if !almostEqual(steps[i][9], want) {
			t.Errorf("step %d: expected position %v, got %v", i, want, steps[i][9])
		}
	}
}

func TestSynthesize_InsufficientData(t *testing.T) {
	records := Normalize([]Action{
		{Type: "enter", ItemID: "b1", Timestamp: 0},
		{Type: "respond", ItemID: "q1", Timestamp: 1000},
	}, testEncoders())

	if steps := Synthesize(records, MaxActions); steps != nil {
		t.Fatal("expected nil for fewer than 3 records")
	}
}

func TestSynthesize_WindowsToMaxActions(t *testing.T) {
	var actions []Action
	for i := 0; i < 12; i++ {
		actions = append(actions, Action{
			Type:      "enter",
			ItemID:    "b1",
			Timestamp: int64(i) * 1000,
		})
	}
	records := Normalize(actions, testEncoders())

	steps := Synthesize(records, MaxActions)
	if len(steps) != MaxActions {
		t.Fatalf("expected %d steps, got %d", MaxActions, len(steps))
	}

	// With a single repeated item the diversity is computed over the
	// window, not the whole session.
	if !almostEqual(steps[0][7], 1.0/float64(MaxActions)) {
		t.Errorf("expected diversity %v, got %v", 1.0/float64(MaxActions), steps[0][7])
	}

	// The final step is a real record, not padding.
	if steps[MaxActions-1][9] == 0 {
		t.Error("last step should carry a non-zero position marker")
	}
}

func TestSynthesize_NoTimingSignalDefaultsSpeed(t *testing.T) {
	// All actions share one timestamp, so every delta is zero.
	records := Normalize([]Action{
		{Type: "enter", ItemID: "b1", Timestamp: 1000},
		{Type: "enter", ItemID: "b2", Timestamp: 1000},
		{Type: "enter", ItemID: "b3", Timestamp: 1000},
	}, testEncoders())

	steps := Synthesize(records, MaxActions)
	if steps == nil {
		t.Fatal("expected features")
	}

	speed := steps[0][5]
	if !almostEqual(speed, defaultSpeed) {
		t.Errorf("expected fallback speed %v, got %v", defaultSpeed, speed)
	}
	if math.IsNaN(speed) || speed < 0 {
		t.Errorf("speed must be a sane positive value, got %v", speed)
	}
}

func TestSynthesize_NoAnswerableEventsUsesNeutralPriors(t *testing.T) {
	records := Normalize([]Action{
		{Type: "enter", ItemID: "b1", Timestamp: 0},
		{Type: "enter", ItemID: "b2", Timestamp: 1000},
		{Type: "enter", ItemID: "b3", Timestamp: 2000},
	}, testEncoders())

	steps := Synthesize(records, MaxActions)

	if !almostEqual(steps[0][4], defaultAccuracy) {
		t.Errorf("expected neutral accuracy %v, got %v", defaultAccuracy, steps[0][4])
	}
	if !almostEqual(steps[0][8], defaultPersistence) {
		t.Errorf("expected neutral persistence %v, got %v", defaultPersistence, steps[0][8])
	}
	if !almostEqual(steps[0][6], 0) {
		t.Errorf("expected zero trend, got %v", steps[0][6])
	}
}

func TestSynthesize_DeltaClamp(t *testing.T) {
	// One hour between actions, clamped to 600s in the step vector.
	records := Normalize([]Action{
		{Type: "enter", ItemID: "b1", Timestamp: 0},
		{Type: "enter", ItemID: "b2", Timestamp: 3600000},
		{Type: "enter", ItemID: "b3", Timestamp: 7200000},
	}, testEncoders())

	steps := Synthesize(records, MaxActions)

	if steps[1][2] != maxDeltaSeconds {
		t.Errorf("expected delta clamped to %d, got %v", maxDeltaSeconds, steps[1][2])
	}
	if steps[1][5] != maxSpeedSeconds {
		t.Errorf("expected speed clamped to %d, got %v", maxSpeedSeconds, steps[1][5])
	}
}

func TestPerfTrend(t *testing.T) {
	tests := []struct {
		name    string
		correct []int
		want    float64
	}{
		{
			name:    "improving answers trend positive",
			correct: []int{0, 0, 1, 1},
			want:    1,
		},
		{
			name:    "declining answers trend negative",
			correct: []int{1, 1, 0, 0},
			want:    -1,
		},
		{
			name:    "constant answers have zero variance and zero trend",
			correct: []int{1, 1, 1, 1},
			want:    0,
		},
		{
			name:    "two answerable events are not enough",
			correct: []int{0, 1},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var window []Record
			for _, c := range tt.correct {
				window = append(window, Record{ItemID: "q1", Correct: c})
			}

			got := perfTrend(window)
			switch {
			case tt.want == 0:
				if !almostEqual(got, 0) {
					t.Errorf("expected 0, got %v", got)
				}
			case tt.want > 0:
				if got < 0.8 {
					t.Errorf("expected strong positive trend, got %v", got)
				}
			default:
				if got > -0.8 {
					t.Errorf("expected strong negative trend, got %v", got)
				}
			}
		})
	}
}

func TestPersistence_SingleAnswerableUsesDefault(t *testing.T) {
	window := []Record{
		{ItemID: "q1", Correct: 0},
		{ItemID: "b1", Correct: -1},
	}
	if got := persistence(window); !almostEqual(got, defaultPersistence) {
		t.Errorf("expected %v, got %v", defaultPersistence, got)
	}
}

func TestPersistence_TwoWrongAnswersYieldOne(t *testing.T) {
	window := []Record{
		{ItemID: "q1", Correct: 0},
		{ItemID: "q2", Correct: 0},
	}
	if got := persistence(window); !almostEqual(got, 1.0) {
		t.Errorf("expected 1.0, got %v", got)
	}
}

func TestPersistence_TwoRightAnswersYieldZero(t *testing.T) {
	window := []Record{
		{ItemID: "q1", Correct: 1},
		{ItemID: "q2", Correct: 1},
	}
	if got := persistence(window); !almostEqual(got, 0.0) {
		t.Errorf("expected 0.0, got %v", got)
	}
}
