package pipeline

import (
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// buildSession derives a session deterministically from a record count and
// a seed, mixing bundle and question items with varying gaps and answers.
func buildSession(n int, seed int64) []Action {
	actions := make([]Action, 0, n)
	ts := int64(0)
	for i := 0; i < n; i++ {
		ts += (seed%7 + int64(i)%5) * 1000
		a := Action{Type: "enter", ItemID: fmt.Sprintf("b%d", i%3), Timestamp: ts}
		if (int64(i)+seed)%2 == 0 {
			a.Type = "respond"
			a.ItemID = fmt.Sprintf("q%d", i)
			a.UserAnswer = strPtr("A")
			if (int64(i)+seed)%4 == 0 {
				a.CorrectAnswer = strPtr("A")
			} else {
				a.CorrectAnswer = strPtr("B")
			}
		}
		actions = append(actions, a)
	}
	return actions
}

func TestProperty_PaddingInvariant(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("short sessions pad to exactly MaxActions zero-tailed steps", prop.ForAll(
		func(n int, seed int64) bool {
			records := Normalize(buildSession(n, seed), testEncoders())
			steps := Synthesize(records, MaxActions)
			if steps == nil || len(steps) != MaxActions {
				return false
			}
			for i := n; i < MaxActions; i++ {
				for _, v := range steps[i] {
					if v != 0 {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(MinActions, MaxActions-1),
		gen.Int64Range(0, 1<<30),
	))

	properties.TestingRun(t)
}

func TestProperty_WindowingInvariant(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("long sessions truncate to the first MaxActions records", prop.ForAll(
		func(n int, seed int64) bool {
			records := Normalize(buildSession(n, seed), testEncoders())
			full := Synthesize(records, MaxActions)
			windowOnly := Synthesize(records[:MaxActions], MaxActions)
			return reflect.DeepEqual(full, windowOnly)
		},
		gen.IntRange(MaxActions, 4*MaxActions),
		gen.Int64Range(0, 1<<30),
	))

	properties.TestingRun(t)
}

func TestProperty_Determinism(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("same session always synthesizes the same features", prop.ForAll(
		func(n int, seed int64) bool {
			actions := buildSession(n, seed)
			first := Synthesize(Normalize(actions, testEncoders()), MaxActions)
			second := Synthesize(Normalize(actions, testEncoders()), MaxActions)
			return reflect.DeepEqual(first, second)
		},
		gen.IntRange(MinActions, 3*MaxActions),
		gen.Int64Range(0, 1<<30),
	))

	properties.TestingRun(t)
}

func TestProperty_AllStepValuesFinite(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("every emitted step value is finite", prop.ForAll(
		func(n int, seed int64) bool {
			records := Normalize(buildSession(n, seed), testEncoders())
			steps := Synthesize(records, MaxActions)
			if steps == nil {
				return false
			}
			for _, step := range steps {
				for _, v := range step {
					if math.IsNaN(v) || math.IsInf(v, 0) {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(MinActions, 3*MaxActions),
		gen.Int64Range(0, 1<<30),
	))

	properties.TestingRun(t)
}
