package pipeline

import (
	"fmt"
	"math"
)

const (
	// MaxActions is the observation window length and the first dimension
	// of the tensor the scoring model expects.
	MaxActions = 8

	// MinActions is the minimum number of canonical records the
	// synthesizer needs before it produces features at all.
	MinActions = 3

	// StepWidth is the second tensor dimension: one step vector per
	// windowed action.
	StepWidth = 10

	maxDeltaSeconds = 600
	maxSpeedSeconds = 600

	defaultSpeed       = 300.0
	defaultAccuracy    = 0.5
	defaultPersistence = 0.5
)

// InsufficientDataError signals that a session has too few usable actions
// for a prediction. It is a distinguished outcome, not a pipeline fault.
type InsufficientDataError struct {
	MinActions int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: at least %d actions required", e.MinActions)
}

// Synthesize folds the observation window (the first maxActions records)
// into a fixed-shape (maxActions, 10) feature sequence. Sessions with fewer
// than MinActions records yield nil. Shorter windows are zero-padded at the
// end; the shape contract with the scoring model is unconditional.
func Synthesize(records []Record, maxActions int) [][]float64 {
	window := records
	if len(window) > maxActions {
		window = window[:maxActions]
	}
	if len(window) < MinActions {
		return nil
	}

	speed := sanitize(responseSpeed(window), defaultSpeed)
	acc := sanitize(accuracy(window), defaultAccuracy)
	trend := sanitize(perfTrend(window), 0)
	diversity := sanitize(actionDiversity(window), 0)
	grit := sanitize(persistence(window), defaultPersistence)

	steps := make([][]float64, maxActions)
	for i := range steps {
		steps[i] = make([]float64, StepWidth)
	}

	for i, r := range window {
		delta := r.DeltaT
		if math.IsNaN(delta) || math.IsInf(delta, 0) {
			delta = 0
		} else if delta > maxDeltaSeconds {
			delta = maxDeltaSeconds
		}

		steps[i] = []float64{
			float64(r.ActionID),
			float64(r.TypeID),
			delta,
			float64(r.Correct),
			acc,
			math.Min(speed, maxSpeedSeconds),
			trend,
			diversity,
			grit,
			float64(i) / float64(maxActions),
		}
	}

	return steps
}

// responseSpeed is the mean of the strictly positive finite deltas in the
// window, or 300 when there is no timing signal at all.
func responseSpeed(window []Record) float64 {
	var sum float64
	var n int
	for _, r := range window {
		if r.DeltaT > 0 && !math.IsInf(r.DeltaT, 0) && !math.IsNaN(r.DeltaT) {
			sum += r.DeltaT
			n++
		}
	}
	if n == 0 {
		return defaultSpeed
	}
	return sum / float64(n)
}

func answerable(window []Record) []float64 {
	var vals []float64
	for _, r := range window {
		if r.Correct >= 0 {
			vals = append(vals, float64(r.Correct))
		}
	}
	return vals
}

func accuracy(window []Record) float64 {
	vals := answerable(window)
	if len(vals) == 0 {
		return defaultAccuracy
	}
	return mean(vals)
}

// perfTrend correlates answer position with correctness over the window's
// answerable events. Fewer than 3 answerable events, or a degenerate
// correlation (zero variance), yield 0.
func perfTrend(window []Record) float64 {
	vals := answerable(window)
	if len(vals) <= 2 {
		return 0
	}

	xs := make([]float64, len(vals))
	for i := range xs {
		xs[i] = float64(i)
	}

	r := pearson(xs, vals)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}

func actionDiversity(window []Record) float64 {
	if len(window) == 0 {
		return 0
	}
	seen := make(map[string]struct{}, len(window))
	for _, r := range window {
		seen[r.ItemID] = struct{}{}
	}
	return float64(len(seen)) / float64(len(window))
}

// persistence is 1 minus the mean correctness over answerable events,
// defined only when at least 2 such events exist. Counter-intuitively this
// rises as answers get worse (two wrong answers give 1.0); the trained
// model learned against this exact scalar, so it is kept as documented.
func persistence(window []Record) float64 {
	vals := answerable(window)
	if len(vals) < 2 {
		return defaultPersistence
	}
	return 1.0 - mean(vals)
}

func mean(vals []float64) float64 {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func pearson(xs, ys []float64) float64 {
	mx := mean(xs)
	my := mean(ys)

	var cov, vx, vy float64
	for i := range xs {
		dx := xs[i] - mx
		dy := ys[i] - my
		cov += dx * dy
		vx += dx * dx
		vy += dy * dy
	}

	denom := math.Sqrt(vx * vy)
	if denom == 0 {
		return math.NaN()
	}
	return cov / denom
}

func sanitize(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}
