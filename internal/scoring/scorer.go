package scoring

import "context"

// Scorer is the opaque trained model boundary: a fixed-shape feature
// sequence in, one abandon probability out. The pipeline never looks
// inside it, which keeps the core testable with a stub.
type Scorer interface {
	Score(ctx context.Context, features [][]float64) (float64, error)
	Ready(ctx context.Context) error
}
