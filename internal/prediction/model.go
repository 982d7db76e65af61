package prediction

import (
	"time"

	"github.com/edusight/dropout-api/internal/dto"
	"github.com/edusight/dropout-api/internal/pipeline"
)

// Result is one scored session. Results are never persisted; each one
// lives only for the duration of its request.
type Result struct {
	PredictionID     string
	UserID           string
	Probability      float64
	Prediction       bool
	Confidence       string
	Recommendation   string
	ProcessedActions int
	ModelVersion     string
	GeneratedAt      time.Time
}

func (r *Result) ToResponse() dto.PredictionResponse {
	return dto.PredictionResponse{
		PredictionID:       r.PredictionID,
		UserID:             r.UserID,
		AbandonProbability: r.Probability,
		AbandonPrediction:  r.Prediction,
		Confidence:         r.Confidence,
		Recommendation:     r.Recommendation,
		ProcessedActions:   r.ProcessedActions,
		ModelVersion:       r.ModelVersion,
		GeneratedAt:        r.GeneratedAt,
	}
}

// ActionsFromPayload converts wire actions into pipeline actions.
func ActionsFromPayload(payloads []dto.ActionPayload) []pipeline.Action {
	actions := make([]pipeline.Action, len(payloads))
	for i, p := range payloads {
		actions[i] = pipeline.Action{
			Type:          p.ActionType,
			ItemID:        p.ItemID,
			Timestamp:     p.Timestamp,
			UserAnswer:    p.UserAnswer,
			CorrectAnswer: p.CorrectAnswer,
		}
	}
	return actions
}
