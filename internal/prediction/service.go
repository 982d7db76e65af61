package prediction

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/edusight/dropout-api/internal/encoding"
	"github.com/edusight/dropout-api/internal/pipeline"
	"github.com/edusight/dropout-api/internal/scoring"
	"github.com/edusight/dropout-api/internal/shared"
	"github.com/google/uuid"
)

// Service runs the full pipeline for one session: normalize, synthesize,
// score, explain. It holds only read-only state (encoders, metadata, the
// scorer handle), so concurrent requests need no coordination.
type Service struct {
	scorer   scoring.Scorer
	encoders *encoding.Set
	meta     *scoring.Metadata
	logger   *slog.Logger
}

func NewService(scorer scoring.Scorer, encoders *encoding.Set, meta *scoring.Metadata, logger *slog.Logger) *Service {
	return &Service{
		scorer:   scorer,
		encoders: encoders,
		meta:     meta,
		logger:   logger,
	}
}

// Ready reports whether all artifacts needed for a prediction are loaded.
func (s *Service) Ready() error {
	if s == nil || s.scorer == nil || s.encoders == nil || s.meta == nil {
		return shared.ErrNotReady
	}
	return nil
}

func (s *Service) Threshold() float64 {
	if s.meta == nil {
		return scoring.DefaultThreshold
	}
	return s.meta.Threshold
}

// Predict scores one session. It returns *pipeline.InsufficientDataError
// when fewer than the minimum usable actions are present; the scorer is
// never invoked in that case.
func (s *Service) Predict(ctx context.Context, userID string, actions []pipeline.Action) (*Result, error) {
	if err := s.Ready(); err != nil {
		return nil, err
	}

	records := pipeline.Normalize(actions, s.encoders)
	features := pipeline.Synthesize(records, pipeline.MaxActions)
	if features == nil {
		return nil, &pipeline.InsufficientDataError{MinActions: pipeline.MinActions}
	}

	probability, err := s.scorer.Score(ctx, features)
	if err != nil {
		return nil, fmt.Errorf("score session: %w", err)
	}

	result := &Result{
		PredictionID:     uuid.NewString(),
		UserID:           userID,
		Probability:      math.Round(probability*10000) / 10000,
		Prediction:       probability > s.meta.Threshold,
		Confidence:       Confidence(probability),
		Recommendation:   Recommend(probability, len(actions)),
		ProcessedActions: len(actions),
		ModelVersion:     s.meta.ModelVersion,
		GeneratedAt:      time.Now().UTC(),
	}

	s.logger.Debug("session scored",
		"user_id", userID,
		"probability", result.Probability,
		"prediction", result.Prediction,
		"processed_actions", result.ProcessedActions)

	return result, nil
}
