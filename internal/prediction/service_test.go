package prediction

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/edusight/dropout-api/internal/encoding"
	"github.com/edusight/dropout-api/internal/pipeline"
	"github.com/edusight/dropout-api/internal/scoring"
	"github.com/edusight/dropout-api/internal/shared"
)

type stubScorer struct {
	probability float64
	err         error
	calls       int
	lastShape   [2]int
}

func (s *stubScorer) Score(_ context.Context, features [][]float64) (float64, error) {
	s.calls++
	s.lastShape = [2]int{len(features), len(features[0])}
	if s.err != nil {
		return 0, s.err
	}
	return s.probability, nil
}

func (s *stubScorer) Ready(context.Context) error {
	return nil
}

func testEncoders() *encoding.Set {
	return &encoding.Set{
		ActionTypes: encoding.Encoder{"enter": 1, "respond": 2, "submit": 3},
		ItemKinds:   encoding.Encoder{"bundle": 0, "question": 1},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(scorer scoring.Scorer) *Service {
	meta := &scoring.Metadata{Threshold: 0.5, ModelVersion: "test"}
	return NewService(scorer, testEncoders(), meta, testLogger())
}

func sessionActions(n int) []pipeline.Action {
	actions := make([]pipeline.Action, n)
	for i := range actions {
		actions[i] = pipeline.Action{
			Type:      "enter",
			ItemID:    "b1",
			Timestamp: int64(i) * 1000,
		}
	}
	return actions
}

func TestService_Predict(t *testing.T) {
	scorer := &stubScorer{probability: 0.731449}
	svc := newTestService(scorer)

	result, err := svc.Predict(context.Background(), "u_1", sessionActions(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.UserID != "u_1" {
		t.Errorf("expected user u_1, got %s", result.UserID)
	}
	if result.Probability != 0.7314 {
		t.Errorf("expected probability rounded to 0.7314, got %v", result.Probability)
	}
	if !result.Prediction {
		t.Error("expected positive prediction above the 0.5 threshold")
	}
	if result.Confidence != ConfidenceMedium {
		t.Errorf("expected Medium confidence, got %s", result.Confidence)
	}
	if result.Recommendation != RecommendationIntervene {
		t.Errorf("expected intervention recommendation, got %s", result.Recommendation)
	}
	if result.ProcessedActions != 5 {
		t.Errorf("expected 5 processed actions, got %d", result.ProcessedActions)
	}
	if result.ModelVersion != "test" {
		t.Errorf("expected model version test, got %s", result.ModelVersion)
	}
	if result.PredictionID == "" {
		t.Error("expected a prediction id")
	}
	if result.GeneratedAt.IsZero() {
		t.Error("expected a generation timestamp")
	}
}

func TestService_Predict_ScorerReceivesFixedShape(t *testing.T) {
	scorer := &stubScorer{probability: 0.2}
	svc := newTestService(scorer)

	if _, err := svc.Predict(context.Background(), "u_1", sessionActions(12)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if scorer.lastShape != [2]int{pipeline.MaxActions, pipeline.StepWidth} {
		t.Errorf("expected shape (%d, %d), got %v", pipeline.MaxActions, pipeline.StepWidth, scorer.lastShape)
	}
}

func TestService_Predict_ProcessedActionsIsRawCount(t *testing.T) {
	scorer := &stubScorer{probability: 0.2}
	svc := newTestService(scorer)

	result, err := svc.Predict(context.Background(), "u_1", sessionActions(17))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ProcessedActions != 17 {
		t.Errorf("expected the pre-windowing count 17, got %d", result.ProcessedActions)
	}
}

func TestService_Predict_InsufficientData(t *testing.T) {
	scorer := &stubScorer{probability: 0.9}
	svc := newTestService(scorer)

	_, err := svc.Predict(context.Background(), "u_1", sessionActions(2))

	var insufficient *pipeline.InsufficientDataError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientDataError, got %v", err)
	}
	if insufficient.MinActions != pipeline.MinActions {
		t.Errorf("expected minimum %d, got %d", pipeline.MinActions, insufficient.MinActions)
	}
	if scorer.calls != 0 {
		t.Errorf("scorer must not be invoked on insufficient data, got %d calls", scorer.calls)
	}
}

func TestService_Predict_ScoringFailure(t *testing.T) {
	scorer := &stubScorer{err: errors.New("input shape mismatch")}
	svc := newTestService(scorer)

	_, err := svc.Predict(context.Background(), "u_1", sessionActions(5))
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got != "score session: input shape mismatch" {
		t.Errorf("expected wrapped scoring error, got %q", got)
	}
}

func TestService_Predict_NotReady(t *testing.T) {
	svc := NewService(nil, nil, nil, testLogger())

	_, err := svc.Predict(context.Background(), "u_1", sessionActions(5))
	if !errors.Is(err, shared.ErrNotReady) {
		t.Fatalf("expected ErrNotReady, got %v", err)
	}
}

func TestService_Predict_Deterministic(t *testing.T) {
	scorer := &stubScorer{probability: 0.42}
	svc := newTestService(scorer)
	actions := sessionActions(6)

	first, err := svc.Predict(context.Background(), "u_1", actions)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Predict(context.Background(), "u_1", actions)
	if err != nil {
		t.Fatal(err)
	}

	if first.Probability != second.Probability ||
		first.Prediction != second.Prediction ||
		first.Confidence != second.Confidence ||
		first.Recommendation != second.Recommendation ||
		first.ProcessedActions != second.ProcessedActions {
		t.Error("repeated predictions for the same session must match")
	}
}

func TestService_Predict_ThresholdFromMetadata(t *testing.T) {
	scorer := &stubScorer{probability: 0.6}
	meta := &scoring.Metadata{Threshold: 0.7}
	svc := NewService(scorer, testEncoders(), meta, testLogger())

	result, err := svc.Predict(context.Background(), "u_1", sessionActions(5))
	if err != nil {
		t.Fatal(err)
	}

	if result.Prediction {
		t.Error("0.6 must not trip a 0.7 threshold")
	}
}
