package dto

import "time"

type ActionPayload struct {
	ActionType    string  `json:"action_type" example:"respond"`
	ItemID        string  `json:"item_id" example:"q8745"`
	Timestamp     int64   `json:"timestamp" example:"1718200000000"`
	UserAnswer    *string `json:"user_answer,omitempty" example:"b"`
	CorrectAnswer *string `json:"correct_answer,omitempty" example:"c"`
}

type SessionPayload struct {
	UserID  string          `json:"user_id" example:"u_4821"`
	Actions []ActionPayload `json:"actions"`
}

type PredictRequest struct {
	Session SessionPayload `json:"session"`
}

type PredictionResponse struct {
	PredictionID       string    `json:"prediction_id" example:"c2a7f0d2-6f53-4b5a-9f6e-1d2b3c4d5e6f"`
	UserID             string    `json:"user_id" example:"u_4821"`
	AbandonProbability float64   `json:"abandon_probability" example:"0.8123"`
	AbandonPrediction  bool      `json:"abandon_prediction" example:"true"`
	Confidence         string    `json:"confidence" example:"High"`
	Recommendation     string    `json:"recommendation" example:"High abandon risk - intervention recommended"`
	ProcessedActions   int       `json:"processed_actions" example:"12"`
	ModelVersion       string    `json:"model_version,omitempty" example:"2024-11-03"`
	GeneratedAt        time.Time `json:"generated_at"`
}
