package dto

type TrackActionsRequest struct {
	Actions []ActionPayload `json:"actions"`
}

type TrackActionsResponse struct {
	UserID        string `json:"user_id" example:"u_4821"`
	StoredActions int64  `json:"stored_actions" example:"7"`
}

type ClearSessionResponse struct {
	UserID  string `json:"user_id" example:"u_4821"`
	Cleared bool   `json:"cleared" example:"true"`
}
