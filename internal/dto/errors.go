package dto

type InsufficientDataDetails struct {
	MinActionsRequired int `json:"min_actions_required" example:"3"`
}
