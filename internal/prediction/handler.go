package prediction

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/edusight/dropout-api/internal/dto"
	"github.com/edusight/dropout-api/internal/pipeline"
	"github.com/edusight/dropout-api/internal/shared"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/predict", h.Predict)
}

// @Summary      Predict dropout risk
// @Description  Scores a session's interaction log and returns the abandon probability with a thresholded decision, confidence band and recommendation
// @Tags         prediction
// @Accept       json
// @Produce      json
// @Param        request  body      dto.PredictRequest  true  "Session to score"
// @Success      200      {object}  dto.PredictionResponse
// @Failure      400      {object}  shared.APIError
// @Failure      422      {object}  shared.APIError  "Fewer than the minimum usable actions"
// @Failure      502      {object}  shared.APIError  "Scoring backend failure"
// @Failure      503      {object}  shared.APIError  "Model artifacts not loaded"
// @Router       /predict [post]
func (h *Handler) Predict(c echo.Context) error {
	var req dto.PredictRequest
	if err := c.Bind(&req); err != nil {
		return shared.BadRequest("invalid_request", "invalid request body")
	}
	if req.Session.UserID == "" {
		return shared.BadRequest("missing_user_id", "session.user_id is required")
	}
	if len(req.Session.Actions) == 0 {
		return shared.BadRequest("empty_session", "session must contain at least one action")
	}

	result, err := h.service.Predict(c.Request().Context(), req.Session.UserID, ActionsFromPayload(req.Session.Actions))
	if err != nil {
		return ErrorToHTTP(h.logger, err, req.Session.UserID)
	}

	return c.JSON(http.StatusOK, result.ToResponse())
}

// ErrorToHTTP maps pipeline and scoring failures onto the API error
// surface. Shared by every transport that fronts the prediction service.
func ErrorToHTTP(logger *slog.Logger, err error, userID string) *echo.HTTPError {
	if errors.Is(err, shared.ErrNotReady) {
		return shared.ServiceUnavailable("model_not_loaded", "model artifacts are not loaded")
	}

	var insufficient *pipeline.InsufficientDataError
	if errors.As(err, &insufficient) {
		return shared.NewAPIError("insufficient_data", insufficient.Error()).
			WithDetails(dto.InsufficientDataDetails{MinActionsRequired: insufficient.MinActions}).
			ToHTTP(http.StatusUnprocessableEntity)
	}

	logger.Error("prediction failed", "error", err, "user_id", userID)
	return shared.BadGateway("scoring_failed", err.Error())
}
