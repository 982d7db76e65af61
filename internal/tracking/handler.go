package tracking

import (
	"log/slog"
	"net/http"

	"github.com/edusight/dropout-api/internal/dto"
	"github.com/edusight/dropout-api/internal/prediction"
	"github.com/edusight/dropout-api/internal/shared"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	store   Store
	service *prediction.Service
	logger  *slog.Logger
}

func NewHandler(store Store, service *prediction.Service, logger *slog.Logger) *Handler {
	return &Handler{
		store:   store,
		service: service,
		logger:  logger,
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/:user_id/actions", h.Track)
	g.GET("/:user_id/prediction", h.Predict)
	g.DELETE("/:user_id", h.Clear)
}

// @Summary      Track session actions
// @Description  Appends interaction events to a user's stored session for later scoring
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        user_id  path      string                   true  "User identifier"
// @Param        request  body      dto.TrackActionsRequest  true  "Actions to append"
// @Success      200      {object}  dto.TrackActionsResponse
// @Failure      400      {object}  shared.APIError
// @Failure      500      {object}  shared.APIError
// @Router       /sessions/{user_id}/actions [post]
func (h *Handler) Track(c echo.Context) error {
	userID := c.Param("user_id")
	if userID == "" {
		return shared.BadRequest("missing_user_id", "user_id is required")
	}

	var req dto.TrackActionsRequest
	if err := c.Bind(&req); err != nil {
		return shared.BadRequest("invalid_request", "invalid request body")
	}
	if len(req.Actions) == 0 {
		return shared.BadRequest("empty_actions", "at least one action is required")
	}

	count, err := h.store.Append(c.Request().Context(), userID, req.Actions)
	if err != nil {
		h.logger.Error("failed to store actions", "error", err, "user_id", userID)
		return shared.InternalError("store_failed", "failed to store actions")
	}

	return c.JSON(http.StatusOK, dto.TrackActionsResponse{
		UserID:        userID,
		StoredActions: count,
	})
}

// @Summary      Predict from stored session
// @Description  Scores the accumulated session for a user
// @Tags         sessions
// @Produce      json
// @Param        user_id  path      string  true  "User identifier"
// @Success      200      {object}  dto.PredictionResponse
// @Failure      404      {object}  shared.APIError  "No stored session"
// @Failure      422      {object}  shared.APIError  "Fewer than the minimum usable actions"
// @Failure      502      {object}  shared.APIError
// @Failure      503      {object}  shared.APIError
// @Router       /sessions/{user_id}/prediction [get]
func (h *Handler) Predict(c echo.Context) error {
	userID := c.Param("user_id")
	if userID == "" {
		return shared.BadRequest("missing_user_id", "user_id is required")
	}

	payloads, err := h.store.Actions(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("failed to load session", "error", err, "user_id", userID)
		return shared.InternalError("load_failed", "failed to load session")
	}
	if len(payloads) == 0 {
		return shared.NotFound("session_not_found", "no stored session for user")
	}

	result, err := h.service.Predict(c.Request().Context(), userID, prediction.ActionsFromPayload(payloads))
	if err != nil {
		return prediction.ErrorToHTTP(h.logger, err, userID)
	}

	return c.JSON(http.StatusOK, result.ToResponse())
}

// @Summary      Clear stored session
// @Description  Removes all stored actions for a user
// @Tags         sessions
// @Produce      json
// @Param        user_id  path      string  true  "User identifier"
// @Success      200      {object}  dto.ClearSessionResponse
// @Failure      500      {object}  shared.APIError
// @Router       /sessions/{user_id} [delete]
func (h *Handler) Clear(c echo.Context) error {
	userID := c.Param("user_id")
	if userID == "" {
		return shared.BadRequest("missing_user_id", "user_id is required")
	}

	if err := h.store.Clear(c.Request().Context(), userID); err != nil {
		h.logger.Error("failed to clear session", "error", err, "user_id", userID)
		return shared.InternalError("clear_failed", "failed to clear session")
	}

	return c.JSON(http.StatusOK, dto.ClearSessionResponse{
		UserID:  userID,
		Cleared: true,
	})
}
