package stream

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/edusight/dropout-api/internal/dto"
	"github.com/edusight/dropout-api/internal/pipeline"
	"github.com/edusight/dropout-api/internal/prediction"
	"github.com/edusight/dropout-api/internal/shared"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 64 * 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ClientMessage carries one action from the client. Actions accumulate
// per connection; nothing is shared across connections.
type ClientMessage struct {
	Action dto.ActionPayload `json:"action"`
}

type ServerMessage struct {
	Type               string                  `json:"type"`
	Actions            int                     `json:"actions,omitempty"`
	MinActionsRequired int                     `json:"min_actions_required,omitempty"`
	Prediction         *dto.PredictionResponse `json:"prediction,omitempty"`
	Error              *shared.APIError        `json:"error,omitempty"`
}

const (
	MessageTypeAck        = "ack"
	MessageTypePrediction = "prediction"
	MessageTypeError      = "error"
)

type Handler struct {
	service *prediction.Service
	logger  *slog.Logger
}

func NewHandler(service *prediction.Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/predict", h.HandleConnection)
}

// @Summary      Live prediction stream
// @Description  Websocket endpoint; send one action per message and receive a fresh prediction once enough actions have accumulated
// @Tags         stream
// @Param        user_id  query  string  true  "User identifier"
// @Success      101  "Switching Protocols"
// @Failure      400  {object}  shared.APIError
// @Router       /stream/predict [get]
func (h *Handler) HandleConnection(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		return shared.BadRequest("missing_user_id", "user_id query parameter is required")
	}

	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err, "user_id", userID)
		return err
	}
	defer ws.Close()

	ws.SetReadLimit(maxMessageSize)
	logger := h.logger.With("user_id", userID)
	logger.Info("stream opened")

	var actions []pipeline.Action
	for {
		var msg ClientMessage
		if err := ws.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("stream read failed", "error", err)
			}
			break
		}

		actions = append(actions, prediction.ActionsFromPayload([]dto.ActionPayload{msg.Action})...)

		if err := h.respond(c, ws, userID, actions); err != nil {
			logger.Warn("stream write failed", "error", err)
			break
		}
	}

	logger.Info("stream closed", "actions", len(actions))
	return nil
}

func (h *Handler) respond(c echo.Context, ws *websocket.Conn, userID string, actions []pipeline.Action) error {
	result, err := h.service.Predict(c.Request().Context(), userID, actions)

	var out ServerMessage
	switch {
	case err == nil:
		resp := result.ToResponse()
		out = ServerMessage{
			Type:       MessageTypePrediction,
			Actions:    len(actions),
			Prediction: &resp,
		}
	default:
		var insufficient *pipeline.InsufficientDataError
		if errors.As(err, &insufficient) {
			out = ServerMessage{
				Type:               MessageTypeAck,
				Actions:            len(actions),
				MinActionsRequired: insufficient.MinActions,
			}
		} else {
			httpErr := prediction.ErrorToHTTP(h.logger, err, userID)
			out = ServerMessage{
				Type:    MessageTypeError,
				Actions: len(actions),
				Error:   httpErr.Message.(*shared.APIError),
			}
		}
	}

	ws.SetWriteDeadline(time.Now().Add(writeWait))
	return ws.WriteJSON(out)
}
