package bootstrap

import (
	"log/slog"
	"os"

	"github.com/edusight/dropout-api/internal/encoding"
	"github.com/edusight/dropout-api/internal/prediction"
	"github.com/edusight/dropout-api/internal/scoring"
	"github.com/edusight/dropout-api/internal/stream"
	"github.com/edusight/dropout-api/internal/tracking"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/fx"
)

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ProvideLogger(cfg *Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
}

func ProvidePredictionService(scorer scoring.Scorer, encoders *encoding.Set, meta *scoring.Metadata, logger *slog.Logger) *prediction.Service {
	return prediction.NewService(scorer, encoders, meta, logger.With("component", "prediction"))
}

func ProvidePredictionHandler(service *prediction.Service, logger *slog.Logger) *prediction.Handler {
	return prediction.NewHandler(service, logger.With("handler", "prediction"))
}

func ProvideTrackingStore(client *redis.Client, cfg *Config) tracking.Store {
	return tracking.NewRedisStore(client, cfg.SessionTTL)
}

func ProvideTrackingHandler(store tracking.Store, service *prediction.Service, logger *slog.Logger) *tracking.Handler {
	return tracking.NewHandler(store, service, logger.With("handler", "tracking"))
}

func ProvideStreamHandler(service *prediction.Service, logger *slog.Logger) *stream.Handler {
	return stream.NewHandler(service, logger.With("handler", "stream"))
}

type HandlerParams struct {
	fx.In

	PredictionHandler *prediction.Handler
	TrackingHandler   *tracking.Handler
	StreamHandler     *stream.Handler
}

func RegisterRoutes(e *echo.Echo, params HandlerParams) {
	api := e.Group("/v1")

	params.PredictionHandler.RegisterRoutes(api)
	params.TrackingHandler.RegisterRoutes(api.Group("/sessions"))
	params.StreamHandler.RegisterRoutes(api.Group("/stream"))

	e.GET("/swagger/*", echoSwagger.EchoWrapHandler())
}

var HandlersModule = fx.Options(
	fx.Provide(
		ProvideLogger,
		ProvidePredictionService,
		ProvidePredictionHandler,
		ProvideTrackingStore,
		ProvideTrackingHandler,
		ProvideStreamHandler,
	),
	fx.Invoke(RegisterRoutes),
)
