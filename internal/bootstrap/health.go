package bootstrap

import (
	"github.com/edusight/dropout-api/internal/health"
	"github.com/edusight/dropout-api/internal/prediction"
	"github.com/edusight/dropout-api/internal/scoring"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const version = "1.0.0"

func ProvideHealthHandler(
	service *prediction.Service,
	scorer scoring.Scorer,
	meta *scoring.Metadata,
	redisClient *redis.Client,
) *health.Handler {
	return health.NewHandler(service, scorer, meta, redisClient, version)
}

func metricsMiddleware(h *health.Handler) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h.IncrementRequests()
			h.IncrementConnections()
			defer h.DecrementConnections()
			return next(c)
		}
	}
}

func RegisterHealthRoutes(e *echo.Echo, h *health.Handler) {
	e.Use(metricsMiddleware(h))
	h.RegisterRoutes(e)
}

var HealthModule = fx.Options(
	fx.Provide(ProvideHealthHandler),
	fx.Invoke(RegisterHealthRoutes),
)
