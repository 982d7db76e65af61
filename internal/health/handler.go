package health

import (
	"context"
	"net/http"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/edusight/dropout-api/internal/prediction"
	"github.com/edusight/dropout-api/internal/scoring"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

type Status string

const (
	StatusOK        Status = "OK"
	StatusDegraded  Status = "DEGRADED"
	StatusUnhealthy Status = "ERROR"
)

type ComponentStatus struct {
	Status    Status `json:"status"`
	LatencyMs int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

type RuntimeStats struct {
	Goroutines         int    `json:"goroutines"`
	MemoryAllocMB      uint64 `json:"memory_alloc_mb"`
	MemoryTotalAllocMB uint64 `json:"memory_total_alloc_mb"`
	MemorySysMB        uint64 `json:"memory_sys_mb"`
	NumGC              uint32 `json:"num_gc"`
}

type RequestStats struct {
	TotalRequests     uint64 `json:"total_requests"`
	ActiveConnections int64  `json:"active_connections"`
}

type LivenessResponse struct {
	Status      Status    `json:"status"`
	ModelLoaded bool      `json:"model_loaded"`
	Version     string    `json:"version"`
	Timestamp   time.Time `json:"timestamp"`
}

type ReadinessResponse struct {
	Status        Status                     `json:"status"`
	ModelLoaded   bool                       `json:"model_loaded"`
	ModelVersion  string                     `json:"model_version,omitempty"`
	Version       string                     `json:"version"`
	Timestamp     time.Time                  `json:"timestamp"`
	UptimeSeconds int64                      `json:"uptime_seconds"`
	Requests      RequestStats               `json:"requests"`
	Runtime       RuntimeStats               `json:"runtime"`
	Components    map[string]ComponentStatus `json:"components"`
}

type Handler struct {
	service   *prediction.Service
	scorer    scoring.Scorer
	meta      *scoring.Metadata
	redis     *redis.Client
	version   string
	startTime time.Time

	totalRequests     uint64
	activeConnections int64
}

func NewHandler(service *prediction.Service, scorer scoring.Scorer, meta *scoring.Metadata, redisClient *redis.Client, version string) *Handler {
	return &Handler{
		service:   service,
		scorer:    scorer,
		meta:      meta,
		redis:     redisClient,
		version:   version,
		startTime: time.Now(),
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Liveness)
	e.GET("/health", h.Liveness)
	e.GET("/health/ready", h.Readiness)
}

func (h *Handler) IncrementRequests() {
	atomic.AddUint64(&h.totalRequests, 1)
}

func (h *Handler) IncrementConnections() {
	atomic.AddInt64(&h.activeConnections, 1)
}

func (h *Handler) DecrementConnections() {
	atomic.AddInt64(&h.activeConnections, -1)
}

// @Summary      Liveness
// @Description  Basic health check with model load status
// @Tags         health
// @Produce      json
// @Success      200  {object}  LivenessResponse
// @Router       /health [get]
func (h *Handler) Liveness(c echo.Context) error {
	loaded := h.service.Ready() == nil

	status := StatusOK
	if !loaded {
		status = StatusUnhealthy
	}

	return c.JSON(http.StatusOK, LivenessResponse{
		Status:      status,
		ModelLoaded: loaded,
		Version:     h.version,
		Timestamp:   time.Now().UTC(),
	})
}

// @Summary      Readiness
// @Description  Detailed health check covering the scoring backend and session store
// @Tags         health
// @Produce      json
// @Success      200  {object}  ReadinessResponse
// @Failure      503  {object}  ReadinessResponse
// @Router       /health/ready [get]
func (h *Handler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	components := make(map[string]ComponentStatus)
	var mu sync.Mutex
	var wg sync.WaitGroup

	checks := []struct {
		name  string
		check func(context.Context) ComponentStatus
	}{
		{"scoring", h.checkScoring},
		{"session_store", h.checkRedis},
	}

	wg.Add(len(checks))
	for _, check := range checks {
		go func(name string, fn func(context.Context) ComponentStatus) {
			defer wg.Done()
			status := fn(ctx)
			mu.Lock()
			components[name] = status
			mu.Unlock()
		}(check.name, check.check)
	}
	wg.Wait()

	loaded := h.service.Ready() == nil
	overall := h.computeOverallStatus(components, loaded)

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	modelVersion := ""
	if h.meta != nil {
		modelVersion = h.meta.ModelVersion
	}

	resp := ReadinessResponse{
		Status:        overall,
		ModelLoaded:   loaded,
		ModelVersion:  modelVersion,
		Version:       h.version,
		Timestamp:     time.Now().UTC(),
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
		Requests: RequestStats{
			TotalRequests:     atomic.LoadUint64(&h.totalRequests),
			ActiveConnections: atomic.LoadInt64(&h.activeConnections),
		},
		Runtime: RuntimeStats{
			Goroutines:         runtime.NumGoroutine(),
			MemoryAllocMB:      memStats.Alloc / 1024 / 1024,
			MemoryTotalAllocMB: memStats.TotalAlloc / 1024 / 1024,
			MemorySysMB:        memStats.Sys / 1024 / 1024,
			NumGC:              memStats.NumGC,
		},
		Components: components,
	}

	statusCode := http.StatusOK
	if overall == StatusUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}

	return c.JSON(statusCode, resp)
}

func (h *Handler) checkScoring(ctx context.Context) ComponentStatus {
	start := time.Now()
	if h.scorer == nil {
		return ComponentStatus{
			Status:    StatusUnhealthy,
			LatencyMs: time.Since(start).Milliseconds(),
			Error:     "scorer not configured",
		}
	}

	if err := h.scorer.Ready(ctx); err != nil {
		return ComponentStatus{
			Status:    StatusUnhealthy,
			LatencyMs: time.Since(start).Milliseconds(),
			Error:     err.Error(),
		}
	}

	return ComponentStatus{
		Status:    StatusOK,
		LatencyMs: time.Since(start).Milliseconds(),
	}
}

func (h *Handler) checkRedis(ctx context.Context) ComponentStatus {
	start := time.Now()
	if h.redis == nil {
		return ComponentStatus{
			Status:    StatusUnhealthy,
			LatencyMs: time.Since(start).Milliseconds(),
			Error:     "redis not configured",
		}
	}

	if err := h.redis.Ping(ctx).Err(); err != nil {
		return ComponentStatus{
			Status:    StatusUnhealthy,
			LatencyMs: time.Since(start).Milliseconds(),
			Error:     "ping failed",
		}
	}

	return ComponentStatus{
		Status:    StatusOK,
		LatencyMs: time.Since(start).Milliseconds(),
	}
}

// computeOverallStatus treats the scoring backend as critical; a broken
// session store degrades the service but predictions still work.
func (h *Handler) computeOverallStatus(components map[string]ComponentStatus, loaded bool) Status {
	if !loaded {
		return StatusUnhealthy
	}
	if status, ok := components["scoring"]; ok && status.Status == StatusUnhealthy {
		return StatusUnhealthy
	}
	for _, status := range components {
		if status.Status != StatusOK {
			return StatusDegraded
		}
	}
	return StatusOK
}
