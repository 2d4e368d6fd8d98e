package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/fishkit/internal/api/middleware"
	"github.com/GriffinCanCode/fishkit/internal/infrastructure/logging"
	"github.com/GriffinCanCode/fishkit/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/fishkit/internal/service"
	"github.com/GriffinCanCode/fishkit/internal/shared/types"
	"github.com/GriffinCanCode/fishkit/internal/shared/utils"
)

// Version is reported by the root and health endpoints
const Version = "0.1.0"

const (
	maxIntentLength = 500
	healthTimeout   = 2 * time.Second
)

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	store    Pinger
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// NewHandlers creates a new handler set. store, metrics and logger may be nil.
func NewHandlers(registry *service.Registry, store Pinger, metrics *monitoring.Metrics, logger *logging.Logger) *Handlers {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handlers{
		registry: registry,
		store:    store,
		metrics:  metrics,
		logger:   logger.Named("http"),
	}
}

// Register mounts every route on router
func (h *Handlers) Register(router gin.IRouter) {
	router.GET("/", h.Root)
	router.GET("/health", h.Health)

	// Service management
	router.GET("/services", h.ListServices)
	router.POST("/services/discover", h.DiscoverServices)
	router.POST("/services/execute", h.ExecuteService)

	// Direct number routes
	v1 := router.Group("/v1")
	v1.GET("/idcard/:number/validate", h.ValidateIDNumber)
	v1.GET("/bankcard/:number/validate", h.ValidateCardNumber)
	v1.POST("/idcard/generate", h.GenerateIDNumbers)
	v1.POST("/bankcard/generate", h.GenerateCardNumbers)
}

// Root handles the liveness check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "fishkit",
		"version": Version,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	status, code := "healthy", http.StatusOK

	refdata := gin.H{"connected": h.store != nil}
	if h.store != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()
		if err := h.store.Ping(ctx); err != nil {
			refdata = gin.H{"connected": false, "error": err.Error()}
			status, code = "degraded", http.StatusServiceUnavailable
		}
	}

	body := gin.H{
		"status":           status,
		"version":          Version,
		"service_registry": h.registry.Stats(),
		"refdata":          refdata,
	}
	if h.metrics != nil {
		body["metrics"] = h.metrics.Snapshot()
	}
	c.JSON(code, body)
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	var category *types.Category
	if categoryStr := c.Query("category"); categoryStr != "" {
		cat := types.Category(categoryStr)
		if cat != types.CategoryData && cat != types.CategoryCommon {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category: " + categoryStr})
			return
		}
		category = &cat
	}

	c.JSON(http.StatusOK, gin.H{
		"services": h.registry.List(category),
		"stats":    h.registry.Stats(),
	})
}

// DiscoverServices discovers relevant services for an intent
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req types.DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateString(req.Intent, "intent", 1, maxIntentLength, true); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":    req.Intent,
		"services": h.registry.Discover(req.Intent, req.Limit),
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateToolID(req.ToolID, "tool_id", true); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.AppID != nil {
		if err := utils.ValidateID(*req.AppID, "app_id", false); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	result, err := h.execute(c, req.ToolID, req.Params, req.AppID)
	if err != nil {
		h.writeExecuteError(c, req.ToolID, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// execute runs a tool with the caller's request ID attached
func (h *Handlers) execute(c *gin.Context, toolID string, params map[string]interface{}, appID *string) (*types.Result, error) {
	appCtx := &types.Context{AppID: appID}
	if reqID := middleware.GetRequestID(c); reqID != "" {
		appCtx.RequestID = &reqID
	}
	return h.registry.Execute(c.Request.Context(), toolID, params, appCtx)
}

func (h *Handlers) writeExecuteError(c *gin.Context, toolID string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidToolID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logger.Error("Tool execution error",
			zap.String("tool", toolID),
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
