package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping() error
}

// HealthChecker reports whether an optional dependency is usable
type HealthChecker interface {
	Healthy() bool
}

// PingFunc adapts a function to Pinger
type PingFunc func() error

// Ping calls f
func (f PingFunc) Ping() error { return f() }

// HealthHandler handles the root and health check endpoints
type HealthHandler struct {
	db        Pinger
	publisher HealthChecker
}

// NewHealthHandler creates a new health handler. publisher may be nil.
func NewHealthHandler(db Pinger, publisher HealthChecker) *HealthHandler {
	return &HealthHandler{
		db:        db,
		publisher: publisher,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status" example:"healthy"`
	Timestamp time.Time `json:"timestamp"`
}

// ReadyResponse represents the readiness check response
type ReadyResponse struct {
	Ready     bool              `json:"ready"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// Root returns the welcome message
// @Summary API root
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to CRM Backend API",
		"status":  "running",
	})
}

// Health returns a liveness-style status with the current time
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	})
}

// Ready checks the database and the event publisher
// @Summary Readiness check
// @Description Reports 503 when the database cannot be reached. A degraded event publisher is reported but does not fail readiness.
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse
// @Failure 503 {object} ReadyResponse
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ready := true
	services := make(map[string]string)

	if err := h.db.Ping(); err != nil {
		ready = false
		services["database"] = "not ready: " + err.Error()
	} else {
		services["database"] = "ready"
	}

	if h.publisher != nil {
		if h.publisher.Healthy() {
			services["events"] = "ready"
		} else {
			services["events"] = "degraded"
		}
	}

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, ReadyResponse{
		Ready:     ready,
		Timestamp: time.Now().UTC(),
		Services:  services,
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now().UTC(),
	})
}
