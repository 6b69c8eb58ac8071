package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"vibetracker-backend/internal/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	checkOK     = "ok"
	apiVersion  = "1.0"
	healthyText = "healthy"

	// probeKey is only used to render the seed, never stored
	probeKey = "00000"
)

// HealthHandler reports whether the scoring backend can reach its store
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status" example:"healthy"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version" example:"1.0"`
	Checks    map[string]string `json:"checks"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Database connectivity and the embedded rubric seed
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	checks := map[string]string{
		"database":    result(h.ping(c.Request.Context())),
		"rubric_seed": result(checkRubricSeed()),
	}

	resp := HealthResponse{
		Status:    healthyText,
		Timestamp: time.Now().UTC(),
		Version:   apiVersion,
		Checks:    checks,
	}
	status := http.StatusOK
	if !allOK(checks) {
		resp.Status = "unhealthy"
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}

// Ready reports whether the schema is migrated and sessions can be served
// @Summary Readiness check
// @Description Ready once the database answers and the session tables exist
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx := c.Request.Context()
	checks := map[string]string{"database": result(h.ping(ctx))}
	if checks["database"] == checkOK {
		checks["schema"] = result(h.schemaReady(ctx))
	}

	ready := allOK(checks)
	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{
		"ready":     ready,
		"timestamp": time.Now().UTC(),
		"checks":    checks,
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Description Check if the application is alive and responding
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now().UTC(),
	})
}

func (h *HealthHandler) ping(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (h *HealthHandler) schemaReady(ctx context.Context) error {
	migrator := h.db.WithContext(ctx).Migrator()
	for _, model := range database.Models() {
		if !migrator.HasTable(model) {
			return fmt.Errorf("table for %T is missing", model)
		}
	}
	return nil
}

// checkRubricSeed makes sure new sessions can still be seeded
func checkRubricSeed() error {
	_, err := database.DefaultRubric(probeKey)
	return err
}

func result(err error) string {
	if err != nil {
		return "error: " + err.Error()
	}
	return checkOK
}

func allOK(checks map[string]string) bool {
	for _, v := range checks {
		if v != checkOK {
			return false
		}
	}
	return true
}
