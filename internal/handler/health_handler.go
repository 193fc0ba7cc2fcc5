package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/backlinehq/backline/pkg/database"
	"github.com/backlinehq/backline/pkg/response"
)

// HealthHandler reports service liveness and database reachability
type HealthHandler struct {
	db *database.PostgresDB
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *database.PostgresDB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check handles GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	status := map[string]string{
		"status":   "ok",
		"database": "up",
	}

	if h.db != nil {
		if err := h.db.HealthCheck(c.Request.Context()); err != nil {
			status["status"] = "degraded"
			status["database"] = "down"
			c.JSON(http.StatusServiceUnavailable, response.Success(status))
			return
		}
	}

	c.JSON(http.StatusOK, response.Success(status))
}
