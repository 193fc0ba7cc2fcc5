package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/backlinehq/backline/internal/dto"
	"github.com/backlinehq/backline/internal/service"
	"github.com/backlinehq/backline/pkg/response"
)

// AnalyticsHandler handles performance analytics requests
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Performance handles GET /analytics/performance
func (h *AnalyticsHandler) Performance(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var query dto.PerformanceQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid query parameters"))
		return
	}

	filter, ok, msg := query.Parse()
	if !ok {
		c.JSON(http.StatusBadRequest, response.ValidationFailed(msg))
		return
	}

	report, err := h.analyticsService.FilterPerformance(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(report))
}
