package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/backlinehq/backline/internal/dto"
	"github.com/backlinehq/backline/internal/service"
	"github.com/backlinehq/backline/pkg/response"
)

// VenueHandler handles venue registration and venue detail requests
type VenueHandler struct {
	venueService      service.VenueService
	membershipService service.MembershipService
}

// NewVenueHandler creates a new VenueHandler
func NewVenueHandler(venueService service.VenueService, membershipService service.MembershipService) *VenueHandler {
	return &VenueHandler{
		venueService:      venueService,
		membershipService: membershipService,
	}
}

// Create handles POST /venues - registers a venue with the caller as admin
func (h *VenueHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	venue, err := h.venueService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(venue))
}

// GetMine handles GET /venues/me - returns the caller's venue
func (h *VenueHandler) GetMine(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	venue, err := h.venueService.GetMine(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(venue))
}

// Update handles PUT /venues/me - updates venue details (admin only)
func (h *VenueHandler) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	venue, err := h.venueService.Update(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(venue))
}

// AnalyticsAccess handles GET /venues/me/analytics-access. A caller with no
// membership gets {has_access: false} with 200, not an error.
func (h *VenueHandler) AnalyticsAccess(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	hasAccess, err := h.membershipService.HasAnalyticsAccess(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.AnalyticsAccessResponse{HasAccess: hasAccess}))
}
