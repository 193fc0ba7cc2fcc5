package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/backlinehq/backline/internal/dto"
	"github.com/backlinehq/backline/internal/service"
	"github.com/backlinehq/backline/pkg/response"
)

// MemberHandler handles venue membership requests
type MemberHandler struct {
	memberService service.MemberService
}

// NewMemberHandler creates a new MemberHandler
func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// List handles GET /venues/me/members
func (h *MemberHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	members, err := h.memberService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(members))
}

// Invite handles POST /venues/me/members - admin invites a member by email
func (h *MemberHandler) Invite(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.InviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	member, err := h.memberService.Invite(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(member))
}

// Remove handles DELETE /venues/me/members/:id - admin removes a member.
// Removing the admin is a conflict, not a removal.
func (h *MemberHandler) Remove(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	memberID := c.Param("id")
	if memberID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Member ID is required"))
		return
	}

	if err := h.memberService.Remove(c.Request.Context(), userID, memberID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(map[string]string{"message": "Member removed"}))
}

// SetAnalytics handles PUT /venues/me/members/:id/analytics - admin toggles
// a member's analytics access
func (h *MemberHandler) SetAnalytics(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	memberID := c.Param("id")
	if memberID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Member ID is required"))
		return
	}

	var req dto.SetAnalyticsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CanViewAnalytics == nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("can_view_analytics is required"))
		return
	}

	member, err := h.memberService.SetAnalytics(c.Request.Context(), userID, memberID, *req.CanViewAnalytics)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(member))
}
