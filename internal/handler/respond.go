package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/backlinehq/backline/internal/service"
	"github.com/backlinehq/backline/pkg/logger"
	"github.com/backlinehq/backline/pkg/middleware"
	"github.com/backlinehq/backline/pkg/response"
	"go.uber.org/zap"
)

// currentUser pulls the authenticated user id out of the gin context. The
// JWT middleware guarantees it on protected routes; a miss means the route
// was wired without auth.
func currentUser(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return "", false
	}
	return userID, true
}

// respondError maps service sentinel errors to the response envelope.
// ErrNoMembership is checked before ErrNotFound: the two produce the same
// status but different codes, and cross-tenant failures wrap ErrNotFound so
// they fall through to the generic branch.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoMembership):
		c.JSON(http.StatusNotFound, response.VenueNotFound())
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, response.Forbidden(""))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, response.NotFound(""))
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, response.ValidationFailed(errDetail(err, service.ErrInvalidInput)))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, response.Conflict(errDetail(err, service.ErrConflict)))
	default:
		logger.WithContext(c.Request.Context()).Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, response.InternalError(""))
	}
}

// errDetail strips the sentinel prefix from a wrapped error, leaving the
// human message added by the service.
func errDetail(err, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), sentinel.Error())
	return strings.TrimPrefix(msg, ": ")
}
