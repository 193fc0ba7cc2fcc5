package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/backlinehq/backline/internal/domain"
	"github.com/backlinehq/backline/pkg/config"
	"github.com/backlinehq/backline/pkg/logger"
	"github.com/backlinehq/backline/pkg/middleware"
	pkgredis "github.com/backlinehq/backline/pkg/redis"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health      *HealthHandler
	Venue       *VenueHandler
	Member      *MemberHandler
	Event       *EventHandler
	Opportunity *OpportunityHandler
	Contact     *ContactHandler
	Attachment  *AttachmentHandler
	Analytics   *AnalyticsHandler
}

// NewRouter assembles the gin engine: request logging, rate limiting, JWT
// authentication, and the versioned API routes. Only /health skips auth.
func NewRouter(cfg *config.Config, h *Handlers, redisClient *pkgredis.Client) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging(logger.Get().Logger, &middleware.LoggingConfig{
		SkipPaths: []string{"/health"},
	}))
	router.Use(middleware.Metrics())

	if cfg.RateLimit.Enabled {
		rlConfig := middleware.DefaultRateLimitConfig()
		rlConfig.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		rlConfig.BurstSize = cfg.RateLimit.BurstSize
		rlConfig.UseRedis = cfg.RateLimit.UseRedis
		rlConfig.RedisClient = redisClient
		router.Use(middleware.RateLimiter(rlConfig))
	}

	router.GET("/health", h.Health.Check)

	api := router.Group("/api/v1")
	api.Use(middleware.JWTMiddleware(&middleware.JWTConfig{
		Secret: cfg.JWT.Secret,
	}))

	venues := api.Group("/venues")
	{
		venues.POST("", h.Venue.Create)
		venues.GET("/me", h.Venue.GetMine)
		venues.PUT("/me", h.Venue.Update)
		venues.GET("/me/analytics-access", h.Venue.AnalyticsAccess)

		venues.GET("/me/members", h.Member.List)
		venues.POST("/me/members", h.Member.Invite)
		venues.DELETE("/me/members/:id", h.Member.Remove)
		venues.PUT("/me/members/:id/analytics", h.Member.SetAnalytics)
	}

	events := api.Group("/events")
	{
		events.POST("", h.Event.Create)
		events.GET("", h.Event.List)
		events.GET("/:id", h.Event.Get)
		events.PUT("/:id", h.Event.Update)
		events.DELETE("/:id", h.Event.Delete)

		registerChildRoutes(events, h.Attachment, domain.ParentEvent, childNotes|childComments|childDocuments|childTags)
	}

	opportunities := api.Group("/opportunities")
	{
		opportunities.POST("", h.Opportunity.Create)
		opportunities.GET("", h.Opportunity.List)
		opportunities.GET("/:id", h.Opportunity.Get)
		opportunities.PUT("/:id", h.Opportunity.Update)
		opportunities.POST("/:id/link", h.Opportunity.LinkEvent)
		opportunities.DELETE("/:id", h.Opportunity.Delete)

		opportunities.POST("/:id/labels", h.Attachment.AddLabel)
		opportunities.GET("/:id/labels", h.Attachment.ListLabels)
		opportunities.DELETE("/:id/labels/:labelId", h.Attachment.DeleteLabel)

		registerChildRoutes(opportunities, h.Attachment, domain.ParentOpportunity, childNotes|childComments|childDocuments)
	}

	contacts := api.Group("/contacts")
	{
		contacts.POST("", h.Contact.Create)
		contacts.GET("", h.Contact.List)
		contacts.GET("/:id", h.Contact.Get)
		contacts.PUT("/:id", h.Contact.Update)
		contacts.DELETE("/:id", h.Contact.Delete)

		registerChildRoutes(contacts, h.Attachment, domain.ParentContact, childTags)
	}

	api.GET("/analytics/performance", h.Analytics.Performance)

	return router
}

type childKind uint8

const (
	childNotes childKind = 1 << iota
	childComments
	childDocuments
	childTags
)

// registerChildRoutes wires the child-entity routes a parent supports. The
// parent kind is baked into each handler so the service authorizes against
// the right table.
func registerChildRoutes(group *gin.RouterGroup, h *AttachmentHandler, parentType string, kinds childKind) {
	if kinds&childNotes != 0 {
		group.POST("/:id/notes", h.AddNote(parentType))
		group.GET("/:id/notes", h.ListNotes(parentType))
		group.DELETE("/:id/notes/:noteId", h.DeleteNote(parentType))
	}
	if kinds&childComments != 0 {
		group.POST("/:id/comments", h.AddComment(parentType))
		group.GET("/:id/comments", h.ListComments(parentType))
		group.DELETE("/:id/comments/:commentId", h.DeleteComment(parentType))
	}
	if kinds&childDocuments != 0 {
		group.POST("/:id/documents", h.AddDocument(parentType))
		group.GET("/:id/documents", h.ListDocuments(parentType))
		group.DELETE("/:id/documents/:documentId", h.DeleteDocument(parentType))
	}
	if kinds&childTags != 0 {
		group.POST("/:id/tags", h.AddTag(parentType))
		group.GET("/:id/tags", h.ListTags(parentType))
		group.DELETE("/:id/tags/:tagId", h.DeleteTag(parentType))
	}
}
