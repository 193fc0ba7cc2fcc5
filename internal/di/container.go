package di

import (
	"github.com/backlinehq/backline/internal/handler"
	"github.com/backlinehq/backline/internal/repository"
	"github.com/backlinehq/backline/internal/service"
	"github.com/backlinehq/backline/pkg/database"
)

// Container holds all dependencies for the API server
type Container struct {
	// Infrastructure
	DB *database.PostgresDB

	// Repositories
	VenueRepo       repository.VenueRepository
	UserRepo        repository.UserRepository
	MemberRepo      repository.MemberRepository
	EventRepo       repository.EventRepository
	OpportunityRepo repository.OpportunityRepository
	ContactRepo     repository.ContactRepository
	NoteRepo        repository.NoteRepository
	CommentRepo     repository.CommentRepository
	DocumentRepo    repository.DocumentRepository
	LabelRepo       repository.LabelRepository
	TagRepo         repository.TagRepository

	// Services
	Guard              *service.Guard
	MembershipService  service.MembershipService
	VenueService       service.VenueService
	MemberService      service.MemberService
	EventService       service.EventService
	OpportunityService service.OpportunityService
	ContactService     service.ContactService
	AttachmentService  service.AttachmentService
	AnalyticsService   service.AnalyticsService

	// Handlers
	Handlers *handler.Handlers
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	DB       *database.PostgresDB
	Notifier service.InviteNotifier
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{DB: cfg.DB}

	pool := cfg.DB.Pool()
	c.VenueRepo = repository.NewPostgresVenueRepository(pool)
	c.UserRepo = repository.NewPostgresUserRepository(pool)
	c.MemberRepo = repository.NewPostgresMemberRepository(pool)
	c.EventRepo = repository.NewPostgresEventRepository(pool)
	c.OpportunityRepo = repository.NewPostgresOpportunityRepository(pool)
	c.ContactRepo = repository.NewPostgresContactRepository(pool)
	c.NoteRepo = repository.NewPostgresNoteRepository(pool)
	c.CommentRepo = repository.NewPostgresCommentRepository(pool)
	c.DocumentRepo = repository.NewPostgresDocumentRepository(pool)
	c.LabelRepo = repository.NewPostgresLabelRepository(pool)
	c.TagRepo = repository.NewPostgresTagRepository(pool)

	// Initialize services
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = service.NewNoopInviteNotifier()
	}

	c.Guard = service.NewGuard(c.MemberRepo)
	c.MembershipService = service.NewMembershipService(c.Guard)
	c.VenueService = service.NewVenueService(c.VenueRepo, c.Guard)
	c.MemberService = service.NewMemberService(c.MemberRepo, c.UserRepo, c.VenueRepo, c.Guard, notifier)
	c.EventService = service.NewEventService(c.EventRepo, c.Guard)
	c.OpportunityService = service.NewOpportunityService(c.OpportunityRepo, c.EventRepo, c.Guard)
	c.ContactService = service.NewContactService(c.ContactRepo, c.Guard)
	c.AttachmentService = service.NewAttachmentService(
		c.NoteRepo,
		c.CommentRepo,
		c.DocumentRepo,
		c.LabelRepo,
		c.TagRepo,
		c.EventRepo,
		c.OpportunityRepo,
		c.ContactRepo,
		c.Guard,
	)
	c.AnalyticsService = service.NewAnalyticsService(c.EventRepo, c.Guard)

	// Initialize handlers
	c.Handlers = &handler.Handlers{
		Health:      handler.NewHealthHandler(c.DB),
		Venue:       handler.NewVenueHandler(c.VenueService, c.MembershipService),
		Member:      handler.NewMemberHandler(c.MemberService),
		Event:       handler.NewEventHandler(c.EventService),
		Opportunity: handler.NewOpportunityHandler(c.OpportunityService),
		Contact:     handler.NewContactHandler(c.ContactService),
		Attachment:  handler.NewAttachmentHandler(c.AttachmentService),
		Analytics:   handler.NewAnalyticsHandler(c.AnalyticsService),
	}

	return c
}
