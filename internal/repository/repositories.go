package repository

import (
	"context"

	"github.com/backlinehq/backline/internal/domain"
)

// Repositories return (nil, nil) when a row does not exist; callers decide
// whether that is NotFound or a valid empty state.

// VenueRepository defines venue data access.
type VenueRepository interface {
	// CreateWithAdmin creates the venue and its first admin membership as a
	// single atomic unit. A venue without a member, or vice versa, must never
	// be observable.
	CreateWithAdmin(ctx context.Context, venue *domain.Venue, member *domain.VenueMember) error
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
	Update(ctx context.Context, venue *domain.Venue) error
}

// UserRepository defines user identity data access.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// MemberRepository defines venue membership data access.
type MemberRepository interface {
	Create(ctx context.Context, member *domain.VenueMember) error
	GetByID(ctx context.Context, id string) (*domain.VenueMember, error)
	// GetByUserID returns the user's single membership. If defective data
	// holds more than one row, the first encountered is returned.
	GetByUserID(ctx context.Context, userID string) (*domain.VenueMember, error)
	ListByVenue(ctx context.Context, venueID string) ([]*domain.VenueMember, error)
	SetAnalytics(ctx context.Context, id string, canView bool) error
	Delete(ctx context.Context, id string) error
}

// EventRepository defines event and performance data access.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	ListByVenue(ctx context.Context, venueID string) ([]*domain.Event, error)
	// ListWithPerformance returns the venue's events that have an attached
	// performance, with ticket levels and custom expenses loaded, matching
	// the date/genre/search parts of the filter. Ordered by start date
	// descending; ties follow retrieval order and are not deterministic.
	ListWithPerformance(ctx context.Context, venueID string, filter domain.PerformanceFilter) ([]*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id string) error
}

// OpportunityRepository defines opportunity data access.
type OpportunityRepository interface {
	Create(ctx context.Context, opp *domain.Opportunity) error
	GetByID(ctx context.Context, id string) (*domain.Opportunity, error)
	ListByVenue(ctx context.Context, venueID string) ([]*domain.Opportunity, error)
	Update(ctx context.Context, opp *domain.Opportunity) error
	LinkEvent(ctx context.Context, id, eventID string) error
	Delete(ctx context.Context, id string) error
}

// ContactRepository defines contact data access.
type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) error
	GetByID(ctx context.Context, id string) (*domain.Contact, error)
	ListByVenue(ctx context.Context, venueID string) ([]*domain.Contact, error)
	Update(ctx context.Context, contact *domain.Contact) error
	Delete(ctx context.Context, id string) error
}

// NoteRepository defines note data access.
type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	GetByID(ctx context.Context, id string) (*domain.Note, error)
	ListByParent(ctx context.Context, parentType, parentID string) ([]*domain.Note, error)
	Delete(ctx context.Context, id string) error
}

// CommentRepository defines comment data access.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	ListByParent(ctx context.Context, parentType, parentID string) ([]*domain.Comment, error)
	Delete(ctx context.Context, id string) error
}

// DocumentRepository defines document data access.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	ListByParent(ctx context.Context, parentType, parentID string) ([]*domain.Document, error)
	Delete(ctx context.Context, id string) error
}

// LabelRepository defines opportunity label data access.
type LabelRepository interface {
	Create(ctx context.Context, label *domain.Label) error
	GetByID(ctx context.Context, id string) (*domain.Label, error)
	ListByOpportunity(ctx context.Context, opportunityID string) ([]*domain.Label, error)
	Delete(ctx context.Context, id string) error
}

// TagRepository defines tag data access.
type TagRepository interface {
	Create(ctx context.Context, tag *domain.Tag) error
	GetByID(ctx context.Context, id string) (*domain.Tag, error)
	ListByParent(ctx context.Context, parentType, parentID string) ([]*domain.Tag, error)
	Delete(ctx context.Context, id string) error
}
