package service

import (
	"context"
	"sort"
	"strings"

	"github.com/backlinehq/backline/internal/domain"
)

// In-memory repository fakes. All follow the repository contract: a missing
// row is (nil, nil), never an error.

type mockVenueRepo struct {
	venues  map[string]*domain.Venue
	members *mockMemberRepo
}

func newMockVenueRepo(members *mockMemberRepo) *mockVenueRepo {
	return &mockVenueRepo{venues: make(map[string]*domain.Venue), members: members}
}

func (r *mockVenueRepo) CreateWithAdmin(ctx context.Context, venue *domain.Venue, member *domain.VenueMember) error {
	r.venues[venue.ID] = venue
	r.members.members[member.ID] = member
	return nil
}

func (r *mockVenueRepo) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	return r.venues[id], nil
}

func (r *mockVenueRepo) Update(ctx context.Context, venue *domain.Venue) error {
	r.venues[venue.ID] = venue
	return nil
}

type mockUserRepo struct {
	users map[string]*domain.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*domain.User)}
}

func (r *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.users[id], nil
}

func (r *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type mockMemberRepo struct {
	members map[string]*domain.VenueMember
}

func newMockMemberRepo() *mockMemberRepo {
	return &mockMemberRepo{members: make(map[string]*domain.VenueMember)}
}

func (r *mockMemberRepo) Create(ctx context.Context, member *domain.VenueMember) error {
	r.members[member.ID] = member
	return nil
}

func (r *mockMemberRepo) GetByID(ctx context.Context, id string) (*domain.VenueMember, error) {
	return r.members[id], nil
}

func (r *mockMemberRepo) GetByUserID(ctx context.Context, userID string) (*domain.VenueMember, error) {
	for _, m := range r.members {
		if m.UserID == userID {
			return m, nil
		}
	}
	return nil, nil
}

func (r *mockMemberRepo) ListByVenue(ctx context.Context, venueID string) ([]*domain.VenueMember, error) {
	out := make([]*domain.VenueMember, 0)
	for _, m := range r.members {
		if m.VenueID == venueID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *mockMemberRepo) SetAnalytics(ctx context.Context, id string, canView bool) error {
	if m, ok := r.members[id]; ok {
		m.CanViewAnalytics = canView
	}
	return nil
}

func (r *mockMemberRepo) Delete(ctx context.Context, id string) error {
	delete(r.members, id)
	return nil
}

type mockEventRepo struct {
	events map[string]*domain.Event
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{events: make(map[string]*domain.Event)}
}

func (r *mockEventRepo) Create(ctx context.Context, event *domain.Event) error {
	r.events[event.ID] = event
	return nil
}

func (r *mockEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return r.events[id], nil
}

func (r *mockEventRepo) ListByVenue(ctx context.Context, venueID string) ([]*domain.Event, error) {
	out := make([]*domain.Event, 0)
	for _, e := range r.events {
		if e.VenueID == venueID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

// ListWithPerformance mirrors the SQL prefilter: inner join on performances,
// inclusive date range on the performance event date, exact genre, and
// case-insensitive substring search across title, artist name, and
// performance event name. No profit filtering here.
func (r *mockEventRepo) ListWithPerformance(ctx context.Context, venueID string, filter domain.PerformanceFilter) ([]*domain.Event, error) {
	out := make([]*domain.Event, 0)
	for _, e := range r.events {
		if e.VenueID != venueID || e.Performance == nil {
			continue
		}
		p := e.Performance
		if filter.DateFrom != nil && p.EventDate.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && p.EventDate.After(*filter.DateTo) {
			continue
		}
		if filter.Genre != "" && p.Genre != filter.Genre {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(e.Title), needle) &&
				!strings.Contains(strings.ToLower(e.ArtistName), needle) &&
				!strings.Contains(strings.ToLower(p.EventName), needle) {
				continue
			}
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

func (r *mockEventRepo) Update(ctx context.Context, event *domain.Event) error {
	r.events[event.ID] = event
	return nil
}

func (r *mockEventRepo) Delete(ctx context.Context, id string) error {
	delete(r.events, id)
	return nil
}

type mockOpportunityRepo struct {
	opps map[string]*domain.Opportunity
}

func newMockOpportunityRepo() *mockOpportunityRepo {
	return &mockOpportunityRepo{opps: make(map[string]*domain.Opportunity)}
}

func (r *mockOpportunityRepo) Create(ctx context.Context, opp *domain.Opportunity) error {
	r.opps[opp.ID] = opp
	return nil
}

func (r *mockOpportunityRepo) GetByID(ctx context.Context, id string) (*domain.Opportunity, error) {
	return r.opps[id], nil
}

func (r *mockOpportunityRepo) ListByVenue(ctx context.Context, venueID string) ([]*domain.Opportunity, error) {
	out := make([]*domain.Opportunity, 0)
	for _, o := range r.opps {
		if o.VenueID == venueID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *mockOpportunityRepo) Update(ctx context.Context, opp *domain.Opportunity) error {
	r.opps[opp.ID] = opp
	return nil
}

func (r *mockOpportunityRepo) LinkEvent(ctx context.Context, id, eventID string) error {
	if o, ok := r.opps[id]; ok {
		o.EventID = &eventID
	}
	return nil
}

func (r *mockOpportunityRepo) Delete(ctx context.Context, id string) error {
	delete(r.opps, id)
	return nil
}

type mockContactRepo struct {
	contacts map[string]*domain.Contact
}

func newMockContactRepo() *mockContactRepo {
	return &mockContactRepo{contacts: make(map[string]*domain.Contact)}
}

func (r *mockContactRepo) Create(ctx context.Context, contact *domain.Contact) error {
	r.contacts[contact.ID] = contact
	return nil
}

func (r *mockContactRepo) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	return r.contacts[id], nil
}

func (r *mockContactRepo) ListByVenue(ctx context.Context, venueID string) ([]*domain.Contact, error) {
	out := make([]*domain.Contact, 0)
	for _, c := range r.contacts {
		if c.VenueID == venueID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *mockContactRepo) Update(ctx context.Context, contact *domain.Contact) error {
	r.contacts[contact.ID] = contact
	return nil
}

func (r *mockContactRepo) Delete(ctx context.Context, id string) error {
	delete(r.contacts, id)
	return nil
}

type mockNoteRepo struct {
	notes map[string]*domain.Note
}

func newMockNoteRepo() *mockNoteRepo {
	return &mockNoteRepo{notes: make(map[string]*domain.Note)}
}

func (r *mockNoteRepo) Create(ctx context.Context, note *domain.Note) error {
	r.notes[note.ID] = note
	return nil
}

func (r *mockNoteRepo) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	return r.notes[id], nil
}

func (r *mockNoteRepo) ListByParent(ctx context.Context, parentType, parentID string) ([]*domain.Note, error) {
	out := make([]*domain.Note, 0)
	for _, n := range r.notes {
		if n.ParentType == parentType && n.ParentID == parentID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *mockNoteRepo) Delete(ctx context.Context, id string) error {
	delete(r.notes, id)
	return nil
}

type mockCommentRepo struct {
	comments map[string]*domain.Comment
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{comments: make(map[string]*domain.Comment)}
}

func (r *mockCommentRepo) Create(ctx context.Context, comment *domain.Comment) error {
	r.comments[comment.ID] = comment
	return nil
}

func (r *mockCommentRepo) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	return r.comments[id], nil
}

func (r *mockCommentRepo) ListByParent(ctx context.Context, parentType, parentID string) ([]*domain.Comment, error) {
	out := make([]*domain.Comment, 0)
	for _, c := range r.comments {
		if c.ParentType == parentType && c.ParentID == parentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *mockCommentRepo) Delete(ctx context.Context, id string) error {
	delete(r.comments, id)
	return nil
}

type mockDocumentRepo struct {
	docs map[string]*domain.Document
}

func newMockDocumentRepo() *mockDocumentRepo {
	return &mockDocumentRepo{docs: make(map[string]*domain.Document)}
}

func (r *mockDocumentRepo) Create(ctx context.Context, doc *domain.Document) error {
	r.docs[doc.ID] = doc
	return nil
}

func (r *mockDocumentRepo) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	return r.docs[id], nil
}

func (r *mockDocumentRepo) ListByParent(ctx context.Context, parentType, parentID string) ([]*domain.Document, error) {
	out := make([]*domain.Document, 0)
	for _, d := range r.docs {
		if d.ParentType == parentType && d.ParentID == parentID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *mockDocumentRepo) Delete(ctx context.Context, id string) error {
	delete(r.docs, id)
	return nil
}

type mockLabelRepo struct {
	labels map[string]*domain.Label
}

func newMockLabelRepo() *mockLabelRepo {
	return &mockLabelRepo{labels: make(map[string]*domain.Label)}
}

func (r *mockLabelRepo) Create(ctx context.Context, label *domain.Label) error {
	r.labels[label.ID] = label
	return nil
}

func (r *mockLabelRepo) GetByID(ctx context.Context, id string) (*domain.Label, error) {
	return r.labels[id], nil
}

func (r *mockLabelRepo) ListByOpportunity(ctx context.Context, opportunityID string) ([]*domain.Label, error) {
	out := make([]*domain.Label, 0)
	for _, l := range r.labels {
		if l.OpportunityID == opportunityID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *mockLabelRepo) Delete(ctx context.Context, id string) error {
	delete(r.labels, id)
	return nil
}

type mockTagRepo struct {
	tags map[string]*domain.Tag
}

func newMockTagRepo() *mockTagRepo {
	return &mockTagRepo{tags: make(map[string]*domain.Tag)}
}

func (r *mockTagRepo) Create(ctx context.Context, tag *domain.Tag) error {
	r.tags[tag.ID] = tag
	return nil
}

func (r *mockTagRepo) GetByID(ctx context.Context, id string) (*domain.Tag, error) {
	return r.tags[id], nil
}

func (r *mockTagRepo) ListByParent(ctx context.Context, parentType, parentID string) ([]*domain.Tag, error) {
	out := make([]*domain.Tag, 0)
	for _, t := range r.tags {
		if t.ParentType == parentType && t.ParentID == parentID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *mockTagRepo) Delete(ctx context.Context, id string) error {
	delete(r.tags, id)
	return nil
}

// fixture bundles a full fake persistence layer with two venues and a user
// in each, ready for tenant-isolation tests.
type fixture struct {
	venueRepo   *mockVenueRepo
	userRepo    *mockUserRepo
	memberRepo  *mockMemberRepo
	eventRepo   *mockEventRepo
	oppRepo     *mockOpportunityRepo
	contactRepo *mockContactRepo
	noteRepo    *mockNoteRepo
	commentRepo *mockCommentRepo
	docRepo     *mockDocumentRepo
	labelRepo   *mockLabelRepo
	tagRepo     *mockTagRepo
	guard       *Guard
}

func newFixture() *fixture {
	memberRepo := newMockMemberRepo()
	return &fixture{
		venueRepo:   newMockVenueRepo(memberRepo),
		userRepo:    newMockUserRepo(),
		memberRepo:  memberRepo,
		eventRepo:   newMockEventRepo(),
		oppRepo:     newMockOpportunityRepo(),
		contactRepo: newMockContactRepo(),
		noteRepo:    newMockNoteRepo(),
		commentRepo: newMockCommentRepo(),
		docRepo:     newMockDocumentRepo(),
		labelRepo:   newMockLabelRepo(),
		tagRepo:     newMockTagRepo(),
		guard:       NewGuard(memberRepo),
	}
}

// addMember registers a membership (and its backing user) directly.
func (f *fixture) addMember(id, venueID, userID, role string, canViewAnalytics bool) *domain.VenueMember {
	m := &domain.VenueMember{
		ID:               id,
		VenueID:          venueID,
		UserID:           userID,
		Role:             role,
		CanViewAnalytics: canViewAnalytics,
	}
	f.memberRepo.members[id] = m
	return m
}

func (f *fixture) addVenue(id, name string) *domain.Venue {
	v := &domain.Venue{ID: id, Name: name, City: "Austin", State: "TX", Zipcode: "78701", Capacity: 500}
	f.venueRepo.venues[id] = v
	return v
}
