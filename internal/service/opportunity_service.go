package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/backlinehq/backline/internal/domain"
	"github.com/backlinehq/backline/internal/dto"
	"github.com/backlinehq/backline/internal/repository"
)

// OpportunityService manages the booking pipeline. Tenant-guarded like
// events; linking to an event additionally verifies the event's venue.
type OpportunityService interface {
	Create(ctx context.Context, userID string, req *dto.CreateOpportunityRequest) (*domain.Opportunity, error)
	Get(ctx context.Context, userID, oppID string) (*domain.Opportunity, error)
	List(ctx context.Context, userID string) ([]*domain.Opportunity, error)
	Update(ctx context.Context, userID, oppID string, req *dto.UpdateOpportunityRequest) (*domain.Opportunity, error)
	// LinkEvent attaches the booked event. Both sides must belong to the
	// caller's venue.
	LinkEvent(ctx context.Context, userID, oppID, eventID string) (*domain.Opportunity, error)
	Delete(ctx context.Context, userID, oppID string) error
}

type opportunityService struct {
	oppRepo   repository.OpportunityRepository
	eventRepo repository.EventRepository
	guard     *Guard
}

// NewOpportunityService creates a new OpportunityService.
func NewOpportunityService(oppRepo repository.OpportunityRepository, eventRepo repository.EventRepository, guard *Guard) OpportunityService {
	return &opportunityService{oppRepo: oppRepo, eventRepo: eventRepo, guard: guard}
}

func (s *opportunityService) Create(ctx context.Context, userID string, req *dto.CreateOpportunityRequest) (*domain.Opportunity, error) {
	if ok, msg := req.Validate(); !ok {
		return nil, invalidInput(msg)
	}

	member, err := s.guard.Membership(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	opp := &domain.Opportunity{
		ID:          uuid.New().String(),
		VenueID:     member.VenueID,
		ArtistName:  req.ArtistName,
		ArtistInfo:  req.ArtistInfo,
		Stage:       req.Stage,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.oppRepo.Create(ctx, opp); err != nil {
		return nil, err
	}
	return opp, nil
}

func (s *opportunityService) Get(ctx context.Context, userID, oppID string) (*domain.Opportunity, error) {
	member, err := s.guard.Membership(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.fetchScoped(ctx, member, oppID)
}

func (s *opportunityService) List(ctx context.Context, userID string) ([]*domain.Opportunity, error) {
	member, err := s.guard.Membership(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.oppRepo.ListByVenue(ctx, member.VenueID)
}

func (s *opportunityService) Update(ctx context.Context, userID, oppID string, req *dto.UpdateOpportunityRequest) (*domain.Opportunity, error) {
	if ok, msg := req.Validate(); !ok {
		return nil, invalidInput(msg)
	}

	member, err := s.guard.Membership(ctx, userID)
	if err != nil {
		return nil, err
	}
	opp, err := s.fetchScoped(ctx, member, oppID)
	if err != nil {
		return nil, err
	}

	if req.ArtistName != nil {
		opp.ArtistName = *req.ArtistName
	}
	if req.ArtistInfo != nil {
		opp.ArtistInfo = *req.ArtistInfo
	}
	if req.Stage != nil {
		opp.Stage = *req.Stage
	}
	if req.Description != nil {
		opp.Description = *req.Description
	}

	if err := s.oppRepo.Update(ctx, opp); err != nil {
		return nil, err
	}
	return opp, nil
}

func (s *opportunityService) LinkEvent(ctx context.Context, userID, oppID, eventID string) (*domain.Opportunity, error) {
	member, err := s.guard.Membership(ctx, userID)
	if err != nil {
		return nil, err
	}
	opp, err := s.fetchScoped(ctx, member, oppID)
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}
	if err := s.guard.RequireVenue(member, event.VenueID); err != nil {
		return nil, err
	}

	if err := s.oppRepo.LinkEvent(ctx, opp.ID, event.ID); err != nil {
		return nil, err
	}
	opp.EventID = &event.ID
	return opp, nil
}

func (s *opportunityService) Delete(ctx context.Context, userID, oppID string) error {
	member, err := s.guard.Membership(ctx, userID)
	if err != nil {
		return err
	}
	opp, err := s.fetchScoped(ctx, member, oppID)
	if err != nil {
		return err
	}
	return s.oppRepo.Delete(ctx, opp.ID)
}

func (s *opportunityService) fetchScoped(ctx context.Context, member *domain.VenueMember, oppID string) (*domain.Opportunity, error) {
	opp, err := s.oppRepo.GetByID(ctx, oppID)
	if err != nil {
		return nil, err
	}
	if opp == nil {
		return nil, ErrNotFound
	}
	if err := s.guard.RequireVenue(member, opp.VenueID); err != nil {
		return nil, err
	}
	return opp, nil
}
