package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/backlinehq/backline/internal/domain"
	"github.com/backlinehq/backline/internal/dto"
	"github.com/backlinehq/backline/internal/repository"
)

// EventService manages venue events. Every operation resolves the caller's
// membership and checks the event's owning venue through the guard.
type EventService interface {
	Create(ctx context.Context, userID string, req *dto.CreateEventRequest) (*domain.Event, error)
	Get(ctx context.Context, userID, eventID string) (*domain.Event, error)
	List(ctx context.Context, userID string) ([]*domain.Event, error)
	Update(ctx context.Context, userID, eventID string, req *dto.UpdateEventRequest) (*domain.Event, error)
	Delete(ctx context.Context, userID, eventID string) error
}

type eventService struct {
	eventRepo repository.EventRepository
	guard     *Guard
}

// NewEventService creates a new EventService.
func NewEventService(eventRepo repository.EventRepository, guard *Guard) EventService {
	return &eventService{eventRepo: eventRepo, guard: guard}
}

func (s *eventService) Create(ctx context.Context, userID string, req *dto.CreateEventRequest) (*domain.Event, error) {
	start, end, ok, msg := req.Validate()
	if !ok {
		return nil, invalidInput(msg)
	}

	member, err := s.guard.Membership(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	event := &domain.Event{
		ID:          uuid.New().String(),
		VenueID:     member.VenueID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
		ArtistName:  req.ArtistName,
		SupportActs: req.SupportActs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) Get(ctx context.Context, userID, eventID string) (*domain.Event, error) {
	member, err := s.guard.Membership(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.fetchScoped(ctx, member, eventID)
}

func (s *eventService) List(ctx context.Context, userID string) ([]*domain.Event, error) {
	member, err := s.guard.Membership(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.ListByVenue(ctx, member.VenueID)
}

func (s *eventService) Update(ctx context.Context, userID, eventID string, req *dto.UpdateEventRequest) (*domain.Event, error) {
	start, end, ok, msg := req.Validate()
	if !ok {
		return nil, invalidInput(msg)
	}

	member, err := s.guard.Membership(ctx, userID)
	if err != nil {
		return nil, err
	}
	event, err := s.fetchScoped(ctx, member, eventID)
	if err != nil {
		return nil, err
	}

	event.Title = req.Title
	event.Description = req.Description
	event.StartDate = start
	event.EndDate = end
	event.ArtistName = req.ArtistName
	event.SupportActs = req.SupportActs

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, userID, eventID string) error {
	member, err := s.guard.Membership(ctx, userID)
	if err != nil {
		return err
	}
	event, err := s.fetchScoped(ctx, member, eventID)
	if err != nil {
		return err
	}
	return s.eventRepo.Delete(ctx, event.ID)
}

// fetchScoped loads an event and applies the tenant guard. Absent and
// foreign events are both ErrNotFound.
func (s *eventService) fetchScoped(ctx context.Context, member *domain.VenueMember, eventID string) (*domain.Event, error) {
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
	return event, nil
}
