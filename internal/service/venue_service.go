package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/backlinehq/backline/internal/domain"
	"github.com/backlinehq/backline/internal/dto"
	"github.com/backlinehq/backline/internal/repository"
)

// VenueService manages venue registration and venue details.
type VenueService interface {
	// Create registers a venue and makes the caller its first admin member,
	// atomically. Fails with ErrConflict if the caller already belongs to a
	// venue anywhere.
	Create(ctx context.Context, userID string, req *dto.CreateVenueRequest) (*dto.VenueResponse, error)
	// GetMine returns the caller's venue.
	GetMine(ctx context.Context, userID string) (*dto.VenueResponse, error)
	// Update updates the caller's venue details. Admin only.
	Update(ctx context.Context, userID string, req *dto.UpdateVenueRequest) (*dto.VenueResponse, error)
}

type venueService struct {
	venueRepo repository.VenueRepository
	guard     *Guard
}

// NewVenueService creates a new VenueService.
func NewVenueService(venueRepo repository.VenueRepository, guard *Guard) VenueService {
	return &venueService{venueRepo: venueRepo, guard: guard}
}

func (s *venueService) Create(ctx context.Context, userID string, req *dto.CreateVenueRequest) (*dto.VenueResponse, error) {
	capacity, ok, msg := req.Validate()
	if !ok {
		return nil, invalidInput(msg)
	}

	// One membership per user, system-wide.
	_, err := s.guard.Membership(ctx, userID)
	if err == nil {
		return nil, conflict("user already belongs to a venue")
	}
	if !errors.Is(err, ErrNoMembership) {
		return nil, err
	}

	now := time.Now()
	venue := &domain.Venue{
		ID:        uuid.New().String(),
		Name:      req.Name,
		City:      req.City,
		State:     req.State,
		Zipcode:   req.Zipcode,
		Capacity:  capacity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	member := &domain.VenueMember{
		ID:               uuid.New().String(),
		VenueID:          venue.ID,
		UserID:           userID,
		Role:             domain.RoleAdmin,
		CanViewAnalytics: true,
		CreatedAt:        now,
	}

	if err := s.venueRepo.CreateWithAdmin(ctx, venue, member); err != nil {
		return nil, err
	}
	return toVenueResponse(venue), nil
}

func (s *venueService) GetMine(ctx context.Context, userID string) (*dto.VenueResponse, error) {
	member, err := s.guard.Membership(ctx, userID)
	if err != nil {
		return nil, err
	}
	venue, err := s.venueRepo.GetByID(ctx, member.VenueID)
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return nil, ErrNotFound
	}
	return toVenueResponse(venue), nil
}

func (s *venueService) Update(ctx context.Context, userID string, req *dto.UpdateVenueRequest) (*dto.VenueResponse, error) {
	capacity, ok, msg := req.Validate()
	if !ok {
		return nil, invalidInput(msg)
	}

	member, err := s.guard.Membership(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.RequireAdmin(member); err != nil {
		return nil, err
	}

	venue, err := s.venueRepo.GetByID(ctx, member.VenueID)
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return nil, ErrNotFound
	}

	venue.Name = req.Name
	venue.City = req.City
	venue.State = req.State
	venue.Zipcode = req.Zipcode
	venue.Capacity = capacity

	if err := s.venueRepo.Update(ctx, venue); err != nil {
		return nil, err
	}
	return toVenueResponse(venue), nil
}

func toVenueResponse(venue *domain.Venue) *dto.VenueResponse {
	return &dto.VenueResponse{
		ID:        venue.ID,
		Name:      venue.Name,
		City:      venue.City,
		State:     venue.State,
		Zipcode:   venue.Zipcode,
		Capacity:  venue.Capacity,
		CreatedAt: venue.CreatedAt.Format(time.RFC3339),
		UpdatedAt: venue.UpdatedAt.Format(time.RFC3339),
	}
}
