package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/backlinehq/backline/internal/domain"
	"github.com/backlinehq/backline/internal/dto"
	"github.com/backlinehq/backline/internal/repository"
)

// ContactService manages venue contacts (artists, agents, others).
type ContactService interface {
	Create(ctx context.Context, userID string, req *dto.CreateContactRequest) (*domain.Contact, error)
	Get(ctx context.Context, userID, contactID string) (*domain.Contact, error)
	List(ctx context.Context, userID string) ([]*domain.Contact, error)
	Update(ctx context.Context, userID, contactID string, req *dto.UpdateContactRequest) (*domain.Contact, error)
	Delete(ctx context.Context, userID, contactID string) error
}

type contactService struct {
	contactRepo repository.ContactRepository
	guard       *Guard
}

// NewContactService creates a new ContactService.
func NewContactService(contactRepo repository.ContactRepository, guard *Guard) ContactService {
	return &contactService{contactRepo: contactRepo, guard: guard}
}

func (s *contactService) Create(ctx context.Context, userID string, req *dto.CreateContactRequest) (*domain.Contact, error) {
	if ok, msg := req.Validate(); !ok {
		return nil, invalidInput(msg)
	}

	member, err := s.guard.Membership(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	contact := &domain.Contact{
		ID:        uuid.New().String(),
		VenueID:   member.VenueID,
		Type:      req.Type,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *contactService) Get(ctx context.Context, userID, contactID string) (*domain.Contact, error) {
	member, err := s.guard.Membership(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.fetchScoped(ctx, member, contactID)
}

func (s *contactService) List(ctx context.Context, userID string) ([]*domain.Contact, error) {
	member, err := s.guard.Membership(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.contactRepo.ListByVenue(ctx, member.VenueID)
}

func (s *contactService) Update(ctx context.Context, userID, contactID string, req *dto.UpdateContactRequest) (*domain.Contact, error) {
	if ok, msg := req.Validate(); !ok {
		return nil, invalidInput(msg)
	}

	member, err := s.guard.Membership(ctx, userID)
	if err != nil {
		return nil, err
	}
	contact, err := s.fetchScoped(ctx, member, contactID)
	if err != nil {
		return nil, err
	}

	contact.Type = req.Type
	contact.Name = req.Name
	contact.Email = req.Email
	contact.Phone = req.Phone
	contact.Notes = req.Notes

	if err := s.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *contactService) Delete(ctx context.Context, userID, contactID string) error {
	member, err := s.guard.Membership(ctx, userID)
	if err != nil {
		return err
	}
	contact, err := s.fetchScoped(ctx, member, contactID)
	if err != nil {
		return err
	}
	return s.contactRepo.Delete(ctx, contact.ID)
}

func (s *contactService) fetchScoped(ctx context.Context, member *domain.VenueMember, contactID string) (*domain.Contact, error) {
	contact, err := s.contactRepo.GetByID(ctx, contactID)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrNotFound
	}
	if err := s.guard.RequireVenue(member, contact.VenueID); err != nil {
		return nil, err
	}
	return contact, nil
}
