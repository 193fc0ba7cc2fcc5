package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/backlinehq/backline/internal/domain"
	"github.com/backlinehq/backline/internal/dto"
	"github.com/backlinehq/backline/internal/repository"
)

// MemberService manages venue memberships: listing, invitation, removal,
// and the analytics flag. Invitation, removal, and flag changes are
// admin-gated.
type MemberService interface {
	List(ctx context.Context, userID string) ([]dto.MemberResponse, error)
	// Invite adds a member by email, creating the user when the email is
	// unseen. A user holding any membership, in this venue or another,
	// is ErrConflict.
	Invite(ctx context.Context, userID string, req *dto.InviteMemberRequest) (*dto.MemberResponse, error)
	// Remove deletes a membership. Removing an admin is ErrConflict.
	Remove(ctx context.Context, userID, memberID string) error
	// SetAnalytics toggles a member's analytics flag.
	SetAnalytics(ctx context.Context, userID, memberID string, canView bool) (*dto.MemberResponse, error)
}

type memberService struct {
	memberRepo repository.MemberRepository
	userRepo   repository.UserRepository
	venueRepo  repository.VenueRepository
	guard      *Guard
	notifier   InviteNotifier
}

// NewMemberService creates a new MemberService.
func NewMemberService(memberRepo repository.MemberRepository, userRepo repository.UserRepository, venueRepo repository.VenueRepository, guard *Guard, notifier InviteNotifier) MemberService {
	return &memberService{
		memberRepo: memberRepo,
		userRepo:   userRepo,
		venueRepo:  venueRepo,
		guard:      guard,
		notifier:   notifier,
	}
}

func (s *memberService) List(ctx context.Context, userID string) ([]dto.MemberResponse, error) {
	member, err := s.guard.Membership(ctx, userID)
	if err != nil {
		return nil, err
	}

	members, err := s.memberRepo.ListByVenue(ctx, member.VenueID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.MemberResponse, 0, len(members))
	for _, m := range members {
		resp := toMemberResponse(m)
		if user, err := s.userRepo.GetByID(ctx, m.UserID); err == nil && user != nil {
			resp.Email = user.Email
			resp.Name = user.Name
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *memberService) Invite(ctx context.Context, userID string, req *dto.InviteMemberRequest) (*dto.MemberResponse, error) {
	if ok, msg := req.Validate(); !ok {
		return nil, invalidInput(msg)
	}

	caller, err := s.guard.Membership(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.RequireAdmin(caller); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user = &domain.User{
			ID:        uuid.New().String(),
			Email:     req.Email,
			Name:      req.DerivedName(),
			CreatedAt: time.Now(),
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	}

	// One membership per user, system-wide. Same rule as venue creation.
	existing, err := s.memberRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.VenueID == caller.VenueID {
			return nil, conflict("user is already a member of this venue")
		}
		return nil, conflict("user already belongs to a venue")
	}

	member := &domain.VenueMember{
		ID:               uuid.New().String(),
		VenueID:          caller.VenueID,
		UserID:           user.ID,
		Role:             domain.RoleMember,
		CanViewAnalytics: false,
		CreatedAt:        time.Now(),
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	venueName := ""
	if venue, err := s.venueRepo.GetByID(ctx, caller.VenueID); err == nil && venue != nil {
		venueName = venue.Name
	}
	// Delivery failure does not undo the membership.
	_ = s.notifier.NotifyInvite(ctx, user.Email, venueName)

	resp := toMemberResponse(member)
	resp.Email = user.Email
	resp.Name = user.Name
	return &resp, nil
}

func (s *memberService) Remove(ctx context.Context, userID, memberID string) error {
	caller, err := s.guard.Membership(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.guard.RequireAdmin(caller); err != nil {
		return err
	}

	target, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrNotFound
	}
	if err := s.guard.RequireVenue(caller, target.VenueID); err != nil {
		return err
	}
	// No admin-demotion or removal path exists; the last admin can never
	// disappear through here.
	if target.IsAdmin() {
		return conflict("admin members cannot be removed")
	}

	return s.memberRepo.Delete(ctx, target.ID)
}

func (s *memberService) SetAnalytics(ctx context.Context, userID, memberID string, canView bool) (*dto.MemberResponse, error) {
	caller, err := s.guard.Membership(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.RequireAdmin(caller); err != nil {
		return nil, err
	}

	target, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrNotFound
	}
	if err := s.guard.RequireVenue(caller, target.VenueID); err != nil {
		return nil, err
	}

	if err := s.memberRepo.SetAnalytics(ctx, target.ID, canView); err != nil {
		return nil, err
	}
	target.CanViewAnalytics = canView
	resp := toMemberResponse(target)
	return &resp, nil
}

func toMemberResponse(member *domain.VenueMember) dto.MemberResponse {
	return dto.MemberResponse{
		ID:               member.ID,
		VenueID:          member.VenueID,
		UserID:           member.UserID,
		Role:             member.Role,
		CanViewAnalytics: member.CanViewAnalytics,
		CreatedAt:        member.CreatedAt.Format(time.RFC3339),
	}
}
