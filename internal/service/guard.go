package service

import (
	"context"

	"github.com/backlinehq/backline/internal/domain"
	"github.com/backlinehq/backline/internal/repository"
)

// Guard is the single tenant-isolation checkpoint. Every venue-scoped read
// or write resolves the caller's membership through it and compares the
// target's owning venue before touching data; admin-gated operations add a
// role check. Child entities are guarded through their parent's venue.
type Guard struct {
	memberRepo repository.MemberRepository
}

// NewGuard creates a new Guard.
func NewGuard(memberRepo repository.MemberRepository) *Guard {
	return &Guard{memberRepo: memberRepo}
}

// Membership resolves the caller's single venue membership. Returns
// ErrNoMembership when the identity has no venue; memberships are looked up
// fresh per request, never cached.
func (g *Guard) Membership(ctx context.Context, userID string) (*domain.VenueMember, error) {
	member, err := g.memberRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrNoMembership
	}
	return member, nil
}

// RequireVenue denies access to an entity owned by another venue. The
// denial wraps ErrNotFound so callers cannot distinguish a foreign entity
// from a nonexistent one.
func (g *Guard) RequireVenue(member *domain.VenueMember, venueID string) error {
	if member == nil {
		return ErrNoMembership
	}
	if member.VenueID != venueID {
		return ErrCrossTenant
	}
	return nil
}

// RequireAdmin denies role-gated operations to non-admin members.
func (g *Guard) RequireAdmin(member *domain.VenueMember) error {
	if member == nil {
		return ErrNoMembership
	}
	if !member.IsAdmin() {
		return ErrForbidden
	}
	return nil
}
