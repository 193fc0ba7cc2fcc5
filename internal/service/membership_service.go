package service

import (
	"context"
	"errors"

	"github.com/backlinehq/backline/internal/domain"
)

// MembershipService resolves authenticated identities to venue memberships
// and answers the analytics-access check.
type MembershipService interface {
	// Resolve returns the caller's membership or ErrNoMembership.
	Resolve(ctx context.Context, userID string) (*domain.VenueMember, error)
	// HasAnalyticsAccess reports whether the caller may view analytics.
	// A missing membership is a valid "no access" state, not an error.
	HasAnalyticsAccess(ctx context.Context, userID string) (bool, error)
}

type membershipService struct {
	guard *Guard
}

// NewMembershipService creates a new MembershipService.
func NewMembershipService(guard *Guard) MembershipService {
	return &membershipService{guard: guard}
}

func (s *membershipService) Resolve(ctx context.Context, userID string) (*domain.VenueMember, error) {
	return s.guard.Membership(ctx, userID)
}

func (s *membershipService) HasAnalyticsAccess(ctx context.Context, userID string) (bool, error) {
	member, err := s.guard.Membership(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNoMembership) {
			return false, nil
		}
		return false, err
	}
	return member.CanViewAnalytics, nil
}
