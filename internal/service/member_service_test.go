package service

import (
	"context"
	"errors"
	"testing"

	"github.com/backlinehq/backline/internal/domain"
	"github.com/backlinehq/backline/internal/dto"
)

// recordingNotifier captures invite deliveries.
type recordingNotifier struct {
	emails []string
	fail   bool
}

func (n *recordingNotifier) NotifyInvite(ctx context.Context, email, venueName string) error {
	n.emails = append(n.emails, email)
	if n.fail {
		return errors.New("delivery failed")
	}
	return nil
}

func newMemberFixture() (*fixture, *recordingNotifier, MemberService) {
	f := newFixture()
	f.addVenue("venue-1", "Blue Room")
	f.addVenue("venue-2", "Red Room")
	f.addMember("admin-m", "venue-1", "admin-1", domain.RoleAdmin, true)
	f.addMember("plain-m", "venue-1", "member-1", domain.RoleMember, false)
	f.addMember("other-m", "venue-2", "other-1", domain.RoleAdmin, true)
	notifier := &recordingNotifier{}
	svc := NewMemberService(f.memberRepo, f.userRepo, f.venueRepo, f.guard, notifier)
	return f, notifier, svc
}

func TestMemberService_InviteNewUser(t *testing.T) {
	f, notifier, svc := newMemberFixture()
	ctx := context.Background()

	member, err := svc.Invite(ctx, "admin-1", &dto.InviteMemberRequest{Email: "jo@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if member.Role != domain.RoleMember {
		t.Errorf("invited member must get the member role, got %s", member.Role)
	}
	if member.CanViewAnalytics {
		t.Error("invited member must start without analytics access")
	}
	if member.Name != "jo" {
		t.Errorf("expected derived name jo, got %s", member.Name)
	}

	user, err := f.userRepo.GetByEmail(ctx, "jo@example.com")
	if err != nil || user == nil {
		t.Fatal("expected user to be created for unseen email")
	}
	if len(notifier.emails) != 1 || notifier.emails[0] != "jo@example.com" {
		t.Errorf("expected one invite notification, got %v", notifier.emails)
	}
}

func TestMemberService_InviteExistingMember(t *testing.T) {
	f, _, svc := newMemberFixture()
	ctx := context.Background()

	f.userRepo.users["u-existing"] = &domain.User{ID: "u-existing", Email: "member@example.com"}
	f.addMember("m-existing", "venue-1", "u-existing", domain.RoleMember, false)

	_, err := svc.Invite(ctx, "admin-1", &dto.InviteMemberRequest{Email: "member@example.com"})
	if !errors.Is(err, ErrConflict) {
		t.Errorf("re-inviting an existing member must conflict, got %v", err)
	}
}

func TestMemberService_InviteMemberOfAnotherVenue(t *testing.T) {
	f, notifier, svc := newMemberFixture()
	ctx := context.Background()

	// u2 already belongs to venue-2; venue-1's admin invites the same email.
	f.userRepo.users["u2"] = &domain.User{ID: "u2", Email: "taken@example.com"}
	f.addMember("m2", "venue-2", "u2", domain.RoleMember, false)

	_, err := svc.Invite(ctx, "admin-1", &dto.InviteMemberRequest{Email: "taken@example.com"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("inviting another venue's member must conflict, got %v", err)
	}

	memberships := 0
	for _, m := range f.memberRepo.members {
		if m.UserID == "u2" {
			memberships++
		}
	}
	if memberships != 1 {
		t.Errorf("u2 must hold exactly one membership, got %d", memberships)
	}
	if len(notifier.emails) != 0 {
		t.Errorf("no invite must be delivered on conflict, got %v", notifier.emails)
	}
}

func TestMemberService_InviteDeliveryFailureDoesNotUndo(t *testing.T) {
	f, notifier, svc := newMemberFixture()
	notifier.fail = true
	ctx := context.Background()

	member, err := svc.Invite(ctx, "admin-1", &dto.InviteMemberRequest{Email: "flaky@example.com"})
	if err != nil {
		t.Fatalf("delivery failure must not fail the invite: %v", err)
	}
	stored, _ := f.memberRepo.GetByID(ctx, member.ID)
	if stored == nil {
		t.Error("membership must persist even when delivery fails")
	}
}

func TestMemberService_InviteRequiresAdmin(t *testing.T) {
	_, _, svc := newMemberFixture()
	ctx := context.Background()

	_, err := svc.Invite(ctx, "member-1", &dto.InviteMemberRequest{Email: "x@example.com"})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}

	_, err = svc.Invite(ctx, "stranger", &dto.InviteMemberRequest{Email: "x@example.com"})
	if !errors.Is(err, ErrNoMembership) {
		t.Errorf("expected ErrNoMembership, got %v", err)
	}
}

func TestMemberService_Remove(t *testing.T) {
	f, _, svc := newMemberFixture()
	ctx := context.Background()

	if err := svc.Remove(ctx, "admin-1", "plain-m"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m, _ := f.memberRepo.GetByID(ctx, "plain-m"); m != nil {
		t.Error("member should be gone after removal")
	}
}

func TestMemberService_RemoveAdminConflicts(t *testing.T) {
	_, _, svc := newMemberFixture()

	err := svc.Remove(context.Background(), "admin-1", "admin-m")
	if !errors.Is(err, ErrConflict) {
		t.Errorf("removing an admin must conflict, got %v", err)
	}
}

func TestMemberService_RemoveCrossTenant(t *testing.T) {
	_, _, svc := newMemberFixture()

	// other-m belongs to venue-2; venue-1's admin must see not-found.
	err := svc.Remove(context.Background(), "admin-1", "other-m")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-tenant removal must read as not found, got %v", err)
	}
}

func TestMemberService_SetAnalytics(t *testing.T) {
	f, _, svc := newMemberFixture()
	ctx := context.Background()

	resp, err := svc.SetAnalytics(ctx, "admin-1", "plain-m", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.CanViewAnalytics {
		t.Error("flag should be set in the response")
	}
	stored, _ := f.memberRepo.GetByID(ctx, "plain-m")
	if !stored.CanViewAnalytics {
		t.Error("flag should be persisted")
	}

	// Non-admin cannot toggle.
	if _, err := svc.SetAnalytics(ctx, "member-1", "admin-m", false); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}

	// Cross-tenant target reads as not found.
	if _, err := svc.SetAnalytics(ctx, "admin-1", "other-m", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemberService_List(t *testing.T) {
	f, _, svc := newMemberFixture()
	ctx := context.Background()

	f.userRepo.users["admin-1"] = &domain.User{ID: "admin-1", Email: "admin@example.com", Name: "Admin"}

	members, err := svc.List(ctx, "member-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 members in venue-1, got %d", len(members))
	}
	for _, m := range members {
		if m.VenueID != "venue-1" {
			t.Errorf("listing leaked a member from %s", m.VenueID)
		}
		if m.UserID == "admin-1" && m.Email != "admin@example.com" {
			t.Errorf("expected user email attached, got %q", m.Email)
		}
	}

	if _, err := svc.List(ctx, "stranger"); !errors.Is(err, ErrNoMembership) {
		t.Errorf("expected ErrNoMembership, got %v", err)
	}
}
