package dto

import "strings"

// InviteMemberRequest invites a user to the caller's venue by email. If no
// user exists with that email one is created with a display name derived
// from the local part of the address.
type InviteMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Validate checks that the email is present and plausibly addressed.
func (r *InviteMemberRequest) Validate() (bool, string) {
	email := strings.TrimSpace(r.Email)
	if email == "" {
		return false, "email is required"
	}
	if !strings.Contains(email, "@") {
		return false, "email is not valid"
	}
	return true, ""
}

// DerivedName returns the display name for a newly created user: the local
// part of the email, before the @.
func (r *InviteMemberRequest) DerivedName() string {
	email := strings.TrimSpace(r.Email)
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

// SetAnalyticsRequest toggles a member's analytics flag. Admin only.
type SetAnalyticsRequest struct {
	CanViewAnalytics *bool `json:"can_view_analytics" binding:"required"`
}

// MemberResponse is a venue member with its user's identity attached.
type MemberResponse struct {
	ID               string `json:"id"`
	VenueID          string `json:"venue_id"`
	UserID           string `json:"user_id"`
	Email            string `json:"email,omitempty"`
	Name             string `json:"name,omitempty"`
	Role             string `json:"role"`
	CanViewAnalytics bool   `json:"can_view_analytics"`
	CreatedAt        string `json:"created_at"`
}
