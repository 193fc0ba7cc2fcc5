package domain

import "time"

// Venue is the tenant: the unit of data isolation. Every other entity in the
// system is reachable from exactly one venue.
type Venue struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Zipcode   string    `json:"zipcode"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Member roles
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// VenueMember links one user to exactly one venue. A user has at most one
// membership system-wide; the single-venue model is enforced at creation.
type VenueMember struct {
	ID               string    `json:"id"`
	VenueID          string    `json:"venue_id"`
	UserID           string    `json:"user_id"`
	Role             string    `json:"role"`
	CanViewAnalytics bool      `json:"can_view_analytics"`
	CreatedAt        time.Time `json:"created_at"`
}

// IsAdmin reports whether the member holds the admin role.
func (m *VenueMember) IsAdmin() bool {
	return m.Role == RoleAdmin
}

// User is the authenticated identity. Authentication itself lives outside
// this service; users are created here only when invited by email.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
