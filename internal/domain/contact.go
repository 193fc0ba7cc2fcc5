package domain

import "time"

// Contact types
const (
	ContactTypeArtist = "artist"
	ContactTypeAgent  = "agent"
	ContactTypeOther  = "other"
)

// ValidContactType reports whether t is a known contact type.
func ValidContactType(t string) bool {
	switch t {
	case ContactTypeArtist, ContactTypeAgent, ContactTypeOther:
		return true
	}
	return false
}

// Contact is an artist, agent, or other person associated with a venue.
type Contact struct {
	ID        string    `json:"id"`
	VenueID   string    `json:"venue_id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
