package domain

import "time"

// DefaultOpportunityStage is the pipeline stage assigned to opportunities
// created without one. Stages are free text; this is the only named default.
const DefaultOpportunityStage = "New Prospect"

// Opportunity is a prospective booking in a venue's pipeline. Once booked it
// may be linked to the resulting event.
type Opportunity struct {
	ID          string    `json:"id"`
	VenueID     string    `json:"venue_id"`
	ArtistName  string    `json:"artist_name"`
	ArtistInfo  string    `json:"artist_info,omitempty"`
	Stage       string    `json:"stage"`
	Description string    `json:"description,omitempty"`
	EventID     *string   `json:"event_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Label is a short tag attached to an opportunity.
type Label struct {
	ID            string    `json:"id"`
	OpportunityID string    `json:"opportunity_id"`
	Name          string    `json:"name"`
	CreatedAt     time.Time `json:"created_at"`
}
