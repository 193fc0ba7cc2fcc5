package dto

import (
	"strings"

	"github.com/backlinehq/backline/internal/domain"
)

// CreateOpportunityRequest creates a prospective booking.
type CreateOpportunityRequest struct {
	ArtistName  string `json:"artist_name" binding:"required,max=255"`
	ArtistInfo  string `json:"artist_info" binding:"omitempty"`
	Stage       string `json:"stage" binding:"omitempty,max=100"`
	Description string `json:"description" binding:"omitempty"`
}

// Validate requires a non-empty artist name and defaults the pipeline stage.
func (r *CreateOpportunityRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.ArtistName) == "" {
		return false, "artist_name is required"
	}
	if strings.TrimSpace(r.Stage) == "" {
		r.Stage = domain.DefaultOpportunityStage
	}
	return true, ""
}

// UpdateOpportunityRequest updates an opportunity. Stage keeps its current
// value when omitted rather than re-defaulting.
type UpdateOpportunityRequest struct {
	ArtistName  *string `json:"artist_name" binding:"omitempty,max=255"`
	ArtistInfo  *string `json:"artist_info" binding:"omitempty"`
	Stage       *string `json:"stage" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty"`
}

// Validate rejects an empty update and a blank artist name.
func (r *UpdateOpportunityRequest) Validate() (bool, string) {
	if r.ArtistName == nil && r.ArtistInfo == nil && r.Stage == nil && r.Description == nil {
		return false, "at least one field must be provided for update"
	}
	if r.ArtistName != nil && strings.TrimSpace(*r.ArtistName) == "" {
		return false, "artist_name cannot be empty"
	}
	return true, ""
}

// LinkEventRequest links a booked opportunity to its resulting event.
type LinkEventRequest struct {
	EventID string `json:"event_id" binding:"required"`
}
