package dto

import (
	"strings"
	"time"
)

// Accepted timestamp layouts for event dates. RFC3339 first, bare date as a
// fallback for calendar-style clients.
var eventDateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseEventDate parses an event timestamp in any accepted layout.
func ParseEventDate(s string) (time.Time, error) {
	var err error
	var t time.Time
	for _, layout := range eventDateLayouts {
		t, err = time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// CreateEventRequest creates an event in the caller's venue.
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"omitempty"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	ArtistName  string `json:"artist_name" binding:"omitempty,max=255"`
	SupportActs string `json:"support_acts" binding:"omitempty"`
}

// Validate parses the dates and applies the artist-name default: a blank
// artist name falls back to the event title.
func (r *CreateEventRequest) Validate() (start, end time.Time, ok bool, msg string) {
	if strings.TrimSpace(r.Title) == "" {
		return start, end, false, "title is required"
	}
	start, err := ParseEventDate(r.StartDate)
	if err != nil {
		return start, end, false, "start_date is not a valid timestamp"
	}
	end, err = ParseEventDate(r.EndDate)
	if err != nil {
		return start, end, false, "end_date is not a valid timestamp"
	}
	if strings.TrimSpace(r.ArtistName) == "" {
		r.ArtistName = r.Title
	}
	return start, end, true, ""
}

// UpdateEventRequest updates an event. Same field contract as creation.
type UpdateEventRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"omitempty"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	ArtistName  string `json:"artist_name" binding:"omitempty,max=255"`
	SupportActs string `json:"support_acts" binding:"omitempty"`
}

// Validate applies the same rules as event creation.
func (r *UpdateEventRequest) Validate() (start, end time.Time, ok bool, msg string) {
	c := CreateEventRequest(*r)
	start, end, ok, msg = c.Validate()
	r.ArtistName = c.ArtistName
	return start, end, ok, msg
}
