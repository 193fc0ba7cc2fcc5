package domain

import "time"

// Parent kinds for child entities. Every note, comment, document, and tag
// hangs off exactly one root tenant entity; tenant checks always go through
// the parent's venue.
const (
	ParentEvent       = "event"
	ParentOpportunity = "opportunity"
	ParentContact     = "contact"
)

// Note is a free-text note on an event or opportunity.
type Note struct {
	ID         string    `json:"id"`
	ParentType string    `json:"parent_type"`
	ParentID   string    `json:"parent_id"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"author_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Comment is a member comment on an event or opportunity.
type Comment struct {
	ID         string    `json:"id"`
	ParentType string    `json:"parent_type"`
	ParentID   string    `json:"parent_id"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"author_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Document is a stored-by-reference file attached to an event or
// opportunity. Only the URL is kept; storage lives elsewhere.
type Document struct {
	ID         string    `json:"id"`
	ParentType string    `json:"parent_type"`
	ParentID   string    `json:"parent_id"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	Type       *string   `json:"type,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Tag is a short label on an event or contact.
type Tag struct {
	ID         string    `json:"id"`
	ParentType string    `json:"parent_type"`
	ParentID   string    `json:"parent_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}
