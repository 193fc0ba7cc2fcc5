package dto

import "strings"

// CreateNoteRequest adds a note to an event or opportunity.
type CreateNoteRequest struct {
	Content string `json:"content" binding:"required"`
}

// Validate trims the content and rejects whitespace-only notes.
func (r *CreateNoteRequest) Validate() (bool, string) {
	r.Content = strings.TrimSpace(r.Content)
	if r.Content == "" {
		return false, "content is required"
	}
	return true, ""
}

// CreateCommentRequest adds a comment to an event or opportunity.
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// Validate trims the content and rejects whitespace-only comments.
func (r *CreateCommentRequest) Validate() (bool, string) {
	r.Content = strings.TrimSpace(r.Content)
	if r.Content == "" {
		return false, "content is required"
	}
	return true, ""
}

// CreateDocumentRequest attaches a document by reference URL.
type CreateDocumentRequest struct {
	Name string `json:"name" binding:"required,max=255"`
	URL  string `json:"url" binding:"required,url"`
	Type string `json:"type" binding:"omitempty,max=100"`
}

// Validate requires name and url; type stays optional and null when absent.
func (r *CreateDocumentRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.Name) == "" {
		return false, "name is required"
	}
	if strings.TrimSpace(r.URL) == "" {
		return false, "url is required"
	}
	return true, ""
}

// DocType returns the optional document type, nil when not provided.
func (r *CreateDocumentRequest) DocType() *string {
	t := strings.TrimSpace(r.Type)
	if t == "" {
		return nil
	}
	return &t
}

// CreateLabelRequest adds a label to an opportunity.
type CreateLabelRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// Validate trims the name and rejects whitespace-only labels.
func (r *CreateLabelRequest) Validate() (bool, string) {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return false, "name is required"
	}
	return true, ""
}

// CreateTagRequest adds a tag to an event or contact.
type CreateTagRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// Validate trims the name and rejects whitespace-only tags.
func (r *CreateTagRequest) Validate() (bool, string) {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return false, "name is required"
	}
	return true, ""
}
