package dto

import (
	"strings"

	"github.com/backlinehq/backline/internal/domain"
)

// CreateContactRequest creates a contact in the caller's venue.
type CreateContactRequest struct {
	Type  string `json:"type" binding:"required"`
	Name  string `json:"name" binding:"required,max=255"`
	Email string `json:"email" binding:"omitempty,max=255"`
	Phone string `json:"phone" binding:"omitempty,max=50"`
	Notes string `json:"notes" binding:"omitempty"`
}

// Validate requires type and name; type must be artist, agent, or other.
func (r *CreateContactRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.Name) == "" {
		return false, "name is required"
	}
	if !domain.ValidContactType(r.Type) {
		return false, "type must be one of artist, agent, other"
	}
	return true, ""
}

// UpdateContactRequest updates a contact. Same contract as creation.
type UpdateContactRequest struct {
	Type  string `json:"type" binding:"required"`
	Name  string `json:"name" binding:"required,max=255"`
	Email string `json:"email" binding:"omitempty,max=255"`
	Phone string `json:"phone" binding:"omitempty,max=50"`
	Notes string `json:"notes" binding:"omitempty"`
}

// Validate applies the same rules as contact creation.
func (r *UpdateContactRequest) Validate() (bool, string) {
	c := CreateContactRequest(*r)
	return c.Validate()
}
