package dto

import (
	"strconv"
	"strings"
)

// CreateVenueRequest registers a new venue. The caller becomes its first
// admin member in the same transaction.
type CreateVenueRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	City     string `json:"city" binding:"required,max=255"`
	State    string `json:"state" binding:"required,max=100"`
	Zipcode  string `json:"zipcode" binding:"required,max=20"`
	Capacity string `json:"capacity" binding:"required"`
}

// Validate checks required fields and parses capacity as a positive integer.
func (r *CreateVenueRequest) Validate() (int, bool, string) {
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.City) == "" ||
		strings.TrimSpace(r.State) == "" || strings.TrimSpace(r.Zipcode) == "" {
		return 0, false, "name, city, state, and zipcode are required"
	}
	capacity, err := strconv.Atoi(strings.TrimSpace(r.Capacity))
	if err != nil || capacity <= 0 {
		return 0, false, "capacity must be a positive integer"
	}
	return capacity, true, ""
}

// UpdateVenueRequest updates venue details. Admin only; all fields required,
// matching the create contract.
type UpdateVenueRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	City     string `json:"city" binding:"required,max=255"`
	State    string `json:"state" binding:"required,max=100"`
	Zipcode  string `json:"zipcode" binding:"required,max=20"`
	Capacity string `json:"capacity" binding:"required"`
}

// Validate applies the same rules as venue creation.
func (r *UpdateVenueRequest) Validate() (int, bool, string) {
	c := CreateVenueRequest(*r)
	return c.Validate()
}

// VenueResponse is the venue representation returned to clients.
type VenueResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zipcode   string `json:"zipcode"`
	Capacity  int    `json:"capacity"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// AnalyticsAccessResponse answers the analytics-access check. HasAccess is
// false, not an error, when the caller has no membership at all.
type AnalyticsAccessResponse struct {
	HasAccess bool `json:"has_access"`
}
