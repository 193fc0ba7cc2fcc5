package dto

import "testing"

func TestCreateVenueRequestValidate(t *testing.T) {
	tests := []struct {
		name         string
		req          CreateVenueRequest
		wantOK       bool
		wantCapacity int
	}{
		{
			name:         "valid",
			req:          CreateVenueRequest{Name: "Blue Room", City: "Austin", State: "TX", Zipcode: "78701", Capacity: "500"},
			wantOK:       true,
			wantCapacity: 500,
		},
		{
			name:         "capacity with surrounding spaces",
			req:          CreateVenueRequest{Name: "Blue Room", City: "Austin", State: "TX", Zipcode: "78701", Capacity: " 250 "},
			wantOK:       true,
			wantCapacity: 250,
		},
		{
			name:   "missing name",
			req:    CreateVenueRequest{Name: "  ", City: "Austin", State: "TX", Zipcode: "78701", Capacity: "500"},
			wantOK: false,
		},
		{
			name:   "missing city",
			req:    CreateVenueRequest{Name: "Blue Room", State: "TX", Zipcode: "78701", Capacity: "500"},
			wantOK: false,
		},
		{
			name:   "non-numeric capacity",
			req:    CreateVenueRequest{Name: "Blue Room", City: "Austin", State: "TX", Zipcode: "78701", Capacity: "lots"},
			wantOK: false,
		},
		{
			name:   "zero capacity",
			req:    CreateVenueRequest{Name: "Blue Room", City: "Austin", State: "TX", Zipcode: "78701", Capacity: "0"},
			wantOK: false,
		},
		{
			name:   "negative capacity",
			req:    CreateVenueRequest{Name: "Blue Room", City: "Austin", State: "TX", Zipcode: "78701", Capacity: "-5"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			capacity, ok, msg := tt.req.Validate()
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v (%s)", tt.wantOK, ok, msg)
			}
			if ok && capacity != tt.wantCapacity {
				t.Errorf("expected capacity %d, got %d", tt.wantCapacity, capacity)
			}
			if !ok && msg == "" {
				t.Error("rejection must carry a message")
			}
		})
	}
}
