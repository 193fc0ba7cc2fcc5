package dto

import (
	"testing"
	"time"
)

func TestParseEventDate(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"2026-03-01T20:00:00Z", false},
		{"2026-03-01T20:00:00+07:00", false},
		{"2026-03-01", false},
		{"03/01/2026", true},
		{"not a date", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseEventDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseEventDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestCreateEventRequestValidate(t *testing.T) {
	req := CreateEventRequest{
		Title:     "Jazz Night",
		StartDate: "2026-03-01T20:00:00Z",
		EndDate:   "2026-03-02T01:00:00Z",
	}
	start, end, ok, msg := req.Validate()
	if !ok {
		t.Fatalf("expected valid, got %s", msg)
	}
	if !start.Before(end) {
		t.Errorf("parsed dates out of order: %v, %v", start, end)
	}
	if req.ArtistName != "Jazz Night" {
		t.Errorf("blank artist name must default to title, got %q", req.ArtistName)
	}
}

func TestCreateEventRequestArtistNameKept(t *testing.T) {
	req := CreateEventRequest{
		Title:      "Jazz Night",
		StartDate:  "2026-03-01",
		EndDate:    "2026-03-01",
		ArtistName: "Ella's Trio",
	}
	if _, _, ok, msg := req.Validate(); !ok {
		t.Fatalf("expected valid, got %s", msg)
	}
	if req.ArtistName != "Ella's Trio" {
		t.Errorf("provided artist name must be kept, got %q", req.ArtistName)
	}
}

func TestCreateEventRequestValidateFailures(t *testing.T) {
	tests := []struct {
		name string
		req  CreateEventRequest
	}{
		{"blank title", CreateEventRequest{Title: " ", StartDate: "2026-03-01", EndDate: "2026-03-01"}},
		{"bad start", CreateEventRequest{Title: "X", StartDate: "soon", EndDate: "2026-03-01"}},
		{"bad end", CreateEventRequest{Title: "X", StartDate: "2026-03-01", EndDate: "later"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, ok, msg := tt.req.Validate(); ok || msg == "" {
				t.Errorf("expected rejection with message, got ok=%v msg=%q", ok, msg)
			}
		})
	}
}

func TestUpdateEventRequestAppliesArtistDefault(t *testing.T) {
	req := UpdateEventRequest{
		Title:     "Renamed Show",
		StartDate: "2026-05-01",
		EndDate:   "2026-05-01",
	}
	if _, _, ok, msg := req.Validate(); !ok {
		t.Fatalf("expected valid, got %s", msg)
	}
	if req.ArtistName != "Renamed Show" {
		t.Errorf("update must apply the artist default too, got %q", req.ArtistName)
	}
}

func TestParseEventDateBareDateMidnight(t *testing.T) {
	d, err := ParseEventDate("2026-03-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if !d.Equal(want) {
		t.Errorf("expected %v, got %v", want, d)
	}
}
