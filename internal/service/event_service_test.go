package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/backlinehq/backline/internal/domain"
	"github.com/backlinehq/backline/internal/dto"
)

func newEventFixture() (*fixture, EventService) {
	f := newFixture()
	f.addMember("m1", "venue-1", "user-1", domain.RoleMember, false)
	f.addMember("m2", "venue-2", "user-2", domain.RoleMember, false)
	return f, NewEventService(f.eventRepo, f.guard)
}

func (f *fixture) addEvent(id, venueID, title string, start time.Time) *domain.Event {
	e := &domain.Event{
		ID: id, VenueID: venueID, Title: title, ArtistName: title,
		StartDate: start, EndDate: start.Add(4 * time.Hour),
	}
	f.eventRepo.events[id] = e
	return e
}

func TestEventService_Create(t *testing.T) {
	_, svc := newEventFixture()

	event, err := svc.Create(context.Background(), "user-1", &dto.CreateEventRequest{
		Title:     "Jazz Night",
		StartDate: "2026-03-01T20:00:00Z",
		EndDate:   "2026-03-02T01:00:00Z",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.VenueID != "venue-1" {
		t.Errorf("event must land in the caller's venue, got %s", event.VenueID)
	}
	if event.ArtistName != "Jazz Night" {
		t.Errorf("blank artist name must default to the title, got %q", event.ArtistName)
	}
}

func TestEventService_CreateValidation(t *testing.T) {
	_, svc := newEventFixture()
	ctx := context.Background()

	tests := []struct {
		name string
		req  *dto.CreateEventRequest
	}{
		{"missing title", &dto.CreateEventRequest{StartDate: "2026-03-01", EndDate: "2026-03-02"}},
		{"bad start date", &dto.CreateEventRequest{Title: "X", StartDate: "next tuesday", EndDate: "2026-03-02"}},
		{"bad end date", &dto.CreateEventRequest{Title: "X", StartDate: "2026-03-01", EndDate: "eventually"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, "user-1", tt.req); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestEventService_CreateBareDateAccepted(t *testing.T) {
	_, svc := newEventFixture()

	event, err := svc.Create(context.Background(), "user-1", &dto.CreateEventRequest{
		Title:     "Matinee",
		StartDate: "2026-03-01",
		EndDate:   "2026-03-01",
	})
	if err != nil {
		t.Fatalf("bare dates should parse: %v", err)
	}
	if event.StartDate.Year() != 2026 || event.StartDate.Month() != time.March {
		t.Errorf("unexpected parsed date %v", event.StartDate)
	}
}

func TestEventService_TenantIsolation(t *testing.T) {
	f, svc := newEventFixture()
	f.addEvent("evt-1", "venue-1", "Ours", time.Now())
	f.addEvent("evt-2", "venue-2", "Theirs", time.Now())
	ctx := context.Background()

	// Own event resolves.
	if _, err := svc.Get(ctx, "user-1", "evt-1"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	// Foreign event is indistinguishable from a missing one.
	if _, err := svc.Get(ctx, "user-1", "evt-2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign event, got %v", err)
	}
	if _, err := svc.Get(ctx, "user-1", "no-such"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing event, got %v", err)
	}

	// No membership reads as venue-not-found, not forbidden and not not-found.
	err := func() error { _, err := svc.Get(ctx, "stranger", "evt-1"); return err }()
	if !errors.Is(err, ErrNoMembership) {
		t.Errorf("expected ErrNoMembership, got %v", err)
	}

	// List only surfaces the caller's venue.
	events, err := svc.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 || events[0].ID != "evt-1" {
		t.Errorf("expected only evt-1, got %v", events)
	}
}

func TestEventService_Update(t *testing.T) {
	f, svc := newEventFixture()
	f.addEvent("evt-1", "venue-1", "Old Title", time.Now())
	ctx := context.Background()

	event, err := svc.Update(ctx, "user-1", "evt-1", &dto.UpdateEventRequest{
		Title:     "New Title",
		StartDate: "2026-04-01T19:00:00Z",
		EndDate:   "2026-04-01T23:00:00Z",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.Title != "New Title" {
		t.Errorf("title not updated: %s", event.Title)
	}
	if event.ArtistName != "New Title" {
		t.Errorf("artist default must track the new title, got %q", event.ArtistName)
	}

	// Updating a foreign event is not found.
	f.addEvent("evt-2", "venue-2", "Theirs", time.Now())
	_, err = svc.Update(ctx, "user-1", "evt-2", &dto.UpdateEventRequest{
		Title: "Hijack", StartDate: "2026-04-01", EndDate: "2026-04-02",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestEventService_Delete(t *testing.T) {
	f, svc := newEventFixture()
	f.addEvent("evt-1", "venue-1", "Ours", time.Now())
	f.addEvent("evt-2", "venue-2", "Theirs", time.Now())
	ctx := context.Background()

	if err := svc.Delete(ctx, "user-1", "evt-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e, _ := f.eventRepo.GetByID(ctx, "evt-1"); e != nil {
		t.Error("event should be deleted")
	}

	if err := svc.Delete(ctx, "user-1", "evt-2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if e, _ := f.eventRepo.GetByID(ctx, "evt-2"); e == nil {
		t.Error("foreign event must survive a cross-tenant delete attempt")
	}
}
