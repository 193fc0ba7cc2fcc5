package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/backlinehq/backline/internal/domain"
)

func perfEvent(f *fixture, id, venueID, title, genre string, start time.Time, netIncome *float64) *domain.Event {
	e := f.addEvent(id, venueID, title, start)
	e.Performance = &domain.Performance{
		ID:             "perf-" + id,
		EventID:        id,
		EventDate:      start,
		Genre:          genre,
		EventName:      title,
		NetEventIncome: netIncome,
	}
	return e
}

func ptr(v float64) *float64 { return &v }

func newAnalyticsFixture() (*fixture, AnalyticsService) {
	f := newFixture()
	f.addMember("m1", "venue-1", "user-1", domain.RoleMember, true)
	f.addMember("m2", "venue-2", "user-2", domain.RoleMember, true)

	day := func(d int) time.Time { return time.Date(2026, 3, d, 20, 0, 0, 0, time.UTC) }

	perfEvent(f, "jazz", "venue-1", "Jazz Night", "Jazz", day(1), ptr(-150))
	perfEvent(f, "rock", "venue-1", "Rock Show", "Rock", day(10), ptr(2000))
	perfEvent(f, "folk", "venue-1", "Folk Evening", "Folk", day(20), nil) // nil income = break-even
	f.addEvent("bare", "venue-1", "No Financials", day(15))              // no performance
	perfEvent(f, "foreign", "venue-2", "Their Jazz", "Jazz", day(5), ptr(500))

	return f, NewAnalyticsService(f.eventRepo, f.guard)
}

func resultIDs(t *testing.T, svc AnalyticsService, userID string, filter domain.PerformanceFilter) []string {
	t.Helper()
	report, err := svc.FilterPerformance(context.Background(), userID, filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Total != len(report.Events) {
		t.Errorf("total %d does not match %d events", report.Total, len(report.Events))
	}
	ids := make([]string, 0, len(report.Events))
	for _, r := range report.Events {
		ids = append(ids, r.Event.ID)
	}
	return ids
}

func TestAnalytics_EventsWithoutPerformanceExcluded(t *testing.T) {
	_, svc := newAnalyticsFixture()

	ids := resultIDs(t, svc, "user-1", domain.PerformanceFilter{})
	for _, id := range ids {
		if id == "bare" {
			t.Error("event without a performance must never appear")
		}
	}
	if len(ids) != 3 {
		t.Errorf("expected 3 events, got %v", ids)
	}
}

func TestAnalytics_OrderedNewestFirst(t *testing.T) {
	_, svc := newAnalyticsFixture()

	ids := resultIDs(t, svc, "user-1", domain.PerformanceFilter{})
	want := []string{"folk", "rock", "jazz"}
	for i, id := range want {
		if ids[i] != id {
			t.Fatalf("expected order %v, got %v", want, ids)
		}
	}
}

func TestAnalytics_TenantScoped(t *testing.T) {
	_, svc := newAnalyticsFixture()

	ids := resultIDs(t, svc, "user-1", domain.PerformanceFilter{Genre: "Jazz"})
	if len(ids) != 1 || ids[0] != "jazz" {
		t.Errorf("venue-2's jazz event must not leak, got %v", ids)
	}

	_, err := svc.FilterPerformance(context.Background(), "stranger", domain.PerformanceFilter{})
	if !errors.Is(err, ErrNoMembership) {
		t.Errorf("expected ErrNoMembership, got %v", err)
	}
}

func TestAnalytics_ProfitBuckets(t *testing.T) {
	_, svc := newAnalyticsFixture()

	tests := []struct {
		bucket domain.ProfitBucket
		want   []string
	}{
		{domain.ProfitBucketProfit, []string{"rock"}},
		{domain.ProfitBucketLoss, []string{"jazz"}},
		{domain.ProfitBucketBreakEven, []string{"folk"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.bucket), func(t *testing.T) {
			ids := resultIDs(t, svc, "user-1", domain.PerformanceFilter{Profit: tt.bucket})
			if len(ids) != len(tt.want) || ids[0] != tt.want[0] {
				t.Errorf("expected %v, got %v", tt.want, ids)
			}
		})
	}
}

func TestAnalytics_ProfitAllIsNoOp(t *testing.T) {
	_, svc := newAnalyticsFixture()

	unfiltered := resultIDs(t, svc, "user-1", domain.PerformanceFilter{})
	all := resultIDs(t, svc, "user-1", domain.PerformanceFilter{Profit: domain.ProfitBucketAll})
	if len(unfiltered) != len(all) {
		t.Fatalf("profit=all must equal omitting the parameter: %v vs %v", unfiltered, all)
	}
	for i := range unfiltered {
		if unfiltered[i] != all[i] {
			t.Fatalf("profit=all must equal omitting the parameter: %v vs %v", unfiltered, all)
		}
	}
}

func TestAnalytics_FilterComposition(t *testing.T) {
	_, svc := newAnalyticsFixture()

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	all := resultIDs(t, svc, "user-1", domain.PerformanceFilter{})
	dated := resultIDs(t, svc, "user-1", domain.PerformanceFilter{DateFrom: &from, DateTo: &to})
	datedGenre := resultIDs(t, svc, "user-1", domain.PerformanceFilter{DateFrom: &from, DateTo: &to, Genre: "Rock"})

	if !isSubset(datedGenre, dated) || !isSubset(dated, all) {
		t.Errorf("adding filters must only narrow: %v ⊄ %v ⊄ %v", datedGenre, dated, all)
	}
	if len(dated) != 2 {
		t.Errorf("date range should keep jazz and rock, got %v", dated)
	}
	if len(datedGenre) != 1 || datedGenre[0] != "rock" {
		t.Errorf("expected only rock, got %v", datedGenre)
	}
}

func TestAnalytics_SearchMatchesAcrossFields(t *testing.T) {
	f, svc := newAnalyticsFixture()

	// Search is case-insensitive and spans title, artist name, and
	// performance event name.
	f.eventRepo.events["rock"].ArtistName = "The Amplifiers"

	ids := resultIDs(t, svc, "user-1", domain.PerformanceFilter{Search: "amplif"})
	if len(ids) != 1 || ids[0] != "rock" {
		t.Errorf("expected artist-name match, got %v", ids)
	}

	ids = resultIDs(t, svc, "user-1", domain.PerformanceFilter{Search: "JAZZ"})
	if len(ids) != 1 || ids[0] != "jazz" {
		t.Errorf("expected case-insensitive title match, got %v", ids)
	}

	ids = resultIDs(t, svc, "user-1", domain.PerformanceFilter{Search: "zzzz"})
	if len(ids) != 0 {
		t.Errorf("expected no matches, got %v", ids)
	}
}

func TestAnalytics_Classification(t *testing.T) {
	_, svc := newAnalyticsFixture()

	report, err := svc.FilterPerformance(context.Background(), "user-1", domain.PerformanceFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range report.Events {
		var want domain.ProfitBucket
		switch r.Event.ID {
		case "rock":
			want = domain.ProfitBucketProfit
		case "jazz":
			want = domain.ProfitBucketLoss
		case "folk":
			want = domain.ProfitBucketBreakEven
		}
		if r.ProfitBucket != want {
			t.Errorf("%s: expected bucket %s, got %s", r.Event.ID, want, r.ProfitBucket)
		}
	}
}

func isSubset(sub, super []string) bool {
	set := make(map[string]bool, len(super))
	for _, s := range super {
		set[s] = true
	}
	for _, s := range sub {
		if !set[s] {
			return false
		}
	}
	return true
}
