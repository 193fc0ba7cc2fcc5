package service

import (
	"context"
	"sync"

	"github.com/backlinehq/backline/internal/domain"
	"github.com/backlinehq/backline/internal/dto"
	"github.com/backlinehq/backline/internal/repository"
	"github.com/backlinehq/backline/pkg/telemetry"
)

// AnalyticsService runs the performance analytics query: the caller's
// venue's events that have a financial record, filtered by date range,
// genre, text search, and profit bucket.
type AnalyticsService interface {
	// FilterPerformance returns the filtered, classified result set, newest
	// event start date first. The filter must come from
	// dto.PerformanceQuery.Parse so it is validated exactly once.
	FilterPerformance(ctx context.Context, userID string, filter domain.PerformanceFilter) (*dto.PerformanceReportResponse, error)
}

type analyticsService struct {
	eventRepo repository.EventRepository
	guard     *Guard
}

var (
	queriesOnce    sync.Once
	queriesCounter *telemetry.Counter
)

// analyticsQueries is the per-query counter, labeled by venue and requested
// profit bucket. Lazy so test and tool binaries never touch the meter.
func analyticsQueries() *telemetry.Counter {
	queriesOnce.Do(func() {
		queriesCounter, _ = telemetry.NewCounter(telemetry.MetricOpts{
			Name:        "analytics_performance_queries_total",
			Description: "Performance analytics queries served",
			Unit:        "1",
		})
	})
	return queriesCounter
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(eventRepo repository.EventRepository, guard *Guard) AnalyticsService {
	return &analyticsService{eventRepo: eventRepo, guard: guard}
}

func (s *analyticsService) FilterPerformance(ctx context.Context, userID string, filter domain.PerformanceFilter) (*dto.PerformanceReportResponse, error) {
	member, err := s.guard.Membership(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Date, genre, and search narrow the fetch; events without a
	// performance never appear. The profit bucket is applied afterwards on
	// the fetched set, so "all" and an absent bucket are the same query.
	events, err := s.eventRepo.ListWithPerformance(ctx, member.VenueID, filter)
	if err != nil {
		return nil, err
	}

	results := make([]dto.PerformanceEventResponse, 0, len(events))
	for _, event := range events {
		if !filter.MatchesProfit(event.Performance) {
			continue
		}
		results = append(results, dto.PerformanceEventResponse{
			Event:        event,
			ProfitBucket: domain.Classify(event.Performance.NetIncome()),
		})
	}

	if counter := analyticsQueries(); counter != nil {
		counter.Inc(ctx,
			telemetry.VenueIDAttr(member.VenueID),
			telemetry.ProfitBucketAttr(string(filter.Profit)),
		)
	}

	return &dto.PerformanceReportResponse{
		Events: results,
		Total:  len(results),
	}, nil
}
