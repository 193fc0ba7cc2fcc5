package dto

import (
	"github.com/backlinehq/backline/internal/domain"
)

// PerformanceQuery carries the raw query parameters for the performance
// analytics endpoint. All five are optional and combine with AND; the text
// search ORs across event title, artist name, and performance event name.
type PerformanceQuery struct {
	DateFrom string `form:"date_from" binding:"omitempty"`
	DateTo   string `form:"date_to" binding:"omitempty"`
	Genre    string `form:"genre" binding:"omitempty,max=100"`
	Search   string `form:"search" binding:"omitempty,max=255"`
	Profit   string `form:"profit" binding:"omitempty"`
}

// Parse validates the query once at the boundary and returns the immutable
// filter the engine runs on. An unparseable date or unknown profit bucket is
// a client error, never a partial match.
func (q *PerformanceQuery) Parse() (domain.PerformanceFilter, bool, string) {
	var filter domain.PerformanceFilter

	if q.DateFrom != "" {
		t, err := ParseEventDate(q.DateFrom)
		if err != nil {
			return filter, false, "date_from is not a valid date"
		}
		filter.DateFrom = &t
	}
	if q.DateTo != "" {
		t, err := ParseEventDate(q.DateTo)
		if err != nil {
			return filter, false, "date_to is not a valid date"
		}
		filter.DateTo = &t
	}
	if !domain.ValidProfitBucket(q.Profit) {
		return filter, false, "profit must be one of all, profitable, break-even, loss"
	}

	filter.Genre = q.Genre
	filter.Search = q.Search
	filter.Profit = domain.ProfitBucket(q.Profit)
	return filter, true, ""
}

// PerformanceEventResponse is one analytics row: the event with its
// financial record and derived profit classification.
type PerformanceEventResponse struct {
	Event        *domain.Event       `json:"event"`
	ProfitBucket domain.ProfitBucket `json:"profit_bucket"`
}

// PerformanceReportResponse is the ordered analytics result set, newest
// event start date first.
type PerformanceReportResponse struct {
	Events []PerformanceEventResponse `json:"events"`
	Total  int                        `json:"total"`
}
