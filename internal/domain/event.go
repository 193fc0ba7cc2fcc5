package domain

import "time"

// Event represents a scheduled event at a venue.
type Event struct {
	ID          string    `json:"id"`
	VenueID     string    `json:"venue_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	ArtistName  string    `json:"artist_name"`
	SupportActs string    `json:"support_acts,omitempty"`
	// Performance is the zero-or-one financial record attached to the event.
	// Events without one are invisible to performance analytics.
	Performance *Performance `json:"performance,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Performance is the financial record for an event. NetEventIncome is
// computed upstream (revenue minus total expenses) and consumed as given.
type Performance struct {
	ID             string          `json:"id"`
	EventID        string          `json:"event_id"`
	EventDate      time.Time       `json:"event_date"`
	Genre          string          `json:"genre"`
	EventName      string          `json:"event_name"`
	ArtistID       *string         `json:"artist_id,omitempty"`
	AgentID        *string         `json:"agent_id,omitempty"`
	NetEventIncome *float64        `json:"net_event_income,omitempty"`
	TicketLevels   []TicketLevel   `json:"ticket_levels,omitempty"`
	CustomExpenses []CustomExpense `json:"custom_expenses,omitempty"`
}

// NetIncome returns the net event income, treating an absent value as 0.
func (p *Performance) NetIncome() float64 {
	if p == nil || p.NetEventIncome == nil {
		return 0
	}
	return *p.NetEventIncome
}

// TicketLevel is a price tier with a seat count.
type TicketLevel struct {
	ID            string  `json:"id"`
	PerformanceID string  `json:"performance_id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Count         int     `json:"count"`
}

// CustomExpense is an ad-hoc labelled expense on a performance.
type CustomExpense struct {
	ID            string  `json:"id"`
	PerformanceID string  `json:"performance_id"`
	Label         string  `json:"label"`
	Amount        float64 `json:"amount"`
}

// ProfitBucket classifies a performance by its net event income.
type ProfitBucket string

const (
	ProfitBucketAll       ProfitBucket = "all"
	ProfitBucketProfit    ProfitBucket = "profitable"
	ProfitBucketBreakEven ProfitBucket = "break-even"
	ProfitBucketLoss      ProfitBucket = "loss"
)

// ValidProfitBucket reports whether s names a known bucket. The empty string
// is valid and means no profit filtering.
func ValidProfitBucket(s string) bool {
	switch ProfitBucket(s) {
	case "", ProfitBucketAll, ProfitBucketProfit, ProfitBucketBreakEven, ProfitBucketLoss:
		return true
	}
	return false
}

// Classify returns the bucket for a net income value.
func Classify(netIncome float64) ProfitBucket {
	switch {
	case netIncome > 0:
		return ProfitBucketProfit
	case netIncome < 0:
		return ProfitBucketLoss
	}
	return ProfitBucketBreakEven
}

// PerformanceFilter is the immutable, already-validated parameter set for the
// performance analytics query. Build it through dto.PerformanceQuery.Parse;
// a zero filter matches every event that has a performance.
type PerformanceFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	Genre    string
	Search   string
	Profit   ProfitBucket
}

// MatchesProfit reports whether a performance's net income falls in the
// filter's profit bucket. "all" and the empty bucket match everything.
func (f PerformanceFilter) MatchesProfit(p *Performance) bool {
	switch f.Profit {
	case "", ProfitBucketAll:
		return true
	}
	return Classify(p.NetIncome()) == f.Profit
}
