package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/backlinehq/backline/internal/domain"
)

// PostgresEventRepository implements EventRepository using PostgreSQL.
type PostgresEventRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresEventRepository creates a new PostgresEventRepository.
func NewPostgresEventRepository(pool *pgxpool.Pool) *PostgresEventRepository {
	return &PostgresEventRepository{pool: pool}
}

// Create creates a new event.
func (r *PostgresEventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (id, venue_id, title, description, start_date, end_date, artist_name, support_acts, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		event.ID,
		event.VenueID,
		event.Title,
		nullStringOrValue(event.Description),
		event.StartDate,
		event.EndDate,
		event.ArtistName,
		nullStringOrValue(event.SupportActs),
		event.CreatedAt,
		event.UpdatedAt,
	)
	return err
}

// GetByID retrieves an event by ID, without its performance detail.
func (r *PostgresEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT id, venue_id, title, COALESCE(description, ''), start_date, end_date,
		       artist_name, COALESCE(support_acts, ''), created_at, updated_at
		FROM events
		WHERE id = $1
	`
	event := &domain.Event{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.VenueID,
		&event.Title,
		&event.Description,
		&event.StartDate,
		&event.EndDate,
		&event.ArtistName,
		&event.SupportActs,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return event, nil
}

// ListByVenue retrieves all events for a venue, newest start date first.
func (r *PostgresEventRepository) ListByVenue(ctx context.Context, venueID string) ([]*domain.Event, error) {
	query := `
		SELECT id, venue_id, title, COALESCE(description, ''), start_date, end_date,
		       artist_name, COALESCE(support_acts, ''), created_at, updated_at
		FROM events
		WHERE venue_id = $1
		ORDER BY start_date DESC
	`
	rows, err := r.pool.Query(ctx, query, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

// ListWithPerformance retrieves the venue's events that have an attached
// performance, applying the filter's date range (inclusive on the
// performance event date), exact genre, and case-insensitive text search
// across event title, artist name, and performance event name. Ordered by
// event start date descending; ties follow PostgreSQL retrieval order and
// are not deterministic. The profit bucket is deliberately NOT applied here;
// it is a post-filter in the analytics service.
func (r *PostgresEventRepository) ListWithPerformance(ctx context.Context, venueID string, filter domain.PerformanceFilter) ([]*domain.Event, error) {
	whereClause := "WHERE e.venue_id = $1"
	args := []interface{}{venueID}
	argIndex := 2

	if filter.DateFrom != nil {
		whereClause += fmt.Sprintf(" AND p.event_date >= $%d", argIndex)
		args = append(args, *filter.DateFrom)
		argIndex++
	}
	if filter.DateTo != nil {
		whereClause += fmt.Sprintf(" AND p.event_date <= $%d", argIndex)
		args = append(args, *filter.DateTo)
		argIndex++
	}
	if filter.Genre != "" {
		whereClause += fmt.Sprintf(" AND p.genre = $%d", argIndex)
		args = append(args, filter.Genre)
		argIndex++
	}
	if filter.Search != "" {
		whereClause += fmt.Sprintf(" AND (e.title ILIKE $%d OR e.artist_name ILIKE $%d OR p.event_name ILIKE $%d)", argIndex, argIndex, argIndex)
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}

	query := fmt.Sprintf(`
		SELECT e.id, e.venue_id, e.title, COALESCE(e.description, ''), e.start_date, e.end_date,
		       e.artist_name, COALESCE(e.support_acts, ''), e.created_at, e.updated_at,
		       p.id, p.event_date, p.genre, p.event_name, p.artist_id, p.agent_id, p.net_event_income
		FROM events e
		INNER JOIN performances p ON p.event_id = e.id
		%s
		ORDER BY e.start_date DESC
	`, whereClause)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		event := &domain.Event{}
		perf := &domain.Performance{}
		err := rows.Scan(
			&event.ID,
			&event.VenueID,
			&event.Title,
			&event.Description,
			&event.StartDate,
			&event.EndDate,
			&event.ArtistName,
			&event.SupportActs,
			&event.CreatedAt,
			&event.UpdatedAt,
			&perf.ID,
			&perf.EventDate,
			&perf.Genre,
			&perf.EventName,
			&perf.ArtistID,
			&perf.AgentID,
			&perf.NetEventIncome,
		)
		if err != nil {
			return nil, err
		}
		perf.EventID = event.ID
		event.Performance = perf
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, event := range events {
		if err := r.loadPerformanceDetail(ctx, event.Performance); err != nil {
			return nil, err
		}
	}
	return events, nil
}

// loadPerformanceDetail attaches ticket levels and custom expenses.
func (r *PostgresEventRepository) loadPerformanceDetail(ctx context.Context, perf *domain.Performance) error {
	rows, err := r.pool.Query(ctx,
		`SELECT id, performance_id, name, price, count FROM ticket_levels WHERE performance_id = $1 ORDER BY price DESC`,
		perf.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var level domain.TicketLevel
		if err := rows.Scan(&level.ID, &level.PerformanceID, &level.Name, &level.Price, &level.Count); err != nil {
			return err
		}
		perf.TicketLevels = append(perf.TicketLevels, level)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	expRows, err := r.pool.Query(ctx,
		`SELECT id, performance_id, label, amount FROM custom_expenses WHERE performance_id = $1`,
		perf.ID)
	if err != nil {
		return err
	}
	defer expRows.Close()
	for expRows.Next() {
		var expense domain.CustomExpense
		if err := expRows.Scan(&expense.ID, &expense.PerformanceID, &expense.Label, &expense.Amount); err != nil {
			return err
		}
		perf.CustomExpenses = append(perf.CustomExpenses, expense)
	}
	return expRows.Err()
}

// Update updates an event.
func (r *PostgresEventRepository) Update(ctx context.Context, event *domain.Event) error {
	query := `
		UPDATE events
		SET title = $2, description = $3, start_date = $4, end_date = $5,
		    artist_name = $6, support_acts = $7, updated_at = $8
		WHERE id = $1
	`
	event.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		event.ID,
		event.Title,
		nullStringOrValue(event.Description),
		event.StartDate,
		event.EndDate,
		event.ArtistName,
		nullStringOrValue(event.SupportActs),
		event.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("event not found")
	}
	return nil
}

// Delete removes an event.
func (r *PostgresEventRepository) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("event not found")
	}
	return nil
}

func scanEvents(rows pgx.Rows) ([]*domain.Event, error) {
	events := make([]*domain.Event, 0)
	for rows.Next() {
		event := &domain.Event{}
		err := rows.Scan(
			&event.ID,
			&event.VenueID,
			&event.Title,
			&event.Description,
			&event.StartDate,
			&event.EndDate,
			&event.ArtistName,
			&event.SupportActs,
			&event.CreatedAt,
			&event.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// nullStringOrValue returns nil for empty strings, otherwise the value.
func nullStringOrValue(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
