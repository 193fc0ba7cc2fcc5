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

// PostgresOpportunityRepository implements OpportunityRepository using PostgreSQL.
type PostgresOpportunityRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresOpportunityRepository creates a new PostgresOpportunityRepository.
func NewPostgresOpportunityRepository(pool *pgxpool.Pool) *PostgresOpportunityRepository {
	return &PostgresOpportunityRepository{pool: pool}
}

// Create creates a new opportunity.
func (r *PostgresOpportunityRepository) Create(ctx context.Context, opp *domain.Opportunity) error {
	query := `
		INSERT INTO opportunities (id, venue_id, artist_name, artist_info, stage, description, event_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		opp.ID,
		opp.VenueID,
		opp.ArtistName,
		nullStringOrValue(opp.ArtistInfo),
		opp.Stage,
		nullStringOrValue(opp.Description),
		opp.EventID,
		opp.CreatedAt,
		opp.UpdatedAt,
	)
	return err
}

// GetByID retrieves an opportunity by ID.
func (r *PostgresOpportunityRepository) GetByID(ctx context.Context, id string) (*domain.Opportunity, error) {
	query := `
		SELECT id, venue_id, artist_name, COALESCE(artist_info, ''), stage,
		       COALESCE(description, ''), event_id, created_at, updated_at
		FROM opportunities
		WHERE id = $1
	`
	opp := &domain.Opportunity{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&opp.ID,
		&opp.VenueID,
		&opp.ArtistName,
		&opp.ArtistInfo,
		&opp.Stage,
		&opp.Description,
		&opp.EventID,
		&opp.CreatedAt,
		&opp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return opp, nil
}

// ListByVenue retrieves all opportunities for a venue, newest first.
func (r *PostgresOpportunityRepository) ListByVenue(ctx context.Context, venueID string) ([]*domain.Opportunity, error) {
	query := `
		SELECT id, venue_id, artist_name, COALESCE(artist_info, ''), stage,
		       COALESCE(description, ''), event_id, created_at, updated_at
		FROM opportunities
		WHERE venue_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	opps := make([]*domain.Opportunity, 0)
	for rows.Next() {
		opp := &domain.Opportunity{}
		err := rows.Scan(
			&opp.ID,
			&opp.VenueID,
			&opp.ArtistName,
			&opp.ArtistInfo,
			&opp.Stage,
			&opp.Description,
			&opp.EventID,
			&opp.CreatedAt,
			&opp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		opps = append(opps, opp)
	}
	return opps, rows.Err()
}

// Update updates an opportunity's fields.
func (r *PostgresOpportunityRepository) Update(ctx context.Context, opp *domain.Opportunity) error {
	query := `
		UPDATE opportunities
		SET artist_name = $2, artist_info = $3, stage = $4, description = $5, updated_at = $6
		WHERE id = $1
	`
	opp.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		opp.ID,
		opp.ArtistName,
		nullStringOrValue(opp.ArtistInfo),
		opp.Stage,
		nullStringOrValue(opp.Description),
		opp.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("opportunity not found")
	}
	return nil
}

// LinkEvent attaches the booked event to the opportunity.
func (r *PostgresOpportunityRepository) LinkEvent(ctx context.Context, id, eventID string) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE opportunities SET event_id = $2, updated_at = $3 WHERE id = $1`,
		id, eventID, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("opportunity not found")
	}
	return nil
}

// Delete removes an opportunity.
func (r *PostgresOpportunityRepository) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM opportunities WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("opportunity not found")
	}
	return nil
}
