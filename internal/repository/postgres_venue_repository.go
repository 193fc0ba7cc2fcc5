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

// PostgresVenueRepository implements VenueRepository using PostgreSQL.
type PostgresVenueRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresVenueRepository creates a new PostgresVenueRepository.
func NewPostgresVenueRepository(pool *pgxpool.Pool) *PostgresVenueRepository {
	return &PostgresVenueRepository{pool: pool}
}

// CreateWithAdmin creates the venue and its first admin membership in one
// transaction so neither half is ever observable alone.
func (r *PostgresVenueRepository) CreateWithAdmin(ctx context.Context, venue *domain.Venue, member *domain.VenueMember) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO venues (id, name, city, state, zipcode, capacity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, venue.ID, venue.Name, venue.City, venue.State, venue.Zipcode, venue.Capacity, venue.CreatedAt, venue.UpdatedAt)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO venue_members (id, venue_id, user_id, role, can_view_analytics, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, member.ID, member.VenueID, member.UserID, member.Role, member.CanViewAnalytics, member.CreatedAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// GetByID retrieves a venue by ID.
func (r *PostgresVenueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	query := `
		SELECT id, name, city, state, zipcode, capacity, created_at, updated_at
		FROM venues
		WHERE id = $1
	`
	venue := &domain.Venue{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&venue.ID,
		&venue.Name,
		&venue.City,
		&venue.State,
		&venue.Zipcode,
		&venue.Capacity,
		&venue.CreatedAt,
		&venue.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return venue, nil
}

// Update updates a venue's details.
func (r *PostgresVenueRepository) Update(ctx context.Context, venue *domain.Venue) error {
	query := `
		UPDATE venues
		SET name = $2, city = $3, state = $4, zipcode = $5, capacity = $6, updated_at = $7
		WHERE id = $1
	`
	venue.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		venue.ID,
		venue.Name,
		venue.City,
		venue.State,
		venue.Zipcode,
		venue.Capacity,
		venue.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("venue not found")
	}
	return nil
}
