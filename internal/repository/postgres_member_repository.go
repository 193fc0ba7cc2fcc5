package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/backlinehq/backline/internal/domain"
)

// PostgresMemberRepository implements MemberRepository using PostgreSQL.
type PostgresMemberRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresMemberRepository creates a new PostgresMemberRepository.
func NewPostgresMemberRepository(pool *pgxpool.Pool) *PostgresMemberRepository {
	return &PostgresMemberRepository{pool: pool}
}

const memberColumns = `id, venue_id, user_id, role, can_view_analytics, created_at`

// Create creates a new venue membership.
func (r *PostgresMemberRepository) Create(ctx context.Context, member *domain.VenueMember) error {
	query := `
		INSERT INTO venue_members (id, venue_id, user_id, role, can_view_analytics, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		member.ID,
		member.VenueID,
		member.UserID,
		member.Role,
		member.CanViewAnalytics,
		member.CreatedAt,
	)
	return err
}

// GetByID retrieves a membership by ID.
func (r *PostgresMemberRepository) GetByID(ctx context.Context, id string) (*domain.VenueMember, error) {
	query := fmt.Sprintf(`SELECT %s FROM venue_members WHERE id = $1`, memberColumns)
	return r.scanMember(r.pool.QueryRow(ctx, query, id))
}

// GetByUserID retrieves the user's single membership. LIMIT 1 keeps the
// behavior defined if defective data ever holds more than one row.
func (r *PostgresMemberRepository) GetByUserID(ctx context.Context, userID string) (*domain.VenueMember, error) {
	query := fmt.Sprintf(`SELECT %s FROM venue_members WHERE user_id = $1 LIMIT 1`, memberColumns)
	return r.scanMember(r.pool.QueryRow(ctx, query, userID))
}

// ListByVenue retrieves all memberships for a venue.
func (r *PostgresMemberRepository) ListByVenue(ctx context.Context, venueID string) ([]*domain.VenueMember, error) {
	query := fmt.Sprintf(`SELECT %s FROM venue_members WHERE venue_id = $1 ORDER BY created_at`, memberColumns)
	rows, err := r.pool.Query(ctx, query, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]*domain.VenueMember, 0)
	for rows.Next() {
		member := &domain.VenueMember{}
		if err := rows.Scan(
			&member.ID,
			&member.VenueID,
			&member.UserID,
			&member.Role,
			&member.CanViewAnalytics,
			&member.CreatedAt,
		); err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, rows.Err()
}

// SetAnalytics updates a member's analytics flag.
func (r *PostgresMemberRepository) SetAnalytics(ctx context.Context, id string, canView bool) error {
	result, err := r.pool.Exec(ctx, `UPDATE venue_members SET can_view_analytics = $2 WHERE id = $1`, id, canView)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("membership not found")
	}
	return nil
}

// Delete removes a membership.
func (r *PostgresMemberRepository) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM venue_members WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("membership not found")
	}
	return nil
}

func (r *PostgresMemberRepository) scanMember(row pgx.Row) (*domain.VenueMember, error) {
	member := &domain.VenueMember{}
	err := row.Scan(
		&member.ID,
		&member.VenueID,
		&member.UserID,
		&member.Role,
		&member.CanViewAnalytics,
		&member.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return member, nil
}
