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

// PostgresContactRepository implements ContactRepository using PostgreSQL.
type PostgresContactRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresContactRepository creates a new PostgresContactRepository.
func NewPostgresContactRepository(pool *pgxpool.Pool) *PostgresContactRepository {
	return &PostgresContactRepository{pool: pool}
}

// Create creates a new contact.
func (r *PostgresContactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	query := `
		INSERT INTO contacts (id, venue_id, type, name, email, phone, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		contact.ID,
		contact.VenueID,
		contact.Type,
		contact.Name,
		nullStringOrValue(contact.Email),
		nullStringOrValue(contact.Phone),
		nullStringOrValue(contact.Notes),
		contact.CreatedAt,
		contact.UpdatedAt,
	)
	return err
}

// GetByID retrieves a contact by ID.
func (r *PostgresContactRepository) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	query := `
		SELECT id, venue_id, type, name, COALESCE(email, ''), COALESCE(phone, ''),
		       COALESCE(notes, ''), created_at, updated_at
		FROM contacts
		WHERE id = $1
	`
	contact := &domain.Contact{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&contact.ID,
		&contact.VenueID,
		&contact.Type,
		&contact.Name,
		&contact.Email,
		&contact.Phone,
		&contact.Notes,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return contact, nil
}

// ListByVenue retrieves all contacts for a venue, alphabetically.
func (r *PostgresContactRepository) ListByVenue(ctx context.Context, venueID string) ([]*domain.Contact, error) {
	query := `
		SELECT id, venue_id, type, name, COALESCE(email, ''), COALESCE(phone, ''),
		       COALESCE(notes, ''), created_at, updated_at
		FROM contacts
		WHERE venue_id = $1
		ORDER BY name
	`
	rows, err := r.pool.Query(ctx, query, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := make([]*domain.Contact, 0)
	for rows.Next() {
		contact := &domain.Contact{}
		err := rows.Scan(
			&contact.ID,
			&contact.VenueID,
			&contact.Type,
			&contact.Name,
			&contact.Email,
			&contact.Phone,
			&contact.Notes,
			&contact.CreatedAt,
			&contact.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, contact)
	}
	return contacts, rows.Err()
}

// Update updates a contact.
func (r *PostgresContactRepository) Update(ctx context.Context, contact *domain.Contact) error {
	query := `
		UPDATE contacts
		SET type = $2, name = $3, email = $4, phone = $5, notes = $6, updated_at = $7
		WHERE id = $1
	`
	contact.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		contact.ID,
		contact.Type,
		contact.Name,
		nullStringOrValue(contact.Email),
		nullStringOrValue(contact.Phone),
		nullStringOrValue(contact.Notes),
		contact.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("contact not found")
	}
	return nil
}

// Delete removes a contact.
func (r *PostgresContactRepository) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("contact not found")
	}
	return nil
}
