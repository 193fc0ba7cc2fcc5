package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/backlinehq/backline/internal/domain"
)

// Child-entity repositories. Notes, comments, documents, labels, and tags
// share the same access shape: create, fetch by id (for the parent-venue
// guard), list by parent, delete.

// PostgresNoteRepository implements NoteRepository using PostgreSQL.
type PostgresNoteRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresNoteRepository creates a new PostgresNoteRepository.
func NewPostgresNoteRepository(pool *pgxpool.Pool) *PostgresNoteRepository {
	return &PostgresNoteRepository{pool: pool}
}

// Create creates a note.
func (r *PostgresNoteRepository) Create(ctx context.Context, note *domain.Note) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO notes (id, parent_type, parent_id, content, author_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, note.ID, note.ParentType, note.ParentID, note.Content, note.AuthorID, note.CreatedAt)
	return err
}

// GetByID retrieves a note by ID.
func (r *PostgresNoteRepository) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	note := &domain.Note{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, parent_type, parent_id, content, author_id, created_at FROM notes WHERE id = $1`, id,
	).Scan(&note.ID, &note.ParentType, &note.ParentID, &note.Content, &note.AuthorID, &note.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return note, nil
}

// ListByParent retrieves all notes under a parent entity.
func (r *PostgresNoteRepository) ListByParent(ctx context.Context, parentType, parentID string) ([]*domain.Note, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, parent_type, parent_id, content, author_id, created_at
		FROM notes
		WHERE parent_type = $1 AND parent_id = $2
		ORDER BY created_at DESC
	`, parentType, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make([]*domain.Note, 0)
	for rows.Next() {
		note := &domain.Note{}
		if err := rows.Scan(&note.ID, &note.ParentType, &note.ParentID, &note.Content, &note.AuthorID, &note.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

// Delete removes a note.
func (r *PostgresNoteRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.pool, "notes", id)
}

// PostgresCommentRepository implements CommentRepository using PostgreSQL.
type PostgresCommentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository.
func NewPostgresCommentRepository(pool *pgxpool.Pool) *PostgresCommentRepository {
	return &PostgresCommentRepository{pool: pool}
}

// Create creates a comment.
func (r *PostgresCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO comments (id, parent_type, parent_id, content, author_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, comment.ID, comment.ParentType, comment.ParentID, comment.Content, comment.AuthorID, comment.CreatedAt)
	return err
}

// GetByID retrieves a comment by ID.
func (r *PostgresCommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	comment := &domain.Comment{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, parent_type, parent_id, content, author_id, created_at FROM comments WHERE id = $1`, id,
	).Scan(&comment.ID, &comment.ParentType, &comment.ParentID, &comment.Content, &comment.AuthorID, &comment.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return comment, nil
}

// ListByParent retrieves all comments under a parent entity.
func (r *PostgresCommentRepository) ListByParent(ctx context.Context, parentType, parentID string) ([]*domain.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, parent_type, parent_id, content, author_id, created_at
		FROM comments
		WHERE parent_type = $1 AND parent_id = $2
		ORDER BY created_at
	`, parentType, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]*domain.Comment, 0)
	for rows.Next() {
		comment := &domain.Comment{}
		if err := rows.Scan(&comment.ID, &comment.ParentType, &comment.ParentID, &comment.Content, &comment.AuthorID, &comment.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

// Delete removes a comment.
func (r *PostgresCommentRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.pool, "comments", id)
}

// PostgresDocumentRepository implements DocumentRepository using PostgreSQL.
type PostgresDocumentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresDocumentRepository creates a new PostgresDocumentRepository.
func NewPostgresDocumentRepository(pool *pgxpool.Pool) *PostgresDocumentRepository {
	return &PostgresDocumentRepository{pool: pool}
}

// Create creates a document reference.
func (r *PostgresDocumentRepository) Create(ctx context.Context, doc *domain.Document) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO documents (id, parent_type, parent_id, name, url, type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, doc.ID, doc.ParentType, doc.ParentID, doc.Name, doc.URL, doc.Type, doc.CreatedAt)
	return err
}

// GetByID retrieves a document by ID.
func (r *PostgresDocumentRepository) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	doc := &domain.Document{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, parent_type, parent_id, name, url, type, created_at FROM documents WHERE id = $1`, id,
	).Scan(&doc.ID, &doc.ParentType, &doc.ParentID, &doc.Name, &doc.URL, &doc.Type, &doc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}

// ListByParent retrieves all documents under a parent entity.
func (r *PostgresDocumentRepository) ListByParent(ctx context.Context, parentType, parentID string) ([]*domain.Document, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, parent_type, parent_id, name, url, type, created_at
		FROM documents
		WHERE parent_type = $1 AND parent_id = $2
		ORDER BY created_at DESC
	`, parentType, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]*domain.Document, 0)
	for rows.Next() {
		doc := &domain.Document{}
		if err := rows.Scan(&doc.ID, &doc.ParentType, &doc.ParentID, &doc.Name, &doc.URL, &doc.Type, &doc.CreatedAt); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// Delete removes a document reference.
func (r *PostgresDocumentRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.pool, "documents", id)
}

// PostgresLabelRepository implements LabelRepository using PostgreSQL.
type PostgresLabelRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresLabelRepository creates a new PostgresLabelRepository.
func NewPostgresLabelRepository(pool *pgxpool.Pool) *PostgresLabelRepository {
	return &PostgresLabelRepository{pool: pool}
}

// Create creates a label.
func (r *PostgresLabelRepository) Create(ctx context.Context, label *domain.Label) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO labels (id, opportunity_id, name, created_at)
		VALUES ($1, $2, $3, $4)
	`, label.ID, label.OpportunityID, label.Name, label.CreatedAt)
	return err
}

// GetByID retrieves a label by ID.
func (r *PostgresLabelRepository) GetByID(ctx context.Context, id string) (*domain.Label, error) {
	label := &domain.Label{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, opportunity_id, name, created_at FROM labels WHERE id = $1`, id,
	).Scan(&label.ID, &label.OpportunityID, &label.Name, &label.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return label, nil
}

// ListByOpportunity retrieves all labels on an opportunity.
func (r *PostgresLabelRepository) ListByOpportunity(ctx context.Context, opportunityID string) ([]*domain.Label, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, opportunity_id, name, created_at FROM labels WHERE opportunity_id = $1 ORDER BY created_at`,
		opportunityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	labels := make([]*domain.Label, 0)
	for rows.Next() {
		label := &domain.Label{}
		if err := rows.Scan(&label.ID, &label.OpportunityID, &label.Name, &label.CreatedAt); err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}
	return labels, rows.Err()
}

// Delete removes a label.
func (r *PostgresLabelRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.pool, "labels", id)
}

// PostgresTagRepository implements TagRepository using PostgreSQL.
type PostgresTagRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTagRepository creates a new PostgresTagRepository.
func NewPostgresTagRepository(pool *pgxpool.Pool) *PostgresTagRepository {
	return &PostgresTagRepository{pool: pool}
}

// Create creates a tag.
func (r *PostgresTagRepository) Create(ctx context.Context, tag *domain.Tag) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO tags (id, parent_type, parent_id, name, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, tag.ID, tag.ParentType, tag.ParentID, tag.Name, tag.CreatedAt)
	return err
}

// GetByID retrieves a tag by ID.
func (r *PostgresTagRepository) GetByID(ctx context.Context, id string) (*domain.Tag, error) {
	tag := &domain.Tag{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, parent_type, parent_id, name, created_at FROM tags WHERE id = $1`, id,
	).Scan(&tag.ID, &tag.ParentType, &tag.ParentID, &tag.Name, &tag.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return tag, nil
}

// ListByParent retrieves all tags under a parent entity.
func (r *PostgresTagRepository) ListByParent(ctx context.Context, parentType, parentID string) ([]*domain.Tag, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, parent_type, parent_id, name, created_at
		FROM tags
		WHERE parent_type = $1 AND parent_id = $2
		ORDER BY created_at
	`, parentType, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make([]*domain.Tag, 0)
	for rows.Next() {
		tag := &domain.Tag{}
		if err := rows.Scan(&tag.ID, &tag.ParentType, &tag.ParentID, &tag.Name, &tag.CreatedAt); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// Delete removes a tag.
func (r *PostgresTagRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.pool, "tags", id)
}

func deleteByID(ctx context.Context, pool *pgxpool.Pool, table, id string) error {
	result, err := pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s row not found", table)
	}
	return nil
}
