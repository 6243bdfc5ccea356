package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"taskgen/internal/domain"
	"taskgen/internal/repository/models"
	"taskgen/internal/util"

	"github.com/jmoiron/sqlx"
)

// SQLXDocumentRepository implements domain.DocumentRepository using sqlx.
type SQLXDocumentRepository struct {
	db *sqlx.DB
}

func NewSQLXDocumentRepository(db *sqlx.DB) domain.DocumentRepository {
	return &SQLXDocumentRepository{db: db}
}

const documentColumns = `
	id "id",
	user_id "user_id",
	title "title",
	doc_date "doc_date",
	created_at "created_at",
	updated_at "updated_at",
	deleted_at "deleted_at"`

func (r *SQLXDocumentRepository) CreateDocument(ctx context.Context, document *domain.Document) error {
	now := time.Now()
	id := util.NewULID()
	if document.Date.IsZero() {
		document.Date = now
	}

	query := `INSERT INTO documents (
		id, user_id, title, doc_date, created_at, updated_at
	) VALUES (
		:1, :2, :3, :4, :5, :6
	)`

	_, err := r.db.ExecContext(ctx, query,
		id,
		document.UserID,
		document.Title,
		document.Date,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	document.ID = id
	document.CreatedAt = now
	document.UpdatedAt = now
	return nil
}

func (r *SQLXDocumentRepository) GetDocumentByID(ctx context.Context, id string) (*domain.Document, error) {
	var model models.Document
	query := `SELECT ` + documentColumns + `
	FROM documents
	WHERE id = :1
	AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &model, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document by id %s: %w", id, err)
	}
	return toDomainDocument(&model), nil
}

func (r *SQLXDocumentRepository) GetDocumentsByUserID(ctx context.Context, userID string) ([]*domain.Document, error) {
	var rows []models.Document
	query := `SELECT ` + documentColumns + `
	FROM documents
	WHERE user_id = :1
	AND deleted_at IS NULL
	ORDER BY doc_date DESC, id`

	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list documents for user %s: %w", userID, err)
	}

	result := make([]*domain.Document, len(rows))
	for i := range rows {
		result[i] = toDomainDocument(&rows[i])
	}
	return result, nil
}

func (r *SQLXDocumentRepository) UpdateDocument(ctx context.Context, document *domain.Document) error {
	if document.ID == "" {
		return fmt.Errorf("cannot update document with empty ID")
	}
	now := time.Now()

	query := `UPDATE documents SET
		title = :1,
		doc_date = :2,
		updated_at = :3
	WHERE id = :4
	AND deleted_at IS NULL`

	_, err := r.db.ExecContext(ctx, query, document.Title, document.Date, now, document.ID)
	if err != nil {
		return fmt.Errorf("failed to update document %s: %w", document.ID, err)
	}
	document.UpdatedAt = now
	return nil
}

func (r *SQLXDocumentRepository) DeleteDocument(ctx context.Context, id string) error {
	query := `UPDATE documents SET deleted_at = :1 WHERE id = :2 AND deleted_at IS NULL`
	if _, err := r.db.ExecContext(ctx, query, time.Now(), id); err != nil {
		return fmt.Errorf("failed to delete document %s: %w", id, err)
	}
	return nil
}

func toDomainDocument(m *models.Document) *domain.Document {
	return &domain.Document{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Date:      m.DocDate,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
