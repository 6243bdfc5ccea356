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

// SQLXProblemTextRepository implements domain.ProblemTextRepository using sqlx.
type SQLXProblemTextRepository struct {
	db *sqlx.DB
}

func NewSQLXProblemTextRepository(db *sqlx.DB) domain.ProblemTextRepository {
	return &SQLXProblemTextRepository{db: db}
}

const textColumns = `
	id "id",
	kind_id "kind_id",
	instruction "instruction",
	solution "solution",
	created_at "created_at",
	updated_at "updated_at",
	deleted_at "deleted_at"`

func (r *SQLXProblemTextRepository) CreateText(ctx context.Context, text *domain.ProblemText) error {
	now := time.Now()
	id := util.NewULID()

	query := `INSERT INTO problem_texts (
		id, kind_id, instruction, solution, created_at, updated_at
	) VALUES (
		:1, :2, :3, :4, :5, :6
	)`

	_, err := r.db.ExecContext(ctx, query,
		id,
		text.KindID,
		text.Instruction,
		text.Solution,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create problem text: %w", err)
	}

	text.ID = id
	text.CreatedAt = now
	text.UpdatedAt = now
	return nil
}

func (r *SQLXProblemTextRepository) GetTextByID(ctx context.Context, id string) (*domain.ProblemText, error) {
	var model models.ProblemText
	query := `SELECT ` + textColumns + `
	FROM problem_texts
	WHERE id = :1
	AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &model, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get problem text by id %s: %w", id, err)
	}
	return toDomainText(&model), nil
}

func (r *SQLXProblemTextRepository) GetTextsByKindID(ctx context.Context, kindID string) ([]*domain.ProblemText, error) {
	var rows []models.ProblemText
	query := `SELECT ` + textColumns + `
	FROM problem_texts
	WHERE kind_id = :1
	AND deleted_at IS NULL
	ORDER BY created_at, id`

	if err := r.db.SelectContext(ctx, &rows, query, kindID); err != nil {
		return nil, fmt.Errorf("failed to list problem texts for kind %s: %w", kindID, err)
	}

	result := make([]*domain.ProblemText, len(rows))
	for i := range rows {
		result[i] = toDomainText(&rows[i])
	}
	return result, nil
}

func (r *SQLXProblemTextRepository) DeleteText(ctx context.Context, id string) error {
	query := `UPDATE problem_texts SET deleted_at = :1 WHERE id = :2 AND deleted_at IS NULL`
	if _, err := r.db.ExecContext(ctx, query, time.Now(), id); err != nil {
		return fmt.Errorf("failed to delete problem text %s: %w", id, err)
	}
	return nil
}

func toDomainText(m *models.ProblemText) *domain.ProblemText {
	return &domain.ProblemText{
		ID:          m.ID,
		KindID:      m.KindID,
		Instruction: m.Instruction,
		Solution:    m.Solution,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
