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

// SQLXProblemRepository implements domain.ProblemRepository using sqlx.
type SQLXProblemRepository struct {
	db *sqlx.DB
}

func NewSQLXProblemRepository(db *sqlx.DB) domain.ProblemRepository {
	return &SQLXProblemRepository{db: db}
}

// Oracle uppercases unquoted identifiers, so selected columns are aliased
// to the lowercase names the db tags expect.
const problemColumns = `
	id "id",
	document_id "document_id",
	kind_id "kind_id",
	text_id "text_id",
	subproblem_count "subproblem_count",
	created_at "created_at",
	updated_at "updated_at",
	deleted_at "deleted_at"`

func (r *SQLXProblemRepository) CreateProblem(ctx context.Context, problem *domain.Problem) error {
	model := toModelProblem(problem)
	model.ID = util.NewULID()
	model.CreatedAt = time.Now()
	model.UpdatedAt = model.CreatedAt

	query := `INSERT INTO problems (
		id, document_id, kind_id, text_id, subproblem_count, created_at, updated_at
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7
	)`

	_, err := r.db.ExecContext(ctx, query,
		model.ID,
		model.DocumentID,
		model.KindID,
		model.TextID,
		model.SubproblemCount,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create problem: %w", err)
	}

	problem.ID = model.ID
	problem.CreatedAt = model.CreatedAt
	problem.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *SQLXProblemRepository) GetProblemByID(ctx context.Context, id string) (*domain.Problem, error) {
	var model models.Problem
	query := `SELECT ` + problemColumns + `
	FROM problems
	WHERE id = :1
	AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &model, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get problem by id %s: %w", id, err)
	}
	return toDomainProblem(&model), nil
}

func (r *SQLXProblemRepository) GetProblemsByDocumentID(ctx context.Context, documentID string) ([]*domain.Problem, error) {
	var rows []models.Problem
	query := `SELECT ` + problemColumns + `
	FROM problems
	WHERE document_id = :1
	AND deleted_at IS NULL
	ORDER BY created_at, id`

	if err := r.db.SelectContext(ctx, &rows, query, documentID); err != nil {
		return nil, fmt.Errorf("failed to list problems for document %s: %w", documentID, err)
	}

	result := make([]*domain.Problem, len(rows))
	for i := range rows {
		result[i] = toDomainProblem(&rows[i])
	}
	return result, nil
}

func (r *SQLXProblemRepository) UpdateProblem(ctx context.Context, problem *domain.Problem) error {
	if problem.ID == "" {
		return fmt.Errorf("cannot update problem with empty ID")
	}
	model := toModelProblem(problem)
	model.UpdatedAt = time.Now()

	query := `UPDATE problems SET
		text_id = :1,
		subproblem_count = :2,
		updated_at = :3
	WHERE id = :4
	AND deleted_at IS NULL`

	_, err := r.db.ExecContext(ctx, query,
		model.TextID,
		model.SubproblemCount,
		model.UpdatedAt,
		model.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update problem %s: %w", problem.ID, err)
	}
	problem.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *SQLXProblemRepository) DeleteProblem(ctx context.Context, id string) error {
	query := `UPDATE problems SET deleted_at = :1 WHERE id = :2 AND deleted_at IS NULL`
	if _, err := r.db.ExecContext(ctx, query, time.Now(), id); err != nil {
		return fmt.Errorf("failed to delete problem %s: %w", id, err)
	}
	return nil
}

func toModelProblem(p *domain.Problem) *models.Problem {
	model := &models.Problem{
		ID:              p.ID,
		DocumentID:      p.DocumentID,
		KindID:          p.KindID,
		SubproblemCount: p.SubproblemCount,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if p.TextID != "" {
		model.TextID = sql.NullString{String: p.TextID, Valid: true}
	}
	return model
}

func toDomainProblem(m *models.Problem) *domain.Problem {
	problem := &domain.Problem{
		ID:              m.ID,
		DocumentID:      m.DocumentID,
		KindID:          m.KindID,
		SubproblemCount: m.SubproblemCount,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.TextID.Valid {
		problem.TextID = m.TextID.String
	}
	return problem
}
