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

// SQLXStudentRepository implements domain.StudentRepository using sqlx.
type SQLXStudentRepository struct {
	db *sqlx.DB
}

func NewSQLXStudentRepository(db *sqlx.DB) domain.StudentRepository {
	return &SQLXStudentRepository{db: db}
}

const studentColumns = `
	id "id",
	name "name",
	class_name "class_name",
	created_at "created_at",
	updated_at "updated_at",
	deleted_at "deleted_at"`

func (r *SQLXStudentRepository) CreateStudent(ctx context.Context, student *domain.Student) error {
	now := time.Now()
	id := util.NewULID()

	query := `INSERT INTO students (
		id, name, class_name, created_at, updated_at
	) VALUES (
		:1, :2, :3, :4, :5
	)`

	_, err := r.db.ExecContext(ctx, query, id, student.Name, student.ClassName, now, now)
	if err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}

	student.ID = id
	student.CreatedAt = now
	student.UpdatedAt = now
	return nil
}

func (r *SQLXStudentRepository) GetStudentByID(ctx context.Context, id string) (*domain.Student, error) {
	var model models.Student
	query := `SELECT ` + studentColumns + `
	FROM students
	WHERE id = :1
	AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &model, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get student by id %s: %w", id, err)
	}
	return toDomainStudent(&model), nil
}

func (r *SQLXStudentRepository) GetStudentsByClassName(ctx context.Context, className string) ([]*domain.Student, error) {
	var rows []models.Student
	query := `SELECT ` + studentColumns + `
	FROM students
	WHERE class_name = :1
	AND deleted_at IS NULL
	ORDER BY name, id`

	if err := r.db.SelectContext(ctx, &rows, query, className); err != nil {
		return nil, fmt.Errorf("failed to list students of class %s: %w", className, err)
	}

	result := make([]*domain.Student, len(rows))
	for i := range rows {
		result[i] = toDomainStudent(&rows[i])
	}
	return result, nil
}

func toDomainStudent(m *models.Student) *domain.Student {
	return &domain.Student{
		ID:        m.ID,
		Name:      m.Name,
		ClassName: m.ClassName,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
