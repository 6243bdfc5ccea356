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

// SQLXUserRepository implements domain.UserRepository using sqlx.
type SQLXUserRepository struct {
	db *sqlx.DB
}

func NewSQLXUserRepository(db *sqlx.DB) domain.UserRepository {
	return &SQLXUserRepository{db: db}
}

const userColumns = `
	id "id",
	google_id "google_id",
	email "email",
	name "name",
	profile_picture_url "profile_picture_url",
	created_at "created_at",
	updated_at "updated_at",
	deleted_at "deleted_at"`

func (r *SQLXUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	now := time.Now()
	id := util.NewULID()

	query := `INSERT INTO users (
		id, google_id, email, name, profile_picture_url, created_at, updated_at
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7
	)`

	_, err := r.db.ExecContext(ctx, query,
		id,
		user.GoogleID,
		user.Email,
		user.Name,
		nullString(user.ProfilePictureURL),
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = id
	user.CreatedAt = now
	user.UpdatedAt = now
	return nil
}

func (r *SQLXUserRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	var model models.User
	query := `SELECT ` + userColumns + `
	FROM users
	WHERE google_id = :1
	AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &model, query, googleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by google_id: %w", err)
	}
	return toDomainUser(&model), nil
}

func (r *SQLXUserRepository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	var model models.User
	query := `SELECT ` + userColumns + `
	FROM users
	WHERE id = :1
	AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &model, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return toDomainUser(&model), nil
}

func (r *SQLXUserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		return fmt.Errorf("cannot update user with empty ID")
	}
	now := time.Now()

	query := `UPDATE users SET
		email = :1,
		name = :2,
		profile_picture_url = :3,
		updated_at = :4
	WHERE id = :5
	AND deleted_at IS NULL`

	_, err := r.db.ExecContext(ctx, query,
		user.Email,
		user.Name,
		nullString(user.ProfilePictureURL),
		now,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", user.ID, err)
	}
	user.UpdatedAt = now
	return nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func toDomainUser(m *models.User) *domain.User {
	user := &domain.User{
		ID:        m.ID,
		GoogleID:  m.GoogleID,
		Email:     m.Email,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.ProfilePictureURL.Valid {
		user.ProfilePictureURL = m.ProfilePictureURL.String
	}
	return user
}
