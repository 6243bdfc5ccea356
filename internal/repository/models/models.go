// Package models holds the database-facing row types. Nullable columns
// use database/sql null types; conversion to domain entities happens in
// the repository adapters.
package models

import (
	"database/sql"
	"time"
)

type Problem struct {
	ID              string         `db:"id"`
	DocumentID      string         `db:"document_id"`
	KindID          string         `db:"kind_id"`
	TextID          sql.NullString `db:"text_id"`
	SubproblemCount int            `db:"subproblem_count"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
	DeletedAt       sql.NullTime   `db:"deleted_at"`
}

type ProblemText struct {
	ID          string       `db:"id"`
	KindID      string       `db:"kind_id"`
	Instruction string       `db:"instruction"`
	Solution    string       `db:"solution"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
	DeletedAt   sql.NullTime `db:"deleted_at"`
}

type Document struct {
	ID        string       `db:"id"`
	UserID    string       `db:"user_id"`
	Title     string       `db:"title"`
	DocDate   time.Time    `db:"doc_date"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
	DeletedAt sql.NullTime `db:"deleted_at"`
}

type Student struct {
	ID        string       `db:"id"`
	Name      string       `db:"name"`
	ClassName string       `db:"class_name"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
	DeletedAt sql.NullTime `db:"deleted_at"`
}

type User struct {
	ID                string         `db:"id"`
	GoogleID          string         `db:"google_id"`
	Email             string         `db:"email"`
	Name              string         `db:"name"`
	ProfilePictureURL sql.NullString `db:"profile_picture_url"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
	DeletedAt         sql.NullTime   `db:"deleted_at"`
}
