package models

import (
	"database/sql"
	"time"
)

// Quiz is the quizzes row.
type Quiz struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Source       string         `db:"source"`
	Status       sql.NullString `db:"status"`
	YearLevel    sql.NullInt64  `db:"year_level"`
	Subject      sql.NullString `db:"subject"`
	Difficulty   sql.NullString `db:"difficulty"`
	SetNumber    int            `db:"set_number"`
	IsFullLength Flag           `db:"is_full_length"`
	IsTrial      Flag           `db:"is_trial"`
	Tier         sql.NullString `db:"tier"`
	TierOrder    int            `db:"tier_order"`
	IsActive     Flag           `db:"is_active"`
	ParseError   sql.NullString `db:"parse_error"`
	DateCreated  sql.NullTime   `db:"date_created"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// Bundle is the bundles row.
type Bundle struct {
	BundleID         string         `db:"bundle_id"`
	BundleName       string         `db:"bundle_name"`
	Description      sql.NullString `db:"description"`
	YearLevel        int            `db:"year_level"`
	Subjects         StringSlice    `db:"subjects"`
	Tier             string         `db:"tier"`
	QuizIDsOwn       StringSlice    `db:"quiz_ids_own"`
	QuizIDsWithLower StringSlice    `db:"quiz_ids_with_lower"`
	PriceCents       int64          `db:"price_cents"`
	IsActive         Flag           `db:"is_active"`
	QuizCount        int            `db:"quiz_count"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}
