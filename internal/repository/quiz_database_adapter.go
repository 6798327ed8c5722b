package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"naplan-prep/internal/domain"
	"naplan-prep/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const quizColumns = `id "id", name "name", source "source", status "status",
	year_level "year_level", subject "subject", difficulty "difficulty",
	set_number "set_number", is_full_length "is_full_length", is_trial "is_trial",
	tier "tier", tier_order "tier_order", is_active "is_active",
	parse_error "parse_error", date_created "date_created",
	created_at "created_at", updated_at "updated_at"`

// QuizDatabaseAdapter implements domain.QuizRepository using sqlx.DB
type QuizDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuizDatabaseAdapter creates a new instance of QuizDatabaseAdapter
func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db}
}

// UpsertQuiz updates the quiz row and inserts it when no row was touched.
func (a *QuizDatabaseAdapter) UpsertQuiz(ctx context.Context, quiz *domain.Quiz) error {
	if quiz == nil {
		return fmt.Errorf("cannot upsert nil quiz")
	}
	exec := GetExecutor(ctx, a.db)

	ts := now()
	quiz.UpdatedAt = ts
	m := toModelQuiz(quiz)

	res, err := exec.NamedExecContext(ctx, `UPDATE quizzes SET
		name = :name, source = :source, status = :status,
		year_level = :year_level, subject = :subject, difficulty = :difficulty,
		set_number = :set_number, is_full_length = :is_full_length, is_trial = :is_trial,
		tier = :tier, tier_order = :tier_order, is_active = :is_active,
		parse_error = :parse_error, date_created = :date_created, updated_at = :updated_at
	WHERE id = :id`, m)
	if err != nil {
		return fmt.Errorf("failed to update quiz %s: %w", quiz.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return nil
	}

	quiz.CreatedAt = ts
	m.CreatedAt = ts
	_, err = exec.NamedExecContext(ctx, `INSERT INTO quizzes (
		id, name, source, status, year_level, subject, difficulty, set_number,
		is_full_length, is_trial, tier, tier_order, is_active, parse_error,
		date_created, created_at, updated_at
	) VALUES (
		:id, :name, :source, :status, :year_level, :subject, :difficulty, :set_number,
		:is_full_length, :is_trial, :tier, :tier_order, :is_active, :parse_error,
		:date_created, :created_at, :updated_at
	)`, m)
	if err != nil {
		return fmt.Errorf("failed to insert quiz %s: %w", quiz.ID, err)
	}
	return nil
}

// GetQuizByID returns nil, nil when the quiz does not exist.
func (a *QuizDatabaseAdapter) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	exec := GetExecutor(ctx, a.db)
	var m models.Quiz
	query := exec.Rebind(`SELECT ` + quizColumns + ` FROM quizzes WHERE id = ?`)
	if err := exec.GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by ID %s: %w", id, err)
	}
	return toDomainQuiz(&m), nil
}

// ListActiveQuizzes returns active quizzes ordered by year level and tier order.
func (a *QuizDatabaseAdapter) ListActiveQuizzes(ctx context.Context) ([]*domain.Quiz, error) {
	exec := GetExecutor(ctx, a.db)
	var rows []models.Quiz
	query := `SELECT ` + quizColumns + ` FROM quizzes WHERE is_active = 1 ORDER BY year_level, tier_order, id`
	if err := exec.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list active quizzes: %w", err)
	}

	quizzes := make([]*domain.Quiz, len(rows))
	for i := range rows {
		quizzes[i] = toDomainQuiz(&rows[i])
	}
	return quizzes, nil
}

// DeactivateStale implements domain.QuizRepository
func (a *QuizDatabaseAdapter) DeactivateStale(ctx context.Context, before time.Time) (int64, error) {
	exec := GetExecutor(ctx, a.db)
	query := exec.Rebind(`UPDATE quizzes SET is_active = 0, updated_at = ? WHERE is_active = 1 AND updated_at < ?`)
	res, err := exec.ExecContext(ctx, query, now(), before)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate stale quizzes: %w", err)
	}
	return res.RowsAffected()
}
