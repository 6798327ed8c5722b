package repository

import (
	"context"
	"testing"
	"time"

	"naplan-prep/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quizRowColumns = []string{
	"id", "name", "source", "status", "year_level", "subject", "difficulty",
	"set_number", "is_full_length", "is_trial", "tier", "tier_order", "is_active",
	"parse_error", "date_created", "created_at", "updated_at",
}

func sampleQuiz() *domain.Quiz {
	year := 3
	subject := domain.SubjectReading
	tier := domain.TierA
	return &domain.Quiz{
		ID:           "fq-1",
		Name:         "Year 3 Reading",
		Source:       "flexiquiz",
		Status:       "active",
		YearLevel:    &year,
		Subject:      &subject,
		SetNumber:    1,
		IsFullLength: true,
		Tier:         &tier,
		TierOrder:    1,
		IsActive:     true,
	}
}

func TestQuizDatabaseAdapter_UpsertQuiz_UpdatesExisting(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuizDatabaseAdapter(db)
	freezeNow(t)

	mock.ExpectExec(q(`UPDATE quizzes SET`)).WillReturnResult(sqlmock.NewResult(0, 1))

	quiz := sampleQuiz()
	err := repo.UpsertQuiz(context.Background(), quiz)

	require.NoError(t, err)
	assert.Equal(t, fixedNow, quiz.UpdatedAt)
	assert.True(t, quiz.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizDatabaseAdapter_UpsertQuiz_InsertsNew(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuizDatabaseAdapter(db)
	freezeNow(t)

	mock.ExpectExec(q(`UPDATE quizzes SET`)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(q(`INSERT INTO quizzes (`)).
		WithArgs("fq-1", "Year 3 Reading", "flexiquiz", "active", int64(3), "Reading", nil, 1,
			int64(1), int64(0), "A", 1, int64(1), nil, nil, fixedNow, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	quiz := sampleQuiz()
	err := repo.UpsertQuiz(context.Background(), quiz)

	require.NoError(t, err)
	assert.Equal(t, fixedNow, quiz.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizDatabaseAdapter_UpsertQuiz_Nil(t *testing.T) {
	db, _ := setupTestDB(t)
	repo := NewQuizDatabaseAdapter(db)
	assert.Error(t, repo.UpsertQuiz(context.Background(), nil))
}

func TestQuizDatabaseAdapter_GetQuizByID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuizDatabaseAdapter(db)

	rows := sqlmock.NewRows(quizRowColumns).AddRow(
		"fq-2", "Year 5 Numeracy Hard", "flexiquiz", "active", int64(5), "Maths", "hard",
		1, int64(0), int64(0), "C", 4, int64(1), nil, nil, fixedNow, fixedNow,
	)
	mock.ExpectQuery(q(`FROM quizzes WHERE id = $1`)).WithArgs("fq-2").WillReturnRows(rows)

	quiz, err := repo.GetQuizByID(context.Background(), "fq-2")

	require.NoError(t, err)
	require.NotNil(t, quiz)
	assert.Equal(t, 5, *quiz.YearLevel)
	assert.Equal(t, domain.SubjectMaths, *quiz.Subject)
	assert.Equal(t, domain.DifficultyHard, *quiz.Difficulty)
	assert.Equal(t, domain.TierC, *quiz.Tier)
	assert.False(t, quiz.IsFullLength)
	assert.True(t, quiz.IsActive)
	assert.Equal(t, 4, quiz.TierOrder)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizDatabaseAdapter_GetQuizByID_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuizDatabaseAdapter(db)

	mock.ExpectQuery(q(`FROM quizzes WHERE id = $1`)).WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(quizRowColumns))

	quiz, err := repo.GetQuizByID(context.Background(), "missing")

	assert.NoError(t, err)
	assert.Nil(t, quiz)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizDatabaseAdapter_ListActiveQuizzes(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuizDatabaseAdapter(db)

	rows := sqlmock.NewRows(quizRowColumns).
		AddRow("a", "Year 3 Reading", "flexiquiz", nil, int64(3), "Reading", nil, 1, int64(1), int64(0), "A", 1, int64(1), nil, nil, fixedNow, fixedNow).
		AddRow("t", "Year 3 Trial", "quiz_bank", nil, int64(3), nil, nil, 1, int64(0), int64(1), nil, 2, int64(1), nil, nil, fixedNow, fixedNow)
	mock.ExpectQuery(q(`FROM quizzes WHERE is_active = 1 ORDER BY year_level, tier_order, id`)).WillReturnRows(rows)

	quizzes, err := repo.ListActiveQuizzes(context.Background())

	require.NoError(t, err)
	require.Len(t, quizzes, 2)
	assert.Nil(t, quizzes[1].Tier)
	assert.Nil(t, quizzes[1].Subject)
	assert.True(t, quizzes[1].IsTrial)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizDatabaseAdapter_DeactivateStale(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuizDatabaseAdapter(db)
	freezeNow(t)
	before := fixedNow.Add(-5 * time.Minute)

	mock.ExpectExec(q(`UPDATE quizzes SET is_active = 0, updated_at = $1 WHERE is_active = 1 AND updated_at < $2`)).
		WithArgs(fixedNow, before).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeactivateStale(context.Background(), before)

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
