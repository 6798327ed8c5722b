package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)

// setupTestDB returns an sqlx handle bound like the pgx driver, so queries use $N placeholders.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "pgx"), mock
}

func freezeNow(t *testing.T) {
	t.Helper()
	orig := now
	now = func() time.Time { return fixedNow }
	t.Cleanup(func() { now = orig })
}

func q(sql string) string {
	return regexp.QuoteMeta(sql)
}

func TestTransactionManager_Commit(t *testing.T) {
	db, mock := setupTestDB(t)
	tm := NewTransactionManagerAdapter(db)
	repo := NewBundleDatabaseAdapter(db)
	freezeNow(t)

	mock.ExpectBegin()
	mock.ExpectExec(q(`UPDATE bundles SET is_active = 0, updated_at = $1 WHERE is_active = 1`)).
		WithArgs(fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	var affected int64
	err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
		var err error
		affected, err = repo.DeactivateExcept(ctx, nil)
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	db, mock := setupTestDB(t)
	tm := NewTransactionManagerAdapter(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_NestedJoinsOuter(t *testing.T) {
	db, mock := setupTestDB(t)
	tm := NewTransactionManagerAdapter(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
		return tm.WithTransaction(ctx, func(inner context.Context) error {
			assert.Equal(t, ctx.Value(TransactionContextKey), inner.Value(TransactionContextKey))
			return nil
		})
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollbackOnPanic(t *testing.T) {
	db, mock := setupTestDB(t)
	tm := NewTransactionManagerAdapter(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = tm.WithTransaction(context.Background(), func(ctx context.Context) error {
			panic("unexpected")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
