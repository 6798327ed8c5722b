package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"naplan-prep/internal/domain"
	"naplan-prep/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const syncRunColumns = `id "id", started_at "started_at", finished_at "finished_at", status "status",
	quizzes_fetched "quizzes_fetched", quizzes_parsed "quizzes_parsed",
	quizzes_unparseable "quizzes_unparseable", quizzes_trial "quizzes_trial",
	bundles_upserted "bundles_upserted", bundles_deactivated "bundles_deactivated",
	pricing_warnings "pricing_warnings", unparseable "unparseable", error_message "error_message"`

// SyncRunDatabaseAdapter implements domain.SyncRunRepository using sqlx.DB
type SyncRunDatabaseAdapter struct {
	db *sqlx.DB
}

func NewSyncRunDatabaseAdapter(db *sqlx.DB) domain.SyncRunRepository {
	return &SyncRunDatabaseAdapter{db: db}
}

// SaveSyncRun inserts the run or updates it when it was saved before.
func (a *SyncRunDatabaseAdapter) SaveSyncRun(ctx context.Context, run *domain.SyncRun) error {
	exec := GetExecutor(ctx, a.db)
	m := toModelSyncRun(run)

	res, err := exec.NamedExecContext(ctx, `UPDATE sync_runs SET
		finished_at = :finished_at, status = :status, quizzes_fetched = :quizzes_fetched,
		quizzes_parsed = :quizzes_parsed, quizzes_unparseable = :quizzes_unparseable,
		quizzes_trial = :quizzes_trial, bundles_upserted = :bundles_upserted,
		bundles_deactivated = :bundles_deactivated, pricing_warnings = :pricing_warnings,
		unparseable = :unparseable, error_message = :error_message
	WHERE id = :id`, m)
	if err != nil {
		return fmt.Errorf("failed to update sync run %s: %w", run.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return nil
	}

	_, err = exec.NamedExecContext(ctx, `INSERT INTO sync_runs (
		id, started_at, finished_at, status, quizzes_fetched, quizzes_parsed,
		quizzes_unparseable, quizzes_trial, bundles_upserted, bundles_deactivated,
		pricing_warnings, unparseable, error_message
	) VALUES (
		:id, :started_at, :finished_at, :status, :quizzes_fetched, :quizzes_parsed,
		:quizzes_unparseable, :quizzes_trial, :bundles_upserted, :bundles_deactivated,
		:pricing_warnings, :unparseable, :error_message
	)`, m)
	if err != nil {
		return fmt.Errorf("failed to insert sync run %s: %w", run.ID, err)
	}
	return nil
}

// GetLatestSyncRun returns nil, nil before the first sync.
func (a *SyncRunDatabaseAdapter) GetLatestSyncRun(ctx context.Context) (*domain.SyncRun, error) {
	exec := GetExecutor(ctx, a.db)
	var m models.SyncRun
	query := `SELECT ` + syncRunColumns + ` FROM sync_runs ORDER BY started_at DESC FETCH FIRST 1 ROWS ONLY`
	if err := exec.GetContext(ctx, &m, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest sync run: %w", err)
	}
	return toDomainSyncRun(&m), nil
}
