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

const bundleColumns = `bundle_id "bundle_id", bundle_name "bundle_name", description "description",
	year_level "year_level", subjects "subjects", tier "tier",
	quiz_ids_own "quiz_ids_own", quiz_ids_with_lower "quiz_ids_with_lower",
	price_cents "price_cents", is_active "is_active", quiz_count "quiz_count",
	created_at "created_at", updated_at "updated_at"`

// BundleDatabaseAdapter implements domain.BundleRepository using sqlx.DB
type BundleDatabaseAdapter struct {
	db *sqlx.DB
}

func NewBundleDatabaseAdapter(db *sqlx.DB) domain.BundleRepository {
	return &BundleDatabaseAdapter{db: db}
}

// UpsertBundle writes the bundle keyed by bundle_id.
func (a *BundleDatabaseAdapter) UpsertBundle(ctx context.Context, bundle *domain.Bundle) error {
	if bundle == nil {
		return fmt.Errorf("cannot upsert nil bundle")
	}
	exec := GetExecutor(ctx, a.db)

	ts := now()
	bundle.UpdatedAt = ts
	m := toModelBundle(bundle)

	res, err := exec.NamedExecContext(ctx, `UPDATE bundles SET
		bundle_name = :bundle_name, description = :description, year_level = :year_level,
		subjects = :subjects, tier = :tier, quiz_ids_own = :quiz_ids_own,
		quiz_ids_with_lower = :quiz_ids_with_lower, price_cents = :price_cents,
		is_active = :is_active, quiz_count = :quiz_count, updated_at = :updated_at
	WHERE bundle_id = :bundle_id`, m)
	if err != nil {
		return fmt.Errorf("failed to update bundle %s: %w", bundle.BundleID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return nil
	}

	bundle.CreatedAt = ts
	m.CreatedAt = ts
	_, err = exec.NamedExecContext(ctx, `INSERT INTO bundles (
		bundle_id, bundle_name, description, year_level, subjects, tier,
		quiz_ids_own, quiz_ids_with_lower, price_cents, is_active, quiz_count,
		created_at, updated_at
	) VALUES (
		:bundle_id, :bundle_name, :description, :year_level, :subjects, :tier,
		:quiz_ids_own, :quiz_ids_with_lower, :price_cents, :is_active, :quiz_count,
		:created_at, :updated_at
	)`, m)
	if err != nil {
		return fmt.Errorf("failed to insert bundle %s: %w", bundle.BundleID, err)
	}
	return nil
}

// GetBundleByID returns nil, nil when the bundle does not exist.
func (a *BundleDatabaseAdapter) GetBundleByID(ctx context.Context, bundleID string) (*domain.Bundle, error) {
	exec := GetExecutor(ctx, a.db)
	var m models.Bundle
	query := exec.Rebind(`SELECT ` + bundleColumns + ` FROM bundles WHERE bundle_id = ?`)
	if err := exec.GetContext(ctx, &m, query, bundleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bundle %s: %w", bundleID, err)
	}
	return toDomainBundle(&m), nil
}

// ListBundles returns bundles ordered by year level then tier.
func (a *BundleDatabaseAdapter) ListBundles(ctx context.Context, activeOnly bool) ([]*domain.Bundle, error) {
	exec := GetExecutor(ctx, a.db)
	query := `SELECT ` + bundleColumns + ` FROM bundles`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY year_level, tier`

	var rows []models.Bundle
	if err := exec.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list bundles: %w", err)
	}
	bundles := make([]*domain.Bundle, len(rows))
	for i := range rows {
		bundles[i] = toDomainBundle(&rows[i])
	}
	return bundles, nil
}

// DeactivateExcept implements domain.BundleRepository
func (a *BundleDatabaseAdapter) DeactivateExcept(ctx context.Context, keep []string) (int64, error) {
	exec := GetExecutor(ctx, a.db)

	query := `UPDATE bundles SET is_active = 0, updated_at = ? WHERE is_active = 1`
	args := []interface{}{now()}
	if len(keep) > 0 {
		var err error
		query, args, err = sqlx.In(query+` AND bundle_id NOT IN (?)`, now(), keep)
		if err != nil {
			return 0, fmt.Errorf("failed to build deactivate query: %w", err)
		}
	}

	res, err := exec.ExecContext(ctx, exec.Rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate bundles: %w", err)
	}
	return res.RowsAffected()
}
