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

const purchaseColumns = `id "id", parent_id "parent_id", bundle_id "bundle_id", child_ids "child_ids",
	include_lower "include_lower", amount_cents "amount_cents", status "status",
	payment_ref "payment_ref", failure_reason "failure_reason", paid_at "paid_at",
	provisioned_at "provisioned_at", created_at "created_at", updated_at "updated_at"`

// PurchaseDatabaseAdapter implements domain.PurchaseRepository using sqlx.DB
type PurchaseDatabaseAdapter struct {
	db *sqlx.DB
}

func NewPurchaseDatabaseAdapter(db *sqlx.DB) domain.PurchaseRepository {
	return &PurchaseDatabaseAdapter{db: db}
}

func (a *PurchaseDatabaseAdapter) CreatePurchase(ctx context.Context, purchase *domain.Purchase) error {
	exec := GetExecutor(ctx, a.db)
	ts := now()
	purchase.CreatedAt = ts
	purchase.UpdatedAt = ts

	_, err := exec.NamedExecContext(ctx, `INSERT INTO purchases (
		id, parent_id, bundle_id, child_ids, include_lower, amount_cents, status,
		payment_ref, failure_reason, paid_at, provisioned_at, created_at, updated_at
	) VALUES (
		:id, :parent_id, :bundle_id, :child_ids, :include_lower, :amount_cents, :status,
		:payment_ref, :failure_reason, :paid_at, :provisioned_at, :created_at, :updated_at
	)`, toModelPurchase(purchase))
	if err != nil {
		return fmt.Errorf("failed to create purchase: %w", err)
	}
	return nil
}

// GetPurchaseByID returns nil, nil when the purchase does not exist.
func (a *PurchaseDatabaseAdapter) GetPurchaseByID(ctx context.Context, id string) (*domain.Purchase, error) {
	exec := GetExecutor(ctx, a.db)
	var m models.Purchase
	query := exec.Rebind(`SELECT ` + purchaseColumns + ` FROM purchases WHERE id = ?`)
	if err := exec.GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get purchase %s: %w", id, err)
	}
	return toDomainPurchase(&m), nil
}

// UpdatePurchase persists the lifecycle fields of a purchase.
func (a *PurchaseDatabaseAdapter) UpdatePurchase(ctx context.Context, purchase *domain.Purchase) error {
	exec := GetExecutor(ctx, a.db)
	purchase.UpdatedAt = now()

	res, err := exec.NamedExecContext(ctx, `UPDATE purchases SET
		status = :status, payment_ref = :payment_ref, failure_reason = :failure_reason,
		paid_at = :paid_at, provisioned_at = :provisioned_at, updated_at = :updated_at
	WHERE id = :id`, toModelPurchase(purchase))
	if err != nil {
		return fmt.Errorf("failed to update purchase %s: %w", purchase.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NewPurchaseNotFoundError(purchase.ID)
	}
	return nil
}
