package repository

import (
	"context"
	"fmt"

	"naplan-prep/internal/domain"
	"naplan-prep/internal/repository/models"
	"naplan-prep/internal/util"

	"github.com/jmoiron/sqlx"
)

// EntitlementDatabaseAdapter implements domain.EntitlementRepository using sqlx.DB
type EntitlementDatabaseAdapter struct {
	db *sqlx.DB
}

func NewEntitlementDatabaseAdapter(db *sqlx.DB) domain.EntitlementRepository {
	return &EntitlementDatabaseAdapter{db: db}
}

// GrantEntitlements inserts the grants a child does not hold yet. Existing
// (child, quiz) pairs are left untouched, so provisioning twice is harmless.
func (a *EntitlementDatabaseAdapter) GrantEntitlements(ctx context.Context, entitlements []*domain.Entitlement) error {
	exec := GetExecutor(ctx, a.db)
	exists := exec.Rebind(`SELECT COUNT(*) FROM entitlements WHERE child_id = ? AND quiz_id = ?`)

	for _, e := range entitlements {
		var n int
		if err := exec.GetContext(ctx, &n, exists, e.ChildID, e.QuizID); err != nil {
			return fmt.Errorf("failed to check entitlement %s/%s: %w", e.ChildID, e.QuizID, err)
		}
		if n > 0 {
			continue
		}

		if e.ID == "" {
			e.ID = util.NewULID()
		}
		if e.GrantedAt.IsZero() {
			e.GrantedAt = now()
		}
		_, err := exec.NamedExecContext(ctx, `INSERT INTO entitlements (
			id, child_id, quiz_id, purchase_id, bundle_id, granted_at
		) VALUES (
			:id, :child_id, :quiz_id, :purchase_id, :bundle_id, :granted_at
		)`, models.Entitlement{
			ID:         e.ID,
			ChildID:    e.ChildID,
			QuizID:     e.QuizID,
			PurchaseID: e.PurchaseID,
			BundleID:   e.BundleID,
			GrantedAt:  e.GrantedAt,
		})
		if err != nil {
			return fmt.Errorf("failed to grant entitlement %s/%s: %w", e.ChildID, e.QuizID, err)
		}
	}
	return nil
}

// ListQuizIDsByChild returns the quiz ids a child may take, sorted.
func (a *EntitlementDatabaseAdapter) ListQuizIDsByChild(ctx context.Context, childID string) ([]string, error) {
	exec := GetExecutor(ctx, a.db)
	ids := []string{}
	query := exec.Rebind(`SELECT quiz_id "quiz_id" FROM entitlements WHERE child_id = ? ORDER BY quiz_id`)
	if err := exec.SelectContext(ctx, &ids, query, childID); err != nil {
		return nil, fmt.Errorf("failed to list entitlements for child %s: %w", childID, err)
	}
	return ids, nil
}
