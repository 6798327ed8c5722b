package domain

import (
	"context"
	"time"
)

// QuizRepository persists catalog quizzes.
type QuizRepository interface {
	// UpsertQuiz inserts the quiz or updates the row with the same ID.
	UpsertQuiz(ctx context.Context, quiz *Quiz) error
	GetQuizByID(ctx context.Context, id string) (*Quiz, error)
	ListActiveQuizzes(ctx context.Context) ([]*Quiz, error)
	// DeactivateStale marks active quizzes not upserted since before as inactive.
	DeactivateStale(ctx context.Context, before time.Time) (int64, error)
}

// BundleRepository persists bundles keyed by bundle ID.
type BundleRepository interface {
	UpsertBundle(ctx context.Context, bundle *Bundle) error
	GetBundleByID(ctx context.Context, bundleID string) (*Bundle, error)
	ListBundles(ctx context.Context, activeOnly bool) ([]*Bundle, error)
	// DeactivateExcept marks active bundles not listed in keep as inactive.
	DeactivateExcept(ctx context.Context, keep []string) (int64, error)
}

// PurchaseRepository persists purchases.
type PurchaseRepository interface {
	CreatePurchase(ctx context.Context, purchase *Purchase) error
	GetPurchaseByID(ctx context.Context, id string) (*Purchase, error)
	UpdatePurchase(ctx context.Context, purchase *Purchase) error
}

// EntitlementRepository persists quiz grants for child accounts.
type EntitlementRepository interface {
	// GrantEntitlements is idempotent per (child, quiz).
	GrantEntitlements(ctx context.Context, entitlements []*Entitlement) error
	ListQuizIDsByChild(ctx context.Context, childID string) ([]string, error)
}

// SyncRunRepository persists sync summaries.
type SyncRunRepository interface {
	SaveSyncRun(ctx context.Context, run *SyncRun) error
	GetLatestSyncRun(ctx context.Context) (*SyncRun, error)
}

// TransactionManager runs fn inside a database transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
