package models

import (
	"database/sql"
	"time"
)

// Purchase is the purchases row.
type Purchase struct {
	ID            string         `db:"id"`
	ParentID      string         `db:"parent_id"`
	BundleID      string         `db:"bundle_id"`
	ChildIDs      StringSlice    `db:"child_ids"`
	IncludeLower  Flag           `db:"include_lower"`
	AmountCents   int64          `db:"amount_cents"`
	Status        string         `db:"status"`
	PaymentRef    sql.NullString `db:"payment_ref"`
	FailureReason sql.NullString `db:"failure_reason"`
	PaidAt        sql.NullTime   `db:"paid_at"`
	ProvisionedAt sql.NullTime   `db:"provisioned_at"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

// Entitlement is the entitlements row.
type Entitlement struct {
	ID         string    `db:"id"`
	ChildID    string    `db:"child_id"`
	QuizID     string    `db:"quiz_id"`
	PurchaseID string    `db:"purchase_id"`
	BundleID   string    `db:"bundle_id"`
	GrantedAt  time.Time `db:"granted_at"`
}
