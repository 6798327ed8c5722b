package dto

import (
	"time"

	"naplan-prep/internal/domain"
)

// CreatePurchaseRequest starts a checkout of one bundle.
// @Description Request body for creating a purchase
type CreatePurchaseRequest struct {
	ParentID     string   `json:"parent_id" validate:"notblank,max=64"`
	BundleID     string   `json:"bundle_id" validate:"notblank,max=64"`
	ChildIDs     []string `json:"child_ids" validate:"min=1,max=10,dive,notblank,max=64"`
	IncludeLower bool     `json:"include_lower"`
}

// MarkPaidRequest confirms payment of a purchase.
type MarkPaidRequest struct {
	PaymentRef string `json:"payment_ref" validate:"notblank,max=128"`
}

// MarkFailedRequest records why a purchase failed.
type MarkFailedRequest struct {
	Reason string `json:"reason" validate:"notblank,max=500"`
}

// PurchaseResponse represents a purchase in the API response
type PurchaseResponse struct {
	ID            string     `json:"id"`
	ParentID      string     `json:"parent_id"`
	BundleID      string     `json:"bundle_id"`
	ChildIDs      []string   `json:"child_ids"`
	IncludeLower  bool       `json:"include_lower"`
	AmountCents   int64      `json:"amount_cents"`
	Status        string     `json:"status"`
	PaymentRef    string     `json:"payment_ref,omitempty"`
	FailureReason string     `json:"failure_reason,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	ProvisionedAt *time.Time `json:"provisioned_at,omitempty"`
}

// NewPurchaseResponse converts a domain purchase.
func NewPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:            p.ID,
		ParentID:      p.ParentID,
		BundleID:      p.BundleID,
		ChildIDs:      nonNil(p.ChildIDs),
		IncludeLower:  p.IncludeLower,
		AmountCents:   p.AmountCents,
		Status:        string(p.Status),
		PaymentRef:    p.PaymentRef,
		FailureReason: p.FailureReason,
		PaidAt:        p.PaidAt,
		ProvisionedAt: p.ProvisionedAt,
	}
}

// ChildQuizzesResponse lists the quizzes a child may take.
type ChildQuizzesResponse struct {
	ChildID string   `json:"child_id"`
	QuizIDs []string `json:"quiz_ids"`
}
