package domain

import "time"

// PurchaseStatus is the lifecycle state of a checkout.
type PurchaseStatus string

const (
	PurchasePending     PurchaseStatus = "pending"
	PurchasePaid        PurchaseStatus = "paid"
	PurchaseProvisioned PurchaseStatus = "provisioned"
	PurchaseFailed      PurchaseStatus = "failed"
)

var purchaseTransitions = map[PurchaseStatus][]PurchaseStatus{
	PurchasePending: {PurchasePaid, PurchaseFailed},
	PurchasePaid:    {PurchaseProvisioned, PurchaseFailed},
	// a failed provisioning may be retried once the cause is fixed
	PurchaseFailed: {PurchasePaid},
}

// CanTransition reports whether a purchase may move from s to next.
func (s PurchaseStatus) CanTransition(next PurchaseStatus) bool {
	for _, allowed := range purchaseTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Purchase records a checkout of one bundle for a set of child accounts.
type Purchase struct {
	ID            string
	ParentID      string
	BundleID      string
	ChildIDs      []string
	IncludeLower  bool
	AmountCents   int64
	Status        PurchaseStatus
	PaymentRef    string
	FailureReason string
	PaidAt        *time.Time
	ProvisionedAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Transition moves the purchase to next or returns an INVALID_STATE error.
func (p *Purchase) Transition(next PurchaseStatus, now time.Time) error {
	if !p.Status.CanTransition(next) {
		return NewInvalidStateError(p.Status, next)
	}
	p.Status = next
	p.UpdatedAt = now
	switch next {
	case PurchasePaid:
		p.PaidAt = &now
		p.FailureReason = ""
	case PurchaseProvisioned:
		p.ProvisionedAt = &now
	}
	return nil
}

// Entitlement grants one child access to one quiz.
type Entitlement struct {
	ID         string
	ChildID    string
	QuizID     string
	PurchaseID string
	BundleID   string
	GrantedAt  time.Time
}
