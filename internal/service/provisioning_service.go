package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"naplan-prep/internal/cache"
	"naplan-prep/internal/domain"
	"naplan-prep/internal/util"

	"go.uber.org/zap"
)

// CreatePurchaseInput is a checkout request for one bundle.
type CreatePurchaseInput struct {
	ParentID     string
	BundleID     string
	ChildIDs     []string
	IncludeLower bool
}

// ProvisioningService moves purchases through their lifecycle and grants
// quiz entitlements to child accounts.
type ProvisioningService interface {
	CreatePurchase(ctx context.Context, in CreatePurchaseInput) (*domain.Purchase, error)
	MarkPaid(ctx context.Context, purchaseID, paymentRef string) (*domain.Purchase, error)
	Provision(ctx context.Context, purchaseID string) (*domain.Purchase, error)
	MarkFailed(ctx context.Context, purchaseID, reason string) (*domain.Purchase, error)
	ChildQuizIDs(ctx context.Context, childID string) ([]string, error)
}

type provisioningService struct {
	bundleRepo      domain.BundleRepository
	purchaseRepo    domain.PurchaseRepository
	entitlementRepo domain.EntitlementRepository
	txManager       domain.TransactionManager
	cache           domain.Cache
	entitlementTTL  time.Duration
	logger          *zap.Logger
}

// NewProvisioningService creates a new instance of provisioningService.
func NewProvisioningService(
	bundleRepo domain.BundleRepository,
	purchaseRepo domain.PurchaseRepository,
	entitlementRepo domain.EntitlementRepository,
	txManager domain.TransactionManager,
	cache domain.Cache,
	entitlementTTL time.Duration,
	logger *zap.Logger,
) ProvisioningService {
	return &provisioningService{
		bundleRepo:      bundleRepo,
		purchaseRepo:    purchaseRepo,
		entitlementRepo: entitlementRepo,
		txManager:       txManager,
		cache:           cache,
		entitlementTTL:  entitlementTTL,
		logger:          logger,
	}
}

// CreatePurchase implements ProvisioningService. The amount is the bundle
// price for each child.
func (s *provisioningService) CreatePurchase(ctx context.Context, in CreatePurchaseInput) (*domain.Purchase, error) {
	children := dedupeIDs(in.ChildIDs)
	var verrs domain.ValidationErrors
	if strings.TrimSpace(in.ParentID) == "" {
		verrs = append(verrs, domain.NewMissingFieldError("parent_id"))
	}
	if strings.TrimSpace(in.BundleID) == "" {
		verrs = append(verrs, domain.NewMissingFieldError("bundle_id"))
	}
	if len(children) == 0 {
		verrs = append(verrs, domain.NewMissingFieldError("child_ids"))
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	bundle, err := s.bundleRepo.GetBundleByID(ctx, in.BundleID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load bundle", err)
	}
	if bundle == nil {
		return nil, domain.NewBundleNotFoundError(in.BundleID)
	}
	if !bundle.IsActive {
		return nil, domain.NewBundleInactiveError(in.BundleID)
	}

	purchase := &domain.Purchase{
		ID:           util.NewULID(),
		ParentID:     strings.TrimSpace(in.ParentID),
		BundleID:     bundle.BundleID,
		ChildIDs:     children,
		IncludeLower: in.IncludeLower,
		AmountCents:  bundle.PriceCents * int64(len(children)),
		Status:       domain.PurchasePending,
	}
	if err := s.purchaseRepo.CreatePurchase(ctx, purchase); err != nil {
		return nil, domain.NewInternalError("failed to create purchase", err)
	}

	s.logger.Info("Purchase created",
		zap.String("purchase_id", purchase.ID),
		zap.String("bundle_id", purchase.BundleID),
		zap.Int("children", len(children)),
		zap.Int64("amount_cents", purchase.AmountCents))
	return purchase, nil
}

// MarkPaid implements ProvisioningService
func (s *provisioningService) MarkPaid(ctx context.Context, purchaseID, paymentRef string) (*domain.Purchase, error) {
	return s.transition(ctx, purchaseID, func(p *domain.Purchase) error {
		if err := p.Transition(domain.PurchasePaid, now()); err != nil {
			return err
		}
		p.PaymentRef = strings.TrimSpace(paymentRef)
		return nil
	})
}

// MarkFailed implements ProvisioningService
func (s *provisioningService) MarkFailed(ctx context.Context, purchaseID, reason string) (*domain.Purchase, error) {
	return s.transition(ctx, purchaseID, func(p *domain.Purchase) error {
		if err := p.Transition(domain.PurchaseFailed, now()); err != nil {
			return err
		}
		p.FailureReason = reason
		return nil
	})
}

// Provision implements ProvisioningService. A provisioned purchase is
// returned unchanged. Any failure while granting moves the purchase to failed.
func (s *provisioningService) Provision(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	var (
		result  *domain.Purchase
		granted bool
	)
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		p, err := s.loadPurchase(ctx, purchaseID)
		if err != nil {
			return err
		}
		if p.Status == domain.PurchaseProvisioned {
			result = p
			return nil
		}
		if !p.Status.CanTransition(domain.PurchaseProvisioned) {
			return domain.NewInvalidStateError(p.Status, domain.PurchaseProvisioned)
		}

		bundle, err := s.bundleRepo.GetBundleByID(ctx, p.BundleID)
		if err != nil {
			return err
		}
		if bundle == nil {
			return domain.NewBundleNotFoundError(p.BundleID)
		}

		quizIDs := bundle.EntitledQuizIDs(p.IncludeLower)
		grants := make([]*domain.Entitlement, 0, len(quizIDs)*len(p.ChildIDs))
		for _, child := range p.ChildIDs {
			for _, quizID := range quizIDs {
				grants = append(grants, &domain.Entitlement{
					ChildID:    child,
					QuizID:     quizID,
					PurchaseID: p.ID,
					BundleID:   p.BundleID,
				})
			}
		}
		if err := s.entitlementRepo.GrantEntitlements(ctx, grants); err != nil {
			return err
		}

		if err := p.Transition(domain.PurchaseProvisioned, now()); err != nil {
			return err
		}
		if err := s.purchaseRepo.UpdatePurchase(ctx, p); err != nil {
			return err
		}
		s.logger.Info("Purchase provisioned",
			zap.String("purchase_id", p.ID),
			zap.Int("quizzes", len(quizIDs)),
			zap.Int("children", len(p.ChildIDs)))
		result = p
		granted = true
		return nil
	})
	if err == nil {
		if granted {
			s.forgetChildren(ctx, result.ChildIDs)
		}
		return result, nil
	}

	// State and lookup errors leave the purchase as it was.
	var de *domain.DomainError
	if errors.As(err, &de) && (de.Code == domain.CodeInvalidState || de.Code == domain.CodePurchaseNotFound) {
		return nil, err
	}

	s.logger.Error("Provisioning failed", zap.String("purchase_id", purchaseID), zap.Error(err))
	if _, markErr := s.MarkFailed(ctx, purchaseID, fmt.Sprintf("provisioning failed: %v", err)); markErr != nil {
		s.logger.Error("Failed to mark purchase as failed", zap.String("purchase_id", purchaseID), zap.Error(markErr))
	}
	if de != nil {
		return nil, err
	}
	return nil, domain.NewInternalError("failed to provision purchase", err)
}

// ChildQuizIDs implements ProvisioningService
func (s *provisioningService) ChildQuizIDs(ctx context.Context, childID string) ([]string, error) {
	if strings.TrimSpace(childID) == "" {
		return nil, domain.NewInvalidInputError("child id is required")
	}
	key := cache.ChildQuizzesKey(childID)

	if s.cache != nil {
		if data, err := s.cache.Get(ctx, key); err == nil {
			var ids []string
			if json.Unmarshal([]byte(data), &ids) == nil {
				return ids, nil
			}
		} else if !errors.Is(err, domain.ErrCacheMiss) {
			s.logger.Warn("Entitlement cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	ids, err := s.entitlementRepo.ListQuizIDsByChild(ctx, childID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list entitlements", err)
	}

	if s.cache != nil {
		if data, err := json.Marshal(ids); err == nil {
			if err := s.cache.Set(ctx, key, string(data), s.entitlementTTL); err != nil {
				s.logger.Warn("Entitlement cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return ids, nil
}

func (s *provisioningService) transition(ctx context.Context, purchaseID string, apply func(*domain.Purchase) error) (*domain.Purchase, error) {
	var result *domain.Purchase
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		p, err := s.loadPurchase(ctx, purchaseID)
		if err != nil {
			return err
		}
		if err := apply(p); err != nil {
			return err
		}
		if err := s.purchaseRepo.UpdatePurchase(ctx, p); err != nil {
			return err
		}
		result = p
		return nil
	})
	if err != nil {
		var de *domain.DomainError
		if errors.As(err, &de) {
			return nil, err
		}
		return nil, domain.NewInternalError("failed to update purchase", err)
	}
	s.logger.Info("Purchase status changed", zap.String("purchase_id", result.ID), zap.String("status", string(result.Status)))
	return result, nil
}

func (s *provisioningService) loadPurchase(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	p, err := s.purchaseRepo.GetPurchaseByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NewPurchaseNotFoundError(purchaseID)
	}
	return p, nil
}

func (s *provisioningService) forgetChildren(ctx context.Context, childIDs []string) {
	if s.cache == nil {
		return
	}
	for _, child := range childIDs {
		if err := s.cache.Delete(ctx, cache.ChildQuizzesKey(child)); err != nil {
			s.logger.Warn("Failed to invalidate entitlement cache", zap.String("child_id", child), zap.Error(err))
		}
	}
}

// dedupeIDs trims ids, drops blanks and keeps first occurrences in order.
func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
