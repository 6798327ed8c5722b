package handler_test

import (
	"context"

	"naplan-prep/internal/domain"
	"naplan-prep/internal/feedback"
	"naplan-prep/internal/handler"
	"naplan-prep/internal/middleware"
	"naplan-prep/internal/service"

	"github.com/gofiber/fiber/v2"
)

// --- Manual Mocks ---

type MockCatalogService struct {
	ListBundlesFunc       func(ctx context.Context, yearLevel int) ([]*domain.Bundle, error)
	GetBundleFunc         func(ctx context.Context, bundleID string) (*domain.Bundle, error)
	LatestSyncRunFunc     func(ctx context.Context) (*domain.SyncRun, error)
	LatestUnparseableFunc func(ctx context.Context) ([]domain.UnparseableQuiz, error)
	PreviewParseFunc      func(names []string) []service.ParsePreview
}

func (m *MockCatalogService) ListBundles(ctx context.Context, yearLevel int) ([]*domain.Bundle, error) {
	if m.ListBundlesFunc != nil {
		return m.ListBundlesFunc(ctx, yearLevel)
	}
	panic("MockCatalogService.ListBundlesFunc not implemented")
}

func (m *MockCatalogService) GetBundle(ctx context.Context, bundleID string) (*domain.Bundle, error) {
	if m.GetBundleFunc != nil {
		return m.GetBundleFunc(ctx, bundleID)
	}
	panic("MockCatalogService.GetBundleFunc not implemented")
}

func (m *MockCatalogService) LatestSyncRun(ctx context.Context) (*domain.SyncRun, error) {
	if m.LatestSyncRunFunc != nil {
		return m.LatestSyncRunFunc(ctx)
	}
	panic("MockCatalogService.LatestSyncRunFunc not implemented")
}

func (m *MockCatalogService) LatestUnparseable(ctx context.Context) ([]domain.UnparseableQuiz, error) {
	if m.LatestUnparseableFunc != nil {
		return m.LatestUnparseableFunc(ctx)
	}
	panic("MockCatalogService.LatestUnparseableFunc not implemented")
}

func (m *MockCatalogService) PreviewParse(names []string) []service.ParsePreview {
	if m.PreviewParseFunc != nil {
		return m.PreviewParseFunc(names)
	}
	panic("MockCatalogService.PreviewParseFunc not implemented")
}

type MockSyncService struct {
	RunFunc func(ctx context.Context) (*domain.SyncRun, error)
}

func (m *MockSyncService) Run(ctx context.Context) (*domain.SyncRun, error) {
	if m.RunFunc != nil {
		return m.RunFunc(ctx)
	}
	panic("MockSyncService.RunFunc not implemented")
}

type MockProvisioningService struct {
	CreatePurchaseFunc func(ctx context.Context, in service.CreatePurchaseInput) (*domain.Purchase, error)
	MarkPaidFunc       func(ctx context.Context, purchaseID, paymentRef string) (*domain.Purchase, error)
	ProvisionFunc      func(ctx context.Context, purchaseID string) (*domain.Purchase, error)
	MarkFailedFunc     func(ctx context.Context, purchaseID, reason string) (*domain.Purchase, error)
	ChildQuizIDsFunc   func(ctx context.Context, childID string) ([]string, error)
}

func (m *MockProvisioningService) CreatePurchase(ctx context.Context, in service.CreatePurchaseInput) (*domain.Purchase, error) {
	if m.CreatePurchaseFunc != nil {
		return m.CreatePurchaseFunc(ctx, in)
	}
	panic("MockProvisioningService.CreatePurchaseFunc not implemented")
}

func (m *MockProvisioningService) MarkPaid(ctx context.Context, purchaseID, paymentRef string) (*domain.Purchase, error) {
	if m.MarkPaidFunc != nil {
		return m.MarkPaidFunc(ctx, purchaseID, paymentRef)
	}
	panic("MockProvisioningService.MarkPaidFunc not implemented")
}

func (m *MockProvisioningService) Provision(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	if m.ProvisionFunc != nil {
		return m.ProvisionFunc(ctx, purchaseID)
	}
	panic("MockProvisioningService.ProvisionFunc not implemented")
}

func (m *MockProvisioningService) MarkFailed(ctx context.Context, purchaseID, reason string) (*domain.Purchase, error) {
	if m.MarkFailedFunc != nil {
		return m.MarkFailedFunc(ctx, purchaseID, reason)
	}
	panic("MockProvisioningService.MarkFailedFunc not implemented")
}

func (m *MockProvisioningService) ChildQuizIDs(ctx context.Context, childID string) ([]string, error) {
	if m.ChildQuizIDsFunc != nil {
		return m.ChildQuizIDsFunc(ctx, childID)
	}
	panic("MockProvisioningService.ChildQuizIDsFunc not implemented")
}

type MockWritingEvaluator struct {
	EvaluateFunc func(ctx context.Context, req feedback.Request) (*feedback.Result, error)
}

func (m *MockWritingEvaluator) Evaluate(ctx context.Context, req feedback.Request) (*feedback.Result, error) {
	if m.EvaluateFunc != nil {
		return m.EvaluateFunc(ctx, req)
	}
	panic("MockWritingEvaluator.EvaluateFunc not implemented")
}

type MockSubjectEvaluator struct {
	EvaluateFunc func(ctx context.Context, req feedback.SubjectRequest) (*feedback.SubjectResult, error)
}

func (m *MockSubjectEvaluator) Evaluate(ctx context.Context, req feedback.SubjectRequest) (*feedback.SubjectResult, error) {
	if m.EvaluateFunc != nil {
		return m.EvaluateFunc(ctx, req)
	}
	panic("MockSubjectEvaluator.EvaluateFunc not implemented")
}

type testServices struct {
	catalog      *MockCatalogService
	sync         *MockSyncService
	provisioning *MockProvisioningService
	evaluator    *MockWritingEvaluator
	subjects     *MockSubjectEvaluator
}

// setupApp mounts every route behind a pass-through admin guard.
func setupApp() (*fiber.App, *testServices) {
	return setupAppWithAuth(func(c *fiber.Ctx) error {
		c.Locals(middleware.SubjectKey, "ops@example.com")
		return c.Next()
	})
}

func setupAppWithAuth(adminAuth fiber.Handler) (*fiber.App, *testServices) {
	svcs := &testServices{
		catalog:      &MockCatalogService{},
		sync:         &MockSyncService{},
		provisioning: &MockProvisioningService{},
		evaluator:    &MockWritingEvaluator{},
		subjects:     &MockSubjectEvaluator{},
	}

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	handler.Register(app.Group("/api"), handler.Handlers{
		Catalog:  handler.NewCatalogHandler(svcs.catalog),
		Admin:    handler.NewAdminHandler(svcs.sync, svcs.catalog),
		Purchase: handler.NewPurchaseHandler(svcs.provisioning),
		Feedback: handler.NewFeedbackHandler(svcs.evaluator, svcs.subjects),
	}, adminAuth)
	return app, svcs
}
