package service

import (
	"context"
	"sync"
	"time"

	"naplan-prep/internal/domain"
	"naplan-prep/internal/feedback"

	"github.com/stretchr/testify/mock"
)

// --- MockQuizRepository ---
type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) UpsertQuiz(ctx context.Context, quiz *domain.Quiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

func (m *MockQuizRepository) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) ListActiveQuizzes(ctx context.Context) ([]*domain.Quiz, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) DeactivateStale(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

// --- MockBundleRepository ---
type MockBundleRepository struct {
	mock.Mock
}

func (m *MockBundleRepository) UpsertBundle(ctx context.Context, bundle *domain.Bundle) error {
	args := m.Called(ctx, bundle)
	return args.Error(0)
}

func (m *MockBundleRepository) GetBundleByID(ctx context.Context, bundleID string) (*domain.Bundle, error) {
	args := m.Called(ctx, bundleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bundle), args.Error(1)
}

func (m *MockBundleRepository) ListBundles(ctx context.Context, activeOnly bool) ([]*domain.Bundle, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Bundle), args.Error(1)
}

func (m *MockBundleRepository) DeactivateExcept(ctx context.Context, keep []string) (int64, error) {
	args := m.Called(ctx, keep)
	return args.Get(0).(int64), args.Error(1)
}

// --- MockPurchaseRepository ---
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) CreatePurchase(ctx context.Context, purchase *domain.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) GetPurchaseByID(ctx context.Context, id string) (*domain.Purchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) UpdatePurchase(ctx context.Context, purchase *domain.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

// --- MockEntitlementRepository ---
type MockEntitlementRepository struct {
	mock.Mock
}

func (m *MockEntitlementRepository) GrantEntitlements(ctx context.Context, entitlements []*domain.Entitlement) error {
	args := m.Called(ctx, entitlements)
	return args.Error(0)
}

func (m *MockEntitlementRepository) ListQuizIDsByChild(ctx context.Context, childID string) ([]string, error) {
	args := m.Called(ctx, childID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// --- MockSyncRunRepository ---

// MockSyncRunRepository records a copy of every saved run, since the
// service keeps mutating the same value.
type MockSyncRunRepository struct {
	mock.Mock
	mu    sync.Mutex
	saved []domain.SyncRun
}

func (m *MockSyncRunRepository) SaveSyncRun(ctx context.Context, run *domain.SyncRun) error {
	m.mu.Lock()
	m.saved = append(m.saved, *run)
	m.mu.Unlock()
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockSyncRunRepository) GetLatestSyncRun(ctx context.Context) (*domain.SyncRun, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncRun), args.Error(1)
}

func (m *MockSyncRunRepository) Saved() []domain.SyncRun {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.SyncRun(nil), m.saved...)
}

// --- MockTransactionManager ---

// MockTransactionManager runs fn directly and returns its error.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) SetNX(ctx context.Context, key string, value string, expiration time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, expiration)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) DeleteIfEquals(ctx context.Context, key string, value string) (bool, error) {
	args := m.Called(ctx, key, value)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockQuizSource ---
type MockQuizSource struct {
	mock.Mock
	name string
}

func (m *MockQuizSource) Name() string {
	return m.name
}

func (m *MockQuizSource) FetchQuizzes(ctx context.Context) ([]domain.SourceQuiz, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SourceQuiz), args.Error(1)
}

// --- MockWritingAssessor ---
type MockWritingAssessor struct {
	mock.Mock
}

func (m *MockWritingAssessor) Assess(ctx context.Context, req feedback.Request, textType feedback.TextType) (*feedback.RawAssessment, error) {
	args := m.Called(ctx, req, textType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*feedback.RawAssessment), args.Error(1)
}

// --- MockSubjectCoach ---
type MockSubjectCoach struct {
	mock.Mock
}

func (m *MockSubjectCoach) Coach(ctx context.Context, analysis feedback.PerformanceAnalysis, subject string) (*feedback.RawSubjectFeedback, error) {
	args := m.Called(ctx, analysis, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*feedback.RawSubjectFeedback), args.Error(1)
}
