package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"naplan-prep/internal/cache"
	"naplan-prep/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testListTTL   = 10 * time.Minute
	testDetailTTL = 5 * time.Minute
)

func catalogBundles() []*domain.Bundle {
	return []*domain.Bundle{
		{BundleID: "year5_a", YearLevel: 5, Tier: domain.TierA, PriceCents: 5900, IsActive: true},
		{BundleID: "year3_b", YearLevel: 3, Tier: domain.TierB, PriceCents: 7900, IsActive: true},
		{BundleID: "year3_a", YearLevel: 3, Tier: domain.TierA, PriceCents: 4900, IsActive: true},
	}
}

func bundleIDs(bundles []*domain.Bundle) []string {
	ids := make([]string, len(bundles))
	for i, b := range bundles {
		ids[i] = b.BundleID
	}
	return ids
}

func assertCode(t *testing.T, err error, code domain.ErrorCode) {
	t.Helper()
	var de *domain.DomainError
	require.True(t, errors.As(err, &de), "expected a domain error, got %v", err)
	assert.Equal(t, code, de.Code)
}

func TestCatalogService_ListBundles_CacheMiss(t *testing.T) {
	bundleRepo := new(MockBundleRepository)
	mockCache := new(MockCache)
	svc := NewCatalogService(bundleRepo, new(MockSyncRunRepository), mockCache, testListTTL, testDetailTTL, zap.NewNop())

	mockCache.On("Get", mock.Anything, cache.BundleListKey()).Return("", domain.ErrCacheMiss)
	bundleRepo.On("ListBundles", mock.Anything, true).Return(catalogBundles(), nil).Once()
	mockCache.On("Set", mock.Anything, cache.BundleListKey(), mock.AnythingOfType("string"), testListTTL).Return(nil)

	all, err := svc.ListBundles(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"year3_a", "year3_b", "year5_a"}, bundleIDs(all))

	year3, err := svc.ListBundles(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"year3_a", "year3_b"}, bundleIDs(year3))

	bundleRepo.AssertNumberOfCalls(t, "ListBundles", 2)
	mockCache.AssertExpectations(t)
}

func TestCatalogService_ListBundles_CacheHit(t *testing.T) {
	bundleRepo := new(MockBundleRepository)
	mockCache := new(MockCache)
	svc := NewCatalogService(bundleRepo, new(MockSyncRunRepository), mockCache, testListTTL, testDetailTTL, zap.NewNop())

	cached, err := json.Marshal([]*domain.Bundle{
		{BundleID: "year9_c", YearLevel: 9, Tier: domain.TierC, PriceCents: 19900, IsActive: true},
	})
	require.NoError(t, err)
	mockCache.On("Get", mock.Anything, cache.BundleListKey()).Return(string(cached), nil)

	bundles, err := svc.ListBundles(context.Background(), 9)
	require.NoError(t, err)
	require.Len(t, bundles, 1)
	assert.Equal(t, int64(19900), bundles[0].PriceCents)
	bundleRepo.AssertNotCalled(t, "ListBundles", mock.Anything, mock.Anything)
}

func TestCatalogService_ListBundles_InvalidYear(t *testing.T) {
	svc := NewCatalogService(new(MockBundleRepository), new(MockSyncRunRepository), nil, testListTTL, testDetailTTL, zap.NewNop())

	_, err := svc.ListBundles(context.Background(), 4)
	assertCode(t, err, domain.CodeInvalidInput)
}

func TestCatalogService_ListBundles_NilCacheAndRepoError(t *testing.T) {
	bundleRepo := new(MockBundleRepository)
	svc := NewCatalogService(bundleRepo, new(MockSyncRunRepository), nil, testListTTL, testDetailTTL, zap.NewNop())
	bundleRepo.On("ListBundles", mock.Anything, true).Return(nil, errors.New("connection reset"))

	_, err := svc.ListBundles(context.Background(), 0)
	assertCode(t, err, domain.CodeInternal)
}

func TestCatalogService_GetBundle(t *testing.T) {
	t.Run("active bundle is cached", func(t *testing.T) {
		bundleRepo := new(MockBundleRepository)
		mockCache := new(MockCache)
		svc := NewCatalogService(bundleRepo, new(MockSyncRunRepository), mockCache, testListTTL, testDetailTTL, zap.NewNop())

		mockCache.On("Get", mock.Anything, cache.BundleKey("year3_a")).Return("", domain.ErrCacheMiss)
		bundleRepo.On("GetBundleByID", mock.Anything, "year3_a").Return(catalogBundles()[2], nil)
		mockCache.On("Set", mock.Anything, cache.BundleKey("year3_a"), mock.AnythingOfType("string"), testDetailTTL).Return(nil)

		b, err := svc.GetBundle(context.Background(), "year3_a")
		require.NoError(t, err)
		assert.Equal(t, "year3_a", b.BundleID)
		mockCache.AssertExpectations(t)
	})

	t.Run("inactive bundle is not found", func(t *testing.T) {
		bundleRepo := new(MockBundleRepository)
		mockCache := new(MockCache)
		svc := NewCatalogService(bundleRepo, new(MockSyncRunRepository), mockCache, testListTTL, testDetailTTL, zap.NewNop())

		mockCache.On("Get", mock.Anything, cache.BundleKey("year7_c")).Return("", domain.ErrCacheMiss)
		bundleRepo.On("GetBundleByID", mock.Anything, "year7_c").Return(&domain.Bundle{BundleID: "year7_c", IsActive: false}, nil)

		_, err := svc.GetBundle(context.Background(), "year7_c")
		assertCode(t, err, domain.CodeBundleNotFound)
		mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing bundle", func(t *testing.T) {
		bundleRepo := new(MockBundleRepository)
		svc := NewCatalogService(bundleRepo, new(MockSyncRunRepository), nil, testListTTL, testDetailTTL, zap.NewNop())
		bundleRepo.On("GetBundleByID", mock.Anything, "nope").Return(nil, nil)

		_, err := svc.GetBundle(context.Background(), "nope")
		assertCode(t, err, domain.CodeBundleNotFound)
	})
}

func TestCatalogService_LatestUnparseable(t *testing.T) {
	t.Run("before first sync", func(t *testing.T) {
		runs := new(MockSyncRunRepository)
		svc := NewCatalogService(new(MockBundleRepository), runs, nil, testListTTL, testDetailTTL, zap.NewNop())
		runs.On("GetLatestSyncRun", mock.Anything).Return(nil, nil)

		report, err := svc.LatestUnparseable(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, report)
		assert.Empty(t, report)

		_, err = svc.LatestSyncRun(context.Background())
		assertCode(t, err, domain.CodeNotFound)
	})

	t.Run("latest run report", func(t *testing.T) {
		runs := new(MockSyncRunRepository)
		svc := NewCatalogService(new(MockBundleRepository), runs, nil, testListTTL, testDetailTTL, zap.NewNop())
		runs.On("GetLatestSyncRun", mock.Anything).Return(&domain.SyncRun{
			ID:          "01RUN",
			Status:      domain.SyncSucceeded,
			Unparseable: []domain.UnparseableQuiz{{ID: "q9", Name: "Bonus round", Missing: []string{"year_level", "subject"}}},
		}, nil)

		report, err := svc.LatestUnparseable(context.Background())
		require.NoError(t, err)
		require.Len(t, report, 1)
		assert.Equal(t, "q9", report[0].ID)
	})

	t.Run("repository error", func(t *testing.T) {
		runs := new(MockSyncRunRepository)
		svc := NewCatalogService(new(MockBundleRepository), runs, nil, testListTTL, testDetailTTL, zap.NewNop())
		runs.On("GetLatestSyncRun", mock.Anything).Return(nil, errors.New("timeout"))

		_, err := svc.LatestUnparseable(context.Background())
		assertCode(t, err, domain.CodeInternal)
	})
}

func TestCatalogService_PreviewParse(t *testing.T) {
	svc := NewCatalogService(new(MockBundleRepository), new(MockSyncRunRepository), nil, testListTTL, testDetailTTL, zap.NewNop())

	previews := svc.PreviewParse([]string{"Year 3 Reading", "Year 5 Trial Exam", "Mystery Quiz"})
	require.Len(t, previews, 3)

	assert.True(t, previews[0].Tierable)
	require.NotNil(t, previews[0].Tier)
	assert.Equal(t, domain.TierA, *previews[0].Tier)

	assert.True(t, previews[1].Tierable)
	assert.Nil(t, previews[1].Tier)

	assert.False(t, previews[2].Tierable)
	assert.Nil(t, previews[2].Tier)
	assert.NotEmpty(t, previews[2].Missing)
}
