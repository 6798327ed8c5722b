package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"naplan-prep/internal/cache"
	"naplan-prep/internal/catalog"
	"naplan-prep/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// CatalogService serves the bundle catalog and sync reports.
type CatalogService interface {
	// ListBundles returns active bundles; yearLevel 0 means every year.
	ListBundles(ctx context.Context, yearLevel int) ([]*domain.Bundle, error)
	GetBundle(ctx context.Context, bundleID string) (*domain.Bundle, error)
	LatestSyncRun(ctx context.Context) (*domain.SyncRun, error)
	LatestUnparseable(ctx context.Context) ([]domain.UnparseableQuiz, error)
	PreviewParse(names []string) []ParsePreview
}

// ParsePreview shows how one quiz name would be parsed and tiered.
type ParsePreview struct {
	Name     string
	Parsed   domain.ParsedQuiz
	Tierable bool
	Missing  []string
	Tier     *domain.Tier
}

type catalogService struct {
	bundleRepo  domain.BundleRepository
	syncRunRepo domain.SyncRunRepository
	cache       domain.Cache
	listTTL     time.Duration
	detailTTL   time.Duration
	group       singleflight.Group
	logger      *zap.Logger
}

// NewCatalogService creates a new instance of catalogService. A nil cache
// disables caching.
func NewCatalogService(
	bundleRepo domain.BundleRepository,
	syncRunRepo domain.SyncRunRepository,
	cache domain.Cache,
	listTTL, detailTTL time.Duration,
	logger *zap.Logger,
) CatalogService {
	return &catalogService{
		bundleRepo:  bundleRepo,
		syncRunRepo: syncRunRepo,
		cache:       cache,
		listTTL:     listTTL,
		detailTTL:   detailTTL,
		logger:      logger,
	}
}

// ListBundles implements CatalogService
func (s *catalogService) ListBundles(ctx context.Context, yearLevel int) ([]*domain.Bundle, error) {
	if yearLevel != 0 && !domain.IsValidYearLevel(yearLevel) {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("year level must be one of 3, 5, 7, 9, got %d", yearLevel)).
			WithContext("year_level", yearLevel)
	}

	bundles, err := s.activeBundles(ctx)
	if err != nil {
		return nil, err
	}
	if yearLevel == 0 {
		return bundles, nil
	}

	filtered := make([]*domain.Bundle, 0, len(bundles))
	for _, b := range bundles {
		if b.YearLevel == yearLevel {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

// activeBundles reads the whole active catalog through the cache. Concurrent
// misses share one database load.
func (s *catalogService) activeBundles(ctx context.Context) ([]*domain.Bundle, error) {
	key := cache.BundleListKey()

	var bundles []*domain.Bundle
	if s.readCache(ctx, key, &bundles) {
		return bundles, nil
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		loaded, err := s.bundleRepo.ListBundles(ctx, true)
		if err != nil {
			return nil, err
		}
		domain.SortBundles(loaded)
		s.writeCache(ctx, key, loaded, s.listTTL)
		return loaded, nil
	})
	if err != nil {
		return nil, domain.NewInternalError("failed to list bundles", err)
	}
	return v.([]*domain.Bundle), nil
}

// GetBundle implements CatalogService. Inactive bundles are reported as not found.
func (s *catalogService) GetBundle(ctx context.Context, bundleID string) (*domain.Bundle, error) {
	key := cache.BundleKey(bundleID)

	var bundle domain.Bundle
	if s.readCache(ctx, key, &bundle) {
		return &bundle, nil
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		b, err := s.bundleRepo.GetBundleByID(ctx, bundleID)
		if err != nil {
			return nil, err
		}
		if b != nil && b.IsActive {
			s.writeCache(ctx, key, b, s.detailTTL)
		}
		return b, nil
	})
	if err != nil {
		return nil, domain.NewInternalError("failed to get bundle", err)
	}
	b, _ := v.(*domain.Bundle)
	if b == nil || !b.IsActive {
		return nil, domain.NewBundleNotFoundError(bundleID)
	}
	return b, nil
}

// LatestSyncRun implements CatalogService
func (s *catalogService) LatestSyncRun(ctx context.Context) (*domain.SyncRun, error) {
	run, err := s.syncRunRepo.GetLatestSyncRun(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to load latest sync run", err)
	}
	if run == nil {
		return nil, domain.NewNotFoundError("no catalog sync has run yet")
	}
	return run, nil
}

// LatestUnparseable implements CatalogService. Before the first sync the report is empty.
func (s *catalogService) LatestUnparseable(ctx context.Context) ([]domain.UnparseableQuiz, error) {
	run, err := s.LatestSyncRun(ctx)
	if err != nil {
		var de *domain.DomainError
		if errors.As(err, &de) && de.Code == domain.CodeNotFound {
			return []domain.UnparseableQuiz{}, nil
		}
		return nil, err
	}
	if run.Unparseable == nil {
		return []domain.UnparseableQuiz{}, nil
	}
	return run.Unparseable, nil
}

// PreviewParse implements CatalogService
func (s *catalogService) PreviewParse(names []string) []ParsePreview {
	previews := make([]ParsePreview, len(names))
	for i, name := range names {
		p := catalog.ParseQuizName("preview-"+strconv.Itoa(i+1), name)
		pv := ParsePreview{
			Name:     name,
			Parsed:   p,
			Tierable: catalog.Tierable(p),
			Missing:  catalog.MissingForTiering(p),
		}
		if pv.Tierable {
			pv.Tier = catalog.ClassifyTier(p)
		}
		previews[i] = pv
	}
	return previews
}

func (s *catalogService) readCache(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			s.logger.Warn("Catalog cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		s.logger.Warn("Discarding undecodable catalog cache entry", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *catalogService) writeCache(ctx context.Context, key string, v interface{}, ttl time.Duration) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Warn("Failed to encode catalog cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(data), ttl); err != nil {
		s.logger.Warn("Catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
}
