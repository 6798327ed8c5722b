package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"naplan-prep/internal/cache"
	"naplan-prep/internal/catalog"
	"naplan-prep/internal/domain"
	"naplan-prep/internal/metrics"
	"naplan-prep/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// syncService implements the domain.SyncService interface.
type syncService struct {
	sources     []domain.QuizSource
	quizRepo    domain.QuizRepository
	bundleRepo  domain.BundleRepository
	syncRunRepo domain.SyncRunRepository
	txManager   domain.TransactionManager
	cache       domain.Cache
	pricing     domain.PricingTable
	opts        catalog.BuildOptions
	lockTTL     time.Duration
	logger      *zap.Logger
}

// NewSyncService creates a new instance of syncService.
func NewSyncService(
	sources []domain.QuizSource,
	quizRepo domain.QuizRepository,
	bundleRepo domain.BundleRepository,
	syncRunRepo domain.SyncRunRepository,
	txManager domain.TransactionManager,
	cache domain.Cache,
	pricing domain.PricingTable,
	opts catalog.BuildOptions,
	lockTTL time.Duration,
	logger *zap.Logger,
) domain.SyncService {
	return &syncService{
		sources:     sources,
		quizRepo:    quizRepo,
		bundleRepo:  bundleRepo,
		syncRunRepo: syncRunRepo,
		txManager:   txManager,
		cache:       cache,
		pricing:     pricing,
		opts:        opts,
		lockTTL:     lockTTL,
		logger:      logger,
	}
}

// now is replaced in tests.
var now = func() time.Time { return time.Now().UTC() }

// Run fetches every source, reconciles the snapshot and persists quizzes and
// bundles in one transaction. Only one run may hold the sync lock at a time.
func (s *syncService) Run(ctx context.Context) (*domain.SyncRun, error) {
	token := util.NewULID()
	lockKey := cache.SyncLockKey()

	acquired, err := s.cache.SetNX(ctx, lockKey, token, s.lockTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire sync lock: %w", err)
	}
	if !acquired {
		s.logger.Info("Catalog sync skipped, another run holds the lock")
		return nil, domain.ErrSyncInProgress
	}
	defer s.releaseLock(ctx, lockKey, token)

	started := now()
	run := &domain.SyncRun{ID: token, StartedAt: started, Status: domain.SyncRunning}
	s.logger.Info("Starting catalog sync", zap.String("run_id", run.ID), zap.Int("sources", len(s.sources)))

	if err := s.syncRunRepo.SaveSyncRun(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to record sync start: %w", err)
	}

	records, err := s.fetchAll(ctx)
	if err != nil {
		return s.fail(ctx, run, err)
	}
	run.QuizzesFetched = len(records)

	res := catalog.Reconcile(records, s.pricing, s.opts)
	run.QuizzesParsed = res.Parsed()
	run.QuizzesUnparseable = len(res.Unparseable)
	run.QuizzesTrial = res.Trials
	run.Unparseable = res.Unparseable
	for _, w := range res.Warnings {
		s.logger.Warn("Bundle priced from fallback year",
			zap.String("bundle_id", w.BundleID),
			zap.Int("year_level", w.YearLevel),
			zap.Int("priced_from_year", w.UsedYear))
		run.PricingWarnings = append(run.PricingWarnings, w.String())
	}
	for _, year := range sortedYears(res.YearErrors) {
		s.logger.Error("Bundles not built for year", zap.Int("year_level", year), zap.Error(res.YearErrors[year]))
	}
	for _, u := range res.Unparseable {
		s.logger.Warn("Unparseable quiz name",
			zap.String("quiz_id", u.ID),
			zap.String("name", u.Name),
			zap.Strings("missing", u.Missing))
	}

	sources := indexSources(records)
	var touched []string
	err = s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		var txErr error
		touched, txErr = s.persist(ctx, run, res, sources, started)
		return txErr
	})
	if err != nil {
		return s.fail(ctx, run, fmt.Errorf("failed to persist catalog: %w", err))
	}

	s.invalidate(ctx, touched)

	finished := now()
	run.FinishedAt = &finished
	run.Status = domain.SyncSucceeded
	if len(res.YearErrors) > 0 {
		run.Error = joinYearErrors(res.YearErrors)
	}
	if err := s.syncRunRepo.SaveSyncRun(ctx, run); err != nil {
		s.logger.Error("Failed to record sync result", zap.String("run_id", run.ID), zap.Error(err))
	}

	metrics.ObserveSync(string(run.Status), finished.Sub(started), run.QuizzesFetched, run.QuizzesParsed,
		run.QuizzesUnparseable, run.QuizzesTrial, run.BundlesDeactivated, len(res.Warnings))
	s.logger.Info("Catalog sync finished",
		zap.String("run_id", run.ID),
		zap.Int("fetched", run.QuizzesFetched),
		zap.Int("parsed", run.QuizzesParsed),
		zap.Int("unparseable", run.QuizzesUnparseable),
		zap.Int("bundles_upserted", run.BundlesUpserted),
		zap.Int("bundles_deactivated", run.BundlesDeactivated),
		zap.Duration("elapsed", finished.Sub(started)))
	return run, nil
}

// fetchAll reads every source concurrently. Records keep source order so the
// first configured source wins on duplicate IDs.
func (s *syncService) fetchAll(ctx context.Context) ([]domain.SourceQuiz, error) {
	results := make([][]domain.SourceQuiz, len(s.sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range s.sources {
		g.Go(func() error {
			quizzes, err := src.FetchQuizzes(gctx)
			if err != nil {
				return fmt.Errorf("source %s: %w", src.Name(), err)
			}
			s.logger.Debug("Fetched quiz source", zap.String("source", src.Name()), zap.Int("count", len(quizzes)))
			results[i] = quizzes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var records []domain.SourceQuiz
	for _, r := range results {
		records = append(records, r...)
	}
	return records, nil
}

// persist writes the reconciled snapshot and returns the bundle IDs whose
// cached copies are now stale.
func (s *syncService) persist(ctx context.Context, run *domain.SyncRun, res *catalog.Result, sources map[string]domain.SourceQuiz, started time.Time) ([]string, error) {
	for _, tq := range res.Quizzes {
		if err := s.quizRepo.UpsertQuiz(ctx, tieredToQuiz(tq, sources[tq.ID])); err != nil {
			return nil, err
		}
	}
	for _, u := range res.Unparseable {
		if err := s.quizRepo.UpsertQuiz(ctx, unparseableToQuiz(u, sources[u.ID])); err != nil {
			return nil, err
		}
	}

	previous, err := s.bundleRepo.ListBundles(ctx, true)
	if err != nil {
		return nil, err
	}

	for _, b := range res.SortedBundles() {
		if err := s.bundleRepo.UpsertBundle(ctx, b); err != nil {
			return nil, err
		}
	}
	run.BundlesUpserted = len(res.Bundles)

	// Bundles of a year that failed to build stay as they were.
	keep := res.BundleIDs()
	touched := append([]string(nil), keep...)
	for _, b := range previous {
		if _, failed := res.YearErrors[b.YearLevel]; failed {
			keep = append(keep, b.BundleID)
			continue
		}
		if _, produced := res.Bundles[b.BundleID]; !produced {
			touched = append(touched, b.BundleID)
		}
	}

	deactivated, err := s.bundleRepo.DeactivateExcept(ctx, keep)
	if err != nil {
		return nil, err
	}
	run.BundlesDeactivated = int(deactivated)

	stale, err := s.quizRepo.DeactivateStale(ctx, started)
	if err != nil {
		return nil, err
	}
	if stale > 0 {
		s.logger.Info("Deactivated quizzes missing from sources", zap.Int64("count", stale))
	}
	return touched, nil
}

func (s *syncService) invalidate(ctx context.Context, bundleIDs []string) {
	keys := make([]string, 0, len(bundleIDs)+1)
	keys = append(keys, cache.BundleListKey())
	for _, id := range bundleIDs {
		keys = append(keys, cache.BundleKey(id))
	}
	for _, key := range keys {
		if err := s.cache.Delete(ctx, key); err != nil {
			s.logger.Warn("Failed to invalidate catalog cache", zap.String("key", key), zap.Error(err))
		}
	}
}

func (s *syncService) fail(ctx context.Context, run *domain.SyncRun, cause error) (*domain.SyncRun, error) {
	finished := now()
	run.FinishedAt = &finished
	run.Status = domain.SyncFailed
	run.Error = cause.Error()

	s.logger.Error("Catalog sync failed", zap.String("run_id", run.ID), zap.Error(cause))
	if err := s.syncRunRepo.SaveSyncRun(context.WithoutCancel(ctx), run); err != nil {
		s.logger.Error("Failed to record sync failure", zap.String("run_id", run.ID), zap.Error(err))
	}
	metrics.ObserveSync(string(run.Status), finished.Sub(run.StartedAt), 0, 0, 0, 0, 0, 0)
	return run, cause
}

func (s *syncService) releaseLock(ctx context.Context, key, token string) {
	released, err := s.cache.DeleteIfEquals(context.WithoutCancel(ctx), key, token)
	if err != nil {
		s.logger.Error("Failed to release sync lock", zap.String("key", key), zap.Error(err))
		return
	}
	if !released {
		s.logger.Warn("Sync lock expired before release", zap.String("key", key), zap.Duration("ttl", s.lockTTL))
	}
}

func indexSources(records []domain.SourceQuiz) map[string]domain.SourceQuiz {
	idx := make(map[string]domain.SourceQuiz, len(records))
	for _, r := range records {
		if _, ok := idx[r.ID]; !ok {
			idx[r.ID] = r
		}
	}
	return idx
}

func tieredToQuiz(tq domain.TieredQuiz, src domain.SourceQuiz) *domain.Quiz {
	return &domain.Quiz{
		ID:           tq.ID,
		Name:         tq.Name,
		Source:       src.Source,
		Status:       src.Status,
		YearLevel:    tq.YearLevel,
		Subject:      tq.Subject,
		Difficulty:   tq.Difficulty,
		SetNumber:    tq.SetNumber,
		IsFullLength: tq.IsFullLength,
		IsTrial:      tq.IsTrial,
		Tier:         tq.Tier,
		TierOrder:    tq.TierOrder,
		IsActive:     true,
		DateCreated:  src.DateCreated,
	}
}

// unparseableToQuiz keeps whatever the parser found so admins can see why
// the quiz was left out.
func unparseableToQuiz(u domain.UnparseableQuiz, src domain.SourceQuiz) *domain.Quiz {
	p := catalog.ParseQuizName(u.ID, u.Name)
	return &domain.Quiz{
		ID:           u.ID,
		Name:         u.Name,
		Source:       src.Source,
		Status:       src.Status,
		YearLevel:    p.YearLevel,
		Subject:      p.Subject,
		Difficulty:   p.Difficulty,
		SetNumber:    p.SetNumber,
		IsFullLength: p.IsFullLength,
		IsTrial:      p.IsTrial,
		IsActive:     true,
		ParseError:   "missing " + strings.Join(u.Missing, ", "),
		DateCreated:  src.DateCreated,
	}
}

func sortedYears(m map[int]error) []int {
	years := make([]int, 0, len(m))
	for y := range m {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

func joinYearErrors(m map[int]error) string {
	errs := make([]error, 0, len(m))
	for _, y := range sortedYears(m) {
		errs = append(errs, m[y])
	}
	return errors.Join(errs...).Error()
}
