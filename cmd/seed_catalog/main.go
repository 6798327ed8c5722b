// Command seed_catalog syncs the catalog from a JSON seed file instead of the
// live quiz sources. Useful for local development and demos.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"naplan-prep/cmd/seed_catalog/internal/seedmodels"
	"naplan-prep/internal/adapter"
	"naplan-prep/internal/cache"
	"naplan-prep/internal/catalog"
	"naplan-prep/internal/config"
	"naplan-prep/internal/database"
	"naplan-prep/internal/domain"
	"naplan-prep/internal/logger"
	"naplan-prep/internal/pricing"
	"naplan-prep/internal/repository"
	"naplan-prep/internal/service"

	"go.uber.org/zap"
)

const defaultSeedFile = "configs/seed_data/quizzes.json"

func main() {
	seedPath := flag.String("file", defaultSeedFile, "seed file with quiz records")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting catalog seeding", zap.String("path", *seedPath))
	source, err := seedmodels.Load(*seedPath)
	if err != nil {
		log.Fatal("Failed to load seed file", zap.Error(err))
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db, cfg.DB.Driver, log); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	pricingTable, err := pricing.LoadFile(cfg.Pricing.File)
	if err != nil {
		log.Fatal("Failed to load pricing", zap.Error(err))
	}

	syncService := service.NewSyncService(
		[]domain.QuizSource{source},
		repository.NewQuizDatabaseAdapter(db),
		repository.NewBundleDatabaseAdapter(db),
		repository.NewSyncRunDatabaseAdapter(db),
		repository.NewTransactionManagerAdapter(db),
		adapter.NewRedisCacheAdapter(redisClient),
		pricingTable,
		catalog.BuildOptions{FallbackToYear3: cfg.Pricing.FallbackToYear3},
		cfg.Sync.LockTTL,
		log,
	)

	runCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()
	run, err := syncService.Run(runCtx)
	if err != nil {
		log.Fatal("Seeding sync failed", zap.Error(err))
	}
	log.Info("Catalog seeding completed",
		zap.String("run_id", run.ID),
		zap.Int("quizzes_parsed", run.QuizzesParsed),
		zap.Int("quizzes_unparseable", run.QuizzesUnparseable),
		zap.Int("bundles_upserted", run.BundlesUpserted),
	)
}
