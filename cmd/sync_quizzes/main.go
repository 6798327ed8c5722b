// Command sync_quizzes runs one catalog sync against the configured quiz
// sources and prints the run summary as JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"naplan-prep/internal/adapter"
	"naplan-prep/internal/adapter/flexiquiz"
	"naplan-prep/internal/adapter/quizbank"
	"naplan-prep/internal/cache"
	"naplan-prep/internal/catalog"
	"naplan-prep/internal/config"
	"naplan-prep/internal/database"
	"naplan-prep/internal/domain"
	"naplan-prep/internal/dto"
	"naplan-prep/internal/logger"
	"naplan-prep/internal/metrics"
	"naplan-prep/internal/pricing"
	"naplan-prep/internal/repository"
	"naplan-prep/internal/service"

	"go.uber.org/zap"
)

func main() {
	timeout := flag.Duration("timeout", 10*time.Minute, "abort the sync after this long")
	xlsxPath := flag.String("xlsx", "", "also read quizzes from this workbook (overrides quiz_bank.xlsx_path)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *xlsxPath != "" {
		cfg.QuizBank.XLSXPath = *xlsxPath
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	metrics.Init()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	pricingTable, err := pricing.LoadFile(cfg.Pricing.File)
	if err != nil {
		log.Fatal("Failed to load pricing", zap.String("file", cfg.Pricing.File), zap.Error(err))
	}

	var sources []domain.QuizSource
	if cfg.FlexiQuiz.Enabled {
		client, err := flexiquiz.NewClient(cfg.FlexiQuiz, log)
		if err != nil {
			log.Fatal("Failed to create FlexiQuiz client", zap.Error(err))
		}
		sources = append(sources, client)
	}
	if cfg.QuizBank.XLSXPath != "" {
		sources = append(sources, quizbank.NewSource(cfg.QuizBank.XLSXPath, cfg.QuizBank.Sheet, log))
	}
	if len(sources) == 0 {
		log.Fatal("No quiz sources enabled")
	}

	syncService := service.NewSyncService(
		sources,
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

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	run, err := syncService.Run(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrSyncInProgress) {
			log.Warn("Another sync is running, nothing to do")
			return
		}
		log.Fatal("Sync failed", zap.Error(err))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dto.NewSyncRunResponse(run)); err != nil {
		log.Fatal("Failed to print sync summary", zap.Error(err))
	}
}
