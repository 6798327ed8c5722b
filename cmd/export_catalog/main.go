// Command export_catalog writes the active bundles to an XLSX workbook.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"naplan-prep/internal/adapter/quizbank"
	"naplan-prep/internal/config"
	"naplan-prep/internal/database"
	"naplan-prep/internal/logger"
	"naplan-prep/internal/repository"
	"naplan-prep/internal/service"

	"go.uber.org/zap"
)

func main() {
	out := flag.String("out", "bundles.xlsx", "output workbook path")
	year := flag.Int("year", 0, "only export this year level (3, 5, 7 or 9)")
	flag.Parse()

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

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Reads go straight to the database.
	catalogService := service.NewCatalogService(
		repository.NewBundleDatabaseAdapter(db),
		repository.NewSyncRunDatabaseAdapter(db),
		nil,
		0, 0,
		log,
	)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	bundles, err := catalogService.ListBundles(ctx, *year)
	if err != nil {
		log.Fatal("Failed to list bundles", zap.Error(err))
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal("Failed to create output file", zap.String("path", *out), zap.Error(err))
	}
	defer f.Close()

	if err := quizbank.WriteBundles(f, bundles); err != nil {
		log.Fatal("Failed to write workbook", zap.Error(err))
	}
	log.Info("Catalog exported", zap.String("path", *out), zap.Int("bundles", len(bundles)))
}
