// @title NAPLAN Prep API
// @version 1.0
// @description Catalog, purchase provisioning and writing feedback for NAPLAN practice quizzes.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize admin routes.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"naplan-prep/internal/adapter"
	"naplan-prep/internal/adapter/evaluator"
	"naplan-prep/internal/adapter/flexiquiz"
	"naplan-prep/internal/adapter/quizbank"
	"naplan-prep/internal/cache"
	"naplan-prep/internal/catalog"
	"naplan-prep/internal/config"
	"naplan-prep/internal/database"
	"naplan-prep/internal/domain"
	"naplan-prep/internal/handler"
	"naplan-prep/internal/logger"
	"naplan-prep/internal/metrics"
	"naplan-prep/internal/middleware"
	"naplan-prep/internal/pricing"
	"naplan-prep/internal/repository"
	"naplan-prep/internal/service"

	_ "naplan-prep/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

// quizSources builds the enabled sources in a fixed order so duplicate quiz
// IDs resolve the same way on every run.
func quizSources(cfg *config.Config, appLogger *zap.Logger) ([]domain.QuizSource, error) {
	var sources []domain.QuizSource
	if cfg.FlexiQuiz.Enabled {
		client, err := flexiquiz.NewClient(cfg.FlexiQuiz, appLogger)
		if err != nil {
			return nil, err
		}
		sources = append(sources, client)
	}
	if cfg.QuizBank.XLSXPath != "" {
		sources = append(sources, quizbank.NewSource(cfg.QuizBank.XLSXPath, cfg.QuizBank.Sheet, appLogger))
	}
	return sources, nil
}

// runPeriodicSync triggers a sync every interval until ctx is cancelled.
func runPeriodicSync(ctx context.Context, syncService domain.SyncService, interval time.Duration, appLogger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			run, err := syncService.Run(ctx)
			if err != nil {
				if errors.Is(err, domain.ErrSyncInProgress) {
					appLogger.Info("Scheduled sync skipped, another run holds the lock")
					continue
				}
				appLogger.Error("Scheduled sync failed", zap.Error(err))
				continue
			}
			appLogger.Info("Scheduled sync finished",
				zap.String("run_id", run.ID),
				zap.Int("bundles_upserted", run.BundlesUpserted),
			)
		}
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	metrics.Init()

	db, err := database.Connect(cfg)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to database", zap.String("driver", cfg.DB.Driver))

	if err := database.RunMigrations(context.Background(), db, cfg.DB.Driver, appLogger); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	quizRepository := repository.NewQuizDatabaseAdapter(db)
	bundleRepository := repository.NewBundleDatabaseAdapter(db)
	purchaseRepository := repository.NewPurchaseDatabaseAdapter(db)
	entitlementRepository := repository.NewEntitlementDatabaseAdapter(db)
	syncRunRepository := repository.NewSyncRunDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
	appLogger.Info("Successfully connected to Redis")

	pricingTable, err := pricing.LoadFile(cfg.Pricing.File)
	if err != nil {
		appLogger.Fatal("Failed to load pricing", zap.String("file", cfg.Pricing.File), zap.Error(err))
	}
	if missing := pricing.MissingYears(pricingTable); len(missing) > 0 {
		appLogger.Warn("Pricing table has no rows for some year levels",
			zap.Ints("years", missing),
			zap.Bool("fallback_to_year3", cfg.Pricing.FallbackToYear3),
		)
	}

	sources, err := quizSources(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create quiz sources", zap.Error(err))
	}
	if len(sources) == 0 {
		appLogger.Warn("No quiz sources enabled, sync runs will produce an empty catalog")
	}

	model, err := evaluator.NewModel(context.Background(), cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.String("provider", cfg.LLM.Provider), zap.Error(err))
	}

	syncService := service.NewSyncService(
		sources,
		quizRepository,
		bundleRepository,
		syncRunRepository,
		txManager,
		cacheAdapter,
		pricingTable,
		catalog.BuildOptions{FallbackToYear3: cfg.Pricing.FallbackToYear3},
		cfg.Sync.LockTTL,
		appLogger,
	)
	catalogService := service.NewCatalogService(
		bundleRepository,
		syncRunRepository,
		cacheAdapter,
		cfg.CacheTTLs.BundleList,
		cfg.CacheTTLs.BundleDetail,
		appLogger,
	)
	provisioningService := service.NewProvisioningService(
		bundleRepository,
		purchaseRepository,
		entitlementRepository,
		txManager,
		cacheAdapter,
		cfg.CacheTTLs.Entitlements,
		appLogger,
	)
	llmEvaluator := evaluator.NewLLMEvaluator(model, cfg.LLM.Timeout)
	writingEvaluator := service.NewWritingEvaluator(llmEvaluator, appLogger)
	subjectEvaluator := service.NewSubjectEvaluator(llmEvaluator, cfg.LLM.Model, appLogger)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())
	app.Use(metrics.Middleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unhealthy", "component": "database"})
		}
		if err := cacheAdapter.Ping(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unhealthy", "component": "cache"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", metrics.Handler())
	app.Get("/swagger/*", swagger.HandlerDefault)

	if cfg.Auth.JWTSecret == "" {
		appLogger.Warn("auth.jwt_secret is empty, admin routes will reject every request")
	}
	handler.Register(app.Group("/api"), handler.Handlers{
		Catalog:  handler.NewCatalogHandler(catalogService),
		Admin:    handler.NewAdminHandler(syncService, catalogService),
		Purchase: handler.NewPurchaseHandler(provisioningService),
		Feedback: handler.NewFeedbackHandler(writingEvaluator, subjectEvaluator),
	}, middleware.AdminOnly(cfg.Auth.JWTSecret, cfg.Auth.AdminRole))

	syncCtx, stopSync := context.WithCancel(context.Background())
	defer stopSync()
	if cfg.Sync.Interval > 0 {
		appLogger.Info("Scheduled sync enabled", zap.Duration("interval", cfg.Sync.Interval))
		go runPeriodicSync(syncCtx, syncService, cfg.Sync.Interval, appLogger)
	}

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	stopSync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
