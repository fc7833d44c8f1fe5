package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"servicehub.backend/internal/config"
	"servicehub.backend/internal/infrastructure/jobs"
	"servicehub.backend/internal/infrastructure/repositories"
	"servicehub.backend/internal/interfaces/http/handlers"
	"servicehub.backend/internal/interfaces/http/middleware"
	"servicehub.backend/internal/usecases"
	"servicehub.backend/pkg/jwt"
	"servicehub.backend/pkg/logger"
	"servicehub.backend/pkg/redis"
)

// idempotencyTTL is how long a replayed response stays available for
// retried payment and accept calls.
const idempotencyTTL = 24 * time.Hour

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	providerRepo := repositories.NewProviderRepository(db)
	vehicleRepo := repositories.NewVehicleRepository(db)
	categoryRepo := repositories.NewServiceCategoryRepository(db)
	serviceRepo := repositories.NewServiceRepository(db)
	requestRepo := repositories.NewServiceRequestRepository(db)
	invoiceRepo := repositories.NewInvoiceRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	commissionRepo := repositories.NewCommissionRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize idempotency store
	idempotencyStore := redis.NewIdempotencyStore(idempotencyTTL)

	// Initialize usecases
	accountUsecase := usecases.NewAccountUsecase(userRepo, customerRepo, providerRepo, uow, jwtService)
	vehicleUsecase := usecases.NewVehicleUsecase(vehicleRepo, customerRepo)
	catalogUsecase := usecases.NewCatalogUsecase(categoryRepo, serviceRepo, providerRepo)
	discoveryUsecase := usecases.NewDiscoveryUsecase(providerRepo, serviceRepo)
	requestUsecase := usecases.NewRequestUsecase(requestRepo, serviceRepo, vehicleRepo, customerRepo, providerRepo, uow)
	billingUsecase := usecases.NewBillingUsecase(invoiceRepo, paymentRepo, commissionRepo, requestRepo, providerRepo, customerRepo, uow)
	reviewUsecase := usecases.NewReviewUsecase(reviewRepo, requestRepo, customerRepo, providerRepo, uow)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(accountUsecase)
	vehicleHandler := handlers.NewVehicleHandler(vehicleUsecase)
	catalogHandler := handlers.NewCatalogHandler(catalogUsecase)
	discoveryHandler := handlers.NewDiscoveryHandler(discoveryUsecase)
	requestHandler := handlers.NewRequestHandler(requestUsecase)
	billingHandler := handlers.NewBillingHandler(billingUsecase)
	reviewHandler := handlers.NewReviewHandler(reviewUsecase)
	adminHandler := handlers.NewAdminHandler(accountUsecase)

	// Create auth middleware
	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweepJob := jobs.NewCommissionOverdueJob(billingUsecase, cfg.Billing.SweepInterval)
	go sweepJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:           authHandler,
		vehicleHandler:        vehicleHandler,
		catalogHandler:        catalogHandler,
		discoveryHandler:      discoveryHandler,
		requestHandler:        requestHandler,
		billingHandler:        billingHandler,
		reviewHandler:         reviewHandler,
		adminHandler:          adminHandler,
		authMiddleware:        authMiddleware,
		idempotencyMiddleware: middleware.IdempotencyMiddleware(idempotencyStore),
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		sweepJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 ServiceHub Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
