package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/brandkit/backend/internal/application/catalog"
	reportapp "github.com/brandkit/backend/internal/application/report"
	"github.com/brandkit/backend/internal/infrastructure/auth"
	"github.com/brandkit/backend/internal/infrastructure/config"
	"github.com/brandkit/backend/internal/infrastructure/event"
	"github.com/brandkit/backend/internal/infrastructure/logger"
	"github.com/brandkit/backend/internal/infrastructure/persistence"
	"github.com/brandkit/backend/internal/infrastructure/telemetry"
	"github.com/brandkit/backend/internal/interfaces/http/handler"
	"github.com/brandkit/backend/internal/interfaces/http/middleware"
	"github.com/brandkit/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//	@title			Brandkit Admin API
//	@version		1.0
//	@description	Brand management and store reporting for the commerce admin.

//	@host		localhost:9000
//	@BasePath	/admin

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

const serviceVersion = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting brandkit",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	tp, err := telemetry.NewTracerProvider(context.Background(), cfg.Telemetry, serviceVersion, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected", zap.String("driver", cfg.Database.Driver))

	// postgres schemas are owned by cmd/migrate
	if cfg.Database.Driver == "sqlite" {
		if err := persistence.AutoMigrate(db.DB); err != nil {
			log.Fatal("Failed to migrate sqlite schema", zap.Error(err))
		}
	}

	dbTracing := telemetry.DefaultDBTracingConfig()
	dbTracing.Enabled = cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled
	dbTracing.LogFullSQL = cfg.Telemetry.DBLogFullSQL
	if cfg.Database.Driver == "sqlite" {
		dbTracing.DBSystem = "sqlite"
	}
	if err := telemetry.RegisterDBTracing(db.DB, dbTracing, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	brandRepo := persistence.NewGormBrandRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	linkRepo := persistence.NewGormProductBrandRepository(db.DB)
	promotionRepo := persistence.NewGormPromotionRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)

	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(event.NewAuditLogHandler(log))
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	brandService := catalogapp.NewBrandService(brandRepo, productRepo, linkRepo, log)
	productService := catalogapp.NewProductService(productRepo, brandRepo, linkRepo, log)
	linkService := catalogapp.NewProductBrandService(brandRepo, productRepo, linkRepo, log)
	reportService := reportapp.NewReportService(promotionRepo, orderRepo, customerRepo, log)
	brandService.SetEventPublisher(eventBus)
	productService.SetEventPublisher(eventBus)
	linkService.SetEventPublisher(eventBus)

	readiness := []handler.ReadinessCheck{{Name: "database", Check: db.Ping}}

	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(context.Background(), cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err), zap.String("addr", cfg.Redis.Addr()))
		}
		defer func() { _ = redisBlacklist.Close() }()
		blacklist = redisBlacklist
		readiness = append(readiness, handler.ReadinessCheck{Name: "redis", Check: redisBlacklist.Ping})
		log.Info("Token blacklist backed by Redis", zap.String("addr", cfg.Redis.Addr()))
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
		log.Info("Token blacklist kept in memory")
	}
	jwtService := auth.NewJWTService(cfg.JWT)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine, err := router.NewEngine(router.EngineConfig{
		HTTP:           cfg.HTTP,
		ServiceName:    cfg.Telemetry.ServiceName,
		TracingEnabled: cfg.Telemetry.Enabled,
		HSTSEnabled:    cfg.IsProduction(),
		Logger:         log,
	}, handler.NewHealthHandler(readiness...))
	if err != nil {
		log.Fatal("Failed to configure HTTP engine", zap.Error(err))
	}

	router.NewRouter(engine,
		router.WithBasePath(cfg.HTTP.AdminBasePath),
		router.WithMiddleware(
			middleware.AdminAuth(middleware.AdminAuthConfig{
				JWTService:     jwtService,
				TokenBlacklist: blacklist,
				Logger:         log,
			}),
			middleware.SpanAttributes(),
		),
	).Register(router.AdminGroups(router.AdminHandlers{
		Brand:        handler.NewBrandHandler(brandService),
		Product:      handler.NewProductHandler(productService),
		ProductBrand: handler.NewProductBrandHandler(linkService),
		Report:       handler.NewReportHandler(reportService),
		Auth:         handler.NewAuthHandler(blacklist),
	})...).Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting",
			zap.String("addr", srv.Addr),
			zap.String("admin_base_path", cfg.HTTP.AdminBasePath),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}
	log.Info("Server exited gracefully")
}
