package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-planner/internal/adapter/handler"
	"github.com/johnquangdev/meeting-planner/internal/adapter/repository"
	"github.com/johnquangdev/meeting-planner/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-planner/internal/infrastructure/database"
	httpmw "github.com/johnquangdev/meeting-planner/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-planner/internal/infrastructure/mailer"
	"github.com/johnquangdev/meeting-planner/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-planner/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-planner/internal/usecase/patient"
	"github.com/johnquangdev/meeting-planner/internal/usecase/response"
	"github.com/johnquangdev/meeting-planner/internal/usecase/roster"
	"github.com/johnquangdev/meeting-planner/pkg/config"
	pkglogger "github.com/johnquangdev/meeting-planner/pkg/logger"
	pkgvalidator "github.com/johnquangdev/meeting-planner/pkg/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := pkglogger.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// Initialize Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = pkgvalidator.New()
	e.HTTPErrorHandler = handler.HTTPErrorHandler(logger)

	ipExtractor, err := httpmw.IPExtractor(cfg.Server.TrustedProxies)
	if err != nil {
		logger.Fatal("config.trusted_proxies.invalid", zap.Error(err))
	}
	e.IPExtractor = ipExtractor

	e.Use(httpmw.RequestID())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${id} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Database
	db, err := database.NewPostgresDB(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("database.connect.failed", zap.Error(err))
	}
	defer database.CloseDB(db)

	if cfg.Database.AutoMigrate {
		n, err := database.Migrate(db, migrate.Up)
		if err != nil {
			logger.Fatal("database.migrate.failed", zap.Error(err))
		}
		logger.Info("database.migrated", zap.Int("applied", n))
	}

	healthChecks := map[string]handler.HealthCheck{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}

	// Respond endpoint rate limiter
	var limiter cache.Limiter
	if cfg.Redis.Addr != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal("redis.connect.failed", zap.Error(err))
		}
		defer redisClient.Close()

		limiter = cache.NewRedisLimiter(redisClient, "ratelimit:respond", cfg.Redis.RespondRate, cfg.Redis.RateWindow)
		healthChecks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	} else {
		memLimiter := cache.NewMemoryLimiter(cfg.Redis.RespondRate, cfg.Redis.RateWindow)
		defer memLimiter.Close()

		limiter = memLimiter
		logger.Info("ratelimit.memory", zap.Int("limit", cfg.Redis.RespondRate))
	}

	// Attachment payload storage
	var blobs patient.BlobStore
	if cfg.Storage.Type == "minio" {
		minioClient, err := storage.NewMinIOClient(ctx, cfg.Storage)
		if err != nil {
			logger.Fatal("storage.connect.failed", zap.Error(err))
		}
		blobs = minioClient
		healthChecks["storage"] = minioClient.Ping
	}

	// Mail transport
	var sender mailer.Sender
	if cfg.Email.Enabled && len(cfg.Email.MissingSettings()) == 0 {
		smtpSender, err := mailer.NewSMTPSender(cfg.Email, logger)
		if err != nil {
			logger.Fatal("mailer.init.failed", zap.Error(err))
		}
		sender = smtpSender
	} else {
		if cfg.Email.Enabled {
			logger.Warn("mailer.misconfigured", zap.Strings("missing", cfg.Email.MissingSettings()))
		}
		sender = mailer.NewNoopSender(logger)
	}

	// Repositories
	meetingRepo := repository.NewMeetingRepository(db)
	responseRepo := repository.NewInviteeResponseRepository(db)
	patientRepo := repository.NewPatientDetailRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	memberRepo := repository.NewMemberRepository(db)

	// Services
	meetingService := meeting.NewMeetingService(
		meetingRepo,
		responseRepo,
		patientRepo,
		memberRepo,
		sender,
		meeting.Options{
			Email:          cfg.Email,
			BaseURL:        cfg.Server.BaseURL,
			DispatchBudget: cfg.Email.DispatchBudget,
		},
		logger,
	)
	responseService := response.NewResponseService(responseRepo, meetingRepo, logger)
	rosterService := roster.NewRosterService(teamRepo, memberRepo, logger)
	patientService := patient.NewPatientService(meetingRepo, patientRepo, blobs, logger)

	// Handlers
	staticHandler, err := handler.NewStaticHandler(cfg.Server.PublicDir, logger)
	if err != nil {
		logger.Fatal("static.init.failed", zap.Error(err))
	}

	router := handler.NewRouter(cfg, handler.RouterDeps{
		Meeting:      handler.NewMeetingHandler(meetingService, logger),
		Respond:      handler.NewRespondHandler(responseService, logger),
		Roster:       handler.NewRosterHandler(rosterService, logger),
		Patient:      handler.NewPatientHandler(patientService, logger),
		Static:       staticHandler,
		RespondLimit: httpmw.RateLimit(limiter, logger),
		HealthChecks: healthChecks,
	})
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		logger.Info("server.starting",
			zap.String("addr", addr),
			zap.String("base_url", cfg.Server.BaseURL),
			zap.Bool("email_enabled", cfg.Email.Enabled),
			zap.String("storage", cfg.Storage.Type),
		)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server.start.failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("server.stopping")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server.shutdown.forced", zap.Error(err))
		return
	}

	logger.Info("server.stopped")
}
