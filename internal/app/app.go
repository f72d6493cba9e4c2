package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"freelancehub_backend/database"
	"freelancehub_backend/internal/algorithms"
	"freelancehub_backend/internal/cache"
	"freelancehub_backend/internal/config"
	"freelancehub_backend/internal/handlers"
	"freelancehub_backend/internal/logger"
	"freelancehub_backend/internal/middleware"
	"freelancehub_backend/internal/repositories"
	"freelancehub_backend/internal/routes"
	"freelancehub_backend/internal/services"
	"freelancehub_backend/internal/validator"
	"freelancehub_backend/internal/workers"
	"freelancehub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env, cfg.Server.LogLevel)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	apperrors.Debug = cfg.Server.Env == "development"

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	defer sqlDB.Close()
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	ratingCache, closeCache := initializeCache(cfg)
	defer closeCache()

	analyzer, err := initializeAnalyzer(cfg)
	if err != nil {
		logger.Fatal("Failed to load lexicon", "error", err, "path", cfg.Rating.LexiconPath)
	}

	serviceContainer := initializeServices(cfg, ratingCache, analyzer)
	ginRouter := SetupRouter(cfg, gormDB, serviceContainer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Workers.Enabled {
		workers.NewRatingWorker(gormDB, serviceContainer.AIRatingService, serviceContainer.CombinedRatingService, workers.RatingWorkerConfig{
			Interval:    cfg.TierInterval(),
			BatchSize:   cfg.Workers.UnratedBatchSize,
			Concurrency: cfg.Matching.Concurrency,
		}).Start(ctx)
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: address, Handler: ginRouter}

	go func() {
		logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
}

// initializeCache подключает Redis, при недоступности работает без кеша.
func initializeCache(cfg *config.Config) (cache.RatingCache, func()) {
	if !cfg.Redis.Enabled {
		logger.Warn("Redis disabled, combined ratings are computed on every request")
		return cache.NoopCache{}, func() {}
	}

	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.RatingCacheTTL(),
	})
	if err != nil {
		logger.Error("Redis unavailable, continuing without cache", "error", err, "addr", cfg.Redis.Addr)
		return cache.NoopCache{}, func() {}
	}

	logger.Info("Redis cache connected", "addr", cfg.Redis.Addr)
	return redisCache, func() { _ = redisCache.Close() }
}

func initializeAnalyzer(cfg *config.Config) (*algorithms.Analyzer, error) {
	lexicon, err := algorithms.LoadLexicon(cfg.Rating.LexiconPath)
	if err != nil {
		return nil, err
	}
	return algorithms.NewAnalyzer(lexicon), nil
}

func initializeServices(cfg *config.Config, ratingCache cache.RatingCache, analyzer *algorithms.Analyzer) *services.ServiceContainer {
	// --- Инициализация репозиториев ---
	userRepo := repositories.NewUserRepository()
	postRepo := repositories.NewPostRepository()
	aiRatingRepo := repositories.NewAIRatingRepository()
	ratingRepo := repositories.NewRatingRepository()
	jobRepo := repositories.NewJobRepository()
	projectRepo := repositories.NewProjectRepository()
	notificationRepo := repositories.NewNotificationRepository()

	// --- Инициализация сервисов ---
	combinedRatingService := services.NewCombinedRatingService(userRepo, postRepo, aiRatingRepo, ratingRepo, projectRepo, ratingCache)
	aiRatingService := services.NewAIRatingService(postRepo, aiRatingRepo, userRepo, combinedRatingService, ratingCache, analyzer,
		algorithms.AuthenticityThresholds{
			LikeRatio:    cfg.Rating.LikeRatioThreshold,
			CommentRatio: cfg.Rating.CommentRatioThreshold,
		})
	ratingService := services.NewRatingService(ratingRepo, projectRepo, userRepo, combinedRatingService, ratingCache)
	jobMatchingService := services.NewJobMatchingService(jobRepo, userRepo, postRepo, projectRepo, notificationRepo, combinedRatingService, analyzer,
		services.MatchingConfig{
			Concurrency:  cfg.Matching.Concurrency,
			DefaultLimit: cfg.Matching.DefaultLimit,
			MaxLimit:     cfg.Matching.MaxLimit,
			NotifyLimit:  cfg.Matching.NotifyLimit,
		})
	notificationService := services.NewNotificationService(notificationRepo)

	return &services.ServiceContainer{
		AIRatingService:       aiRatingService,
		CombinedRatingService: combinedRatingService,
		RatingService:         ratingService,
		JobMatchingService:    jobMatchingService,
		NotificationService:   notificationService,
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB, svc *services.ServiceContainer) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	appHandlers := initializeHandlers(cfg, svc, gormDB)
	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, cfg.JWT.Secret)
	return ginRouter
}

func initializeHandlers(cfg *config.Config, svc *services.ServiceContainer, gormDB *gorm.DB) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(validator.New())
	limiter := middleware.NewClientLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	return &handlers.AppHandlers{
		AIHandler:           handlers.NewAIHandler(baseHandler, svc.AIRatingService, limiter),
		FreelancerHandler:   handlers.NewFreelancerHandler(baseHandler, svc.CombinedRatingService),
		MatchingHandler:     handlers.NewMatchingHandler(baseHandler, svc.JobMatchingService),
		RatingHandler:       handlers.NewRatingHandler(baseHandler, svc.RatingService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, svc.NotificationService),
		HealthHandler:       handlers.NewHealthHandler(gormDB),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware("/health"))
	router.Use(middleware.TimeoutMiddleware(cfg.RequestTimeout()))
	router.Use(middleware.DBMiddleware(db))
	return router
}
