package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"esgcompass/internal/analysis"
	"esgcompass/internal/cache"
	"esgcompass/internal/config"
	"esgcompass/internal/logger"
	"esgcompass/internal/metrics"
	"esgcompass/internal/repository"
	"esgcompass/internal/service"
	"esgcompass/internal/transport/rest"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	zlog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zlog.Sync()

	ctx := context.Background()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		zlog.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		zlog.Fatal("failed to ping MongoDB", zap.Error(err))
	}
	zlog.Info("connected to MongoDB", zap.String("database", cfg.Mongo.Database))

	db := mongoClient.Database(cfg.Mongo.Database)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		zlog.Fatal("failed to ping Redis", zap.Error(err))
	}
	zlog.Info("connected to Redis", zap.String("address", cfg.Redis.Address))

	// Repositories and caches
	progressRepo := repository.NewProgressRepo(db)
	companyRepo := repository.NewCompanyRepo(db)
	reportRepo := repository.NewReportRepo(db)
	engagementCache := cache.NewEngagementCache(rdb)

	mtr := metrics.New()

	// Remote analysis, with a stub fallback when unconfigured
	var narrator analysis.Narrator
	if cfg.Analysis.Enabled() {
		narrator = analysis.NewInvoker(cfg.Analysis.Endpoint, cfg.Analysis.Timeout())
		zlog.Info("analysis endpoint configured", zap.String("endpoint", cfg.Analysis.Endpoint))
	} else {
		narrator = analysis.StubNarrator{}
		zlog.Warn("no analysis endpoint configured, using stub narrator")
	}

	// Services
	authSvc := service.NewAuthService(cfg.Auth.AccessPassword, cfg.Auth.JWTSecret)
	progressSvc := service.NewProgressService(progressRepo, mtr, zlog)
	engagementSvc := service.NewEngagementService(engagementCache, mtr, zlog)
	assessmentSvc := service.NewAssessmentService(progressSvc, engagementSvc, companyRepo, zlog)
	analysisSvc := service.NewAnalysisService(narrator, reportRepo, engagementSvc, mtr, zlog)
	companySvc := service.NewCompanyService(companyRepo)

	container := &rest.Container{
		AuthService:       authSvc,
		AssessmentService: assessmentSvc,
		AnalysisService:   analysisSvc,
		CompanyService:    companySvc,
		EngagementService: engagementSvc,
		Metrics:           mtr,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		zlog.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("listen and serve", zap.Error(err))
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Fatal("server forced to shutdown", zap.Error(err))
	}

	zlog.Info("server exited")
}
