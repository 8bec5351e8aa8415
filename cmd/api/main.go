package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/bushido-bootcamp/enroll-api/api/swagger"
	"github.com/bushido-bootcamp/enroll-api/internal/gateway"
	"github.com/bushido-bootcamp/enroll-api/internal/handler"
	"github.com/bushido-bootcamp/enroll-api/internal/middleware"
	"github.com/bushido-bootcamp/enroll-api/internal/repository"
	"github.com/bushido-bootcamp/enroll-api/internal/service"
	"github.com/bushido-bootcamp/enroll-api/pkg/cache"
	"github.com/bushido-bootcamp/enroll-api/pkg/config"
	"github.com/bushido-bootcamp/enroll-api/pkg/database"
	"github.com/bushido-bootcamp/enroll-api/pkg/logger"
	corsmiddleware "github.com/bushido-bootcamp/enroll-api/pkg/middleware/cors"
	reqidmiddleware "github.com/bushido-bootcamp/enroll-api/pkg/middleware/requestid"
)

// @title Bushido Bootcamp Enrollment API
// @version 1.0.0
// @description Course enrollment backend: classes, students, taken courses, payments.
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	// Redis is optional: without it the leaderboard serves straight from the
	// database on every request.
	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, leaderboard cache disabled", zap.Error(err))
		redisClient = nil
	}

	studentRepo := repository.NewStudentRepository(db)
	classRepo := repository.NewClassRepository(db)
	takenCourseRepo := repository.NewTakenCourseRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	stripeGateway := gateway.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Stripe.Currency)

	metricsSvc := service.NewMetricsService()
	authSvc := service.NewAuthService(nil, logr, service.AuthConfig{
		Secret: cfg.JWT.Secret,
		Expiry: cfg.JWT.Expiration,
	})
	studentSvc := service.NewStudentService(studentRepo, nil, logr)
	classSvc := service.NewClassService(classRepo, cacheRepo, cfg.Leaderboard.CacheTTL, metricsSvc, nil, logr)
	takenCourseSvc := service.NewTakenCourseService(takenCourseRepo, nil, logr)
	paymentSvc := service.NewPaymentService(paymentRepo, stripeGateway, classSvc, nil, logr)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	router := &handler.Router{
		Auth:         handler.NewAuthHandler(authSvc),
		Students:     handler.NewStudentHandler(studentSvc),
		Classes:      handler.NewClassHandler(classSvc),
		TakenCourses: handler.NewTakenCourseHandler(takenCourseSvc),
		Payments:     handler.NewPaymentHandler(paymentSvc),
		Metrics:      handler.NewMetricsHandler(metricsSvc),
		AuthService:  authSvc,
		Roles:        studentSvc,
	}
	router.Register(r)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logr.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logr.Sugar().Errorw("graceful shutdown failed", "error", err)
	}
	if err := cacheRepo.Close(); err != nil {
		logr.Sugar().Warnw("redis close failed", "error", err)
	}
}
