package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jihoon-lab/coinboard-api/internal/config"
	"github.com/jihoon-lab/coinboard-api/internal/database"
	"github.com/jihoon-lab/coinboard-api/internal/handler"
	"github.com/jihoon-lab/coinboard-api/internal/middleware"
	"github.com/jihoon-lab/coinboard-api/internal/models"
	"github.com/jihoon-lab/coinboard-api/internal/repository"
	"github.com/jihoon-lab/coinboard-api/internal/router"
	"github.com/jihoon-lab/coinboard-api/internal/service"
	"github.com/jihoon-lab/coinboard-api/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.ActivityLog{},
		&models.VisitorLog{},
		&models.DailyVisit{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	sessions := session.NewRedisStore(redisClient, cfg.SessionTTL)

	storage, err := service.NewLocalStorage(cfg.UploadDir, cfg.UploadBaseURL)
	if err != nil {
		log.Fatalf("failed to prepare upload storage: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	activityRepo := repository.NewActivityLogRepository(db)
	visitorRepo := repository.NewVisitorRepository(db)

	activityService := service.NewActivityService(activityRepo, logger)
	uploadService := service.NewUploadService(storage, logger)
	authService := service.NewAuthService(userRepo, validate, logger)
	postService := service.NewPostService(postRepo, commentRepo, uploadService, activityService, validate, logger)
	commentService := service.NewCommentService(commentRepo, postRepo, activityService, validate, logger)
	visitorService := service.NewVisitorService(visitorRepo, logger)
	adminService := service.NewAdminService(userRepo, postRepo, commentRepo, visitorRepo, activityService, logger)

	authHandler := handler.NewAuthHandler(authService, sessions, cfg.SessionCookie, cfg.SessionTTL, logger)
	postHandler := handler.NewPostHandler(postService, logger)
	commentHandler := handler.NewCommentHandler(commentService, logger)
	adminHandler := handler.NewAdminHandler(adminService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
		BodyLimit:    cfg.BodyLimitMB * 1024 * 1024,
	})

	middleware.Register(app, middleware.Config{
		Logger:        &logger,
		Sessions:      sessions,
		SessionCookie: cfg.SessionCookie,
		Visitors:      visitorService,
	})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:    authHandler,
		PostHandler:    postHandler,
		CommentHandler: commentHandler,
		AdminHandler:   adminHandler,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
