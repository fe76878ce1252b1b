package main

// @title           Petslife API
// @version         1.0
// @description     Social directory for pet owners and veterinarians
// @host            localhost:8080
// @BasePath        /api
// @schemes         http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "petslife-service/docs"
	"petslife-service/internal/adapters/kafka"
	"petslife-service/internal/config"
	"petslife-service/internal/database"
	"petslife-service/internal/handler"
	"petslife-service/internal/repository"
	"petslife-service/internal/router"
	"petslife-service/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	slog.Info("Starting petslife server")

	db, err := database.NewPostgresConnection(cfg.Database.DSN())
	if err != nil {
		slog.Error("Failed to connect to PostgreSQL", "error", err)
		os.Exit(1)
	}

	redisClient, err := database.NewRedisConnection(cfg.Redis)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	minioClient, err := database.NewMinIOClient(
		cfg.MinIO.Endpoint, cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, cfg.MinIO.Bucket, cfg.MinIO.UseSSL)
	if err != nil {
		slog.Error("Failed to connect to MinIO", "error", err)
		os.Exit(1)
	}

	var events service.EventPublisher
	if cfg.Kafka.Enabled {
		producer, err := kafka.InitKafkaProducer(cfg.Kafka.Brokers)
		if err != nil {
			slog.Error("Failed to connect to Kafka", "error", err)
			os.Exit(1)
		}
		publisher := kafka.NewPublisher(producer, cfg.Kafka.Topic)
		defer publisher.Close()
		events = publisher
	}

	// Repository
	userRepo := repository.NewUserRepository(db)
	friendRepo := repository.NewFriendRepository(db, redisClient)
	cardRepo := repository.NewCardRepository(db)

	// Service
	sessions := service.NewSessionRegistry()
	userService := service.NewUserService(userRepo, events, cfg.JWT.Secret, cfg.JWT.ExpirationTime)
	friendService := service.NewFriendService(friendRepo, userRepo, events)
	cardService := service.NewCardService(cardRepo, userRepo, events)
	uploadService := service.NewUploadService(minioClient, sessions)

	// Handler
	userHandler := handler.NewUserHandler(userService, uploadService)
	friendHandler := handler.NewFriendHandler(friendService)
	cardHandler := handler.NewCardHandler(cardService, friendService, uploadService, sessions)
	uploadHandler := handler.NewUploadHandler(uploadService)

	engine := router.New(cfg.JWT.Secret, userHandler, friendHandler, cardHandler, uploadHandler)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		slog.Info("Server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server stopped")
}
