package main

import (
	"context"
	"os"

	"hello-madurai/pkg/cache"
	"hello-madurai/pkg/config"
	"hello-madurai/pkg/database"
	"hello-madurai/pkg/logger"
	"hello-madurai/pkg/push"
	"hello-madurai/pkg/queue"
	notificationApp "hello-madurai/services/notification/internal/app"
)

// @title           Hello Madurai Notification API
// @version         1.0
// @description     Bilingual push fan-out, device topic subscriptions and delivery logs for Hello Madurai

// @contact.name   Hello Madurai
// @contact.url    https://hellomadurai.in

// @host      localhost:8002
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.NewWithOptions(logger.Options{
		Level:   os.Getenv("LOG_LEVEL"),
		Pretty:  !cfg.IsProduction(),
		Service: "notification",
	})

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without rate limiting)", err)
		redisClient = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v", err)
		panic(err)
	}

	provider, err := push.NewFCMClient(context.Background(), push.Options{
		ProjectID:       cfg.FCMProjectID,
		CredentialsFile: cfg.FCMCredentialsFile,
		SendRate:        cfg.FCMSendRate,
	})
	if err != nil {
		log.Error("Failed to create FCM client: %v", err)
		panic(err)
	}

	notificationApp.Run(cfg, log, db, redisClient, queueClient, provider)
}
